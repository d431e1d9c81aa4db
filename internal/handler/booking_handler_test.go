package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hotelio-cloud/service-booking/internal/application"
	"github.com/hotelio-cloud/service-booking/internal/domain"
	"github.com/hotelio-cloud/service-booking/internal/domain/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFlow struct {
	listResult   []*booking.Booking
	createResult *booking.Booking
	err          error

	gotOwner   *string
	gotUserID  string
	gotHotelID string
	gotPromo   *string
}

func (s *stubFlow) List(ctx context.Context, ownerUserID *string) ([]*booking.Booking, error) {
	s.gotOwner = ownerUserID
	return s.listResult, s.err
}

func (s *stubFlow) Create(ctx context.Context, userID, hotelID string, promoCode *string) (*booking.Booking, error) {
	s.gotUserID = userID
	s.gotHotelID = hotelID
	s.gotPromo = promoCode
	return s.createResult, s.err
}

func setupRouter(flow application.BookingFlow) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc := application.NewBookingService(flow, zap.NewNop())
	NewBookingHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(body.Bytes(), &envelope))
	return envelope
}

func TestListBookings(t *testing.T) {
	promo := "SAVE10"
	flow := &stubFlow{
		listResult: []*booking.Booking{
			booking.NewBooking("u1", "h1", &promo, 15.0, 65.0),
		},
	}
	router := setupRouter(flow)

	t.Run("without filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, flow.gotOwner)

		envelope := decodeEnvelope(t, w.Body)
		assert.Equal(t, true, envelope["success"])
		data := envelope["data"].([]any)
		require.Len(t, data, 1)
		first := data[0].(map[string]any)
		assert.Equal(t, "u1", first["user_id"])
		assert.Equal(t, 65.0, first["price"])
		assert.Equal(t, "SAVE10", first["promo_code"])
	})

	t.Run("with user filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?user_id=u1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, flow.gotOwner)
		assert.Equal(t, "u1", *flow.gotOwner)
	})
}

func TestCreateBooking(t *testing.T) {
	flow := &stubFlow{
		createResult: booking.NewBooking("u1", "h1", nil, 0, 100.0),
	}
	router := setupRouter(flow)

	body := `{"user_id":"u1","hotel_id":"h1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "u1", flow.gotUserID)
	assert.Equal(t, "h1", flow.gotHotelID)
	assert.Nil(t, flow.gotPromo)

	envelope := decodeEnvelope(t, w.Body)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].(map[string]any)
	assert.Equal(t, 100.0, data["price"])
	assert.NotEmpty(t, data["id"])
}

func TestCreateBooking_ForwardsPromoCode(t *testing.T) {
	promo := "SAVE10"
	flow := &stubFlow{
		createResult: booking.NewBooking("u1", "h1", &promo, 15.0, 85.0),
	}
	router := setupRouter(flow)

	body := `{"user_id":"u1","hotel_id":"h1","promo_code":"SAVE10"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, flow.gotPromo)
	assert.Equal(t, "SAVE10", *flow.gotPromo)
}

func TestCreateBooking_MissingFieldsIsBadRequest(t *testing.T) {
	router := setupRouter(&stubFlow{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(`{"user_id":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	envelope := decodeEnvelope(t, w.Body)
	assert.Equal(t, false, envelope["success"])
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"user ineligible", domain.NewUserIneligibleError("user is blacklisted"), http.StatusUnprocessableEntity, domain.CodeUserIneligible},
		{"hotel ineligible", domain.NewHotelIneligibleError("hotel is fully booked"), http.StatusUnprocessableEntity, domain.CodeHotelIneligible},
		{"remote unavailable", domain.NewRemoteUnavailableError("CreateBooking", errors.New("connection refused")), http.StatusBadGateway, domain.CodeRemoteUnavailable},
		{"unknown error", errors.New("database exploded"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&stubFlow{err: tt.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(`{"user_id":"u1","hotel_id":"h1"}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			envelope := decodeEnvelope(t, w.Body)
			assert.Equal(t, false, envelope["success"])
			errObj := envelope["error"].(map[string]any)
			assert.Equal(t, tt.wantCode, errObj["code"])
		})
	}
}
