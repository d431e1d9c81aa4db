package remote

import (
	"testing"
	"time"

	"github.com/hotelio-cloud/service-booking/internal/domain/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTranslator_FieldCopy(t *testing.T) {
	tr := NewTranslator(zap.NewNop())

	b := tr.ToDomain(booking.RemoteBooking{
		ID:              "bk-1",
		UserID:          "u1",
		HotelID:         "h1",
		PromoCode:       "SAVE10",
		DiscountPercent: 15.0,
		Price:           65.0,
		CreatedAt:       "2024-03-10T14:30:00Z",
	})

	assert.Equal(t, "bk-1", b.ID())
	assert.Equal(t, "u1", b.UserID())
	assert.Equal(t, "h1", b.HotelID())
	require.NotNil(t, b.PromoCode())
	assert.Equal(t, "SAVE10", *b.PromoCode())
	assert.Equal(t, 15.0, b.DiscountPercent())
	assert.Equal(t, 65.0, b.Price())
	assert.Equal(t, time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC), b.CreatedAt())
}

func TestTranslator_EmptyPromoCodeIsAbsent(t *testing.T) {
	tr := NewTranslator(zap.NewNop())

	b := tr.ToDomain(booking.RemoteBooking{
		ID:        "bk-2",
		UserID:    "u1",
		HotelID:   "h1",
		PromoCode: "",
		Price:     100.0,
		CreatedAt: "2024-03-10T14:30:00Z",
	})

	// The wire protocol cannot distinguish "no promo" from "empty promo";
	// the translator must.
	assert.Nil(t, b.PromoCode())
}

func TestTranslator_TimestampVariants(t *testing.T) {
	tr := NewTranslator(zap.NewNop())

	testCases := []struct {
		name      string
		createdAt string
		expected  time.Time
	}{
		{
			name:      "zone naive",
			createdAt: "2024-03-10T14:30:00",
			expected:  time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC),
		},
		{
			name:      "trailing zone marker stripped",
			createdAt: "2024-03-10T14:30:00Z",
			expected:  time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC),
		},
		{
			name:      "fractional seconds",
			createdAt: "2024-03-10T14:30:00.250Z",
			expected:  time.Date(2024, 3, 10, 14, 30, 0, 250000000, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := tr.ToDomain(booking.RemoteBooking{ID: "bk-3", CreatedAt: tc.createdAt})
			assert.Equal(t, tc.expected, b.CreatedAt())
		})
	}
}

func TestTranslator_MalformedTimestampFallsBackToNow(t *testing.T) {
	tr := NewTranslator(zap.NewNop())

	b := tr.ToDomain(booking.RemoteBooking{ID: "bk-4", CreatedAt: "not-a-date"})

	assert.WithinDuration(t, time.Now().UTC(), b.CreatedAt(), 2*time.Second)
}

func TestTranslator_EmptyTimestampFallsBackToNow(t *testing.T) {
	tr := NewTranslator(zap.NewNop())

	b := tr.ToDomain(booking.RemoteBooking{ID: "bk-5", CreatedAt: ""})

	assert.WithinDuration(t, time.Now().UTC(), b.CreatedAt(), 2*time.Second)
}

func TestTranslator_ToDomainList(t *testing.T) {
	tr := NewTranslator(zap.NewNop())

	out := tr.ToDomainList([]booking.RemoteBooking{
		{ID: "bk-1", CreatedAt: "2024-03-10T14:30:00Z"},
		{ID: "bk-2", CreatedAt: "broken"},
	})

	require.Len(t, out, 2)
	assert.Equal(t, "bk-1", out[0].ID())
	assert.Equal(t, "bk-2", out[1].ID())
}
