// Package remote implements the RPC channel to a remote booking peer and the
// translation of its wire representation back into the local entity model.
package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hotelio-cloud/service-booking/internal/domain"
	"github.com/hotelio-cloud/service-booking/internal/domain/booking"
	"go.uber.org/zap"
)

// Client is an HTTP/JSON implementation of booking.RemoteBookingService.
// Calls are synchronous and blocking; any transport failure or non-2xx
// response surfaces as a REMOTE_UNAVAILABLE domain error. There is no retry
// and no fallback at this layer.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates a client for the booking peer at host:port.
func NewClient(host string, port int, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(fmt.Sprintf("http://%s:%d", host, port)).
		SetTimeout(10 * time.Second)

	return &Client{http: httpClient, logger: logger}
}

// bookingListResponse mirrors the peer's list payload.
type bookingListResponse struct {
	Bookings []booking.RemoteBooking `json:"bookings"`
}

// createBookingRequest mirrors the peer's create payload. The wire protocol
// has no optional-absence marker, so an absent promo code travels as "".
type createBookingRequest struct {
	UserID    string `json:"userId"`
	HotelID   string `json:"hotelId"`
	PromoCode string `json:"promoCode"`
}

// ListBookings fetches bookings from the peer. An empty ownerUserID requests
// bookings for all users.
func (c *Client) ListBookings(ctx context.Context, ownerUserID string) ([]booking.RemoteBooking, error) {
	var result bookingListResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("userId", ownerUserID).
		SetResult(&result).
		Get("/api/v1/bookings")
	if err != nil {
		return nil, domain.NewRemoteUnavailableError("ListBookings", err)
	}
	if resp.IsError() {
		return nil, domain.NewRemoteUnavailableError("ListBookings",
			fmt.Errorf("unexpected status %s", resp.Status()))
	}

	return result.Bookings, nil
}

// CreateBooking asks the peer to create a booking. No local validation or
// pricing runs; business rules are delegated entirely to the peer.
func (c *Client) CreateBooking(ctx context.Context, userID, hotelID, promoCode string) (*booking.RemoteBooking, error) {
	var result booking.RemoteBooking

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createBookingRequest{UserID: userID, HotelID: hotelID, PromoCode: promoCode}).
		SetResult(&result).
		Post("/api/v1/bookings")
	if err != nil {
		return nil, domain.NewRemoteUnavailableError("CreateBooking", err)
	}
	if resp.IsError() {
		return nil, domain.NewRemoteUnavailableError("CreateBooking",
			fmt.Errorf("unexpected status %s", resp.Status()))
	}

	return &result, nil
}
