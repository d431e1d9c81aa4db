package booking

import "context"

// UserDirectory exposes the user facts the booking rules consume.
type UserDirectory interface {
	IsActive(ctx context.Context, userID string) (bool, error)
	IsBlacklisted(ctx context.Context, userID string) (bool, error)
	// GetStatus returns the user's status tier, or nil when unresolved.
	GetStatus(ctx context.Context, userID string) (*string, error)
}

// HotelDirectory exposes the hotel facts the booking rules consume.
type HotelDirectory interface {
	IsOperational(ctx context.Context, hotelID string) (bool, error)
	IsFullyBooked(ctx context.Context, hotelID string) (bool, error)
}

// ReviewSignal aggregates review data into a trust decision per hotel.
type ReviewSignal interface {
	IsTrusted(ctx context.Context, hotelID string) (bool, error)
}

// PromoResult carries the discount amount of an applicable promo code.
type PromoResult struct {
	Discount float64
}

// PromoValidator checks a promo code against a specific user. A nil result
// with a nil error means the code is invalid or not applicable; the booking
// then proceeds at full base price.
type PromoValidator interface {
	Validate(ctx context.Context, code, userID string) (*PromoResult, error)
}

// RemoteBooking is the wire representation used by the remote booking peer.
// The protocol has no optional-absence marker: empty strings stand in for
// absent promo codes and owner filters, and createdAt travels as a string.
type RemoteBooking struct {
	ID              string  `json:"id"`
	UserID          string  `json:"userId"`
	HotelID         string  `json:"hotelId"`
	PromoCode       string  `json:"promoCode"`
	DiscountPercent float64 `json:"discountPercent"`
	Price           float64 `json:"price"`
	CreatedAt       string  `json:"createdAt"`
}

// RemoteBookingService is the synchronous RPC contract of the remote peer.
type RemoteBookingService interface {
	ListBookings(ctx context.Context, ownerUserID string) ([]RemoteBooking, error)
	CreateBooking(ctx context.Context, userID, hotelID, promoCode string) (*RemoteBooking, error)
}
