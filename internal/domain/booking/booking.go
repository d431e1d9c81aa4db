package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is the aggregate root for a hotel stay reservation.
//
// promoCode is nil when no promo was attempted; a non-nil code with a zero
// discount means the code was supplied but rejected, which is a valid state
// kept for audit. id and createdAt are immutable once set.
type Booking struct {
	id              string
	userID          string
	hotelID         string
	promoCode       *string
	discountPercent float64
	price           float64
	createdAt       time.Time
}

// NewBooking creates a locally priced booking. The price must already be the
// final amount (base price minus resolved discount); it is never recomputed.
func NewBooking(userID, hotelID string, promoCode *string, discountPercent, price float64) *Booking {
	return &Booking{
		id:              uuid.New().String(),
		userID:          userID,
		hotelID:         hotelID,
		promoCode:       promoCode,
		discountPercent: discountPercent,
		price:           price,
		createdAt:       time.Now().UTC(),
	}
}

// Reconstitute rebuilds a Booking from persistence or from a translated
// remote payload.
func Reconstitute(id, userID, hotelID string, promoCode *string, discountPercent, price float64, createdAt time.Time) *Booking {
	return &Booking{
		id:              id,
		userID:          userID,
		hotelID:         hotelID,
		promoCode:       promoCode,
		discountPercent: discountPercent,
		price:           price,
		createdAt:       createdAt,
	}
}

func (b *Booking) ID() string               { return b.id }
func (b *Booking) UserID() string           { return b.userID }
func (b *Booking) HotelID() string          { return b.hotelID }
func (b *Booking) PromoCode() *string       { return b.promoCode }
func (b *Booking) DiscountPercent() float64 { return b.discountPercent }
func (b *Booking) Price() float64           { return b.price }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
