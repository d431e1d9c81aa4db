package events

import "time"

// Topic and event type names for the booking event stream.
const (
	TopicBookingEvents = "booking.events"

	BookingCreated = "booking.created"
)

// BookingCreatedEvent is published after a booking is persisted locally.
type BookingCreatedEvent struct {
	BookingID       string    `json:"booking_id"`
	UserID          string    `json:"user_id"`
	HotelID         string    `json:"hotel_id"`
	PromoCode       string    `json:"promo_code,omitempty"`
	DiscountPercent float64   `json:"discount_percent"`
	FinalPrice      float64   `json:"final_price"`
	OccurredAt      time.Time `json:"occurred_at"`
}
