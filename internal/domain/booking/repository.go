package booking

import "context"

// BookingRepository defines the persistence contract for Booking aggregates.
type BookingRepository interface {
	// Save persists a new booking.
	Save(ctx context.Context, b *Booking) error

	// FindAll retrieves every booking.
	FindAll(ctx context.Context) ([]*Booking, error)

	// FindByUserID retrieves all bookings owned by the given user.
	FindByUserID(ctx context.Context, userID string) ([]*Booking, error)
}
