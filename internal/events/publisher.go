package events

import (
	"context"
	"time"

	"github.com/hotelio-cloud/service-booking/internal/domain/booking"
	"github.com/hotelio-cloud/service-booking/internal/kafka"
	"go.uber.org/zap"
)

const eventSource = "service-booking"

// BookingEventPublisher publishes booking lifecycle events to Kafka.
type BookingEventPublisher struct {
	producer *kafka.Producer
	logger   *zap.Logger
}

// NewBookingEventPublisher creates a new publisher.
func NewBookingEventPublisher(producer *kafka.Producer, logger *zap.Logger) *BookingEventPublisher {
	return &BookingEventPublisher{producer: producer, logger: logger}
}

// PublishBookingCreated publishes a BookingCreatedEvent for a freshly
// persisted booking. Publishing is best-effort: the booking is already
// durable, so failures are logged and swallowed.
func (p *BookingEventPublisher) PublishBookingCreated(ctx context.Context, b *booking.Booking) {
	event := BookingCreatedEvent{
		BookingID:       b.ID(),
		UserID:          b.UserID(),
		HotelID:         b.HotelID(),
		DiscountPercent: b.DiscountPercent(),
		FinalPrice:      b.Price(),
		OccurredAt:      time.Now().UTC(),
	}
	if code := b.PromoCode(); code != nil {
		event.PromoCode = *code
	}

	cloudEvent, err := kafka.NewCloudEvent(eventSource, BookingCreated, event)
	if err != nil {
		p.logger.Error("failed to create booking created cloud event", zap.Error(err))
		return
	}

	if err := p.producer.PublishEvent(ctx, TopicBookingEvents, cloudEvent); err != nil {
		p.logger.Error("failed to publish booking created event",
			zap.String("booking_id", b.ID()),
			zap.Error(err),
		)
	}
}
