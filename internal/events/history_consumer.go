package events

import (
	"context"
	"strings"
	"time"

	"github.com/hotelio-cloud/service-booking/internal/kafka"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// HistoryRecord is an append-only audit entry for a booking event.
type HistoryRecord struct {
	BookingID  string
	UserID     string
	HotelID    string
	PromoCode  string
	FinalPrice float64
	Status     string
	RecordedAt time.Time
}

// HistoryRecorder persists booking history records.
type HistoryRecorder interface {
	Record(ctx context.Context, rec HistoryRecord) error
}

// BookingHistoryConsumer listens to booking events and appends them to the
// booking history.
type BookingHistoryConsumer struct {
	consumer *kafka.Consumer
	recorder HistoryRecorder
	logger   *zap.Logger
}

// NewBookingHistoryConsumer creates a consumer for the booking event topic.
func NewBookingHistoryConsumer(brokers []string, groupID string, recorder HistoryRecorder, logger *zap.Logger) *BookingHistoryConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, TopicBookingEvents, logger)
	return &BookingHistoryConsumer{
		consumer: consumer,
		recorder: recorder,
		logger:   logger,
	}
}

// Start begins consuming booking events. It blocks until the context is cancelled.
func (c *BookingHistoryConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

func (c *BookingHistoryConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	cloudEvent, err := kafka.ParseCloudEvent(msg.Value)
	if err != nil {
		c.logger.Error("failed to parse cloud event from booking topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return err
	}

	if !strings.EqualFold(cloudEvent.Type, BookingCreated) {
		c.logger.Debug("ignoring unhandled booking event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}

	var event BookingCreatedEvent
	if err := cloudEvent.ParseData(&event); err != nil {
		c.logger.Error("failed to parse BookingCreatedEvent data", zap.Error(err))
		return err
	}

	return c.recorder.Record(ctx, HistoryRecord{
		BookingID:  event.BookingID,
		UserID:     event.UserID,
		HotelID:    event.HotelID,
		PromoCode:  event.PromoCode,
		FinalPrice: event.FinalPrice,
		Status:     "created",
		RecordedAt: time.Now().UTC(),
	})
}

// Close closes the underlying Kafka consumer.
func (c *BookingHistoryConsumer) Close() error {
	return c.consumer.Close()
}
