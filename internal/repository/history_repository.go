package repository

import (
	"context"
	"time"

	"github.com/hotelio-cloud/service-booking/internal/events"
	"gorm.io/gorm"
)

// BookingHistoryModel is the GORM model for the booking_history table.
// Rows are append-only.
type BookingHistoryModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	BookingID  string    `gorm:"type:varchar(36);index;not null"`
	UserID     string    `gorm:"type:varchar(64);index;not null"`
	HotelID    string    `gorm:"type:varchar(64);not null"`
	PromoCode  string    `gorm:"type:varchar(50)"`
	FinalPrice float64   `gorm:"not null"`
	Status     string    `gorm:"type:varchar(20);not null"`
	RecordedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName sets the table name.
func (BookingHistoryModel) TableName() string { return "booking_history" }

// BookingHistoryRepository implements events.HistoryRecorder using GORM.
type BookingHistoryRepository struct {
	db *gorm.DB
}

// NewBookingHistoryRepository creates a new BookingHistoryRepository.
func NewBookingHistoryRepository(db *gorm.DB) *BookingHistoryRepository {
	return &BookingHistoryRepository{db: db}
}

// Record appends a booking history row.
func (r *BookingHistoryRepository) Record(ctx context.Context, rec events.HistoryRecord) error {
	model := BookingHistoryModel{
		BookingID:  rec.BookingID,
		UserID:     rec.UserID,
		HotelID:    rec.HotelID,
		PromoCode:  rec.PromoCode,
		FinalPrice: rec.FinalPrice,
		Status:     rec.Status,
		RecordedAt: rec.RecordedAt,
	}
	return r.db.WithContext(ctx).Create(&model).Error
}
