package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// trustThreshold is the minimum average rating for a hotel to count as
// trusted. Hotels with no reviews yet are trusted: the signal demotes bad
// track records, it does not block new inventory.
const trustThreshold = 3.5

// ReviewModel is the GORM model for the reviews table.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	HotelID   string    `gorm:"type:varchar(64);index;not null"`
	UserID    string    `gorm:"type:varchar(64);not null"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName sets the table name.
func (ReviewModel) TableName() string { return "reviews" }

// ReviewSignalImpl implements booking.ReviewSignal over the reviews table.
type ReviewSignalImpl struct {
	db *gorm.DB
}

// NewReviewSignal creates a GORM-backed review signal.
func NewReviewSignal(db *gorm.DB) *ReviewSignalImpl {
	return &ReviewSignalImpl{db: db}
}

// IsTrusted aggregates the hotel's reviews into a trust decision.
func (r *ReviewSignalImpl) IsTrusted(ctx context.Context, hotelID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ReviewModel{}).Where("hotel_id = ?", hotelID).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return true, nil
	}

	var avg float64
	err := r.db.WithContext(ctx).Model(&ReviewModel{}).
		Where("hotel_id = ?", hotelID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return false, err
	}
	return avg >= trustThreshold, nil
}
