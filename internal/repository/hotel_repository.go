package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// HotelModel is the GORM model for the hotels table.
type HotelModel struct {
	ID          string `gorm:"type:varchar(64);primaryKey"`
	Name        string `gorm:"type:varchar(255)"`
	Operational bool   `gorm:"not null;default:true"`
	TotalRooms  int    `gorm:"not null;default:0"`
}

// TableName sets the table name.
func (HotelModel) TableName() string { return "hotels" }

// HotelDirectoryImpl implements booking.HotelDirectory over the hotels table.
// Unknown hotels are treated as not operational.
type HotelDirectoryImpl struct {
	db *gorm.DB
}

// NewHotelDirectory creates a GORM-backed hotel directory.
func NewHotelDirectory(db *gorm.DB) *HotelDirectoryImpl {
	return &HotelDirectoryImpl{db: db}
}

// IsOperational reports whether the hotel exists and is operational.
func (r *HotelDirectoryImpl) IsOperational(ctx context.Context, hotelID string) (bool, error) {
	model, err := r.find(ctx, hotelID)
	if err != nil {
		return false, err
	}
	if model == nil {
		return false, nil
	}
	return model.Operational, nil
}

// IsFullyBooked compares the bookings held against the hotel with its room
// count. Two concurrent creates at the last room may both pass this check;
// that race is accepted at this layer.
func (r *HotelDirectoryImpl) IsFullyBooked(ctx context.Context, hotelID string) (bool, error) {
	model, err := r.find(ctx, hotelID)
	if err != nil {
		return false, err
	}
	if model == nil {
		return true, nil
	}

	var booked int64
	if err := r.db.WithContext(ctx).Model(&BookingModel{}).Where("hotel_id = ?", hotelID).Count(&booked).Error; err != nil {
		return false, err
	}
	return booked >= int64(model.TotalRooms), nil
}

func (r *HotelDirectoryImpl) find(ctx context.Context, hotelID string) (*HotelModel, error) {
	var model HotelModel
	if err := r.db.WithContext(ctx).Where("id = ?", hotelID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &model, nil
}
