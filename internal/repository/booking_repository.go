package repository

import (
	"context"
	"time"

	bookingDomain "github.com/hotelio-cloud/service-booking/internal/domain/booking"
	"gorm.io/gorm"
)

// BookingModel is the GORM persistence model for the bookings table.
type BookingModel struct {
	ID              string    `gorm:"type:varchar(36);primaryKey"`
	UserID          string    `gorm:"type:varchar(64);index;not null"`
	HotelID         string    `gorm:"type:varchar(64);index;not null"`
	PromoCode       *string   `gorm:"type:varchar(50)"`
	DiscountPercent float64   `gorm:"not null;default:0"`
	Price           float64   `gorm:"not null"`
	CreatedAt       time.Time `gorm:"type:timestamptz;not null"`
}

// TableName specifies the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}

// BookingRepositoryImpl is the GORM-based implementation of BookingRepository.
type BookingRepositoryImpl struct {
	db *gorm.DB
}

// NewBookingRepository creates a new GORM-based booking repository.
func NewBookingRepository(db *gorm.DB) *BookingRepositoryImpl {
	return &BookingRepositoryImpl{db: db}
}

// Save persists a new booking aggregate.
func (r *BookingRepositoryImpl) Save(ctx context.Context, b *bookingDomain.Booking) error {
	model := toBookingModel(b)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindAll retrieves every booking, newest first.
func (r *BookingRepositoryImpl) FindAll(ctx context.Context) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	return toBookingDomainList(models), nil
}

// FindByUserID retrieves all bookings owned by the given user, newest first.
func (r *BookingRepositoryImpl) FindByUserID(ctx context.Context, userID string) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	return toBookingDomainList(models), nil
}

// CountByHotelID returns the number of bookings held against a hotel.
func (r *BookingRepositoryImpl) CountByHotelID(ctx context.Context, hotelID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BookingModel{}).Where("hotel_id = ?", hotelID).Count(&count).Error
	return count, err
}

func toBookingDomainList(models []BookingModel) []*bookingDomain.Booking {
	bookings := make([]*bookingDomain.Booking, len(models))
	for i := range models {
		bookings[i] = toBookingDomain(&models[i])
	}
	return bookings
}

// toBookingDomain maps a BookingModel to the domain Booking aggregate.
func toBookingDomain(model *BookingModel) *bookingDomain.Booking {
	return bookingDomain.Reconstitute(
		model.ID,
		model.UserID,
		model.HotelID,
		model.PromoCode,
		model.DiscountPercent,
		model.Price,
		model.CreatedAt,
	)
}

// toBookingModel maps a domain Booking aggregate to a BookingModel.
func toBookingModel(b *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:              b.ID(),
		UserID:          b.UserID(),
		HotelID:         b.HotelID(),
		PromoCode:       b.PromoCode(),
		DiscountPercent: b.DiscountPercent(),
		Price:           b.Price(),
		CreatedAt:       b.CreatedAt(),
	}
}
