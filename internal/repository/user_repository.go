package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID          string  `gorm:"type:varchar(64);primaryKey"`
	Active      bool    `gorm:"not null;default:true"`
	Blacklisted bool    `gorm:"not null;default:false"`
	Status      *string `gorm:"type:varchar(20)"`
}

// TableName sets the table name.
func (UserModel) TableName() string { return "users" }

// UserDirectoryImpl implements booking.UserDirectory over the users table.
// Unknown users are treated as inactive.
type UserDirectoryImpl struct {
	db *gorm.DB
}

// NewUserDirectory creates a GORM-backed user directory.
func NewUserDirectory(db *gorm.DB) *UserDirectoryImpl {
	return &UserDirectoryImpl{db: db}
}

// IsActive reports whether the user exists and is active.
func (r *UserDirectoryImpl) IsActive(ctx context.Context, userID string) (bool, error) {
	model, err := r.find(ctx, userID)
	if err != nil {
		return false, err
	}
	if model == nil {
		return false, nil
	}
	return model.Active, nil
}

// IsBlacklisted reports whether the user is blacklisted.
func (r *UserDirectoryImpl) IsBlacklisted(ctx context.Context, userID string) (bool, error) {
	model, err := r.find(ctx, userID)
	if err != nil {
		return false, err
	}
	if model == nil {
		return false, nil
	}
	return model.Blacklisted, nil
}

// GetStatus returns the user's status tier, or nil when the user has none.
func (r *UserDirectoryImpl) GetStatus(ctx context.Context, userID string) (*string, error) {
	model, err := r.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, nil
	}
	return model.Status, nil
}

func (r *UserDirectoryImpl) find(ctx context.Context, userID string) (*UserModel, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &model, nil
}
