package repository

import (
	"context"
	"strings"
	"time"

	promoDomain "github.com/hotelio-cloud/service-booking/internal/domain/promo"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PromoModel is the GORM model for the promos table.
type PromoModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Discount    float64   `gorm:"not null"`
	MaxUses     int       `gorm:"default:0"`
	CurrentUses int       `gorm:"default:0"`
	ValidFrom   time.Time `gorm:"not null"`
	ValidUntil  time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName sets the table name.
func (PromoModel) TableName() string { return "promos" }

// PromoUsageModel is the GORM model for the promo_usages table.
type PromoUsageModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PromoID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID   string    `gorm:"type:varchar(64);not null;index"`
	Discount float64   `gorm:"not null"`
	UsedAt   time.Time `gorm:"not null"`
}

// TableName sets the table name.
func (PromoUsageModel) TableName() string { return "promo_usages" }

// GormPromoRepository implements PromoRepository using GORM.
type GormPromoRepository struct {
	db *gorm.DB
}

// NewGormPromoRepository creates a new GormPromoRepository.
func NewGormPromoRepository(db *gorm.DB) *GormPromoRepository {
	return &GormPromoRepository{db: db}
}

// Save persists a new promo code.
func (r *GormPromoRepository) Save(ctx context.Context, p *promoDomain.PromoCode) error {
	model := toPromoModel(p)
	return r.db.WithContext(ctx).Create(&model).Error
}

// Update updates a promo code.
func (r *GormPromoRepository) Update(ctx context.Context, p *promoDomain.PromoCode) error {
	model := toPromoModel(p)
	return r.db.WithContext(ctx).Save(&model).Error
}

// FindByCode returns a promo code by its code string, case-insensitively.
func (r *GormPromoRepository) FindByCode(ctx context.Context, code string) (*promoDomain.PromoCode, error) {
	var model PromoModel
	if err := r.db.WithContext(ctx).Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).First(&model).Error; err != nil {
		return nil, err
	}
	return toPromoDomain(&model), nil
}

// FindActive returns all currently active promo codes.
func (r *GormPromoRepository) FindActive(ctx context.Context) ([]*promoDomain.PromoCode, error) {
	var models []PromoModel
	now := time.Now().UTC()
	if err := r.db.WithContext(ctx).
		Where("valid_from <= ? AND valid_until >= ?", now, now).
		Where("max_uses = 0 OR current_uses < max_uses").
		Find(&models).Error; err != nil {
		return nil, err
	}

	promos := make([]*promoDomain.PromoCode, len(models))
	for i, m := range models {
		promos[i] = toPromoDomain(&m)
	}
	return promos, nil
}

// SaveUsage persists a promo usage record.
func (r *GormPromoRepository) SaveUsage(ctx context.Context, usage *promoDomain.PromoUsage) error {
	model := PromoUsageModel{
		ID:       usage.ID,
		PromoID:  usage.PromoID,
		UserID:   usage.UserID,
		Discount: usage.Discount,
		UsedAt:   usage.UsedAt,
	}
	return r.db.WithContext(ctx).Create(&model).Error
}

// HasUserUsedPromo checks if a user has already used a specific promo.
func (r *GormPromoRepository) HasUserUsedPromo(ctx context.Context, promoID uuid.UUID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PromoUsageModel{}).
		Where("promo_id = ? AND user_id = ?", promoID, userID).
		Count(&count).Error
	return count > 0, err
}

func toPromoModel(p *promoDomain.PromoCode) PromoModel {
	return PromoModel{
		ID:          p.ID(),
		Code:        p.Code(),
		Discount:    p.Discount(),
		MaxUses:     p.MaxUses(),
		CurrentUses: p.CurrentUses(),
		ValidFrom:   p.ValidFrom(),
		ValidUntil:  p.ValidUntil(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func toPromoDomain(m *PromoModel) *promoDomain.PromoCode {
	return promoDomain.Reconstruct(
		m.ID, m.Code, m.Discount,
		m.MaxUses, m.CurrentUses,
		m.ValidFrom, m.ValidUntil,
		m.CreatedAt, m.UpdatedAt,
	)
}
