package promo

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PromoCode is the aggregate root for promotional codes. The discount is a
// flat currency amount subtracted from the booking base price.
type PromoCode struct {
	id          uuid.UUID
	code        string
	discount    float64
	maxUses     int
	currentUses int
	validFrom   time.Time
	validUntil  time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewPromoCode creates a new promo code.
func NewPromoCode(code string, discount float64, maxUses int, validFrom, validUntil time.Time) (*PromoCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("promo code is required")
	}
	if discount <= 0 {
		return nil, fmt.Errorf("discount must be positive")
	}
	if validUntil.Before(validFrom) {
		return nil, fmt.Errorf("valid_until must be after valid_from")
	}

	now := time.Now().UTC()
	return &PromoCode{
		id:          uuid.New(),
		code:        code,
		discount:    discount,
		maxUses:     maxUses,
		currentUses: 0,
		validFrom:   validFrom,
		validUntil:  validUntil,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds a PromoCode from persistence.
func Reconstruct(id uuid.UUID, code string, discount float64, maxUses, currentUses int, validFrom, validUntil, createdAt, updatedAt time.Time) *PromoCode {
	return &PromoCode{
		id: id, code: code, discount: discount,
		maxUses: maxUses, currentUses: currentUses,
		validFrom: validFrom, validUntil: validUntil,
		createdAt: createdAt, updatedAt: updatedAt,
	}
}

// IsValid checks if the promo code is currently usable.
func (p *PromoCode) IsValid() bool {
	now := time.Now().UTC()
	return now.After(p.validFrom) && now.Before(p.validUntil) && (p.maxUses == 0 || p.currentUses < p.maxUses)
}

// IncrementUses increments the usage count.
func (p *PromoCode) IncrementUses() {
	p.currentUses++
	p.updatedAt = time.Now().UTC()
}

// Getters.
func (p *PromoCode) ID() uuid.UUID         { return p.id }
func (p *PromoCode) Code() string          { return p.code }
func (p *PromoCode) Discount() float64     { return p.discount }
func (p *PromoCode) MaxUses() int          { return p.maxUses }
func (p *PromoCode) CurrentUses() int      { return p.currentUses }
func (p *PromoCode) ValidFrom() time.Time  { return p.validFrom }
func (p *PromoCode) ValidUntil() time.Time { return p.validUntil }
func (p *PromoCode) CreatedAt() time.Time  { return p.createdAt }
func (p *PromoCode) UpdatedAt() time.Time  { return p.updatedAt }
