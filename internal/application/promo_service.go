package application

import (
	"context"
	"fmt"
	"time"

	"github.com/hotelio-cloud/service-booking/internal/domain/booking"
	promoDomain "github.com/hotelio-cloud/service-booking/internal/domain/promo"
	"go.uber.org/zap"
)

// CreatePromoRequest holds data to create a promo code.
type CreatePromoRequest struct {
	Code       string  `json:"code" binding:"required"`
	Discount   float64 `json:"discount" binding:"required,gt=0"`
	MaxUses    int     `json:"max_uses"`
	ValidFrom  string  `json:"valid_from" binding:"required"`
	ValidUntil string  `json:"valid_until" binding:"required"`
}

// PromoDTO is the API response representation of a promo code.
type PromoDTO struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Discount    float64   `json:"discount"`
	MaxUses     int       `json:"max_uses"`
	CurrentUses int       `json:"current_uses"`
	ValidFrom   time.Time `json:"valid_from"`
	ValidUntil  time.Time `json:"valid_until"`
	CreatedAt   time.Time `json:"created_at"`
}

// PromoService handles promo code use cases. It also implements the
// booking.PromoValidator contract consumed by the local booking flow.
type PromoService struct {
	repo   promoDomain.PromoRepository
	logger *zap.Logger
}

// NewPromoService creates a new PromoService.
func NewPromoService(repo promoDomain.PromoRepository, logger *zap.Logger) *PromoService {
	return &PromoService{repo: repo, logger: logger}
}

// CreatePromo creates a new promo code (admin).
func (s *PromoService) CreatePromo(ctx context.Context, req CreatePromoRequest) (*PromoDTO, error) {
	validFrom, err := time.Parse(time.RFC3339, req.ValidFrom)
	if err != nil {
		return nil, fmt.Errorf("invalid valid_from format (use RFC3339)")
	}
	validUntil, err := time.Parse(time.RFC3339, req.ValidUntil)
	if err != nil {
		return nil, fmt.Errorf("invalid valid_until format (use RFC3339)")
	}

	promo, err := promoDomain.NewPromoCode(req.Code, req.Discount, req.MaxUses, validFrom, validUntil)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, promo); err != nil {
		return nil, fmt.Errorf("failed to save promo: %w", err)
	}

	s.logger.Info("promo code created", zap.String("code", promo.Code()))
	return toPromoDTO(promo), nil
}

// Validate checks a promo code for a specific user and returns its discount.
// A nil result means the code is unknown, expired, fully used, or already
// used by this user; the caller decides what that means for the booking.
func (s *PromoService) Validate(ctx context.Context, code, userID string) (*booking.PromoResult, error) {
	promo, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, nil
	}

	if !promo.IsValid() {
		return nil, nil
	}

	used, err := s.repo.HasUserUsedPromo(ctx, promo.ID(), userID)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, nil
	}

	return &booking.PromoResult{Discount: promo.Discount()}, nil
}

// GetActivePromos returns all currently active promo codes.
func (s *PromoService) GetActivePromos(ctx context.Context) ([]*PromoDTO, error) {
	promos, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]*PromoDTO, len(promos))
	for i, p := range promos {
		dtos[i] = toPromoDTO(p)
	}
	return dtos, nil
}

func toPromoDTO(p *promoDomain.PromoCode) *PromoDTO {
	return &PromoDTO{
		ID:          p.ID().String(),
		Code:        p.Code(),
		Discount:    p.Discount(),
		MaxUses:     p.MaxUses(),
		CurrentUses: p.CurrentUses(),
		ValidFrom:   p.ValidFrom(),
		ValidUntil:  p.ValidUntil(),
		CreatedAt:   p.CreatedAt(),
	}
}
