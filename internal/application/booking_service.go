package application

import (
	"context"
	"time"

	"github.com/hotelio-cloud/service-booking/internal/domain"
	"github.com/hotelio-cloud/service-booking/internal/domain/booking"
	"github.com/hotelio-cloud/service-booking/internal/domain/pricing"
	"go.uber.org/zap"
)

// CreateBookingRequest is the DTO for creating a new booking.
type CreateBookingRequest struct {
	UserID    string  `json:"user_id" binding:"required"`
	HotelID   string  `json:"hotel_id" binding:"required"`
	PromoCode *string `json:"promo_code"`
}

// BookingDTO is the API response DTO for booking data.
type BookingDTO struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	HotelID         string    `json:"hotel_id"`
	PromoCode       *string   `json:"promo_code,omitempty"`
	DiscountPercent float64   `json:"discount_percent"`
	Price           float64   `json:"price"`
	CreatedAt       time.Time `json:"created_at"`
}

// BookingFlow is the booking capability, served either locally or by
// forwarding to a remote peer. The implementation is chosen once at startup
// and never re-evaluated: a single process never mixes modes mid-flight.
type BookingFlow interface {
	List(ctx context.Context, ownerUserID *string) ([]*booking.Booking, error)
	Create(ctx context.Context, userID, hotelID string, promoCode *string) (*booking.Booking, error)
}

// BookingService is the application service fronting the selected flow.
type BookingService struct {
	flow   BookingFlow
	logger *zap.Logger
}

// NewBookingService creates a BookingService over the given flow.
func NewBookingService(flow BookingFlow, logger *zap.Logger) *BookingService {
	return &BookingService{flow: flow, logger: logger}
}

// ListBookings returns bookings, optionally filtered by owning user.
func (s *BookingService) ListBookings(ctx context.Context, ownerUserID *string) ([]BookingDTO, error) {
	bookings, err := s.flow.List(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	dtos := make([]BookingDTO, len(bookings))
	for i, b := range bookings {
		dtos[i] = toBookingDTO(b)
	}
	return dtos, nil
}

// CreateBooking creates a booking for the given user and hotel.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingDTO, error) {
	if req.UserID == "" || req.HotelID == "" {
		return nil, domain.NewValidationError("user_id and hotel_id are required")
	}

	b, err := s.flow.Create(ctx, req.UserID, req.HotelID, req.PromoCode)
	if err != nil {
		return nil, err
	}

	dto := toBookingDTO(b)
	return &dto, nil
}

// ResponseTranslator converts remote wire bookings into domain entities.
type ResponseTranslator interface {
	ToDomain(w booking.RemoteBooking) *booking.Booking
	ToDomainList(wire []booking.RemoteBooking) []*booking.Booking
}

// EventPublisher publishes booking lifecycle events.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, b *booking.Booking)
}

// LocalFlow serves booking operations from the local store, running the
// eligibility, pricing and discount pipeline itself.
type LocalFlow struct {
	repo      booking.BookingRepository
	users     booking.UserDirectory
	hotels    booking.HotelDirectory
	reviews   booking.ReviewSignal
	promos    booking.PromoValidator
	publisher EventPublisher
	logger    *zap.Logger
}

// NewLocalFlow creates the local serving strategy.
func NewLocalFlow(
	repo booking.BookingRepository,
	users booking.UserDirectory,
	hotels booking.HotelDirectory,
	reviews booking.ReviewSignal,
	promos booking.PromoValidator,
	publisher EventPublisher,
	logger *zap.Logger,
) *LocalFlow {
	return &LocalFlow{
		repo:      repo,
		users:     users,
		hotels:    hotels,
		reviews:   reviews,
		promos:    promos,
		publisher: publisher,
		logger:    logger,
	}
}

// List returns all bookings, or the ones owned by ownerUserID when set.
func (f *LocalFlow) List(ctx context.Context, ownerUserID *string) ([]*booking.Booking, error) {
	if ownerUserID != nil {
		f.logger.Info("listing bookings from local store", zap.String("user_id", *ownerUserID))
		return f.repo.FindByUserID(ctx, *ownerUserID)
	}
	f.logger.Info("listing all bookings from local store")
	return f.repo.FindAll(ctx)
}

// Create runs the local booking pipeline in strict order: user eligibility,
// hotel eligibility, base price, discount, persist. The first failing gate
// stops the pipeline; nothing is persisted on failure.
func (f *LocalFlow) Create(ctx context.Context, userID, hotelID string, promoCode *string) (*booking.Booking, error) {
	f.logger.Info("creating booking locally",
		zap.String("user_id", userID),
		zap.String("hotel_id", hotelID),
		zap.Stringp("promo_code", promoCode),
	)

	if err := f.validateUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := f.validateHotel(ctx, hotelID); err != nil {
		return nil, err
	}

	basePrice, err := f.resolveBasePrice(ctx, userID)
	if err != nil {
		return nil, err
	}
	discount, err := f.resolvePromoDiscount(ctx, promoCode, userID)
	if err != nil {
		return nil, err
	}

	finalPrice := pricing.FinalPrice(basePrice, discount)
	f.logger.Info("final price calculated",
		zap.Float64("base", basePrice),
		zap.Float64("discount", discount),
		zap.Float64("final", finalPrice),
	)

	b := booking.NewBooking(userID, hotelID, promoCode, discount, finalPrice)
	if err := f.repo.Save(ctx, b); err != nil {
		return nil, err
	}

	f.publisher.PublishBookingCreated(ctx, b)
	return b, nil
}

// validateUser gates on user state. The blacklist check is only reached when
// the active check passes.
func (f *LocalFlow) validateUser(ctx context.Context, userID string) error {
	active, err := f.users.IsActive(ctx, userID)
	if err != nil {
		return err
	}
	if !active {
		f.logger.Warn("user is inactive", zap.String("user_id", userID))
		return domain.NewUserIneligibleError("user is inactive")
	}

	blacklisted, err := f.users.IsBlacklisted(ctx, userID)
	if err != nil {
		return err
	}
	if blacklisted {
		f.logger.Warn("user is blacklisted", zap.String("user_id", userID))
		return domain.NewUserIneligibleError("user is blacklisted")
	}
	return nil
}

// validateHotel gates on hotel state in fixed order: operational, trusted,
// fully booked. The first violated condition is the one reported.
func (f *LocalFlow) validateHotel(ctx context.Context, hotelID string) error {
	operational, err := f.hotels.IsOperational(ctx, hotelID)
	if err != nil {
		return err
	}
	if !operational {
		f.logger.Warn("hotel is not operational", zap.String("hotel_id", hotelID))
		return domain.NewHotelIneligibleError("hotel is not operational")
	}

	trusted, err := f.reviews.IsTrusted(ctx, hotelID)
	if err != nil {
		return err
	}
	if !trusted {
		f.logger.Warn("hotel is not trusted", zap.String("hotel_id", hotelID))
		return domain.NewHotelIneligibleError("hotel is not trusted based on reviews")
	}

	fullyBooked, err := f.hotels.IsFullyBooked(ctx, hotelID)
	if err != nil {
		return err
	}
	if fullyBooked {
		f.logger.Warn("hotel is fully booked", zap.String("hotel_id", hotelID))
		return domain.NewHotelIneligibleError("hotel is fully booked")
	}
	return nil
}

func (f *LocalFlow) resolveBasePrice(ctx context.Context, userID string) (float64, error) {
	status, err := f.users.GetStatus(ctx, userID)
	if err != nil {
		return 0, err
	}

	basePrice := pricing.BasePrice(status)
	f.logger.Debug("base price resolved",
		zap.String("user_id", userID),
		zap.Stringp("status", status),
		zap.Float64("base_price", basePrice),
	)
	return basePrice, nil
}

// resolvePromoDiscount resolves a promo code into a discount amount. An
// invalid or inapplicable code yields 0.0, not an error: the booking proceeds
// at full base price and keeps the attempted code for audit.
func (f *LocalFlow) resolvePromoDiscount(ctx context.Context, promoCode *string, userID string) (float64, error) {
	if promoCode == nil {
		return 0.0, nil
	}

	result, err := f.promos.Validate(ctx, *promoCode, userID)
	if err != nil {
		return 0, err
	}
	if result == nil {
		f.logger.Info("promo code is invalid or not applicable",
			zap.String("promo_code", *promoCode),
			zap.String("user_id", userID),
		)
		return 0.0, nil
	}

	f.logger.Debug("promo code applied",
		zap.String("promo_code", *promoCode),
		zap.Float64("discount", result.Discount),
	)
	return result.Discount, nil
}

// RemoteFlow forwards every booking operation to a remote peer and translates
// the responses. No local validation or pricing runs in this mode, and a
// failing remote call is never silently downgraded to local serving.
type RemoteFlow struct {
	client     booking.RemoteBookingService
	translator ResponseTranslator
	logger     *zap.Logger
}

// NewRemoteFlow creates the forwarding strategy.
func NewRemoteFlow(client booking.RemoteBookingService, translator ResponseTranslator, logger *zap.Logger) *RemoteFlow {
	return &RemoteFlow{client: client, translator: translator, logger: logger}
}

// List forwards the list operation. The wire protocol has no optional-absence
// marker, so a nil owner filter travels as "".
func (f *RemoteFlow) List(ctx context.Context, ownerUserID *string) ([]*booking.Booking, error) {
	owner := ""
	if ownerUserID != nil {
		owner = *ownerUserID
	}
	f.logger.Info("redirecting ListBookings to remote booking service", zap.String("user_id", owner))

	wire, err := f.client.ListBookings(ctx, owner)
	if err != nil {
		return nil, err
	}
	return f.translator.ToDomainList(wire), nil
}

// Create forwards the create operation, with the empty-string sentinel for an
// absent promo code.
func (f *RemoteFlow) Create(ctx context.Context, userID, hotelID string, promoCode *string) (*booking.Booking, error) {
	code := ""
	if promoCode != nil {
		code = *promoCode
	}
	f.logger.Info("redirecting CreateBooking to remote booking service",
		zap.String("user_id", userID),
		zap.String("hotel_id", hotelID),
		zap.String("promo_code", code),
	)

	wire, err := f.client.CreateBooking(ctx, userID, hotelID, code)
	if err != nil {
		return nil, err
	}
	return f.translator.ToDomain(*wire), nil
}

// toBookingDTO maps a domain Booking to a BookingDTO.
func toBookingDTO(b *booking.Booking) BookingDTO {
	return BookingDTO{
		ID:              b.ID(),
		UserID:          b.UserID(),
		HotelID:         b.HotelID(),
		PromoCode:       b.PromoCode(),
		DiscountPercent: b.DiscountPercent(),
		Price:           b.Price(),
		CreatedAt:       b.CreatedAt(),
	}
}
