package remote

import (
	"strings"
	"time"

	"github.com/hotelio-cloud/service-booking/internal/domain/booking"
	"go.uber.org/zap"
)

// wireTimeLayout is the zone-naive date-time the peer emits, optionally with
// a trailing "Z" marker and fractional seconds.
const wireTimeLayout = "2006-01-02T15:04:05"

// Translator converts remote wire bookings into domain entities.
type Translator struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewTranslator creates a Translator.
func NewTranslator(logger *zap.Logger) *Translator {
	return &Translator{logger: logger, now: time.Now}
}

// ToDomain maps a wire booking to the local entity. An empty wire promo code
// becomes absent (nil), not an empty string. A missing or malformed createdAt
// never fails the call: the current time is substituted and the anomaly is
// logged, so malformed upstream timestamps cannot block booking visibility.
func (t *Translator) ToDomain(w booking.RemoteBooking) *booking.Booking {
	var promoCode *string
	if w.PromoCode != "" {
		code := w.PromoCode
		promoCode = &code
	}

	createdAt := t.now().UTC()
	if w.CreatedAt != "" {
		parsed, err := parseWireTimestamp(w.CreatedAt)
		if err != nil {
			t.logger.Warn("failed to parse remote createdAt, substituting current time",
				zap.String("booking_id", w.ID),
				zap.String("created_at", w.CreatedAt),
				zap.Error(err),
			)
		} else {
			createdAt = parsed
		}
	}

	return booking.Reconstitute(
		w.ID,
		w.UserID,
		w.HotelID,
		promoCode,
		w.DiscountPercent,
		w.Price,
		createdAt,
	)
}

// ToDomainList maps every element of a wire response.
func (t *Translator) ToDomainList(wire []booking.RemoteBooking) []*booking.Booking {
	out := make([]*booking.Booking, len(wire))
	for i, w := range wire {
		out[i] = t.ToDomain(w)
	}
	return out
}

// parseWireTimestamp strips the trailing zone marker and parses the remainder
// as a zone-naive date-time interpreted as UTC.
func parseWireTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(wireTimeLayout, strings.TrimSuffix(s, "Z"), time.UTC)
}
