// Package pricing holds the pure booking price rules. Everything here is
// side-effect free and safe for concurrent use.
package pricing

import "strings"

// Base prices per user status tier. This is the complete table: VIP users
// get the reduced rate, every other status (including unresolved) pays the
// standard rate.
const (
	VIPBasePrice      = 80.0
	StandardBasePrice = 100.0
)

// BasePrice maps a user's status to a base price. The status comparison is
// case-insensitive; a nil status means the directory could not resolve one.
func BasePrice(status *string) float64 {
	if status != nil && strings.EqualFold(*status, "VIP") {
		return VIPBasePrice
	}
	return StandardBasePrice
}

// FinalPrice computes the price of a booking at the moment of creation.
// The discount is a currency amount, not a percentage.
func FinalPrice(basePrice, discount float64) float64 {
	return basePrice - discount
}
