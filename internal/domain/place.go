package domain

import "strconv"

// Place is a listing as served by GET /places. It is read-only on this side.
type Place struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	PricePerNight float64 `json:"price_per_night"`
}

// FormatPrice renders a nightly price in its shortest decimal form (75, 75.5).
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
