package catalog

import "barberbook/internal/domain"

// BarberView adds review aggregates to the raw barber record.
type BarberView struct {
	domain.Barber
	Rating      float64 `json:"rating"`
	ReviewCount int64   `json:"review_count"`
}
