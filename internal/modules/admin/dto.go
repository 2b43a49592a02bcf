package admin

type DashboardStats struct {
	TotalUsers       int64            `json:"total_users"`
	BookingsByStatus map[string]int64 `json:"bookings_by_status"`
	CompletedRevenue float64          `json:"completed_revenue"`
	BookingsToday    int64            `json:"bookings_today"`
}

type HideReviewRequest struct {
	Hidden bool `json:"hidden"`
}
