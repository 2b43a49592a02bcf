package admin

import (
	"context"

	"barberbook/internal/domain"
)

type AdminRepository interface {
	CountBookingsByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error)
	CompletedRevenue(ctx context.Context) (float64, error)
	CountBookingsOnDate(ctx context.Context, date string) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	ListBookings(ctx context.Context, status domain.BookingStatus, barberID int64, limit, offset int) ([]domain.Booking, error)

	ListOpenReports(ctx context.Context) ([]domain.ReviewReport, error)
	ResolveReport(ctx context.Context, reportID int64) error
	SetReviewHidden(ctx context.Context, reviewID int64, hidden bool) error
}
