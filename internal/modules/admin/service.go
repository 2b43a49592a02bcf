package admin

import (
	"context"
	"time"

	"barberbook/internal/domain"
)

type Service struct {
	repo AdminRepository
	now  func() time.Time
}

func NewService(repo AdminRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock replaces the time source, used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	byStatus, err := s.repo.CountBookingsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.repo.CompletedRevenue(ctx)
	if err != nil {
		return nil, err
	}

	today, err := s.repo.CountBookingsOnDate(ctx, s.now().Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	users, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalUsers:       users,
		BookingsByStatus: make(map[string]int64, len(byStatus)),
		CompletedRevenue: revenue,
		BookingsToday:    today,
	}
	for status, count := range byStatus {
		stats.BookingsByStatus[string(status)] = count
	}
	return stats, nil
}

func (s *Service) ListBookings(ctx context.Context, status domain.BookingStatus, barberID int64, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListBookings(ctx, status, barberID, limit, offset)
}

func (s *Service) ListOpenReports(ctx context.Context) ([]domain.ReviewReport, error) {
	return s.repo.ListOpenReports(ctx)
}

func (s *Service) ResolveReport(ctx context.Context, reportID int64) error {
	return s.repo.ResolveReport(ctx, reportID)
}

func (s *Service) SetReviewHidden(ctx context.Context, reviewID int64, hidden bool) error {
	return s.repo.SetReviewHidden(ctx, reviewID, hidden)
}
