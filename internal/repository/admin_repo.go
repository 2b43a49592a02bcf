package repository

import (
	"context"
	"time"

	"barberbook/internal/domain"

	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) CountBookingsByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error) {
	var rows []struct {
		Status domain.BookingStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Select("status, COUNT(1) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.BookingStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *AdminRepository) CompletedRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Select("COALESCE(SUM(price), 0)").
		Where("status = ?", domain.BookingCompleted).
		Scan(&total).Error
	return total, err
}

func (r *AdminRepository) CountBookingsOnDate(ctx context.Context, date string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("appointment_date = ? AND status <> ?", date, domain.BookingCancelled).
		Count(&count).Error
	return count, err
}

func (r *AdminRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&count).Error
	return count, err
}

func (r *AdminRepository) ListBookings(ctx context.Context, status domain.BookingStatus, barberID int64, limit, offset int) ([]domain.Booking, error) {
	var bookings []domain.Booking
	query := r.db.WithContext(ctx).
		Order("appointment_date DESC, appointment_time DESC").
		Limit(limit).
		Offset(offset)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if barberID > 0 {
		query = query.Where("barber_id = ?", barberID)
	}
	err := query.Find(&bookings).Error
	return bookings, err
}

func (r *AdminRepository) ListOpenReports(ctx context.Context) ([]domain.ReviewReport, error) {
	var reports []domain.ReviewReport
	err := r.db.WithContext(ctx).
		Where("resolved_at IS NULL").
		Order("created_at ASC").
		Find(&reports).Error
	return reports, err
}

func (r *AdminRepository) ResolveReport(ctx context.Context, reportID int64) error {
	result := r.db.WithContext(ctx).Model(&domain.ReviewReport{}).
		Where("id = ? AND resolved_at IS NULL", reportID).
		Update("resolved_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AdminRepository) SetReviewHidden(ctx context.Context, reviewID int64, hidden bool) error {
	result := r.db.WithContext(ctx).Model(&domain.Review{}).
		Where("id = ?", reviewID).
		Update("is_hidden", hidden)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
