package repository

import (
	"context"
	"time"

	"barberbook/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&bookings).Error
	return bookings, err
}

// ExistsAt reports whether a non-cancelled booking already occupies the slot.
func (r *BookingRepository) ExistsAt(ctx context.Context, barberID int64, date, timeOfDay string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("barber_id = ? AND appointment_date = ? AND appointment_time = ? AND status <> ?",
			barberID, date, timeOfDay, domain.BookingCancelled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingRepository) GetTimesForBarberDate(ctx context.Context, barberID int64, date string) ([]string, error) {
	var times []string
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("barber_id = ? AND appointment_date = ? AND status <> ?",
			barberID, date, domain.BookingCancelled).
		Pluck("appointment_time", &times).Error
	return times, err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	result := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) CancelWithReason(ctx context.Context, bookingID int64, reason string, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]interface{}{
			"status":              domain.BookingCancelled,
			"cancellation_reason": reason,
			"cancelled_at":        at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) Reschedule(ctx context.Context, bookingID int64, date, timeOfDay string) error {
	result := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]interface{}{
			"appointment_date": date,
			"appointment_time": timeOfDay,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) SetHasReview(ctx context.Context, bookingID int64, has bool) error {
	return r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Update("has_review", has).Error
}
