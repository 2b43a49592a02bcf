package booking

import (
	"context"
	"time"

	"barberbook/internal/domain"
)

// BookingRepository defines the interface for booking storage
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Booking, error)
	ExistsAt(ctx context.Context, barberID int64, date, timeOfDay string) (bool, error)
	GetTimesForBarberDate(ctx context.Context, barberID int64, date string) ([]string, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
	CancelWithReason(ctx context.Context, bookingID int64, reason string, at time.Time) error
	Reschedule(ctx context.Context, bookingID int64, date, timeOfDay string) error
}

// CatalogReader resolves the barber and service a booking refers to
type CatalogReader interface {
	GetBarberByID(ctx context.Context, id int64) (*domain.Barber, error)
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
}

// NotificationSender publishes booking lifecycle notifications
type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, userID, bookingID int64, reference string) error
	NotifyBookingConfirmed(ctx context.Context, userID, bookingID int64) error
	NotifyBookingCompleted(ctx context.Context, userID, bookingID int64) error
	NotifyBookingCancelled(ctx context.Context, userID, bookingID int64, reason string) error
	NotifyBookingRescheduled(ctx context.Context, userID, bookingID int64, date, timeOfDay string) error
}
