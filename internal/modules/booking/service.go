package booking

import (
	"context"
	"strings"
	"time"

	"barberbook/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Default opening hours used for availability when no schedule is stored.
const (
	openingHour = 9
	closingHour = 19
)

type Service struct {
	bookings BookingRepository
	catalog  CatalogReader
	notifs   NotificationSender

	// Injectable clock for the time-gated entitlements.
	now func() time.Time
}

func NewService(bookings BookingRepository, catalog CatalogReader, notifs NotificationSender) *Service {
	return &Service{
		bookings: bookings,
		catalog:  catalog,
		notifs:   notifs,
		now:      time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	appt, err := time.Parse("2006-01-02 15:04", req.AppointmentDate+" "+req.AppointmentTime)
	if err != nil {
		return nil, ErrValidation
	}
	if !appt.After(s.now()) {
		return nil, ErrValidation
	}

	barber, err := s.catalog.GetBarberByID(ctx, req.BarberID)
	if err != nil {
		return nil, err
	}
	svc, err := s.catalog.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if !barber.IsActive || !svc.IsActive {
		return nil, ErrValidation
	}

	taken, err := s.bookings.ExistsAt(ctx, req.BarberID, req.AppointmentDate, req.AppointmentTime)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	b := &domain.Booking{
		UserID:             userID,
		BarberID:           barber.ID,
		BarberName:         barber.Name,
		ServiceID:          svc.ID,
		ServiceName:        svc.Name,
		AppointmentDate:    req.AppointmentDate,
		AppointmentTime:    req.AppointmentTime,
		Status:             domain.BookingPending,
		Price:              svc.Price,
		Notes:              req.Notes,
		AdditionalServices: req.AdditionalServices,
		ReferenceNumber:    newReference(),
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_double_booking" {
				return nil, ErrSlotTaken
			}
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, b.UserID, b.ID, b.ReferenceNumber)
	}

	return b, nil
}

// GetMyBookings returns the user's bookings after the filter -> sort pipeline,
// each carrying its derived entitlements.
func (s *Service) GetMyBookings(ctx context.Context, userID int64, criteria FilterCriteria, sortKey SortKey) ([]BookingView, error) {
	rows, err := s.bookings.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rows = Sort(Filter(rows, criteria, now), sortKey)

	out := make([]BookingView, 0, len(rows))
	for _, b := range rows {
		out = append(out, BookingView{
			Booking:      b,
			Entitlements: Derive(&b, now),
		})
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, bookingID)
}

// CancelBooking cancels the caller's own booking. Allowed only while the
// appointment is more than 24h away and the booking is not final.
func (s *Service) CancelBooking(ctx context.Context, bookingID, userID int64, reason string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	if b.IsFinal() {
		return nil, ErrInvalidStatusTransition
	}
	if !Derive(b, s.now()).CanCancel {
		return nil, ErrTooLateToCancel
	}

	if err := s.bookings.CancelWithReason(ctx, bookingID, reason, s.now()); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCancelled(ctx, b.UserID, b.ID, reason)
	}

	return s.bookings.GetByID(ctx, bookingID)
}

// RescheduleBooking moves the caller's own booking to a new free slot.
// Allowed only while the appointment is more than 48h away.
func (s *Service) RescheduleBooking(ctx context.Context, bookingID, userID int64, req RescheduleBookingRequest) (*domain.Booking, error) {
	newAppt, err := time.Parse("2006-01-02 15:04", req.AppointmentDate+" "+req.AppointmentTime)
	if err != nil {
		return nil, ErrValidation
	}
	if !newAppt.After(s.now()) {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	if b.IsFinal() {
		return nil, ErrInvalidStatusTransition
	}
	if !Derive(b, s.now()).CanReschedule {
		return nil, ErrTooLateToReschedule
	}

	taken, err := s.bookings.ExistsAt(ctx, b.BarberID, req.AppointmentDate, req.AppointmentTime)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	if err := s.bookings.Reschedule(ctx, bookingID, req.AppointmentDate, req.AppointmentTime); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingRescheduled(ctx, b.UserID, b.ID, req.AppointmentDate, req.AppointmentTime)
	}

	return s.bookings.GetByID(ctx, bookingID)
}

// UpdateStatus applies an admin-initiated transition. The lifecycle is
// monotonic: a completed or cancelled booking never goes back.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, newStatus domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(b.Status, newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		switch newStatus {
		case domain.BookingConfirmed:
			_ = s.notifs.NotifyBookingConfirmed(ctx, b.UserID, b.ID)
		case domain.BookingCompleted:
			_ = s.notifs.NotifyBookingCompleted(ctx, b.UserID, b.ID)
		case domain.BookingCancelled:
			_ = s.notifs.NotifyBookingCancelled(ctx, b.UserID, b.ID, "")
		}
	}

	return s.bookings.GetByID(ctx, bookingID)
}

// GetAvailability lists free slots for a barber on a date, at the booked
// service's duration granularity.
func (s *Service) GetAvailability(ctx context.Context, barberID, serviceID int64, dateStr string) (*AvailabilityResponse, error) {
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrValidation
	}

	svc, err := s.catalog.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	busy, err := s.bookings.GetTimesForBarberDate(ctx, barberID, dateStr)
	if err != nil {
		return nil, err
	}
	busySet := make(map[string]bool, len(busy))
	for _, t := range busy {
		busySet[t] = true
	}

	open := time.Date(day.Year(), day.Month(), day.Day(), openingHour, 0, 0, 0, time.UTC)
	close := time.Date(day.Year(), day.Month(), day.Day(), closingHour, 0, 0, 0, time.UTC)
	step := time.Duration(svc.DurationMin) * time.Minute

	slots := make([]string, 0)
	for cur := open; !cur.Add(step).After(close); cur = cur.Add(step) {
		slot := cur.Format("15:04")
		if !busySet[slot] {
			slots = append(slots, slot)
		}
	}

	return &AvailabilityResponse{
		BarberID: barberID,
		Date:     dateStr,
		Slots:    slots,
	}, nil
}

func newReference() string {
	return "BB-" + strings.ToUpper(uuid.NewString()[:8])
}
