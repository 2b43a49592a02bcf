package booking

import (
	"time"

	"barberbook/internal/domain"
)

const (
	// Customers can cancel up to 24h before the appointment and
	// reschedule up to 48h before. Both boundaries are exclusive.
	cancelWindow     = 24 * time.Hour
	rescheduleWindow = 48 * time.Hour
)

// Entitlements is the set of actions the owning user may take on a booking
// at a given moment. Derived, never stored.
type Entitlements struct {
	CanCancel     bool `json:"can_cancel"`
	CanReschedule bool `json:"can_reschedule"`
	CanReview     bool `json:"can_review"`
	IsUpcoming    bool `json:"is_upcoming"`
}

// AppointmentAt combines the booking's date and time-of-day columns into a
// single instant. ok is false when either column is malformed.
func AppointmentAt(b *domain.Booking) (time.Time, bool) {
	t, err := time.Parse("2006-01-02 15:04", b.AppointmentDate+" "+b.AppointmentTime)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Derive computes the entitlements for a booking relative to now.
// A booking with a malformed date/time is ineligible for every time-gated
// action rather than an error.
func Derive(b *domain.Booking, now time.Time) Entitlements {
	appt, ok := AppointmentAt(b)
	if !ok {
		return Entitlements{}
	}

	active := b.Status == domain.BookingPending || b.Status == domain.BookingConfirmed

	return Entitlements{
		CanCancel:     active && appt.After(now.Add(cancelWindow)),
		CanReschedule: active && appt.After(now.Add(rescheduleWindow)),
		CanReview:     b.Status == domain.BookingCompleted && !b.HasReview && appt.Before(now),
		IsUpcoming:    appt.After(now),
	}
}
