package booking

import (
	"testing"
	"time"

	"barberbook/internal/domain"

	"github.com/stretchr/testify/assert"
)

var entNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func bookingAt(appt time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		AppointmentDate: appt.Format("2006-01-02"),
		AppointmentTime: appt.Format("15:04"),
		Status:          status,
	}
}

func TestDerive_CancelWindow(t *testing.T) {
	// 25h out: cancellable, not reschedulable.
	e := Derive(bookingAt(entNow.Add(25*time.Hour), domain.BookingConfirmed), entNow)
	assert.True(t, e.CanCancel)
	assert.False(t, e.CanReschedule)
	assert.True(t, e.IsUpcoming)

	// 23h out: too late for either.
	e = Derive(bookingAt(entNow.Add(23*time.Hour), domain.BookingConfirmed), entNow)
	assert.False(t, e.CanCancel)
	assert.False(t, e.CanReschedule)
	assert.True(t, e.IsUpcoming)
}

func TestDerive_BoundaryIsExclusive(t *testing.T) {
	// Exactly 24h and exactly 48h out do not qualify.
	e := Derive(bookingAt(entNow.Add(24*time.Hour), domain.BookingPending), entNow)
	assert.False(t, e.CanCancel)

	e = Derive(bookingAt(entNow.Add(48*time.Hour), domain.BookingPending), entNow)
	assert.True(t, e.CanCancel)
	assert.False(t, e.CanReschedule)
}

func TestDerive_RescheduleImpliesCancel(t *testing.T) {
	for _, hours := range []int{1, 12, 24, 36, 48, 49, 72, 200} {
		e := Derive(bookingAt(entNow.Add(time.Duration(hours)*time.Hour), domain.BookingConfirmed), entNow)
		if e.CanReschedule {
			assert.True(t, e.CanCancel, "reschedulable at +%dh must also be cancellable", hours)
		}
	}
}

func TestDerive_FinalStatusesNeverCancellable(t *testing.T) {
	farOut := entNow.Add(100 * time.Hour)

	e := Derive(bookingAt(farOut, domain.BookingCompleted), entNow)
	assert.False(t, e.CanCancel)
	assert.False(t, e.CanReschedule)

	e = Derive(bookingAt(farOut, domain.BookingCancelled), entNow)
	assert.False(t, e.CanCancel)
	assert.False(t, e.CanReschedule)
}

func TestDerive_CanReview(t *testing.T) {
	past := entNow.Add(-48 * time.Hour)

	b := bookingAt(past, domain.BookingCompleted)
	e := Derive(b, entNow)
	assert.True(t, e.CanReview)
	assert.False(t, e.IsUpcoming)

	// Already reviewed.
	b.HasReview = true
	assert.False(t, Derive(b, entNow).CanReview)

	// Completed but the appointment is somehow in the future.
	assert.False(t, Derive(bookingAt(entNow.Add(time.Hour), domain.BookingCompleted), entNow).CanReview)

	// Not completed.
	assert.False(t, Derive(bookingAt(past, domain.BookingConfirmed), entNow).CanReview)
}

func TestDerive_MalformedDateDisablesEverything(t *testing.T) {
	cases := []*domain.Booking{
		{AppointmentDate: "not-a-date", AppointmentTime: "10:00", Status: domain.BookingConfirmed},
		{AppointmentDate: "2026-03-20", AppointmentTime: "25:99", Status: domain.BookingConfirmed},
		{AppointmentDate: "", AppointmentTime: "", Status: domain.BookingPending},
	}
	for _, b := range cases {
		e := Derive(b, entNow)
		assert.Equal(t, Entitlements{}, e, "malformed %q %q", b.AppointmentDate, b.AppointmentTime)
	}
}

func TestAppointmentAt(t *testing.T) {
	b := &domain.Booking{AppointmentDate: "2026-03-15", AppointmentTime: "14:30"}
	appt, ok := AppointmentAt(b)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC), appt)

	_, ok = AppointmentAt(&domain.Booking{AppointmentDate: "15/03/2026", AppointmentTime: "14:30"})
	assert.False(t, ok)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, domain.CanTransition(domain.BookingPending, domain.BookingConfirmed))
	assert.True(t, domain.CanTransition(domain.BookingPending, domain.BookingCancelled))
	assert.True(t, domain.CanTransition(domain.BookingConfirmed, domain.BookingCompleted))
	assert.True(t, domain.CanTransition(domain.BookingConfirmed, domain.BookingCancelled))

	// Terminal states are frozen.
	assert.False(t, domain.CanTransition(domain.BookingCompleted, domain.BookingPending))
	assert.False(t, domain.CanTransition(domain.BookingCompleted, domain.BookingCancelled))
	assert.False(t, domain.CanTransition(domain.BookingCancelled, domain.BookingConfirmed))
}
