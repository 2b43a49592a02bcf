package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id" validate:"required"`

	BarberID    int64  `json:"barber_id" validate:"required"`
	BarberName  string `json:"barber_name"`
	ServiceID   int64  `json:"service_id" validate:"required"`
	ServiceName string `json:"service_name"`

	// Date and time-of-day are kept as text ("2006-01-02" / "15:04") so a
	// malformed value degrades to "ineligible for time-gated actions"
	// instead of failing the whole row.
	AppointmentDate string `json:"appointment_date" validate:"required"`
	AppointmentTime string `json:"appointment_time" validate:"required"`

	Status             BookingStatus `json:"status"`
	Price              float64       `json:"price"`
	Notes              string        `json:"notes,omitempty" gorm:"type:text"`
	CancellationReason string        `json:"cancellation_reason,omitempty" gorm:"type:text"`
	AdditionalServices string        `json:"additional_services,omitempty"`
	ReferenceNumber    string        `json:"reference_number,omitempty"`
	HasReview          bool          `json:"has_review"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Barber *Barber `json:"barber,omitempty" gorm:"foreignKey:BarberID"`
}

// IsFinal reports whether the booking reached a terminal status. A completed
// or cancelled booking never returns to pending/confirmed.
func (b *Booking) IsFinal() bool {
	return b.Status == BookingCompleted || b.Status == BookingCancelled
}

// CanTransition enforces the monotonic status lifecycle:
// {pending, confirmed} -> {completed | cancelled}, pending -> confirmed.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case BookingPending:
		return to == BookingConfirmed || to == BookingCompleted || to == BookingCancelled
	case BookingConfirmed:
		return to == BookingCompleted || to == BookingCancelled
	default:
		return false
	}
}
