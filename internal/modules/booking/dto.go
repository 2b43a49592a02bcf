package booking

import "barberbook/internal/domain"

type CreateBookingRequest struct {
	BarberID           int64  `json:"barber_id" binding:"required"`
	ServiceID          int64  `json:"service_id" binding:"required"`
	AppointmentDate    string `json:"appointment_date" binding:"required"`
	AppointmentTime    string `json:"appointment_time" binding:"required"`
	Notes              string `json:"notes"`
	AdditionalServices string `json:"additional_services"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type RescheduleBookingRequest struct {
	AppointmentDate string `json:"appointment_date" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
}

type UpdateStatusRequest struct {
	Status domain.BookingStatus `json:"status" binding:"required"`
}

// BookingView is a booking plus the actions currently legal on it.
type BookingView struct {
	domain.Booking
	Entitlements Entitlements `json:"entitlements"`
}

type AvailabilityResponse struct {
	BarberID int64    `json:"barber_id"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
}
