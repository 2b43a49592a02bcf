package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("booking not found")
	ErrForbidden               = errors.New("forbidden")
	ErrSlotTaken               = errors.New("time slot already booked")
	ErrTooLateToCancel         = errors.New("too late to cancel")
	ErrTooLateToReschedule     = errors.New("too late to reschedule")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
