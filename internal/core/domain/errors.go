package domain

import "errors"

var (
	ErrInvalidRule         = errors.New("invalid work hour rule")
	ErrSlotTaken           = errors.New("slot is already taken")
	ErrSlotUnavailable     = errors.New("slot is not available")
	ErrAppointmentNotFound = errors.New("appointment not found")
)
