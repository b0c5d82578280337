package bookings

import "errors"

var (
	// ErrNotFound is returned when a booking does not exist
	ErrNotFound = errors.New("booking not found")
	// ErrInvalidStatus is returned for status values outside the enumerated set
	ErrInvalidStatus = errors.New("invalid booking status")
	// ErrInvalidBookingDate is returned when the booking date cannot be parsed
	ErrInvalidBookingDate = errors.New("invalid booking date")
)
