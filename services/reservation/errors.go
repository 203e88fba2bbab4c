package reservation

import "errors"

var (
	// ErrNotFound is returned when the reservation id matches nothing.
	ErrNotFound = errors.New("reservation not found")
	// ErrPastDate rejects bookings for dates before today.
	ErrPastDate = errors.New("cannot book a past date")
	// ErrConflict means the requested slot overlaps a class or an active
	// reservation.
	ErrConflict = errors.New("requested slot conflicts with existing occupancy")
	// ErrForbidden is returned when the caller does not own the reservation.
	ErrForbidden = errors.New("reservation belongs to another user")
	// ErrNotPending rejects edits and reviews on reservations that have
	// already been reviewed.
	ErrNotPending = errors.New("reservation is no longer pending")
	// ErrReasonTooShort enforces the minimum rejection-reason length.
	ErrReasonTooShort = errors.New("rejection reason must be at least 10 characters")
	// ErrInvalidInput covers missing or malformed request fields.
	ErrInvalidInput = errors.New("invalid reservation input")
)
