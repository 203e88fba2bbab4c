package reservationRepo

import "errors"

// ErrDuplicateSlot is returned when the unique index rejects a second active
// reservation for the same space, date and start time.
var ErrDuplicateSlot = errors.New("reservation slot already taken")
