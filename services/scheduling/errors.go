package scheduling

import "errors"

var (
	// ErrSlotUnavailable means the requested (date, time) is not currently
	// bookable: blocked, off-schedule, or already held. Recoverable, the
	// caller should offer another slot.
	ErrSlotUnavailable = errors.New("slot not available")

	// ErrNotAllowed means the actor may not perform this transition.
	ErrNotAllowed = errors.New("actor not allowed to perform this transition")

	// ErrInvalidTransition means the status change itself is illegal.
	ErrInvalidTransition = errors.New("invalid appointment status transition")
)
