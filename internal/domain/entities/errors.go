package entities

import "errors"

// Domain failure kinds. Entity methods wrap these with a human-readable
// message via fmt.Errorf("%w: ..."); callers classify with errors.Is and
// never need to parse the message.

var (
	// ErrInvalidTransition marks a state-machine method invoked from a
	// state that forbids it.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrValidation marks a value violating a field-level invariant
	// (negative rate/hours/cost, decreasing hour-meter, missing key).
	ErrValidation = errors.New("validation error")
)
