package state

import "errors"

var (
	// ErrNoUser is returned when a mutation needs a signed-in user and
	// there is none.
	ErrNoUser = errors.New("no user in session")

	// ErrEmptyAppointment is returned by StartCall when no appointment id
	// is given.
	ErrEmptyAppointment = errors.New("call requires an appointment id")

	// ErrStaleResult is returned when a result arrives for a request that
	// has since been superseded by a newer one of the same kind.
	ErrStaleResult = errors.New("stale result")
)
