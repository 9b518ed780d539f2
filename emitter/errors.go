package emitter

import (
	"errors"
	"strconv"
)

// Sentinel errors for subscription operations.
var (
	// ErrInvalidListener is returned when a listener does not carry an
	// invocable function.
	ErrInvalidListener = errors.New("listener is not invocable")

	// ErrInvalidName is returned when a registration name fails the grammar.
	ErrInvalidName = errors.New("invalid event name")
)

// InvalidArgumentError reports which argument of On, Once or OffAll was
// rejected, before any store mutation took place.
type InvalidArgumentError struct {
	// Arg names the offending argument: "listener" or "event name".
	Arg string

	// Name is the registration name the call was made with.
	Name string

	// Err is the sentinel for the failure kind.
	Err error

	// Detail optionally carries the grammar diagnostic.
	Detail string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	msg := "invalid " + e.Arg + " for " + strconv.Quote(e.Name)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the sentinel error.
func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}
