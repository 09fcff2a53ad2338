package core

import "errors"

// Both errors are recoverable and reported synchronously to the caller. The
// driver never logs, never retries, and never aborts; retry policy belongs
// to the caller.
var (
	// ErrFunctionNotSet is returned by Set/Clear before any FuncSelect
	// call on the pin.
	ErrFunctionNotSet = errors.New("pin function not set")

	// ErrIncorrectFunction is returned by Set/Clear on a pin configured
	// as input.
	ErrIncorrectFunction = errors.New("incorrect pin function")
)
