package cubesim

import "errors"

// Sentinel errors for the cubesim package.
var (
	// Input errors
	ErrInvalidSize     = errors.New("cubesim: cube size out of range")
	ErrInvalidMove     = errors.New("cubesim: invalid move")
	ErrInvalidNotation = errors.New("cubesim: invalid move notation")

	// State errors
	ErrBusy        = errors.New("cubesim: operation already in progress")
	ErrInterrupted = errors.New("cubesim: operation interrupted")
)
