package logistics

import "errors"

var (
	// ErrInputOpenFailure means the input file was missing or unreadable.
	ErrInputOpenFailure = errors.New("logistics: could not open input file")

	// ErrInputMalformed means the input was unexpected non-numeric or
	// truncated, or otherwise failed to build a valid Setting.
	ErrInputMalformed = errors.New("logistics: malformed input")

	// ErrInvariantViolation means an unknown action tag reached
	// Configuration.Successor (which panics with it), or a plan handed to
	// Print held an action that is not a model.Action (Print returns it).
	// It indicates a bug in the caller, not a bad input file.
	ErrInvariantViolation = errors.New("logistics: invariant violation")
)
