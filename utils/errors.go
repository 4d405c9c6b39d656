package utils

import (
	"context"

	"github.com/pkg/errors"
)

// Failure classes of a run. Call sites wrap these with errors.Wrapf so the
// cause survives to the top level, where ExitCode turns it into a status.
var (
	ErrMalformedGrid     = errors.New("malformed grid")
	ErrOutOfBounds       = errors.New("coordinate out of bounds")
	ErrResourceExhausted = errors.New("resource exhausted")
	ErrInvalidArgs       = errors.New("invalid arguments")
)

// Process exit statuses
const (
	ExitOK      = 0
	ExitFailure = 1
	// running out of history space is reported with the generic failure status
	ExitResourceExhausted = ExitFailure
	ExitOutOfBounds       = 2
	ExitMalformedGrid     = 3
	ExitInvalidArgs       = 100
	ExitInterrupted       = 130
)

// ExitCode maps an error returned by a run to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch errors.Cause(err) {
	case ErrResourceExhausted:
		return ExitResourceExhausted
	case ErrOutOfBounds:
		return ExitOutOfBounds
	case ErrMalformedGrid:
		return ExitMalformedGrid
	case ErrInvalidArgs:
		return ExitInvalidArgs
	case context.Canceled, context.DeadlineExceeded:
		return ExitInterrupted
	}
	// I/O failures and anything unclassified
	return ExitFailure
}
