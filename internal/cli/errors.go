package cli

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridroute/gridio"
	"github.com/katalvlaran/gridroute/route"
)

// User-facing diagnostics.
const (
	MsgIncorrectInput = "Incorrect input"
	MsgUnreachable    = "The finish cell is out of reach"
)

// Exit statuses.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

// Diagnostic maps err to the short message printed on stderr.
// Errors other than the two query failures are printed as is.
func Diagnostic(err error) string {
	switch {
	case errors.Is(err, gridio.ErrInvalidInput), errors.Is(err, route.ErrCellOutOfGrid):
		return MsgIncorrectInput
	case errors.Is(err, route.ErrUnreachable):
		return MsgUnreachable
	default:
		return err.Error()
	}
}

// ExitCode returns the process status for err.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		return ExitFailure
	}
}
