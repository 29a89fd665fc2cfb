// internal/cmdutil/exit.go
package cmdutil

import (
	"context"
	"errors"
	"io"

	"assayfilter/internal/writers"
)

// Exit codes shared by every command.
const (
	ExitOK          = 0
	ExitMissingFile = 1
	ExitUsage       = 2
	ExitRuntime     = 3
	ExitInterrupted = 130
)

// RuntimeExit maps a run error to an exit code, printing it unless it is a
// cancellation or a closed stdout.
func RuntimeExit(stderr io.Writer, err error) int {
	switch {
	case err == nil:
		return ExitOK
	case writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		Errorf(stderr, "%v", err)
		return ExitRuntime
	}
}
