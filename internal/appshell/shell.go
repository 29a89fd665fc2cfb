// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"assayfilter/internal/cmdutil"
)

// RunFunc is the signature every tool's app package exposes.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main wires signals and process exit around run. SIGINT and SIGTERM
// cancel the context; a run that still reports success after cancellation
// exits with ExitInterrupted.
func Main(run RunFunc) {
	os.Exit(Exec(run, os.Args[1:], os.Stdout, os.Stderr))
}

// Exec is Main without os.Exit.
func Exec(run RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == cmdutil.ExitOK {
		code = cmdutil.ExitInterrupted
	}
	return code
}
