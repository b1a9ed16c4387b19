// Package handoff runs cargo with the arguments that followed "--" once a
// manifest has been generated.
package handoff

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/dkoosis/cargo-yaml/internal/diag"
)

// ErrNoCommand is returned when there are no arguments to hand off.
var ErrNoCommand = errors.New("no cargo command given")

// Runner runs cargo with inherited streams.
type Runner struct {
	// Cargo is the binary to run, usually "cargo" or the value of $CARGO.
	Cargo  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Sink   diag.Sink
}

// Run starts cargo with args and waits for it. The returned code is cargo's
// own exit status. A non-nil error means cargo could not be run at all or
// was interrupted through ctx.
func (r *Runner) Run(ctx context.Context, args []string) (int, error) {
	if len(args) == 0 {
		return 1, ErrNoCommand
	}
	sink := r.Sink
	if sink == nil {
		sink = diag.Nop()
	}

	cmd := exec.CommandContext(ctx, r.Cargo, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	diag.Emitf(sink, diag.Debug, "Running `%s %s`", r.Cargo, strings.Join(args, " "))
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return 1, fmt.Errorf("cargo %s: %w", args[0], ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 1, fmt.Errorf("running %s: %w", r.Cargo, err)
}
