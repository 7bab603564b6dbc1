// Package run executes external commands and interprets their exit status.
// Nothing in this package terminates the process: a fatal outcome is resolved
// into an ExitStatusError and the top-level entry point decides to exit.
package run

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	scriptyerrors "github.com/amannocci/scripty/internal/errors"
	"github.com/amannocci/scripty/internal/output"
	"github.com/amannocci/scripty/internal/runtime"
)

// CommandRunner handles execution of external commands
type CommandRunner struct {
	splog    *output.Splog
	opts     runtime.Options
	stdout   io.Writer
	stderr   io.Writer
	lookPath func(string) (string, error)
}

// NewCommandRunner creates a new CommandRunner wired to the process streams
func NewCommandRunner(rc *runtime.Context) *CommandRunner {
	return NewCommandRunnerWithIO(rc, os.Stdout, os.Stderr)
}

// NewCommandRunnerWithIO creates a CommandRunner writing child output to the
// given streams. Used by tests and anywhere output needs to be captured.
func NewCommandRunnerWithIO(rc *runtime.Context, stdout, stderr io.Writer) *CommandRunner {
	return &CommandRunner{
		splog:    rc.Splog,
		opts:     rc.Options,
		stdout:   stdout,
		stderr:   stderr,
		lookPath: exec.LookPath,
	}
}

// Execute runs the named command and returns its resolved exit status.
// A non-zero child exit is a result, not a process abort; the returned error
// carries detail (a CommandError) whenever the status is non-zero.
// With the silent-stdout option set, the child's standard output goes to a
// null sink while its standard error stays visible. Execute never logs.
func (r *CommandRunner) Execute(ctx context.Context, name string, args ...string) (int, error) {
	return r.execute(ctx, r.opts.SilentStdout, name, args...)
}

func (r *CommandRunner) execute(ctx context.Context, silent bool, name string, args ...string) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if r.opts.Debug {
		fmt.Fprintf(r.stderr, "+ %s\n", strings.Join(append([]string{name}, args...), " "))
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stderr = r.stderr
	if silent {
		cmd.Stdout = io.Discard
	} else {
		cmd.Stdout = r.stdout
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	status := 1
	var exitErr *exec.ExitError
	if ctx.Err() == context.DeadlineExceeded {
		status = 124
	} else if errors.As(err, &exitErr) {
		status = exitErr.ExitCode()
	}
	return status, scriptyerrors.NewCommandError(name, args, status, err)
}

// Try runs the command and reports the outcome under the given label.
// Success logs the label and returns nil. Failure logs the label and either
// resolves into a fatal ExitStatusError carrying the child's status, or, when
// the catch-error option is set, swallows the status and returns nil so the
// caller proceeds as if the command had succeeded.
func (r *CommandRunner) Try(ctx context.Context, label, name string, args ...string) error {
	status, err := r.Execute(ctx, name, args...)
	if status == 0 {
		r.splog.Success("%s", label)
		return nil
	}

	r.splog.Failure("%s", label)
	if r.opts.CatchError {
		r.splog.Debug("caught exit status %d from %s", status, name)
		return nil
	}
	return scriptyerrors.NewExitStatusError(status, err)
}

// Must runs the command with its standard output always discarded, regardless
// of the silent-stdout option. A non-zero status logs a failure under the
// given label and resolves into a fatal ExitStatusError; success is silent.
// The catch-error option has no effect here.
func (r *CommandRunner) Must(ctx context.Context, label, name string, args ...string) error {
	status, err := r.execute(ctx, true, name, args...)
	if status == 0 {
		return nil
	}

	r.splog.Failure("%s", label)
	return scriptyerrors.NewExitStatusError(status, err)
}

// Raise logs a failure with the given reason and resolves into a fatal
// ExitStatusError with status 1.
func (r *CommandRunner) Raise(reason string) error {
	r.splog.Failure("%s", reason)
	return scriptyerrors.NewExitStatusError(1, nil)
}

// RequireCommands verifies that each named command resolves to an executable
// in PATH. It stops at the first missing command, logs a failure and resolves
// into a fatal ExitStatusError with status 1.
func (r *CommandRunner) RequireCommands(names ...string) error {
	for _, name := range names {
		if _, err := r.lookPath(name); err != nil {
			r.splog.Failure("locate command %q in PATH", name)
			return scriptyerrors.NewExitStatusError(1, scriptyerrors.NewMissingCommandError(name))
		}
	}
	return nil
}
