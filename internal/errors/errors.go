// Package errors provides sentinel errors and custom error types for the scripty application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrMissingEnv indicates that a required environment variable is unset or empty
	ErrMissingEnv = errors.New("environment variable not set")

	// ErrMissingCommand indicates that a required command is not resolvable in PATH
	ErrMissingCommand = errors.New("command not found")

	// ErrInteractiveDisabled is returned when an interactive prompt is needed
	// but the process is not attached to a terminal (or prompts are disabled)
	ErrInteractiveDisabled = errors.New("interactive prompts are disabled")
)

// MissingEnvError represents an error when a required environment variable is unset or empty
type MissingEnvError struct {
	Name string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("environment variable %s is not set or empty", e.Name)
}

// Is returns true if the target error is ErrMissingEnv
func (e *MissingEnvError) Is(target error) bool {
	return target == ErrMissingEnv
}

// NewMissingEnvError creates a new MissingEnvError
func NewMissingEnvError(name string) *MissingEnvError {
	return &MissingEnvError{Name: name}
}

// MissingCommandError represents an error when a required command is not in PATH
type MissingCommandError struct {
	Name string
}

func (e *MissingCommandError) Error() string {
	return fmt.Sprintf("command %s is not available in PATH", e.Name)
}

// Is returns true if the target error is ErrMissingCommand
func (e *MissingCommandError) Is(target error) bool {
	return target == ErrMissingCommand
}

// NewMissingCommandError creates a new MissingCommandError
func NewMissingCommandError(name string) *MissingCommandError {
	return &MissingCommandError{Name: name}
}

// CommandError represents a failed external command execution
type CommandError struct {
	Name   string
	Args   []string
	Status int
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", e.Name)
	if len(e.Args) > 0 {
		msg += " " + strings.Join(e.Args, " ")
	}
	msg += fmt.Sprintf(" (exit status %d)", e.Status)
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError
func NewCommandError(name string, args []string, status int, err error) *CommandError {
	return &CommandError{
		Name:   name,
		Args:   args,
		Status: status,
		Err:    err,
	}
}

// ExitStatusError carries the exit status a failed operation resolved to.
// Helpers never terminate the process themselves; they return this error and
// the top-level entry point decides to exit with the carried status.
type ExitStatusError struct {
	Status int
	Err    error
}

func (e *ExitStatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Status)
}

func (e *ExitStatusError) Unwrap() error {
	return e.Err
}

// NewExitStatusError creates a new ExitStatusError
func NewExitStatusError(status int, err error) *ExitStatusError {
	return &ExitStatusError{Status: status, Err: err}
}

// ExitCode resolves the process exit code for an error returned by a command.
// A nil error means 0, an ExitStatusError carries its own status, and any
// other error maps to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitStatusError
	if errors.As(err, &exitErr) {
		return exitErr.Status
	}
	return 1
}
