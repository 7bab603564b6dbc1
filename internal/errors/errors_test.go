package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMissingEnvError(t *testing.T) {
	t.Parallel()

	err := NewMissingEnvError("MY_VAR")
	require.ErrorIs(t, err, ErrMissingEnv)
	require.Contains(t, err.Error(), "MY_VAR")
}

func TestMissingCommandError(t *testing.T) {
	t.Parallel()

	err := NewMissingCommandError("jq")
	require.ErrorIs(t, err, ErrMissingCommand)
	require.Contains(t, err.Error(), "jq")
}

func TestCommandError(t *testing.T) {
	t.Parallel()

	cause := errors.New("exit status 2")
	err := NewCommandError("tar", []string{"-xf", "missing.tar"}, 2, cause)

	require.Contains(t, err.Error(), "tar")
	require.Contains(t, err.Error(), "-xf missing.tar")
	require.Contains(t, err.Error(), "exit status 2")
	require.ErrorIs(t, err, cause)
}

func TestExitStatusError(t *testing.T) {
	t.Parallel()

	t.Run("uses wrapped error message when present", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("boom")
		err := NewExitStatusError(3, cause)
		require.Equal(t, "boom", err.Error())
		require.ErrorIs(t, err, cause)
	})

	t.Run("falls back to the status when bare", func(t *testing.T) {
		t.Parallel()
		err := NewExitStatusError(7, nil)
		require.Equal(t, "exit status 7", err.Error())
	})
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, ExitCode(nil))
	require.Equal(t, 5, ExitCode(NewExitStatusError(5, nil)))
	require.Equal(t, 1, ExitCode(errors.New("plain error")))

	// Status survives wrapping
	wrapped := fmt.Errorf("while deploying: %w", NewExitStatusError(42, nil))
	require.Equal(t, 42, ExitCode(wrapped))
}
