package cli

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	scriptyerrors "github.com/amannocci/scripty/internal/errors"
)

// execute runs a fresh root command with the given args and returns its
// stdout and resulting error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout bytes.Buffer
	rootCmd := NewRootCmd("test", "none", "unknown")
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestRootCmd(t *testing.T) {
	rootCmd := NewRootCmd("1.2.3", "abc", "today")
	require.IsType(t, &cobra.Command{}, rootCmd)
	require.Contains(t, rootCmd.Version, "1.2.3")
}

func TestRandomCmd(t *testing.T) {
	out, err := execute(t, "random")
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^[a-zA-Z0-9]{32}\n$`), out)
}

func TestEnvCmd(t *testing.T) {
	t.Run("get prints the value", func(t *testing.T) {
		t.Setenv("SCRIPTY_CLI_TEST_VAR", "hello")

		out, err := execute(t, "env", "get", "SCRIPTY_CLI_TEST_VAR")
		require.NoError(t, err)
		require.Equal(t, "hello\n", out)
	})

	t.Run("get falls back to the default", func(t *testing.T) {
		out, err := execute(t, "env", "get", "SCRIPTY_CLI_TEST_UNSET", "fallback")
		require.NoError(t, err)
		require.Equal(t, "fallback\n", out)
	})

	t.Run("get prints an empty line without a default", func(t *testing.T) {
		out, err := execute(t, "env", "get", "SCRIPTY_CLI_TEST_UNSET")
		require.NoError(t, err)
		require.Equal(t, "\n", out)
	})

	t.Run("require prints the value when set", func(t *testing.T) {
		t.Setenv("SCRIPTY_CLI_TEST_VAR", "hello")

		out, err := execute(t, "env", "require", "SCRIPTY_CLI_TEST_VAR")
		require.NoError(t, err)
		require.Equal(t, "hello\n", out)
	})

	t.Run("require exits 1 when unset", func(t *testing.T) {
		_, err := execute(t, "env", "require", "SCRIPTY_CLI_TEST_UNSET")
		require.ErrorIs(t, err, scriptyerrors.ErrMissingEnv)
		require.Equal(t, 1, scriptyerrors.ExitCode(err))
	})

	t.Run("prompt prints the value without prompting when set", func(t *testing.T) {
		t.Setenv("SCRIPTY_NO_INTERACTIVE", "1")
		t.Setenv("SCRIPTY_CLI_TEST_VAR", "hello")

		out, err := execute(t, "env", "prompt", "SCRIPTY_CLI_TEST_VAR")
		require.NoError(t, err)
		require.Equal(t, "hello\n", out)
	})

	t.Run("prompt exits 1 when unset and prompting is impossible", func(t *testing.T) {
		t.Setenv("SCRIPTY_NO_INTERACTIVE", "1")

		_, err := execute(t, "env", "prompt", "SCRIPTY_CLI_TEST_UNSET")
		require.ErrorIs(t, err, scriptyerrors.ErrInteractiveDisabled)
		require.Equal(t, 1, scriptyerrors.ExitCode(err))
	})
}

func TestExecCmd(t *testing.T) {
	t.Run("propagates the child's exit status", func(t *testing.T) {
		_, err := execute(t, "exec", "sh", "-c", "exit 7")
		require.Equal(t, 7, scriptyerrors.ExitCode(err))
	})

	t.Run("succeeds quietly", func(t *testing.T) {
		_, err := execute(t, "exec", "true")
		require.NoError(t, err)
	})
}

func TestTryCmd(t *testing.T) {
	t.Run("fails with the child's status by default", func(t *testing.T) {
		t.Setenv("CATCH_ERROR", "")

		_, err := execute(t, "try", "do the thing", "false")
		require.Equal(t, 1, scriptyerrors.ExitCode(err))
	})

	t.Run("catch-error swallows the failure", func(t *testing.T) {
		t.Setenv("CATCH_ERROR", "1")

		_, err := execute(t, "try", "do the thing", "false")
		require.NoError(t, err)
	})
}

func TestMustCmd(t *testing.T) {
	t.Setenv("CATCH_ERROR", "1")

	// catch-error never applies to must
	_, err := execute(t, "must", "do the thing", "sh", "-c", "exit 9")
	require.Equal(t, 9, scriptyerrors.ExitCode(err))
}

func TestFailCmd(t *testing.T) {
	_, err := execute(t, "fail", "resolve", "the", "upstream")
	require.Equal(t, 1, scriptyerrors.ExitCode(err))
}

func TestRequireCmd(t *testing.T) {
	t.Run("succeeds for available commands", func(t *testing.T) {
		_, err := execute(t, "require", "sh")
		require.NoError(t, err)
	})

	t.Run("exits 1 for a missing command", func(t *testing.T) {
		_, err := execute(t, "require", "definitely-not-a-real-command-1b2f")
		require.ErrorIs(t, err, scriptyerrors.ErrMissingCommand)
		require.Equal(t, 1, scriptyerrors.ExitCode(err))
	})
}

func TestPromptCmd(t *testing.T) {
	t.Setenv("SCRIPTY_NO_INTERACTIVE", "1")

	_, err := execute(t, "prompt", "Release name")
	require.ErrorIs(t, err, scriptyerrors.ErrInteractiveDisabled)
	require.Equal(t, 1, scriptyerrors.ExitCode(err))
}

func TestConfirmCmd(t *testing.T) {
	t.Setenv("SCRIPTY_NO_INTERACTIVE", "1")

	_, err := execute(t, "confirm", "Deploy to production?")
	require.ErrorIs(t, err, scriptyerrors.ErrInteractiveDisabled)
	require.Equal(t, 1, scriptyerrors.ExitCode(err))
}
