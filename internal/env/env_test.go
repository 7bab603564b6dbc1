package env

import (
	"testing"

	"github.com/stretchr/testify/require"

	scriptyerrors "github.com/amannocci/scripty/internal/errors"
)

func TestRequired(t *testing.T) {
	t.Run("returns the value when set", func(t *testing.T) {
		t.Setenv("SCRIPTY_TEST_VAR", "hello")

		value, err := Required("SCRIPTY_TEST_VAR")
		require.NoError(t, err)
		require.Equal(t, "hello", value)
	})

	t.Run("fails when unset", func(t *testing.T) {
		value, err := Required("SCRIPTY_TEST_VAR_UNSET")
		require.ErrorIs(t, err, scriptyerrors.ErrMissingEnv)
		require.Empty(t, value)
	})

	t.Run("treats empty the same as unset", func(t *testing.T) {
		t.Setenv("SCRIPTY_TEST_VAR", "")

		_, err := Required("SCRIPTY_TEST_VAR")
		require.ErrorIs(t, err, scriptyerrors.ErrMissingEnv)
	})
}

func TestOrDefault(t *testing.T) {
	t.Run("returns the value when set", func(t *testing.T) {
		t.Setenv("SCRIPTY_TEST_VAR", "value")

		require.Equal(t, "value", OrDefault("SCRIPTY_TEST_VAR", "fallback"))
	})

	t.Run("returns the fallback when unset", func(t *testing.T) {
		require.Equal(t, "fallback", OrDefault("SCRIPTY_TEST_VAR_UNSET", "fallback"))
	})

	t.Run("returns the fallback when empty", func(t *testing.T) {
		t.Setenv("SCRIPTY_TEST_VAR", "")

		require.Equal(t, "fallback", OrDefault("SCRIPTY_TEST_VAR", "fallback"))
	})
}

func TestOrEmpty(t *testing.T) {
	t.Run("returns the value when set", func(t *testing.T) {
		t.Setenv("SCRIPTY_TEST_VAR", "value")

		require.Equal(t, "value", OrEmpty("SCRIPTY_TEST_VAR"))
	})

	t.Run("returns empty when unset", func(t *testing.T) {
		require.Empty(t, OrEmpty("SCRIPTY_TEST_VAR_UNSET"))
	})
}

func TestOrPrompt(t *testing.T) {
	t.Run("returns the value without prompting when set", func(t *testing.T) {
		t.Setenv("SCRIPTY_NO_INTERACTIVE", "1")
		t.Setenv("SCRIPTY_TEST_VAR", "value")

		value, err := OrPrompt("SCRIPTY_TEST_VAR")
		require.NoError(t, err)
		require.Equal(t, "value", value)
	})

	t.Run("fails when unset and prompting is impossible", func(t *testing.T) {
		t.Setenv("SCRIPTY_NO_INTERACTIVE", "1")

		_, err := OrPrompt("SCRIPTY_TEST_VAR_UNSET")
		require.ErrorIs(t, err, scriptyerrors.ErrInteractiveDisabled)
	})
}
