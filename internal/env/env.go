// Package env provides environment variable accessors with explicit fallback
// policies. An unset variable and a variable set to the empty string are
// treated identically.
package env

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"

	scriptyerrors "github.com/amannocci/scripty/internal/errors"
	"github.com/amannocci/scripty/internal/tui"
)

// Required returns the value of the named variable. An unset or empty
// variable resolves to a MissingEnvError; the caller decides what is fatal.
func Required(name string) (string, error) {
	if value := os.Getenv(name); value != "" {
		return value, nil
	}
	return "", scriptyerrors.NewMissingEnvError(name)
}

// OrDefault returns the value of the named variable, or fallback when the
// variable is unset or empty. Never fails.
func OrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// OrEmpty returns the value of the named variable, or "" when unset.
func OrEmpty(name string) string {
	return OrDefault(name, "")
}

// OrPrompt returns the value of the named variable, or interactively reads
// one line from the terminal when the variable is unset or empty.
func OrPrompt(name string) (string, error) {
	if value := os.Getenv(name); value != "" {
		return value, nil
	}

	if !tui.IsInteractive() {
		return "", scriptyerrors.ErrInteractiveDisabled
	}

	var value string
	prompt := &survey.Input{
		Message: fmt.Sprintf("Value for %s:", name),
	}
	// Prompt UI goes to stderr so the resolved value can be captured from stdout.
	if err := survey.AskOne(prompt, &value, survey.WithStdio(os.Stdin, os.Stderr, os.Stderr)); err != nil {
		return "", fmt.Errorf("canceled")
	}

	return value, nil
}
