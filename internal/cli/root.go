// Package cli wires the scripty commands into a cobra command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scripty",
		Short: "Scripty is a shell-scripting companion for safe command execution and structured logging",
		Long: `Scripty is a shell-scripting companion: safe command execution with
error propagation, status-tagged colored logging, environment variable
accessors with defaults, interactive prompts, and random identifiers.

Behavior is driven by ambient flags, each true when set to a non-empty value:
  DISABLE_CONSOLE_COLORS  plain log output, no ANSI escapes
  SILENT_STDOUT           discard a command's stdout during exec/try
  CATCH_ERROR             'try' swallows a non-zero exit instead of failing
  SCRIPTY_DEBUG           echo each command line to stderr before running it`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newExecCmd())
	rootCmd.AddCommand(newTryCmd())
	rootCmd.AddCommand(newMustCmd())
	rootCmd.AddCommand(newFailCmd())
	rootCmd.AddCommand(newRequireCmd())
	rootCmd.AddCommand(newEnvCmd())
	rootCmd.AddCommand(newRandomCmd())
	rootCmd.AddCommand(newConfirmCmd())
	rootCmd.AddCommand(newPromptCmd())

	return rootCmd
}
