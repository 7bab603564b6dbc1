package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amannocci/scripty/internal/env"
	scriptyerrors "github.com/amannocci/scripty/internal/errors"
	"github.com/amannocci/scripty/internal/runtime"
)

// newEnvCmd creates the env command and its accessor subcommands
func newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Read environment variables with explicit fallback policies",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <name> [default]",
		Short: "Print the variable's value, or the default (or nothing) when unset",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fallback := ""
			if len(args) == 2 {
				fallback = args[1]
			}
			fmt.Fprintln(cmd.OutOrStdout(), env.OrDefault(args[0], fallback))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "require <name>",
		Short: "Print the variable's value, or log a failure and exit 1 when unset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := env.Required(args[0])
			if err != nil {
				rc := runtime.GetContext()
				rc.Splog.Failure("retrieve environment variable %s", args[0])
				return scriptyerrors.NewExitStatusError(1, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "prompt <name>",
		Short: "Print the variable's value, prompting for one when unset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := env.OrPrompt(args[0])
			if err != nil {
				rc := runtime.GetContext()
				rc.Splog.Failure("read value for %s from terminal", args[0])
				return scriptyerrors.NewExitStatusError(1, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	})

	return cmd
}
