package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/amannocci/scripty/internal/runtime"
)

// newLogCmd creates the log command and its per-status subcommands
func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Print a status-annotated message",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "action <text>...",
		Short: "Log that something is about to happen (stdout)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rc := runtime.GetContext()
			rc.Splog.Action("%s", strings.Join(args, " "))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "success <text>...",
		Short: "Log that something succeeded (stdout)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rc := runtime.GetContext()
			rc.Splog.Success("%s", strings.Join(args, " "))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "failure <text>...",
		Short: "Log that something failed, prefixed with \"Failed to\" (stderr)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rc := runtime.GetContext()
			rc.Splog.Failure("%s", strings.Join(args, " "))
			return nil
		},
	})

	return cmd
}
