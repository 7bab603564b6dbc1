package cli

import (
	"github.com/spf13/cobra"

	"github.com/amannocci/scripty/internal/run"
	"github.com/amannocci/scripty/internal/runtime"
)

// newMustCmd creates the must command
func newMustCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "must <label> <command> [args...]",
		Short: "Run a command silently; die with its status on failure",
		Long: `Run a command with its standard output always discarded, regardless of
SILENT_STDOUT. On failure, log a failure line under the given label and exit
with the command's own status. Success is silent. CATCH_ERROR has no effect
on this command.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := runtime.GetContext()
			runner := run.NewCommandRunner(rc)

			return runner.Must(cmd.Context(), args[0], args[1], args[2:]...)
		},
	}

	cmd.Flags().SetInterspersed(false)

	return cmd
}
