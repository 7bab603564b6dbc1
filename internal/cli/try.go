package cli

import (
	"github.com/spf13/cobra"

	"github.com/amannocci/scripty/internal/run"
	"github.com/amannocci/scripty/internal/runtime"
)

// newTryCmd creates the try command
func newTryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "try <label> <command> [args...]",
		Short: "Run a command and log the outcome under a label",
		Long: `Run a command and log the outcome under the given label: a success line
when it exits 0, a failure line otherwise. A failure normally exits with the
command's own status; with CATCH_ERROR set the failure is logged but
swallowed and scripty exits 0.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := runtime.GetContext()
			runner := run.NewCommandRunner(rc)

			return runner.Try(cmd.Context(), args[0], args[1], args[2:]...)
		},
	}

	cmd.Flags().SetInterspersed(false)

	return cmd
}
