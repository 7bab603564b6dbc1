package cli

import (
	"github.com/spf13/cobra"

	"github.com/amannocci/scripty/internal/run"
	"github.com/amannocci/scripty/internal/runtime"
)

// newRequireCmd creates the require command
func newRequireCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "require <command>...",
		Short: "Verify that each named command is resolvable in PATH",
		Long: `Verify that each named command resolves to an executable in PATH.
Stops at the first missing command, logs a failure naming it, and exits 1.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rc := runtime.GetContext()
			runner := run.NewCommandRunner(rc)

			return runner.RequireCommands(args...)
		},
	}
}
