package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/amannocci/scripty/internal/run"
	"github.com/amannocci/scripty/internal/runtime"
)

// newFailCmd creates the fail command
func newFailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fail <reason>...",
		Short: "Log a failure with the given reason and exit 1",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rc := runtime.GetContext()
			runner := run.NewCommandRunner(rc)

			return runner.Raise(strings.Join(args, " "))
		},
	}
}
