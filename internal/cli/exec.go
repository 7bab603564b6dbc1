package cli

import (
	"github.com/spf13/cobra"

	scriptyerrors "github.com/amannocci/scripty/internal/errors"
	"github.com/amannocci/scripty/internal/run"
	"github.com/amannocci/scripty/internal/runtime"
)

// newExecCmd creates the exec command
func newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <command> [args...]",
		Short: "Run a command and exit with its status",
		Long: `Run a command with stdin/stdout/stderr attached and exit with the
command's own exit status. With SILENT_STDOUT set, the command's standard
output is discarded while its standard error stays visible. Nothing is
logged either way.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := runtime.GetContext()
			runner := run.NewCommandRunner(rc)

			status, err := runner.Execute(cmd.Context(), args[0], args[1:]...)
			if status != 0 {
				return scriptyerrors.NewExitStatusError(status, err)
			}
			return nil
		},
	}

	// Flags after the command name belong to the child, not to scripty.
	cmd.Flags().SetInterspersed(false)

	return cmd
}
