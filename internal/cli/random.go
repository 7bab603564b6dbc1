package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	scriptyerrors "github.com/amannocci/scripty/internal/errors"
	"github.com/amannocci/scripty/internal/random"
	"github.com/amannocci/scripty/internal/runtime"
)

// newRandomCmd creates the random command
func newRandomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Print a random 32-character alphanumeric identifier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := random.Alnum()
			if err != nil {
				rc := runtime.GetContext()
				rc.Splog.Failure("read from the system entropy source")
				return scriptyerrors.NewExitStatusError(1, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}
