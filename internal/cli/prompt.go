package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	scriptyerrors "github.com/amannocci/scripty/internal/errors"
	"github.com/amannocci/scripty/internal/runtime"
	"github.com/amannocci/scripty/internal/tui"
)

// newPromptCmd creates the prompt command
func newPromptCmd() *cobra.Command {
	var defaultValue string

	cmd := &cobra.Command{
		Use:   "prompt <message>...",
		Short: "Ask for a line of input on the terminal and print it",
		Long: `Ask for a line of input and print the answer on standard output. The
prompt itself is drawn on standard error, so the answer can be captured:

  NAME=$(scripty prompt "Release name")

When stdin is not a terminal the question cannot be asked and scripty
exits 1 with a failure log.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := tui.PromptTextInput(strings.Join(args, " "), defaultValue)
			if err != nil {
				if errors.Is(err, scriptyerrors.ErrInteractiveDisabled) {
					rc := runtime.GetContext()
					rc.Splog.Failure("read value from terminal")
				}
				return scriptyerrors.NewExitStatusError(1, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().StringVar(&defaultValue, "default", "", "value used when the answer is left empty")

	return cmd
}
