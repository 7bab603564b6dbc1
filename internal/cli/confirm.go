package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	scriptyerrors "github.com/amannocci/scripty/internal/errors"
	"github.com/amannocci/scripty/internal/runtime"
	"github.com/amannocci/scripty/internal/tui"
)

// newConfirmCmd creates the confirm command
func newConfirmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirm <message>...",
		Short: "Ask a yes/no question; exit 0 on yes, 1 on no",
		Long: `Ask a yes/no question and exit 0 when confirmed, 1 otherwise, for use in
shell conditionals:

  scripty confirm "Deploy to production?" && ./deploy.sh

When stdin is not a terminal the question cannot be asked and scripty
exits 1 with a failure log.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			confirmed, err := tui.PromptConfirm(strings.Join(args, " "), false)
			if err != nil {
				if errors.Is(err, scriptyerrors.ErrInteractiveDisabled) {
					rc := runtime.GetContext()
					rc.Splog.Failure("read confirmation from terminal")
				}
				return scriptyerrors.NewExitStatusError(1, err)
			}
			if !confirmed {
				return scriptyerrors.NewExitStatusError(1, nil)
			}
			return nil
		},
	}
}
