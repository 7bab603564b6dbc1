package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// styles holds the lipgloss styles for the three log statuses.
type styles struct {
	action  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// newStyles builds the status styles against an explicit color profile so that
// output is deterministic regardless of the terminal lipgloss would detect.
// With noColor the renderer degrades to plain ASCII and Render is a no-op.
func newStyles(w io.Writer, noColor bool) styles {
	profile := termenv.ANSI
	if noColor {
		profile = termenv.Ascii
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	return styles{
		action:  r.NewStyle().Foreground(lipgloss.Color("6")),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}
