// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// helpStyles holds the lipgloss styles of the help screen. The renderer is
// bound to the output writer, so styling degrades to plain text when the
// output is not a terminal.
type helpStyles struct {
	banner  lipgloss.Style
	subtext lipgloss.Style
	heading lipgloss.Style
}

func newHelpStyles(w io.Writer) helpStyles {
	r := lipgloss.NewRenderer(w)
	return helpStyles{
		banner:  r.NewStyle().Foreground(lipgloss.Color("212")),
		subtext: r.NewStyle().Faint(true),
		heading: r.NewStyle().Bold(true),
	}
}
