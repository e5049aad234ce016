// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/term"

	"gocoreutils/internal/config"
	"gocoreutils/internal/coreutil"
)

// defaultHelpWidth is the wrap column used when neither the configuration
// nor the terminal supplies one.
const defaultHelpWidth = 78

var bannerLines = []string{
	`  ___  _____  ___  _____  ____  ____  __  __  ____  ____  __    ___ `,
	` / __)(  _  )/ __)(  _  )(  _ \( ___)(  )(  )(_  _)(_  _)(  )  / __)`,
	`( (_-. )(_)( ( (__ )(_)(  )   / )__)  )(__)(   )(   _)(_  )(__ \__ \`,
	` \___/(_____)\___)(_____)(_)\_)(____)(______) (__) (____)(____)(___/`,
}

// printHelp writes the banner, the usage line, and the sorted, wrapped
// listing of every registered command.
func printHelp(opts Options) {
	w := opts.Stdout
	width := helpWidth(opts)
	st := newHelpStyles(w)

	fmt.Fprintln(w, showBanner(st, width))
	fmt.Fprintln(w, st.heading.Render(fmt.Sprintf("Usage: %s COMMAND [ OPTIONS ... ]", config.AppName)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.heading.Render("Available commands:"))

	names := opts.Registry.Names()
	slices.Sort(names)
	for _, line := range wrapLine(strings.Join(names, ", "), width) {
		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "\nUse `%s COMMAND --help' for help\n", config.AppName)
}

// showBanner renders the program banner centered at width, followed by the
// version subtext.
func showBanner(st helpStyles, width int) string {
	var sb strings.Builder
	for _, line := range bannerLines {
		sb.WriteString(st.banner.Render(center(line, width)))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	subtext := fmt.Sprintf("-= %s version %s =-", config.AppName, coreutil.Version)
	sb.WriteString(st.subtext.Render(center(subtext, width)))
	sb.WriteByte('\n')
	return sb.String()
}

// helpWidth picks the wrap column: an explicit configured width wins, a
// zero configured width asks the terminal, and everything else falls back
// to the default.
func helpWidth(opts Options) int {
	if opts.Config != nil && opts.Config.HelpWidth > 0 {
		return opts.Config.HelpWidth
	}
	if f, ok := opts.Stdout.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return defaultHelpWidth
}

// center pads s with spaces on both sides to width. Strings already at or
// past the width are returned unchanged.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// wrapLine greedily wraps the space-separated words of s at width columns.
// A word longer than the width gets a line of its own.
func wrapLine(s string, width int) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(s) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
