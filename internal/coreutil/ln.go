// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gocoreutils/pkg/types"
)

// lnCommand implements the ln utility.
type lnCommand struct {
	name  string
	flags []FlagInfo
}

// newLnCommand creates a new ln command.
func newLnCommand() *lnCommand {
	return &lnCommand{
		name: "ln",
		flags: []FlagInfo{
			{Name: "s", Description: "make a symbolic link instead of a hard link"},
			{Name: "v", Description: "print the name of each link"},
		},
	}
}

// Name returns the command name.
func (c *lnCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *lnCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the ln command.
// Usage: ln [-sv] TARGET [LINK_NAME]
// Creates a hard (default) or symbolic link to TARGET. Without LINK_NAME
// the link is created in the working directory under TARGET's base name.
func (c *lnCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs, cf := newFlagSet(c.name)
	symbolic := fs.Bool("s", false, "make a symbolic link instead of a hard link")
	verbose := fs.Bool("v", false, "print the name of each link")
	if handled, err := parseArgs(hc, c, "[-sv] TARGET [LINK_NAME]", fs, cf, args[1:]); handled {
		return err
	}

	operands := fs.Args()
	var target, linkName string
	switch len(operands) {
	case 0:
		return missingOperand(hc, c.name, "")
	case 1:
		target = operands[0]
		linkName = filepath.Base(target)
	case 2:
		target = operands[0]
		linkName = operands[1]
	default:
		return extraOperand(hc, c.name, operands[2])
	}

	kind := "hard"
	var err error
	if *symbolic {
		kind = "soft"
		// Symbolic links keep the target exactly as written.
		err = os.Symlink(target, hc.Resolve(linkName))
	} else {
		err = os.Link(hc.Resolve(target), hc.Resolve(linkName))
	}
	if err != nil {
		fmt.Fprintf(hc.Stderr, "%s: creating %s link `%s' => `%s': %s\n", c.name, kind, linkName, target, linkFailureReason(err))
		return &ExitError{Code: types.ExitFailure}
	}

	if *verbose {
		fmt.Fprintf(hc.Stdout, "`%s' -> `%s'\n", linkName, target)
	}
	return nil
}

// linkFailureReason unwraps the link-call error down to the system message.
func linkFailureReason(err error) string {
	if linkErr, ok := err.(*os.LinkError); ok {
		return linkErr.Err.Error()
	}
	if pathErr, ok := err.(*os.PathError); ok {
		return pathErr.Err.Error()
	}
	return err.Error()
}
