// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// dirnameCommand implements the dirname utility.
type dirnameCommand struct {
	name  string
	flags []FlagInfo
}

// newDirnameCommand creates a new dirname command.
func newDirnameCommand() *dirnameCommand {
	return &dirnameCommand{name: "dirname"}
}

// Name returns the command name.
func (c *dirnameCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *dirnameCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the dirname command.
// Usage: dirname NAME
// Prints NAME with its last path component removed; prints "." when NAME
// contains no directory part.
func (c *dirnameCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs, cf := newFlagSet(c.name)
	if handled, err := parseArgs(hc, c, "NAME", fs, cf, args[1:]); handled {
		return err
	}

	operands := fs.Args()
	switch {
	case len(operands) == 0:
		return missingOperand(hc, c.name, "")
	case len(operands) > 1:
		return extraOperand(hc, c.name, operands[1])
	}

	name := operands[0]
	if len(name) > 1 {
		name = strings.TrimRight(name, "/")
		if name == "" {
			name = "/"
		}
	}
	fmt.Fprintln(hc.Stdout, filepath.Dir(name))
	return nil
}
