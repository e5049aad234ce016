// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// basenameCommand implements the basename utility.
type basenameCommand struct {
	name  string
	flags []FlagInfo
}

// newBasenameCommand creates a new basename command.
func newBasenameCommand() *basenameCommand {
	return &basenameCommand{name: "basename"}
}

// Name returns the command name.
func (c *basenameCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *basenameCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the basename command.
// Usage: basename NAME [SUFFIX]
// Prints NAME with leading directory components removed; a trailing SUFFIX
// is removed as well unless it is the whole result.
func (c *basenameCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs, cf := newFlagSet(c.name)
	if handled, err := parseArgs(hc, c, "NAME [SUFFIX]", fs, cf, args[1:]); handled {
		return err
	}

	operands := fs.Args()
	switch {
	case len(operands) == 0:
		return missingOperand(hc, c.name, "")
	case len(operands) > 2:
		return extraOperand(hc, c.name, operands[2])
	}

	name := operands[0]
	if len(name) > 1 {
		name = strings.TrimRight(name, "/")
	}
	if name == "" {
		name = "/"
	}
	name = filepath.Base(name)
	if len(operands) == 2 && name != operands[1] {
		name = strings.TrimSuffix(name, operands[1])
	}

	fmt.Fprintln(hc.Stdout, name)
	return nil
}
