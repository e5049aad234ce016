// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"strconv"

	"gocoreutils/pkg/types"
)

// chownCommand implements the chown utility (owner only, no group).
type chownCommand struct {
	name  string
	flags []FlagInfo
}

// newChownCommand creates a new chown command.
func newChownCommand() *chownCommand {
	return &chownCommand{name: "chown"}
}

// Name returns the command name.
func (c *chownCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *chownCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the chown command.
// Usage: chown OWNER FILE...
// OWNER is a user name or a numeric uid; the group is left unchanged.
func (c *chownCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs, cf := newFlagSet(c.name)
	if handled, err := parseArgs(hc, c, "OWNER FILE...", fs, cf, args[1:]); handled {
		return err
	}

	operands := fs.Args()
	switch len(operands) {
	case 0:
		return missingOperand(hc, c.name, "")
	case 1:
		return missingOperand(hc, c.name, operands[0])
	}

	uid, err := lookupUID(operands[0])
	if err != nil {
		fmt.Fprintf(hc.Stderr, "%s: invalid user: `%s'\n", c.name, operands[0])
		return &ExitError{Code: types.ExitFailure}
	}

	for _, file := range operands[1:] {
		if err := os.Chown(hc.Resolve(file), uid, -1); err != nil {
			return err
		}
	}
	return nil
}

// lookupUID resolves a user name or decimal uid to a numeric uid.
func lookupUID(owner string) (int, error) {
	if uid, err := strconv.Atoi(owner); err == nil {
		return uid, nil
	}
	u, err := user.Lookup(owner)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(u.Uid)
}
