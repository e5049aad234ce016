// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"errors"
	"fmt"
	"os/user"

	"gocoreutils/pkg/types"
)

// idCommand implements the id utility.
type idCommand struct {
	name  string
	flags []FlagInfo
}

// newIDCommand creates a new id command.
func newIDCommand() *idCommand {
	return &idCommand{
		name: "id",
		flags: []FlagInfo{
			{Name: "a", Description: "ignored, for compatibility with other versions"},
			{Name: "g", Description: "print only the group ID"},
			{Name: "n", Description: "print a name instead of a number, for -u or -g"},
			{Name: "u", Description: "print only the user ID"},
		},
	}
}

// Name returns the command name.
func (c *idCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *idCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the id command.
// Usage: id [OPTION]... [USER]
// Prints user and group information for USER or the current user.
func (c *idCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs, cf := newFlagSet(c.name)
	fs.Bool("a", false, "ignored, for compatibility with other versions")
	group := fs.Bool("g", false, "print only the group ID")
	nameOnly := fs.Bool("n", false, "print a name instead of a number, for -u or -g")
	userOnly := fs.Bool("u", false, "print only the user ID")
	if handled, err := parseArgs(hc, c, "[OPTION]... [USER]", fs, cf, args[1:]); handled {
		return err
	}

	operands := fs.Args()
	if len(operands) > 1 {
		return extraOperand(hc, c.name, operands[1])
	}

	var (
		u   *user.User
		err error
	)
	if len(operands) == 1 {
		u, err = user.Lookup(operands[0])
	} else {
		u, err = user.Current()
	}
	if err != nil {
		var unknown user.UnknownUserError
		if errors.As(err, &unknown) {
			return &ExitError{Code: types.ExitFailure, Err: fmt.Errorf("%s: no such user", operands[0])}
		}
		return err
	}

	switch {
	case *group && *nameOnly:
		name, err := groupName(u.Gid)
		if err != nil {
			return err
		}
		fmt.Fprintln(hc.Stdout, name)
	case *group:
		fmt.Fprintln(hc.Stdout, u.Gid)
	case *userOnly && *nameOnly:
		fmt.Fprintln(hc.Stdout, u.Username)
	case *userOnly:
		fmt.Fprintln(hc.Stdout, u.Uid)
	case *nameOnly:
		fmt.Fprintf(hc.Stderr, "%s: cannot print only names or real IDs in default format\n", c.name)
		return &ExitError{Code: types.ExitFailure}
	default:
		gname, err := groupName(u.Gid)
		if err != nil {
			gname = u.Gid
		}
		fmt.Fprintf(hc.Stdout, "uid=%s(%s) gid=%s(%s)\n", u.Uid, u.Username, u.Gid, gname)
	}
	return nil
}

// groupName resolves a gid to its group name.
func groupName(gid string) (string, error) {
	g, err := user.LookupGroupId(gid)
	if err != nil {
		return "", err
	}
	return g.Name, nil
}
