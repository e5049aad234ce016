// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"path/filepath"
)

type pwdCommand struct {
	name  string
	flags []FlagInfo
}

func newPwdCommand() *pwdCommand {
	return &pwdCommand{
		name: "pwd",
		flags: []FlagInfo{
			{Name: "logical", ShortName: "L", Description: "use PWD from environment, even if it contains symlinks"},
			{Name: "physical", ShortName: "P", Description: "avoid all symlinks"},
		},
	}
}

func (c *pwdCommand) Name() string { return c.name }

func (c *pwdCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *pwdCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	logical := fs.Bool("L", false, "use PWD from environment, even if it contains symlinks")
	fs.BoolVar(logical, "logical", false, "use PWD from environment, even if it contains symlinks")
	physical := fs.Bool("P", false, "avoid all symlinks")
	fs.BoolVar(physical, "physical", false, "avoid all symlinks")
	if handled, err := parseArgs(hc, c, "[OPTION]...", fs, cf, args[1:]); handled {
		return err
	}

	switch {
	case *logical:
		fmt.Fprintln(hc.Stdout, hc.Getenv("PWD"))
	case *physical:
		resolved, err := filepath.EvalSymlinks(hc.Dir)
		if err != nil {
			return err
		}
		fmt.Fprintln(hc.Stdout, resolved)
	default:
		fmt.Fprintln(hc.Stdout, hc.Dir)
	}
	return nil
}
