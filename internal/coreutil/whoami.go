// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"os/user"
)

type whoamiCommand struct {
	name  string
	flags []FlagInfo
}

func newWhoamiCommand() *whoamiCommand {
	return &whoamiCommand{name: "whoami"}
}

func (c *whoamiCommand) Name() string { return c.name }

func (c *whoamiCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run prints the user name associated with the current effective user ID,
// same as id -un.
func (c *whoamiCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	if handled, err := parseArgs(hc, c, "[OPTION]...", fs, cf, args[1:]); handled {
		return err
	}
	if fs.NArg() > 0 {
		return extraOperand(hc, c.name, fs.Arg(0))
	}

	u, err := user.Current()
	if err != nil {
		return err
	}
	fmt.Fprintln(hc.Stdout, u.Username)
	return nil
}
