// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"gocoreutils/pkg/types"
)

// chrootCommand implements the chroot utility.
type chrootCommand struct {
	name  string
	flags []FlagInfo
}

// newChrootCommand creates a new chroot command.
func newChrootCommand() *chrootCommand {
	return &chrootCommand{name: "chroot"}
}

// Name returns the command name.
func (c *chrootCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *chrootCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the chroot command.
// Usage: chroot NEWROOT [COMMAND [ARG]...]
// Runs COMMAND (default: an interactive $SHELL) with NEWROOT as the root
// directory. Requires sufficient privileges.
func (c *chrootCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs, cf := newFlagSet(c.name)
	if handled, err := parseArgs(hc, c, "NEWROOT [COMMAND [ARG]...]", fs, cf, args[1:]); handled {
		return err
	}

	operands := fs.Args()
	if len(operands) == 0 {
		return missingOperand(hc, c.name, "")
	}

	newroot := operands[0]
	if err := changeRoot(hc.Resolve(newroot)); err != nil {
		fmt.Fprintf(hc.Stderr, "%s: cannot change root directory to %s: %s\n", c.name, newroot, err)
		return &ExitError{Code: types.ExitFailure}
	}

	cmdArgs := operands[1:]
	if len(cmdArgs) == 0 {
		shell := hc.Getenv("SHELL")
		if shell == "" {
			shell = "/bin/sh"
		}
		cmdArgs = []string{shell, "-i"}
	}

	cmd := exec.CommandContext(ctx, cmdArgs[0], cmdArgs[1:]...)
	cmd.Dir = "/"
	cmd.Stdin = hc.Stdin
	cmd.Stdout = hc.Stdout
	cmd.Stderr = hc.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return &ExitError{Code: types.ExitCode(exitErr.ExitCode())}
	}
	return err
}
