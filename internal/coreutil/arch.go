// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
)

// archCommand implements the arch utility.
type archCommand struct {
	name  string
	flags []FlagInfo
}

// newArchCommand creates a new arch command.
func newArchCommand() *archCommand {
	return &archCommand{name: "arch"}
}

// Name returns the command name.
func (c *archCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *archCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the arch command.
// Usage: arch
// Prints the machine hardware name without a trailing newline.
func (c *archCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs, cf := newFlagSet(c.name)
	if handled, err := parseArgs(hc, c, "", fs, cf, args[1:]); handled {
		return err
	}
	if fs.NArg() > 0 {
		return extraOperand(hc, c.name, fs.Arg(0))
	}

	fmt.Fprint(hc.Stdout, machineArch(ctx))
	return nil
}

// machineArch reports the hardware name the way uname -m would, falling
// back to the compile-time architecture when the host probe fails.
func machineArch(ctx context.Context) string {
	if info, err := host.InfoWithContext(ctx); err == nil && info.KernelArch != "" {
		return info.KernelArch
	}
	return runtime.GOARCH
}
