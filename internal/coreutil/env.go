// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"strings"

	"gocoreutils/pkg/types"
)

// envCommand implements the env utility.
type envCommand struct {
	name  string
	flags []FlagInfo
}

// newEnvCommand creates a new env command.
func newEnvCommand() *envCommand {
	return &envCommand{
		name: "env",
		flags: []FlagInfo{
			{Name: "i", Description: "start with an empty environment"},
		},
	}
}

// Name returns the command name.
func (c *envCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *envCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the env command.
// Usage: env [-i] [NAME=VALUE]...
// Prints each NAME=VALUE argument followed by the inherited environment
// (suppressed with -i). Operands that are not assignments are rejected
// with exit code 127.
func (c *envCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs, cf := newFlagSet(c.name)
	ignoreEnv := fs.Bool("i", false, "start with an empty environment")
	if handled, err := parseArgs(hc, c, "[-i] [NAME=VALUE]...", fs, cf, args[1:]); handled {
		return err
	}

	for _, operand := range fs.Args() {
		name, value, ok := strings.Cut(operand, "=")
		if !ok || name == "" {
			fmt.Fprintf(hc.Stderr, "Invalid argument %s.\n", operand)
			fmt.Fprintln(hc.Stderr, "Arguments should be in the form of 'foo=bar'")
			return &ExitError{Code: types.ExitCode(127)}
		}
		fmt.Fprintf(hc.Stdout, "%s=%s\n", name, value)
	}

	if *ignoreEnv || hc.Environ == nil {
		return nil
	}
	for _, kv := range hc.Environ() {
		fmt.Fprintln(hc.Stdout, kv)
	}
	return nil
}
