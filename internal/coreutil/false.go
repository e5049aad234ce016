// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"

	"gocoreutils/pkg/types"
)

// falseCommand implements the false utility.
type falseCommand struct {
	name  string
	flags []FlagInfo
}

// newFalseCommand creates a new false command.
func newFalseCommand() *falseCommand {
	return &falseCommand{name: "false"}
}

// Name returns the command name.
func (c *falseCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *falseCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the false command: do nothing, unsuccessfully.
func (c *falseCommand) Run(ctx context.Context, args []string) error {
	return &ExitError{Code: types.ExitFailure}
}
