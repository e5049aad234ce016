// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"io"
)

// catCommand implements the cat utility.
type catCommand struct {
	name  string
	flags []FlagInfo
}

// newCatCommand creates a new cat command.
func newCatCommand() *catCommand {
	return &catCommand{name: "cat"}
}

// Name returns the command name.
func (c *catCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *catCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the cat command.
// Usage: cat [FILE]...
// Concatenates FILEs (or stdin) to standard output. Files ending in .gz or
// .bz2 are decompressed on the fly.
func (c *catCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs, cf := newFlagSet(c.name)
	if handled, err := parseArgs(hc, c, "[FILE]...", fs, cf, args[1:]); handled {
		return err
	}

	return ProcessFilesOrStdin(hc, fs.Args(), func(r io.Reader, name string, _, _ int) error {
		in, err := openCompressed(r, name)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if _, err := io.Copy(hc.Stdout, in); err != nil {
			in.Close()
			return err
		}
		return in.Close()
	})
}
