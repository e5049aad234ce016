// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"
)

type touchCommand struct {
	name  string
	flags []FlagInfo
}

func newTouchCommand() *touchCommand {
	return &touchCommand{
		name: "touch",
		flags: []FlagInfo{
			{Name: "a", Description: "change only the access time"},
			{Name: "no-create", ShortName: "c", Description: "do not create any files"},
			{Name: "f", Description: "(ignored)"},
			{Name: "m", Description: "change only the modification time"},
			{Name: "reference", ShortName: "r", Description: "use this file's times instead of current time", TakesValue: true},
		},
	}
}

func (c *touchCommand) Name() string { return c.name }

func (c *touchCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *touchCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	accessOnly := fs.Bool("a", false, "change only the access time")
	noCreate := fs.Bool("c", false, "do not create any files")
	fs.BoolVar(noCreate, "no-create", false, "do not create any files")
	fs.Bool("f", false, "(ignored)")
	modOnly := fs.Bool("m", false, "change only the modification time")
	reference := fs.String("r", "", "use this file's times instead of current time")
	fs.StringVar(reference, "reference", "", "use this file's times instead of current time")
	if handled, err := parseArgs(hc, c, "[OPTION]... FILE...", fs, cf, args[1:]); handled {
		return err
	}

	operands := fs.Args()
	if len(operands) == 0 {
		return missingOperand(hc, c.name, "")
	}

	now := time.Now()
	atime, mtime := now, now
	if *reference != "" {
		info, err := os.Stat(hc.Resolve(*reference))
		if err != nil {
			return reportAs(err, *reference)
		}
		atime, mtime = fileTimes(info)
	}
	// The zero time tells Chtimes to leave that timestamp as it is.
	if *accessOnly {
		mtime = time.Time{}
	}
	if *modOnly {
		atime = time.Time{}
	}

	for _, operand := range operands {
		if err := c.touch(hc, operand, atime, mtime, *noCreate); err != nil {
			return err
		}
	}
	return nil
}

// touch creates the file if needed and applies the timestamps.
func (c *touchCommand) touch(hc *HandlerContext, operand string, atime, mtime time.Time, noCreate bool) error {
	path := hc.Resolve(operand)
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return reportAs(err, operand)
		}
		if noCreate {
			return nil
		}
		f, err := os.Create(path)
		if err != nil {
			return reportAs(err, operand)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return reportAs(os.Chtimes(path, atime, mtime), operand)
}
