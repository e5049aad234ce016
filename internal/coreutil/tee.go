// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"io"
	"os"
)

// teeCommand copies standard input to standard output and to each named
// file.
type teeCommand struct {
	name  string
	flags []FlagInfo
}

func newTeeCommand() *teeCommand {
	return &teeCommand{
		name: "tee",
		flags: []FlagInfo{
			{Name: "append", ShortName: "a", Description: "append to the given FILEs, do not overwrite"},
		},
	}
}

func (c *teeCommand) Name() string { return c.name }

func (c *teeCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *teeCommand) Run(ctx context.Context, args []string) (err error) {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	appendMode := fs.Bool("a", false, "append to the given FILEs, do not overwrite")
	fs.BoolVar(appendMode, "append", false, "append to the given FILEs, do not overwrite")
	if handled, err := parseArgs(hc, c, "[OPTION]... [FILE]...", fs, cf, args[1:]); handled {
		return err
	}

	openFlags := os.O_CREATE | os.O_WRONLY
	if *appendMode {
		openFlags |= os.O_APPEND
	} else {
		openFlags |= os.O_TRUNC
	}

	writers := []io.Writer{hc.Stdout}
	var files []*os.File
	for _, name := range fs.Args() {
		f, openErr := os.OpenFile(hc.Resolve(name), openFlags, 0o644)
		if openErr != nil {
			for _, opened := range files {
				opened.Close()
			}
			return reportAs(openErr, name)
		}
		files = append(files, f)
		writers = append(writers, f)
	}
	defer func() {
		for _, f := range files {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}
	}()

	_, err = io.Copy(io.MultiWriter(writers...), hc.Stdin)
	return err
}
