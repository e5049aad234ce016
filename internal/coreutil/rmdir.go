// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

type rmdirCommand struct {
	name  string
	flags []FlagInfo
}

func newRmdirCommand() *rmdirCommand {
	return &rmdirCommand{
		name: "rmdir",
		flags: []FlagInfo{
			{Name: "parent", ShortName: "p", Description: "remove DIRECTORY and its ancestors; e.g., `rmdir -p a/b/c' is similar to `rmdir a/b/c a/b a'"},
		},
	}
}

func (c *rmdirCommand) Name() string { return c.name }

func (c *rmdirCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *rmdirCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	parent := fs.Bool("p", false, "remove DIRECTORY and its ancestors")
	fs.BoolVar(parent, "parent", false, "remove DIRECTORY and its ancestors")
	if handled, err := parseArgs(hc, c, "[OPTION]... DIRECTORY...", fs, cf, args[1:]); handled {
		return err
	}

	operands := fs.Args()
	if len(operands) == 0 {
		return missingOperand(hc, c.name, "")
	}

	for _, dir := range operands {
		if err := c.removeDir(hc, dir); err != nil {
			return err
		}
		if *parent {
			c.removeAncestors(hc, dir)
		}
	}
	return nil
}

// removeDir removes one empty directory. Unlike os.Remove it refuses to
// remove anything that is not a directory.
func (c *rmdirCommand) removeDir(hc *HandlerContext, dir string) error {
	resolved := hc.Resolve(dir)
	info, err := os.Lstat(resolved)
	if err != nil {
		return reportAs(err, dir)
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "rmdir", Path: dir, Err: syscall.ENOTDIR}
	}
	return reportAs(os.Remove(resolved), dir)
}

// removeAncestors prunes the now-empty parents of dir, stopping quietly at
// the first one that cannot be removed.
func (c *rmdirCommand) removeAncestors(hc *HandlerContext, dir string) {
	for parent := filepath.Dir(dir); parent != "." && parent != string(filepath.Separator); parent = filepath.Dir(parent) {
		if os.Remove(hc.Resolve(parent)) != nil {
			return
		}
	}
}
