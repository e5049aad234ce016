// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type rmCommand struct {
	name  string
	flags []FlagInfo
}

func newRmCommand() *rmCommand {
	return &rmCommand{
		name: "rm",
		flags: []FlagInfo{
			{Name: "force", ShortName: "f", Description: "ignore nonexistent files, never prompt"},
			{Name: "recursive", ShortName: "r", Description: "remove directories and their contents recursively"},
			{Name: "R", Description: "remove directories and their contents recursively"},
			{Name: "verbose", ShortName: "v", Description: "explain what is being done"},
		},
	}
}

func (c *rmCommand) Name() string { return c.name }

func (c *rmCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *rmCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	force := fs.Bool("f", false, "ignore nonexistent files, never prompt")
	fs.BoolVar(force, "force", false, "ignore nonexistent files, never prompt")
	recursive := fs.Bool("r", false, "remove directories and their contents recursively")
	fs.BoolVar(recursive, "R", false, "remove directories and their contents recursively")
	fs.BoolVar(recursive, "recursive", false, "remove directories and their contents recursively")
	verbose := fs.Bool("v", false, "explain what is being done")
	fs.BoolVar(verbose, "verbose", false, "explain what is being done")
	if handled, err := parseArgs(hc, c, "[OPTION]... FILE...", fs, cf, args[1:]); handled {
		return err
	}

	operands := fs.Args()
	if len(operands) == 0 {
		return missingOperand(hc, c.name, "")
	}

	r := &remover{hc: hc, force: *force, verbose: *verbose}
	for _, operand := range operands {
		var err error
		if *recursive && isDir(hc.Resolve(operand)) {
			err = r.removeTree(operand)
		} else {
			err = r.removeFile(operand)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.IsDir()
}

// remover carries the force/verbose behavior through a removal walk.
type remover struct {
	hc      *HandlerContext
	force   bool
	verbose bool
}

// removeFile removes a single non-directory operand.
func (r *remover) removeFile(operand string) error {
	if err := os.Remove(r.hc.Resolve(operand)); err != nil {
		return r.skip(err, operand)
	}
	if r.verbose {
		fmt.Fprintf(r.hc.Stdout, "Removed `%s'\n", operand)
	}
	return nil
}

// removeTree removes a directory and everything below it, deepest entries
// first. The top directory itself is removed without an announcement.
func (r *remover) removeTree(operand string) error {
	if err := r.removeChildren(operand); err != nil {
		return err
	}
	if err := os.Remove(r.hc.Resolve(operand)); err != nil {
		return r.skip(err, operand)
	}
	return nil
}

func (r *remover) removeChildren(dir string) error {
	entries, err := os.ReadDir(r.hc.Resolve(dir))
	if err != nil {
		return r.skip(err, dir)
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := r.removeChildren(path); err != nil {
				return err
			}
			if err := os.Remove(r.hc.Resolve(path)); err != nil {
				if err := r.skip(err, path); err != nil {
					return err
				}
				continue
			}
			if r.verbose {
				fmt.Fprintf(r.hc.Stdout, "Removed directory `%s'\n", path)
			}
			continue
		}
		if err := os.Remove(r.hc.Resolve(path)); err != nil {
			if err := r.skip(err, path); err != nil {
				return err
			}
			continue
		}
		if r.verbose {
			fmt.Fprintf(r.hc.Stdout, "Removed file `%s'\n", path)
		}
	}
	return nil
}

// skip swallows a removal failure under --force, announcing the skipped
// path when verbose. Without --force the failure is returned as is.
func (r *remover) skip(err error, operand string) error {
	if !r.force {
		return reportAs(err, operand)
	}
	if r.verbose {
		fmt.Fprintf(r.hc.Stdout, "skipped `%s'\n", operand)
	}
	return nil
}
