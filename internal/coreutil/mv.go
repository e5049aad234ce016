// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"gocoreutils/pkg/types"
)

type mvCommand struct {
	name  string
	flags []FlagInfo
}

func newMvCommand() *mvCommand {
	return &mvCommand{
		name: "mv",
		flags: []FlagInfo{
			{Name: "verbose", ShortName: "v", Description: "explain what is being done"},
		},
	}
}

func (c *mvCommand) Name() string { return c.name }

func (c *mvCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *mvCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	verbose := fs.Bool("v", false, "explain what is being done")
	fs.BoolVar(verbose, "verbose", false, "explain what is being done")
	usage := "[OPTION]... SOURCE DEST\nor:    mv [OPTION]... SOURCE... DIRECTORY"
	if handled, err := parseArgs(hc, c, usage, fs, cf, args[1:]); handled {
		return err
	}

	operands := fs.Args()
	switch len(operands) {
	case 0:
		return missingOperand(hc, c.name, "")
	case 1:
		fmt.Fprintf(hc.Stderr, "%s: missing destination file operand after `%s'\n", c.name, operands[0])
		fmt.Fprintf(hc.Stderr, "Try '%s --help' for more information.\n", c.name)
		return &ExitError{Code: types.ExitFailure}
	}

	dest := operands[len(operands)-1]
	sources := operands[:len(operands)-1]

	if len(sources) > 1 {
		if info, err := os.Stat(hc.Resolve(dest)); err != nil || !info.IsDir() {
			fmt.Fprintf(hc.Stderr, "%s: target `%s' is not a directory\n", c.name, dest)
			return &ExitError{Code: types.ExitFailure}
		}
	}

	for _, src := range sources {
		if *verbose {
			fmt.Fprintf(hc.Stdout, "'%s' -> '%s'\n", src, dest)
		}
		if err := c.move(hc, src, dest); err != nil {
			return err
		}
	}
	return nil
}

// move renames src to dest, moving into dest when it is a directory and
// falling back to a copy when the rename crosses filesystems.
func (c *mvCommand) move(hc *HandlerContext, src, dest string) error {
	srcPath := hc.Resolve(src)
	destPath := hc.Resolve(dest)
	if info, err := os.Stat(destPath); err == nil && info.IsDir() {
		destPath = filepath.Join(destPath, filepath.Base(src))
	}

	err := os.Rename(srcPath, destPath)
	if err != nil && errors.Is(err, syscall.EXDEV) {
		err = copyAndRemove(srcPath, destPath)
	}
	return err
}

// copyAndRemove implements a cross-filesystem move for regular files.
func copyAndRemove(srcPath, destPath string) (err error) {
	info, err := os.Stat(srcPath)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return &os.LinkError{Op: "rename", Old: srcPath, New: destPath, Err: syscall.EXDEV}
	}

	in, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(srcPath)
}
