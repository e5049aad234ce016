// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type mkdirCommand struct {
	name  string
	flags []FlagInfo
}

func newMkdirCommand() *mkdirCommand {
	return &mkdirCommand{
		name: "mkdir",
		flags: []FlagInfo{
			{Name: "mode", ShortName: "m", Description: "set file mode (as in chmod)", TakesValue: true},
			{Name: "parents", ShortName: "p", Description: "no error if existing, make parent directories as needed"},
			{Name: "verbose", ShortName: "v", Description: "print a message for each created directory"},
		},
	}
}

func (c *mkdirCommand) Name() string { return c.name }

func (c *mkdirCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *mkdirCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	modeStr := fs.String("m", "777", "set file mode (as in chmod)")
	fs.StringVar(modeStr, "mode", "777", "set file mode (as in chmod)")
	parents := fs.Bool("p", false, "no error if existing, make parent directories as needed")
	fs.BoolVar(parents, "parents", false, "no error if existing, make parent directories as needed")
	verbose := fs.Bool("v", false, "print a message for each created directory")
	fs.BoolVar(verbose, "verbose", false, "print a message for each created directory")
	if handled, err := parseArgs(hc, c, "[OPTION]... DIRECTORY...", fs, cf, args[1:]); handled {
		return err
	}

	operands := fs.Args()
	if len(operands) == 0 {
		return missingOperand(hc, c.name, "")
	}

	mode, err := parseMode(*modeStr)
	if err != nil {
		fmt.Fprintf(hc.Stderr, "%s: invalid mode `%s'\n", c.name, *modeStr)
		return &ExitError{Code: 1}
	}

	for _, dir := range operands {
		if *parents {
			err = c.makeParents(hc, dir, mode, *verbose)
		} else {
			err = c.makeOne(hc, dir, mode, *verbose)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// makeOne creates a single directory, failing when the parent is missing
// or the directory already exists.
func (c *mkdirCommand) makeOne(hc *HandlerContext, dir string, mode fs.FileMode, verbose bool) error {
	if err := os.Mkdir(hc.Resolve(dir), mode); err != nil {
		return reportAs(err, dir)
	}
	if verbose {
		fmt.Fprintf(hc.Stdout, "%s: created directory '%s'\n", c.name, dir)
	}
	return nil
}

// makeParents creates dir and any missing ancestors, announcing each newly
// created component when verbose is set. Components that already exist are
// skipped without error.
func (c *mkdirCommand) makeParents(hc *HandlerContext, dir string, mode fs.FileMode, verbose bool) error {
	clean := filepath.Clean(dir)
	sep := string(filepath.Separator)
	prefix := filepath.VolumeName(clean)
	for _, part := range strings.Split(clean[len(prefix):], sep) {
		switch {
		case part == "":
			prefix += sep
			continue
		case prefix == "" || strings.HasSuffix(prefix, sep):
			prefix += part
		default:
			prefix += sep + part
		}
		resolved := hc.Resolve(prefix)
		if _, err := os.Stat(resolved); err == nil {
			continue
		}
		if err := os.Mkdir(resolved, mode); err != nil {
			return reportAs(err, prefix)
		}
		if verbose {
			fmt.Fprintf(hc.Stdout, "%s: created directory '%s'\n", c.name, prefix)
		}
	}
	return nil
}

// parseMode interprets an octal chmod-style mode string such as "755".
func parseMode(s string) (fs.FileMode, error) {
	n, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, err
	}
	return fs.FileMode(n) & fs.ModePerm, nil
}
