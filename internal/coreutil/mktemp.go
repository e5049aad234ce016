// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"os"
	"strings"
)

type mktempCommand struct {
	name  string
	flags []FlagInfo
}

func newMktempCommand() *mktempCommand {
	return &mktempCommand{
		name: "mktemp",
		flags: []FlagInfo{
			{Name: "directory", ShortName: "d", Description: "create a directory instead of a file"},
		},
	}
}

func (c *mktempCommand) Name() string { return c.name }

func (c *mktempCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *mktempCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	directory := fs.Bool("d", false, "create a directory instead of a file")
	fs.BoolVar(directory, "directory", false, "create a directory instead of a file")
	if handled, err := parseArgs(hc, c, "[OPTION]... [TEMPLATE]", fs, cf, args[1:]); handled {
		return err
	}

	operands := fs.Args()
	if len(operands) > 1 {
		fmt.Fprintf(hc.Stderr, "%s: too many templates\n", c.name)
		fmt.Fprintf(hc.Stderr, "Try '%s --help' for more information.\n", c.name)
		return &ExitError{Code: 1}
	}

	dir, pattern := "", "tmp."
	if len(operands) == 1 {
		var err error
		pattern, err = templatePattern(operands[0])
		if err != nil {
			fmt.Fprintf(hc.Stderr, "%s: too few X's in template `%s'\n", c.name, operands[0])
			return &ExitError{Code: 1}
		}
		dir = hc.Dir
	}

	created, err := c.create(dir, pattern, *directory)
	if err != nil {
		return err
	}
	fmt.Fprintln(hc.Stdout, created)
	return nil
}

// create makes the temporary file or directory and returns its path.
func (c *mktempCommand) create(dir, pattern string, directory bool) (string, error) {
	if directory {
		return os.MkdirTemp(dir, pattern)
	}
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return f.Name(), nil
}

// templatePattern converts a mktemp template such as "build.XXXXXX" into a
// pattern for os.CreateTemp by replacing the last run of X's with "*". The
// run must be at least three X's long.
func templatePattern(template string) (string, error) {
	end := strings.LastIndex(template, "XXX")
	if end < 0 {
		return "", fmt.Errorf("too few X's in template %q", template)
	}
	end += 3
	for end < len(template) && template[end] == 'X' {
		end++
	}
	start := end
	for start > 0 && template[start-1] == 'X' {
		start--
	}
	return template[:start] + "*" + template[end:], nil
}
