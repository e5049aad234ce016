// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// cdCommand implements the cd utility.
type cdCommand struct {
	name  string
	flags []FlagInfo
}

// newCdCommand creates a new cd command.
func newCdCommand() *cdCommand {
	return &cdCommand{name: "cd"}
}

// Name returns the command name.
func (c *cdCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *cdCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the cd command.
// Usage: cd [DIRECTORY]
// Changes the process working directory; without an operand it changes to
// the home directory. A leading ~ expands to the home directory.
func (c *cdCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs, cf := newFlagSet(c.name)
	if handled, err := parseArgs(hc, c, "[DIRECTORY]", fs, cf, args[1:]); handled {
		return err
	}

	operands := fs.Args()
	if len(operands) > 1 {
		return extraOperand(hc, c.name, operands[1])
	}

	target := ""
	if len(operands) == 1 {
		target = operands[0]
	}
	target, err := expandHome(hc, target)
	if err != nil {
		return err
	}
	return os.Chdir(hc.Resolve(target))
}

// expandHome resolves an empty path, "~", and "~/..." against the home
// directory ($HOME first, then the OS account database).
func expandHome(hc *HandlerContext, path string) (string, error) {
	if path != "" && path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home := hc.Getenv("HOME")
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", err
		}
	}
	if path == "" || path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
