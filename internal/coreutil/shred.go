// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"os"

	"gocoreutils/pkg/types"
)

type shredCommand struct {
	name  string
	flags []FlagInfo
}

func newShredCommand() *shredCommand {
	return &shredCommand{
		name: "shred",
		flags: []FlagInfo{
			{Name: "iterations", ShortName: "n", Description: "overwrite ITERATIONS times instead of the default (3)", TakesValue: true},
			{Name: "verbose", ShortName: "v", Description: "show progress"},
		},
	}
}

func (c *shredCommand) Name() string { return c.name }

func (c *shredCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *shredCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	iterations := fs.Int("n", 3, "overwrite ITERATIONS times instead of the default (3)")
	fs.IntVar(iterations, "iterations", 3, "overwrite ITERATIONS times instead of the default (3)")
	verbose := fs.Bool("v", false, "show progress")
	fs.BoolVar(verbose, "verbose", false, "show progress")
	if handled, err := parseArgs(hc, c, "[OPTION]... FILE...", fs, cf, args[1:]); handled {
		return err
	}

	operands := fs.Args()
	if len(operands) == 0 {
		return missingOperand(hc, c.name, "")
	}
	if *iterations < 0 {
		fmt.Fprintf(hc.Stderr, "%s: invalid number of passes: `%d'\n", c.name, *iterations)
		return &ExitError{Code: types.ExitFailure}
	}

	for _, operand := range operands {
		for pass := 1; pass <= *iterations; pass++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if *verbose {
				fmt.Fprintf(hc.Stderr, "%s: %s: pass %d/%d (random)...\n", c.name, operand, pass, *iterations)
			}
			if err := overwriteRandom(hc.Resolve(operand)); err != nil {
				return reportAs(err, operand)
			}
		}
	}
	return nil
}

// overwriteRandom replaces the file's current contents with the same number
// of random bytes, leaving its size unchanged.
func overwriteRandom(path string) (err error) {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	_, err = io.CopyN(f, rand.Reader, info.Size())
	return err
}
