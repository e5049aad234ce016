// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"sort"
)

type sortCommand struct {
	name  string
	flags []FlagInfo
}

func newSortCommand() *sortCommand {
	return &sortCommand{
		name: "sort",
		flags: []FlagInfo{
			{Name: "reverse", ShortName: "r", Description: "reverse the result of comparisons"},
		},
	}
}

func (c *sortCommand) Name() string { return c.name }

func (c *sortCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *sortCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	reverse := fs.Bool("r", false, "reverse the result of comparisons")
	fs.BoolVar(reverse, "reverse", false, "reverse the result of comparisons")
	if handled, err := parseArgs(hc, c, "[OPTION]... [FILE]...", fs, cf, args[1:]); handled {
		return err
	}

	lines, err := readInputLines(hc, fs.Args())
	if err != nil {
		return err
	}

	if *reverse {
		sort.Sort(sort.Reverse(sort.StringSlice(lines)))
	} else {
		sort.Strings(lines)
	}

	for _, line := range lines {
		fmt.Fprintln(hc.Stdout, line)
	}
	return nil
}
