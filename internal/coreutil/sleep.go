// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gocoreutils/pkg/types"
)

type sleepCommand struct {
	name  string
	flags []FlagInfo
}

func newSleepCommand() *sleepCommand {
	return &sleepCommand{name: "sleep"}
}

func (c *sleepCommand) Name() string { return c.name }

func (c *sleepCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *sleepCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	if handled, err := parseArgs(hc, c, "NUMBER[SUFFIX]...", fs, cf, args[1:]); handled {
		return err
	}

	operands := fs.Args()
	if len(operands) == 0 {
		return missingOperand(hc, c.name, "")
	}

	var total time.Duration
	for _, operand := range operands {
		d, err := parseInterval(operand)
		if err != nil {
			fmt.Fprintf(hc.Stderr, "%s: invalid time interval `%s'\n", c.name, operand)
			fmt.Fprintf(hc.Stderr, "Try '%s --help' for more information.\n", c.name)
			return &ExitError{Code: types.ExitFailure}
		}
		total += d
	}

	timer := time.NewTimer(total)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// parseInterval reads a float interval with an optional s, m, h or d
// suffix. The bare number means seconds.
func parseInterval(s string) (time.Duration, error) {
	multiplier := time.Second
	switch {
	case strings.HasSuffix(s, "s"):
		s = strings.TrimSuffix(s, "s")
	case strings.HasSuffix(s, "m"):
		s, multiplier = strings.TrimSuffix(s, "m"), time.Minute
	case strings.HasSuffix(s, "h"):
		s, multiplier = strings.TrimSuffix(s, "h"), time.Hour
	case strings.HasSuffix(s, "d"):
		s, multiplier = strings.TrimSuffix(s, "d"), 24*time.Hour
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(v * float64(multiplier)), nil
}
