// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gocoreutils/pkg/types"
)

type seqCommand struct {
	name  string
	flags []FlagInfo
}

func newSeqCommand() *seqCommand {
	return &seqCommand{
		name: "seq",
		flags: []FlagInfo{
			{Name: "separator", ShortName: "s", Description: "use SEPARATOR to separate numbers (default: \\n)", TakesValue: true},
		},
	}
}

func (c *seqCommand) Name() string { return c.name }

func (c *seqCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *seqCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	separator := fs.String("s", "\n", "use SEPARATOR to separate numbers (default: \\n)")
	fs.StringVar(separator, "separator", "\n", "use SEPARATOR to separate numbers (default: \\n)")

	// A leading negative operand such as "-5" must not be mistaken for a
	// flag, so flag parsing stops at the first numeric argument.
	flagArgs, numericArgs := splitAtNumericOperand(args[1:])
	usage := "[OPTION]... LAST\nor:    seq [OPTION]... FIRST LAST\nor:    seq [OPTION]... FIRST INCREMENT LAST"
	if handled, err := parseArgs(hc, c, usage, fs, cf, flagArgs); handled {
		return err
	}

	operands := append(fs.Args(), numericArgs...)
	if len(operands) == 0 {
		return missingOperand(hc, c.name, "")
	}
	if len(operands) > 3 {
		return extraOperand(hc, c.name, operands[3])
	}

	values := make([]int, len(operands))
	for i, operand := range operands {
		v, err := strconv.Atoi(operand)
		if err != nil {
			fmt.Fprintf(hc.Stderr, "%s: invalid integer argument: `%s'\n", c.name, operand)
			fmt.Fprintf(hc.Stderr, "Try '%s --help' for more information.\n", c.name)
			return &ExitError{Code: types.ExitFailure}
		}
		values[i] = v
	}

	first, increment, last := 1, 1, values[0]
	switch len(values) {
	case 2:
		first, last = values[0], values[1]
	case 3:
		first, increment, last = values[0], values[1], values[2]
	}
	if increment == 0 {
		fmt.Fprintf(hc.Stderr, "%s: increment must not be zero\n", c.name)
		fmt.Fprintf(hc.Stderr, "Try '%s --help' for more information.\n", c.name)
		return &ExitError{Code: types.ExitFailure}
	}

	printed := false
	emit := func(v int) {
		if printed {
			fmt.Fprint(hc.Stdout, *separator)
		}
		fmt.Fprint(hc.Stdout, v)
		printed = true
	}
	if increment > 0 {
		for v := first; v <= last; v += increment {
			emit(v)
		}
	} else {
		for v := first; v > last+1; v += increment {
			emit(v)
		}
	}
	if printed {
		fmt.Fprintln(hc.Stdout)
	}
	return nil
}

// splitAtNumericOperand cuts args at the first token that looks like a
// (possibly negative) number, keeping everything before it for the flag
// parser. An explicit "--" terminator stays with the flag half.
func splitAtNumericOperand(args []string) (flagArgs, numericArgs []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i+1], args[i+1:]
		}
		if len(arg) > 1 && arg[0] == '-' && arg[1] >= '0' && arg[1] <= '9' {
			return args[:i], args[i:]
		}
		if arg == "-s" || arg == "--separator" {
			continue
		}
		if strings.HasPrefix(arg, "-") {
			continue
		}
		// First positive operand: the flag parser stops here on its own.
		return args[:i+1], args[i+1:]
	}
	return args, nil
}
