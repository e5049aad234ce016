// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"gocoreutils/pkg/types"
)

type shufCommand struct {
	name  string
	flags []FlagInfo
}

func newShufCommand() *shufCommand {
	return &shufCommand{
		name: "shuf",
		flags: []FlagInfo{
			{Name: "echo", ShortName: "e", Description: "treat each ARG as an input line"},
			{Name: "input-range", ShortName: "i", Description: "treat each number LO through HI as an input line", TakesValue: true},
			{Name: "head-count", ShortName: "n", Description: "output at most HEADCOUNT lines", TakesValue: true},
			{Name: "output", ShortName: "o", Description: "write result to OUTPUT instead of standard output", TakesValue: true},
		},
	}
}

func (c *shufCommand) Name() string { return c.name }

func (c *shufCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *shufCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	echo := fs.Bool("e", false, "treat each ARG as an input line")
	fs.BoolVar(echo, "echo", false, "treat each ARG as an input line")
	inputRange := fs.String("i", "", "treat each number LO through HI as an input line")
	fs.StringVar(inputRange, "input-range", "", "treat each number LO through HI as an input line")
	headCountStr := fs.String("n", "", "output at most HEADCOUNT lines")
	fs.StringVar(headCountStr, "head-count", "", "output at most HEADCOUNT lines")
	output := fs.String("o", "", "write result to OUTPUT instead of standard output")
	fs.StringVar(output, "output", "", "write result to OUTPUT instead of standard output")
	usage := "[OPTION]... [FILE]\nor:    shuf -e [OPTION]... [ARG]...\nor:    shuf -i LO-HI [OPTION]..."
	if handled, err := parseArgs(hc, c, usage, fs, cf, args[1:]); handled {
		return err
	}

	headCount := -1
	if *headCountStr != "" {
		n, err := strconv.Atoi(*headCountStr)
		if err != nil || n < 0 {
			fmt.Fprintf(hc.Stderr, "%s: invalid line count: `%s'\n", c.name, *headCountStr)
			return &ExitError{Code: types.ExitFailure}
		}
		headCount = n
	}

	operands := fs.Args()
	var lines []string
	switch {
	case *echo && *inputRange != "":
		fmt.Fprintf(hc.Stderr, "%s: cannot combine -e and -i options\n", c.name)
		return &ExitError{Code: types.ExitFailure}
	case *echo:
		lines = append(lines, operands...)
	case len(operands) > 1:
		return extraOperand(hc, c.name, operands[1])
	case *inputRange != "":
		lo, hi, err := parseInputRange(*inputRange)
		if err != nil {
			fmt.Fprintf(hc.Stderr, "%s: invalid input range: `%s'\n", c.name, *inputRange)
			return &ExitError{Code: types.ExitFailure}
		}
		for v := lo; v <= hi; v++ {
			lines = append(lines, strconv.Itoa(v))
		}
	default:
		var err error
		lines, err = readInputLines(hc, operands)
		if err != nil {
			return err
		}
	}

	rand.Shuffle(len(lines), func(i, j int) {
		lines[i], lines[j] = lines[j], lines[i]
	})
	if headCount >= 0 && headCount < len(lines) {
		lines = lines[:headCount]
	}

	return c.writeLines(hc, *output, lines)
}

// parseInputRange parses the -i argument of the form "LO-HI".
func parseInputRange(s string) (lo, hi int, err error) {
	loStr, hiStr, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("invalid input range %q", s)
	}
	if lo, err = strconv.Atoi(loStr); err != nil {
		return 0, 0, err
	}
	if hi, err = strconv.Atoi(hiStr); err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

// readInputLines collects the lines of the single file operand, or of
// standard input when no operand is given.
func readInputLines(hc *HandlerContext, operands []string) ([]string, error) {
	var lines []string
	err := ProcessFilesOrStdin(hc, operands, func(r io.Reader, _ string, _, _ int) error {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			lines = append(lines, sc.Text())
		}
		return sc.Err()
	})
	return lines, err
}

// writeLines prints one line per entry, to the -o file when given.
func (c *shufCommand) writeLines(hc *HandlerContext, output string, lines []string) (err error) {
	var w io.Writer = hc.Stdout
	if output != "" {
		f, createErr := os.Create(hc.Resolve(output))
		if createErr != nil {
			return reportAs(createErr, output)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()
		w = f
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
