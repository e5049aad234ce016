// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gocoreutils/pkg/types"
)

// killCommand implements the kill utility.
type killCommand struct {
	name  string
	flags []FlagInfo
}

// newKillCommand creates a new kill command. Every signal known on the
// platform is exposed through -s NAME and as its own --SIGNAME flag; signal
// numbers below 10 also get the traditional -N spelling. Larger numbers
// (kill -15) are recognized by a pre-parse scan.
func newKillCommand() *killCommand {
	flags := []FlagInfo{
		{Name: "s", Description: "the signal to send, by name", TakesValue: true},
	}
	for _, name := range signalNames() {
		flags = append(flags, FlagInfo{Name: name, Description: "send the " + name + " signal"})
		if num, ok := signalNumberOf(name); ok && num < 10 {
			flags = append(flags, FlagInfo{Name: strconv.Itoa(num), Description: "send the " + name + " signal"})
		}
	}
	return &killCommand{name: "kill", flags: flags}
}

// Name returns the command name.
func (c *killCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *killCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the kill command.
// Usage: kill [-s SIGNAL | -SIGNAL] PID...
// Sends a signal (default SIGTERM) to each PID.
func (c *killCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	// The flag package cannot register "-15" style flags for every signal
	// number, so numeric spellings are extracted before parsing.
	rest := make([]string, 0, len(args)-1)
	var numeric os.Signal
	for _, arg := range args[1:] {
		if len(arg) > 2 && arg[0] == '-' && allDigits(arg[1:]) {
			n, _ := strconv.Atoi(arg[1:])
			sig, ok := signalByNumber(n)
			if !ok {
				return &ExitError{Code: types.ExitFailure, Err: fmt.Errorf("%s: invalid signal specification", arg[1:])}
			}
			numeric = sig
			continue
		}
		rest = append(rest, arg)
	}

	fs, cf := newFlagSet(c.name)
	sigName := fs.String("s", "", "the signal to send, by name")
	named := make(map[string]*bool)
	for _, name := range signalNames() {
		named[name] = fs.Bool(name, false, "send the "+name+" signal")
		if num, ok := signalNumberOf(name); ok && num < 10 {
			named[name+"#"] = fs.Bool(strconv.Itoa(num), false, "send the "+name+" signal")
		}
	}
	if handled, err := parseArgs(hc, c, "[-s SIGNAL | -SIGNAL] PID...", fs, cf, rest); handled {
		return err
	}

	sig, err := c.resolveSignal(numeric, *sigName, named)
	if err != nil {
		return err
	}

	operands := fs.Args()
	if len(operands) == 0 {
		fmt.Fprintf(hc.Stderr, "%s: missing PID\n", c.name)
		fmt.Fprintf(hc.Stderr, "Try '%s --help' for more information.\n", c.name)
		return &ExitError{Code: types.ExitFailure}
	}

	for _, operand := range operands {
		pid, err := strconv.Atoi(operand)
		if err != nil {
			return &ExitError{Code: types.ExitFailure, Err: fmt.Errorf("%s: arguments must be process or job IDs", operand)}
		}
		proc, err := os.FindProcess(pid)
		if err != nil {
			return &ExitError{Code: types.ExitFailure, Err: fmt.Errorf("(%d) - %s", pid, err)}
		}
		if err := proc.Signal(sig); err != nil {
			return &ExitError{Code: types.ExitFailure, Err: fmt.Errorf("(%d) - %s", pid, err)}
		}
	}
	return nil
}

// resolveSignal picks the signal to send: a numeric -N spelling wins, then
// --SIGNAME flags, then -s NAME, and finally the SIGTERM default.
func (c *killCommand) resolveSignal(numeric os.Signal, sigName string, named map[string]*bool) (os.Signal, error) {
	if numeric != nil {
		return numeric, nil
	}
	for _, name := range signalNames() {
		set := named[name]
		numSet := named[name+"#"]
		if (set != nil && *set) || (numSet != nil && *numSet) {
			sig, _ := signalByName(name)
			return sig, nil
		}
	}
	if sigName != "" {
		sig, ok := signalByName(normalizeSignalName(sigName))
		if !ok {
			return nil, &ExitError{Code: types.ExitFailure, Err: fmt.Errorf("%s: invalid signal specification", sigName)}
		}
		return sig, nil
	}
	sig, _ := signalByName("SIGTERM")
	return sig, nil
}

// normalizeSignalName upper-cases a signal name and adds the SIG prefix if
// missing, so "term", "TERM", and "SIGTERM" are equivalent.
func normalizeSignalName(name string) string {
	name = strings.ToUpper(name)
	if !strings.HasPrefix(name, "SIG") {
		name = "SIG" + name
	}
	return name
}

// allDigits reports whether s is non-empty and entirely ASCII digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
