// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"gocoreutils/pkg/types"
)

// commonFlags holds the flags shared by every command.
type commonFlags struct {
	license *bool
	version *bool
}

// newFlagSet creates the flag set for a command with the shared --license
// and --version flags pre-registered. Parse errors are reported by
// parseArgs, so the flag set's own output is silenced.
func newFlagSet(name string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cf := &commonFlags{
		license: fs.Bool("license", false, "show program license and exit"),
		version: fs.Bool("version", false, "show version information and exit"),
	}
	return fs, cf
}

// parseArgs runs the shared argument pipeline for a command: short-flag
// normalization, flag parsing, -h/--help, --license, and --version. It
// reports handled=true when Run should immediately return err: either a
// request that is fully serviced here (help, license, version) or a usage
// error already reported on stderr.
func parseArgs(hc *HandlerContext, c Command, usage string, fs *flag.FlagSet, cf *commonFlags, args []string) (handled bool, err error) {
	parseErr := fs.Parse(NormalizeArgs(c.SupportedFlags(), args))
	if parseErr != nil {
		if errors.Is(parseErr, flag.ErrHelp) {
			printUsage(hc.Stdout, c.Name(), usage, fs)
			return true, nil
		}
		fmt.Fprintf(hc.Stderr, "%s: %s\n", c.Name(), parseErr)
		fmt.Fprintf(hc.Stderr, "Try '%s --help' for more information.\n", c.Name())
		return true, &ExitError{Code: types.ExitFailure}
	}
	if *cf.license {
		fmt.Fprint(hc.Stdout, LicenseNotice)
		return true, nil
	}
	if *cf.version {
		fmt.Fprintf(hc.Stdout, "%s (gocoreutils) %s\n", c.Name(), Version)
		return true, nil
	}
	return false, nil
}

// printUsage writes the help text for a command: the usage line followed by
// one line per flag in the flag set.
func printUsage(w io.Writer, name, usage string, fs *flag.FlagSet) {
	if usage != "" {
		fmt.Fprintf(w, "Usage: %s %s\n", name, usage)
	} else {
		fmt.Fprintf(w, "Usage: %s [OPTION]...\n", name)
	}
	fmt.Fprintln(w, "Options:")
	fs.VisitAll(func(f *flag.Flag) {
		dashes := "--"
		if len(f.Name) == 1 {
			dashes = "-"
		}
		fmt.Fprintf(w, "  %s%s\t%s\n", dashes, f.Name, f.Usage)
	})
}

// missingOperand reports the conventional "missing operand" diagnostic and
// returns the usage-error exit. after, when non-empty, names the operand
// the missing one should have followed.
func missingOperand(hc *HandlerContext, name, after string) error {
	if after != "" {
		fmt.Fprintf(hc.Stderr, "%s: missing operand after `%s'\n", name, after)
	} else {
		fmt.Fprintf(hc.Stderr, "%s: missing operand\n", name)
	}
	fmt.Fprintf(hc.Stderr, "Try '%s --help' for more information.\n", name)
	return &ExitError{Code: types.ExitFailure}
}

// extraOperand reports the conventional "extra operand" diagnostic for the
// first operand past what the command accepts.
func extraOperand(hc *HandlerContext, name, operand string) error {
	fmt.Fprintf(hc.Stderr, "%s: extra operand `%s'\n", name, operand)
	fmt.Fprintf(hc.Stderr, "Try '%s --help' for more information.\n", name)
	return &ExitError{Code: types.ExitFailure}
}
