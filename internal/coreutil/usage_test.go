// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"errors"
	"strings"
	"testing"

	"gocoreutils/pkg/types"
)

func TestParseArgsHelp(t *testing.T) {
	t.Parallel()

	hc, stdout, stderr := testHandlerContext(t)
	cmd := &stubCommand{name: "frob"}
	fs, cf := newFlagSet(cmd.name)
	fs.Bool("x", false, "exercise the flag listing")

	handled, err := parseArgs(hc, cmd, "[OPTION]... FILE", fs, cf, []string{"--help"})
	if !handled {
		t.Fatal("parseArgs() should handle --help")
	}
	if err != nil {
		t.Fatalf("parseArgs() returned error for --help: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "Usage: frob [OPTION]... FILE") {
		t.Errorf("help output missing usage line: %q", out)
	}
	if !strings.Contains(out, "-x") {
		t.Errorf("help output missing flag listing: %q", out)
	}
	if stderr.Len() != 0 {
		t.Errorf("help should not write to stderr, got %q", stderr.String())
	}
}

func TestParseArgsUnknownFlag(t *testing.T) {
	t.Parallel()

	hc, _, stderr := testHandlerContext(t)
	cmd := &stubCommand{name: "frob"}
	fs, cf := newFlagSet(cmd.name)

	handled, err := parseArgs(hc, cmd, "", fs, cf, []string{"--bogus"})
	if !handled {
		t.Fatal("parseArgs() should handle a parse failure")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error is not an *ExitError: %v", err)
	}
	if exitErr.Code != types.ExitFailure {
		t.Errorf("exit code = %d, want %d", exitErr.Code, types.ExitFailure)
	}

	msg := stderr.String()
	if !strings.Contains(msg, "frob:") {
		t.Errorf("diagnostic missing command name: %q", msg)
	}
	if !strings.Contains(msg, "Try 'frob --help' for more information.") {
		t.Errorf("diagnostic missing help hint: %q", msg)
	}
}

func TestParseArgsLicense(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := testHandlerContext(t)
	cmd := &stubCommand{name: "frob"}
	fs, cf := newFlagSet(cmd.name)

	handled, err := parseArgs(hc, cmd, "", fs, cf, []string{"--license"})
	if !handled || err != nil {
		t.Fatalf("parseArgs() = (%v, %v), want license handled cleanly", handled, err)
	}
	if !strings.Contains(stdout.String(), "Mozilla Public") {
		t.Errorf("license output = %q, want the MPL notice", stdout.String())
	}
}

func TestParseArgsVersion(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := testHandlerContext(t)
	cmd := &stubCommand{name: "frob"}
	fs, cf := newFlagSet(cmd.name)

	handled, err := parseArgs(hc, cmd, "", fs, cf, []string{"--version"})
	if !handled || err != nil {
		t.Fatalf("parseArgs() = (%v, %v), want version handled cleanly", handled, err)
	}
	want := "frob (gocoreutils) " + Version + "\n"
	if stdout.String() != want {
		t.Errorf("version output = %q, want %q", stdout.String(), want)
	}
}

func TestParseArgsPassesOperandsThrough(t *testing.T) {
	t.Parallel()

	hc, _, _ := testHandlerContext(t)
	cmd := &stubCommand{name: "frob"}
	fs, cf := newFlagSet(cmd.name)

	handled, err := parseArgs(hc, cmd, "", fs, cf, []string{"one", "two"})
	if handled || err != nil {
		t.Fatalf("parseArgs() = (%v, %v), want not handled", handled, err)
	}
	if fs.NArg() != 2 {
		t.Errorf("NArg() = %d, want 2", fs.NArg())
	}
}

func TestOperandDiagnostics(t *testing.T) {
	t.Parallel()

	t.Run("missing operand", func(t *testing.T) {
		t.Parallel()

		hc, _, stderr := testHandlerContext(t)
		err := missingOperand(hc, "basename", "")
		var exitErr *ExitError
		if !errors.As(err, &exitErr) || exitErr.Code != types.ExitFailure {
			t.Fatalf("missingOperand() = %v, want usage-error exit", err)
		}
		if !strings.Contains(stderr.String(), "basename: missing operand\n") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})

	t.Run("missing operand after", func(t *testing.T) {
		t.Parallel()

		hc, _, stderr := testHandlerContext(t)
		_ = missingOperand(hc, "mv", "src")
		if !strings.Contains(stderr.String(), "mv: missing operand after `src'\n") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})

	t.Run("extra operand", func(t *testing.T) {
		t.Parallel()

		hc, _, stderr := testHandlerContext(t)
		err := extraOperand(hc, "arch", "surplus")
		var exitErr *ExitError
		if !errors.As(err, &exitErr) || exitErr.Code != types.ExitFailure {
			t.Fatalf("extraOperand() = %v, want usage-error exit", err)
		}
		if !strings.Contains(stderr.String(), "arch: extra operand `surplus'\n") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})
}
