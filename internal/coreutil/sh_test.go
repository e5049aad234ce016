// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gocoreutils/pkg/types"
)

// shTestRegistry builds a registry with a few builtins for the shell to
// intercept.
func shTestRegistry(t *testing.T) *Registry {
	t.Helper()

	r := NewRegistry()
	for _, cmd := range []Command{newSeqCommand(), newBasenameCommand(), newSortCommand()} {
		if err := r.Register(cmd); err != nil {
			t.Fatal(err)
		}
	}
	return r
}

func TestShRunsRegisteredCommandsAsBuiltins(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := testHandlerContext(t)
	if err := runCommand(t, newShCommand(shTestRegistry(t)), hc, "-c", "seq 3"); err != nil {
		t.Fatalf("sh -c returned error: %v", err)
	}
	if stdout.String() != "1\n2\n3\n" {
		t.Errorf("output = %q, want %q", stdout.String(), "1\n2\n3\n")
	}
}

func TestShPipesBetweenBuiltins(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := testHandlerContext(t)
	err := runCommand(t, newShCommand(shTestRegistry(t)), hc, "-c", "seq 3 -1 1 | sort")
	if err != nil {
		t.Fatalf("sh -c pipeline returned error: %v", err)
	}
	if stdout.String() != "1\n2\n3\n" {
		t.Errorf("output = %q, want the sorted sequence", stdout.String())
	}
}

func TestShRunsScriptFileWithParameters(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := testHandlerContext(t)
	script := "seq \"$1\"\nbasename \"$2\"\n"
	if err := os.WriteFile(filepath.Join(hc.Dir, "demo.sh"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	err := runCommand(t, newShCommand(shTestRegistry(t)), hc, "demo.sh", "2", "/tmp/file.txt")
	if err != nil {
		t.Fatalf("sh script returned error: %v", err)
	}
	if stdout.String() != "1\n2\nfile.txt\n" {
		t.Errorf("output = %q, want %q", stdout.String(), "1\n2\nfile.txt\n")
	}
}

func TestShReadsScriptFromStdin(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := testHandlerContext(t)
	hc.Stdin = strings.NewReader("seq 2\n")

	if err := runCommand(t, newShCommand(shTestRegistry(t)), hc); err != nil {
		t.Fatalf("sh on stdin returned error: %v", err)
	}
	if stdout.String() != "1\n2\n" {
		t.Errorf("output = %q, want %q", stdout.String(), "1\n2\n")
	}
}

func TestShPropagatesBuiltinExitStatus(t *testing.T) {
	t.Parallel()

	hc, _, stderr := testHandlerContext(t)
	// seq without operands is a usage error inside the builtin.
	err := runCommand(t, newShCommand(shTestRegistry(t)), hc, "-c", "seq")

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("sh returned %v, want *ExitError", err)
	}
	if exitErr.Code != types.ExitFailure {
		t.Errorf("exit code = %s, want 1", exitErr.Code)
	}
	if !strings.Contains(stderr.String(), "missing operand") {
		t.Errorf("stderr = %q, want the builtin's diagnostic", stderr.String())
	}
}

func TestShReportsSyntaxErrors(t *testing.T) {
	t.Parallel()

	hc, _, _ := testHandlerContext(t)
	err := runCommand(t, newShCommand(shTestRegistry(t)), hc, "-c", "fi")

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("sh returned %v, want *ExitError", err)
	}
	if exitErr.Code != 2 {
		t.Errorf("exit code = %s, want 2", exitErr.Code)
	}
}

func TestShMissingScriptFile(t *testing.T) {
	t.Parallel()

	hc, _, _ := testHandlerContext(t)
	err := runCommand(t, newShCommand(shTestRegistry(t)), hc, "no-such-script.sh")
	if err == nil {
		t.Fatal("sh on a missing script should fail")
	}
	if !strings.Contains(err.Error(), "no-such-script.sh") {
		t.Errorf("error = %q, want it to name the script", err)
	}
}
