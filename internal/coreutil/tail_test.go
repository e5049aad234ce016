// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// numberedLines returns "1\n2\n...n\n".
func numberedLines(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "%d\n", i)
	}
	return b.String()
}

func TestTailLastTenByDefault(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := testHandlerContext(t)
	hc.Stdin = strings.NewReader(numberedLines(15))

	if err := runCommand(t, newTailCommand(), hc); err != nil {
		t.Fatalf("tail returned error: %v", err)
	}
	want := "6\n7\n8\n9\n10\n11\n12\n13\n14\n15\n"
	if stdout.String() != want {
		t.Errorf("output = %q, want %q", stdout.String(), want)
	}
}

func TestTailLineCount(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := testHandlerContext(t)
	hc.Stdin = strings.NewReader(numberedLines(5))

	if err := runCommand(t, newTailCommand(), hc, "-n", "2"); err != nil {
		t.Fatalf("tail -n returned error: %v", err)
	}
	if stdout.String() != "4\n5\n" {
		t.Errorf("output = %q, want %q", stdout.String(), "4\n5\n")
	}
}

func TestTailFromStart(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := testHandlerContext(t)
	hc.Stdin = strings.NewReader(numberedLines(5))

	if err := runCommand(t, newTailCommand(), hc, "-n", "+3"); err != nil {
		t.Fatalf("tail -n +3 returned error: %v", err)
	}
	if stdout.String() != "3\n4\n5\n" {
		t.Errorf("output = %q, want %q", stdout.String(), "3\n4\n5\n")
	}
}

func TestTailShortInputPrintsEverything(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := testHandlerContext(t)
	hc.Stdin = strings.NewReader("only\ntwo\n")

	if err := runCommand(t, newTailCommand(), hc); err != nil {
		t.Fatalf("tail returned error: %v", err)
	}
	if stdout.String() != "only\ntwo\n" {
		t.Errorf("output = %q, want %q", stdout.String(), "only\ntwo\n")
	}
}

func TestTailMultipleFilesGetHeaders(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := testHandlerContext(t)
	if err := os.WriteFile(filepath.Join(hc.Dir, "one.log"), []byte("1a\n1b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(hc.Dir, "two.log"), []byte("2a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, newTailCommand(), hc, "one.log", "two.log"); err != nil {
		t.Fatalf("tail returned error: %v", err)
	}
	want := "==> one.log <==\n1a\n1b\n\n==> two.log <==\n2a\n"
	if stdout.String() != want {
		t.Errorf("output = %q, want %q", stdout.String(), want)
	}
}

func TestTailSingleFileHasNoHeader(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := testHandlerContext(t)
	if err := os.WriteFile(filepath.Join(hc.Dir, "one.log"), []byte("1a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, newTailCommand(), hc, "one.log"); err != nil {
		t.Fatalf("tail returned error: %v", err)
	}
	if stdout.String() != "1a\n" {
		t.Errorf("output = %q, want no header", stdout.String())
	}
}

func TestTailRejectsBadLineCount(t *testing.T) {
	t.Parallel()

	hc, _, stderr := testHandlerContext(t)

	if err := runCommand(t, newTailCommand(), hc, "-n", "many"); err == nil {
		t.Fatal("tail with a bad line count should fail")
	}
	if !strings.Contains(stderr.String(), "invalid number of lines: `many'") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
