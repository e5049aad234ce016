// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRmRemovesFiles(t *testing.T) {
	t.Parallel()

	hc, _, _ := testHandlerContext(t)
	for _, name := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(hc.Dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := runCommand(t, newRmCommand(), hc, "a.txt", "b.txt"); err != nil {
		t.Fatalf("rm returned error: %v", err)
	}
	for _, name := range []string{"a.txt", "b.txt"} {
		if _, err := os.Stat(filepath.Join(hc.Dir, name)); err == nil {
			t.Errorf("%s still exists", name)
		}
	}
}

func TestRmRefusesDirectoryWithoutRecursive(t *testing.T) {
	t.Parallel()

	hc, _, _ := testHandlerContext(t)
	if err := os.Mkdir(filepath.Join(hc.Dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(hc.Dir, "sub", "f"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, newRmCommand(), hc, "sub"); err == nil {
		t.Error("rm on a non-empty directory without -r should fail")
	}
	if _, err := os.Stat(filepath.Join(hc.Dir, "sub")); err != nil {
		t.Error("the directory should survive the failed removal")
	}
}

func TestRmRecursive(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := testHandlerContext(t)
	if err := os.MkdirAll(filepath.Join(hc.Dir, "tree", "deep"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(hc.Dir, "tree", "top.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(hc.Dir, "tree", "deep", "leaf.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, newRmCommand(), hc, "-r", "-v", "tree"); err != nil {
		t.Fatalf("rm -r returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(hc.Dir, "tree")); err == nil {
		t.Error("tree still exists after rm -r")
	}

	out := stdout.String()
	for _, want := range []string{"leaf.txt", "top.txt", "deep"} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q:\n%s", want, out)
		}
	}
}

func TestRmMissingFile(t *testing.T) {
	t.Parallel()

	hc, _, _ := testHandlerContext(t)

	err := runCommand(t, newRmCommand(), hc, "ghost.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error = %v, want fs.ErrNotExist", err)
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Path != "ghost.txt" {
		t.Errorf("PathError.Path = %q, want the operand as written", pathErr.Path)
	}
}

func TestRmForceIgnoresMissing(t *testing.T) {
	t.Parallel()

	hc, _, stderr := testHandlerContext(t)

	if err := runCommand(t, newRmCommand(), hc, "-f", "ghost.txt"); err != nil {
		t.Fatalf("rm -f on a missing file returned error: %v", err)
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
}

func TestRmMissingOperand(t *testing.T) {
	t.Parallel()

	hc, _, stderr := testHandlerContext(t)

	if err := runCommand(t, newRmCommand(), hc); err == nil {
		t.Fatal("rm without operands should fail")
	}
	if !strings.Contains(stderr.String(), "rm: missing operand") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
