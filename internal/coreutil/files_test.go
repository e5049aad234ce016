// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestProcessFilesOrStdinReadsStdinWithoutOperands(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := testHandlerContext(t)
	hc.Stdin = strings.NewReader("from stdin")

	err := ProcessFilesOrStdin(hc, nil, func(r io.Reader, name string, index, total int) error {
		if name != "-" {
			t.Errorf("name = %q, want %q", name, "-")
		}
		if total != 1 {
			t.Errorf("total = %d, want 1", total)
		}
		_, copyErr := io.Copy(hc.Stdout, r)
		return copyErr
	})
	if err != nil {
		t.Fatalf("ProcessFilesOrStdin() returned error: %v", err)
	}
	if stdout.String() != "from stdin" {
		t.Errorf("output = %q, want %q", stdout.String(), "from stdin")
	}
}

func TestProcessFilesOrStdinOpensRelativeToDir(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := testHandlerContext(t)
	if err := os.WriteFile(filepath.Join(hc.Dir, "a.txt"), []byte("alpha\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(hc.Dir, "b.txt"), []byte("beta\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var order []string
	err := ProcessFilesOrStdin(hc, []string{"a.txt", "b.txt"}, func(r io.Reader, name string, index, total int) error {
		order = append(order, fmt.Sprintf("%s:%d/%d", name, index, total))
		_, copyErr := io.Copy(hc.Stdout, r)
		return copyErr
	})
	if err != nil {
		t.Fatalf("ProcessFilesOrStdin() returned error: %v", err)
	}

	if stdout.String() != "alpha\nbeta\n" {
		t.Errorf("output = %q, want %q", stdout.String(), "alpha\nbeta\n")
	}
	wantOrder := []string{"a.txt:0/2", "b.txt:1/2"}
	for i, want := range wantOrder {
		if order[i] != want {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want)
		}
	}
}

func TestProcessFilesOrStdinDashReadsStdinBetweenFiles(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := testHandlerContext(t)
	hc.Stdin = strings.NewReader("mid\n")
	if err := os.WriteFile(filepath.Join(hc.Dir, "a.txt"), []byte("first\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := ProcessFilesOrStdin(hc, []string{"a.txt", "-"}, func(r io.Reader, name string, index, total int) error {
		_, copyErr := io.Copy(hc.Stdout, r)
		return copyErr
	})
	if err != nil {
		t.Fatalf("ProcessFilesOrStdin() returned error: %v", err)
	}
	if stdout.String() != "first\nmid\n" {
		t.Errorf("output = %q, want %q", stdout.String(), "first\nmid\n")
	}
}

func TestProcessFilesOrStdinMissingFileKeepsOperandName(t *testing.T) {
	t.Parallel()

	hc, _, _ := testHandlerContext(t)

	err := ProcessFilesOrStdin(hc, []string{"missing.txt"}, func(io.Reader, string, int, int) error {
		t.Error("processor should not run for a file that failed to open")
		return nil
	})
	if err == nil {
		t.Fatal("ProcessFilesOrStdin() should fail for a missing file")
	}

	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("error is not a *fs.PathError: %v", err)
	}
	if pathErr.Path != "missing.txt" {
		t.Errorf("PathError.Path = %q, want the operand as written", pathErr.Path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should satisfy fs.ErrNotExist: %v", err)
	}
}

func TestProcessFilesOrStdinStopsAtFirstError(t *testing.T) {
	t.Parallel()

	hc, _, _ := testHandlerContext(t)
	if err := os.WriteFile(filepath.Join(hc.Dir, "ok.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	calls := 0
	err := ProcessFilesOrStdin(hc, []string{"ok.txt", "gone.txt", "ok.txt"}, func(io.Reader, string, int, int) error {
		calls++
		return nil
	})
	if err == nil {
		t.Fatal("ProcessFilesOrStdin() should propagate the open failure")
	}
	if calls != 1 {
		t.Errorf("processor ran %d times, want 1", calls)
	}
}
