// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeZipFixture creates a source tree under dir with one top-level file
// and one nested file.
func writeZipFixture(t *testing.T, dir string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("beta\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestZipCreateListExtractTest(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := testHandlerContext(t)
	writeZipFixture(t, hc.Dir)

	if err := runCommand(t, newZipCommand(), hc, "-c", "out.zip", "a.txt", "sub"); err != nil {
		t.Fatalf("zip -c returned error: %v", err)
	}

	stdout.Reset()
	if err := runCommand(t, newZipCommand(), hc, "-l", "out.zip"); err != nil {
		t.Fatalf("zip -l returned error: %v", err)
	}
	listing := stdout.String()
	for _, name := range []string{"a.txt", "sub/b.txt"} {
		if !strings.Contains(listing, name) {
			t.Errorf("listing %q does not mention %q", listing, name)
		}
	}

	stdout.Reset()
	if err := runCommand(t, newZipCommand(), hc, "-t", "out.zip"); err != nil {
		t.Fatalf("zip -t returned error: %v", err)
	}
	if !strings.Contains(stdout.String(), "tested ok") {
		t.Errorf("test output = %q, want it to report tested ok", stdout.String())
	}

	if err := runCommand(t, newZipCommand(), hc, "-e", "out.zip", "unpacked"); err != nil {
		t.Fatalf("zip -e returned error: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(hc.Dir, "unpacked", "a.txt"))
	if err != nil {
		t.Fatalf("extracted a.txt missing: %v", err)
	}
	if string(got) != "alpha\n" {
		t.Errorf("extracted a.txt = %q, want %q", got, "alpha\n")
	}
	got, err = os.ReadFile(filepath.Join(hc.Dir, "unpacked", "sub", "b.txt"))
	if err != nil {
		t.Fatalf("extracted sub/b.txt missing: %v", err)
	}
	if string(got) != "beta\n" {
		t.Errorf("extracted sub/b.txt = %q, want %q", got, "beta\n")
	}
}

func TestZipExtractRejectsEscapingPaths(t *testing.T) {
	t.Parallel()

	hc, _, _ := testHandlerContext(t)

	out, err := os.Create(filepath.Join(hc.Dir, "evil.zip"))
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(out)
	w, err := zw.Create("../escape.txt")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("nope")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := out.Close(); err != nil {
		t.Fatal(err)
	}

	err = runCommand(t, newZipCommand(), hc, "-e", "evil.zip", "unpacked")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("zip -e on escaping archive returned %v, want *ExitError", err)
	}
	if !strings.Contains(exitErr.Error(), "insecure path") {
		t.Errorf("error = %q, want it to mention insecure path", exitErr.Error())
	}
	if _, statErr := os.Stat(filepath.Join(hc.Dir, "escape.txt")); !os.IsNotExist(statErr) {
		t.Error("escaping member was extracted outside the target")
	}
}

func TestZipUsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "no mode flag", args: []string{"archive.zip"}},
		{name: "list needs one operand", args: []string{"-l"}},
		{name: "extract needs target", args: []string{"-e", "archive.zip"}},
		{name: "create needs sources", args: []string{"-c", "archive.zip"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hc, _, stderr := testHandlerContext(t)
			err := runCommand(t, newZipCommand(), hc, tt.args...)
			var exitErr *ExitError
			if !errors.As(err, &exitErr) {
				t.Fatalf("zip returned %v, want *ExitError", err)
			}
			if !strings.Contains(stderr.String(), "Usage:") {
				t.Errorf("stderr = %q, want a usage line", stderr.String())
			}
		})
	}
}

func TestZipMissingArchive(t *testing.T) {
	t.Parallel()

	hc, _, _ := testHandlerContext(t)
	err := runCommand(t, newZipCommand(), hc, "-l", "no-such.zip")
	if err == nil {
		t.Fatal("zip -l on a missing archive should fail")
	}
	if !strings.Contains(err.Error(), "no-such.zip") {
		t.Errorf("error = %q, want it to name the operand", err)
	}
}
