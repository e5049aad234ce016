// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// cd changes the process working directory, so these tests use t.Chdir for
// restoration and stay serial.

func TestCdChangesDirectory(t *testing.T) {
	start := t.TempDir()
	t.Chdir(start)

	hc, _, _ := testHandlerContext(t)
	if err := os.Mkdir(filepath.Join(hc.Dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, newCdCommand(), hc, "sub"); err != nil {
		t.Fatalf("cd returned error: %v", err)
	}
	got, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want, err := filepath.EvalSymlinks(filepath.Join(hc.Dir, "sub"))
	if err != nil {
		t.Fatal(err)
	}
	if resolved, err := filepath.EvalSymlinks(got); err != nil || resolved != want {
		t.Errorf("working directory = %q, want %q", got, want)
	}
}

func TestCdWithoutOperandGoesHome(t *testing.T) {
	t.Chdir(t.TempDir())

	home := t.TempDir()
	hc, _, _ := testHandlerContext(t)
	hc.LookupEnv = func(name string) (string, bool) {
		if name == "HOME" {
			return home, true
		}
		return "", false
	}

	if err := runCommand(t, newCdCommand(), hc); err != nil {
		t.Fatalf("cd returned error: %v", err)
	}
	got, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want, err := filepath.EvalSymlinks(home)
	if err != nil {
		t.Fatal(err)
	}
	if resolved, err := filepath.EvalSymlinks(got); err != nil || resolved != want {
		t.Errorf("working directory = %q, want home %q", got, want)
	}
}

func TestCdMissingDirectory(t *testing.T) {
	t.Chdir(t.TempDir())

	hc, _, _ := testHandlerContext(t)

	if err := runCommand(t, newCdCommand(), hc, "nowhere"); err == nil {
		t.Error("cd to a missing directory should fail")
	}
}

func TestCdExtraOperand(t *testing.T) {
	t.Chdir(t.TempDir())

	hc, _, stderr := testHandlerContext(t)

	if err := runCommand(t, newCdCommand(), hc, "a", "b"); err == nil {
		t.Fatal("cd with two operands should fail")
	}
	if !strings.Contains(stderr.String(), "extra operand `b'") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestExpandHome(t *testing.T) {
	t.Parallel()

	hc := &HandlerContext{
		LookupEnv: func(name string) (string, bool) {
			if name == "HOME" {
				return "/home/tester", true
			}
			return "", false
		},
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "plain path untouched", path: "work", want: "work"},
		{name: "absolute untouched", path: "/etc", want: "/etc"},
		{name: "empty means home", path: "", want: "/home/tester"},
		{name: "bare tilde", path: "~", want: "/home/tester"},
		{name: "tilde prefix", path: "~/projects", want: filepath.Join("/home/tester", "projects")},
		{name: "tilde inside name untouched", path: "a~b", want: "a~b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := expandHome(hc, tt.path)
			if err != nil {
				t.Fatalf("expandHome(%q) returned error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("expandHome(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
