// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"context"
	"strings"
	"testing"

	"gocoreutils/internal/coreutil"
)

func runHelp(t *testing.T, argv []string) (string, int) {
	t.Helper()
	reg := coreutil.NewRegistry()
	for _, name := range []string{"brie", "cheddar", "asiago"} {
		mustRegister(t, reg, &fakeCommand{name: name, run: func(context.Context, []string) error {
			return nil
		}})
	}
	opts, stdout, _ := testOptions(t, reg)
	code := Run(context.Background(), argv, opts)
	return stdout.String(), int(code)
}

func TestRun_HelpOutput(t *testing.T) {
	t.Parallel()

	out, code := runHelp(t, []string{"gocoreutils"})

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	for _, want := range []string{
		"-= gocoreutils version " + coreutil.Version + " =-",
		"Usage: gocoreutils COMMAND [ OPTIONS ... ]",
		"Available commands:",
		"asiago, brie, cheddar",
		"Use `gocoreutils COMMAND --help' for help",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_HelpFlagsAgree(t *testing.T) {
	t.Parallel()

	base, _ := runHelp(t, []string{"gocoreutils"})
	for _, flag := range []string{"--help", "-h", "-?"} {
		out, code := runHelp(t, []string{"gocoreutils", flag})
		if code != 1 {
			t.Errorf("%s: exit code = %d, want 1", flag, code)
		}
		if out != base {
			t.Errorf("%s output differs from bare invocation:\n%s", flag, out)
		}
	}
}

func TestRun_EmptyArgv(t *testing.T) {
	t.Parallel()

	out, code := runHelp(t, nil)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out, "Available commands:") {
		t.Errorf("empty argv should print help, got:\n%s", out)
	}
}

func TestRun_HelpWrapsCommandList(t *testing.T) {
	t.Parallel()

	reg := coreutil.NewRegistry()
	for _, name := range []string{"aaaa", "bbbb", "cccc", "dddd"} {
		mustRegister(t, reg, &fakeCommand{name: name, run: func(context.Context, []string) error {
			return nil
		}})
	}
	opts, stdout, _ := testOptions(t, reg)
	opts.Config.HelpWidth = 12

	Run(context.Background(), []string{"gocoreutils", "--help"}, opts)

	var inList bool
	for _, line := range strings.Split(stdout.String(), "\n") {
		switch {
		case strings.Contains(line, "Available commands:"):
			inList = true
		case inList && strings.TrimSpace(line) == "":
			inList = false
		case inList:
			if len(line) > 12 {
				t.Errorf("command list line %q exceeds the configured width", line)
			}
		}
	}
}

func TestCenter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		s     string
		width int
		want  string
	}{
		{"even padding", "ab", 6, "  ab  "},
		{"odd padding favors the right", "ab", 5, " ab  "},
		{"wider than width", "abcdef", 4, "abcdef"},
		{"exact fit", "abcd", 4, "abcd"},
		{"empty", "", 3, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := center(tt.s, tt.width); got != tt.want {
				t.Errorf("center(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		s     string
		width int
		want  []string
	}{
		{"fits on one line", "a, b, c", 10, []string{"a, b, c"}},
		{"splits at word boundaries", "aaaa, bbbb, cccc", 10, []string{"aaaa,", "bbbb,", "cccc"}},
		{"single oversized word", "abcdefghij", 4, []string{"abcdefghij"}},
		{"empty", "", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := wrapLine(tt.s, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapLine(%q, %d) = %v, want %v", tt.s, tt.width, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
