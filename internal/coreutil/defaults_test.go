// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"testing"

	"gocoreutils/internal/config"
)

func TestBuildDefaultRegistry(t *testing.T) {
	t.Parallel()

	r, err := BuildDefaultRegistry(config.DefaultConfig())
	if err != nil {
		t.Fatalf("BuildDefaultRegistry() returned error: %v", err)
	}

	want := []string{
		"arch", "base64", "basename", "bunzip2", "bzip2", "cat", "cd",
		"chown", "chroot", "dirname", "env", "false", "gunzip", "gzip",
		"httpd", "id", "kill", "ln", "logger", "ls", "md5sum", "mkdir",
		"mktemp", "mv", "pwd", "rm", "rmdir", "sendmail", "seq", "sh",
		"sha1sum", "sha224sum", "sha256sum", "sha384sum", "sha512sum",
		"shred", "shuf", "sleep", "smtpd", "sort", "tail", "tee", "touch",
		"uname", "wget", "whoami", "yes", "zip",
	}
	names := r.Names()
	if len(names) != len(want) {
		t.Fatalf("registry holds %d commands, want %d:\n%v", len(names), len(want), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestBuildDefaultRegistryUnixOnly(t *testing.T) {
	t.Parallel()

	r, err := BuildDefaultRegistry(config.DefaultConfig())
	if err != nil {
		t.Fatalf("BuildDefaultRegistry() returned error: %v", err)
	}

	unixOnly := map[string]bool{
		"chown":  true,
		"chroot": true,
		"id":     true,
		"ln":     true,
		"logger": true,
		"tee":    true,
		"whoami": true,
	}
	for _, name := range r.Names() {
		entry, ok := r.Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) failed for a registered command", name)
			continue
		}
		if entry.OnlyUnix != unixOnly[name] {
			t.Errorf("%s: OnlyUnix = %v, want %v", name, entry.OnlyUnix, unixOnly[name])
		}
	}
}
