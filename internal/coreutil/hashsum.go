// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"
)

// hashsumCommand implements the md5sum/sha*sum family. All six commands
// share one implementation parameterized by the hash constructor.
type hashsumCommand struct {
	name    string
	flags   []FlagInfo
	newHash func() hash.Hash
}

func newMd5sumCommand() *hashsumCommand {
	return &hashsumCommand{name: "md5sum", newHash: md5.New}
}

func newSha1sumCommand() *hashsumCommand {
	return &hashsumCommand{name: "sha1sum", newHash: sha1.New}
}

func newSha224sumCommand() *hashsumCommand {
	return &hashsumCommand{name: "sha224sum", newHash: sha256.New224}
}

func newSha256sumCommand() *hashsumCommand {
	return &hashsumCommand{name: "sha256sum", newHash: sha256.New}
}

func newSha384sumCommand() *hashsumCommand {
	return &hashsumCommand{name: "sha384sum", newHash: sha512.New384}
}

func newSha512sumCommand() *hashsumCommand {
	return &hashsumCommand{name: "sha512sum", newHash: sha512.New}
}

// Name returns the command name.
func (c *hashsumCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *hashsumCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the checksum command.
// Usage: md5sum [FILE]...
// Prints "<digest>  <name>" for each FILE, or for stdin as "-".
func (c *hashsumCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs, cf := newFlagSet(c.name)
	if handled, err := parseArgs(hc, c, "[FILE]...", fs, cf, args[1:]); handled {
		return err
	}

	return ProcessFilesOrStdin(hc, fs.Args(), func(r io.Reader, name string, _, _ int) error {
		h := c.newHash()
		if _, err := io.Copy(h, r); err != nil {
			return err
		}
		_, err := fmt.Fprintf(hc.Stdout, "%x  %s\n", h.Sum(nil), name)
		return err
	})
}
