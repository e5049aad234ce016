// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"gocoreutils/pkg/types"
)

// base64LineWidth is the column at which encoded output wraps, matching the
// traditional MIME line length.
const base64LineWidth = 76

// base64Command implements the base64 utility.
type base64Command struct {
	name  string
	flags []FlagInfo
}

// newBase64Command creates a new base64 command.
func newBase64Command() *base64Command {
	return &base64Command{
		name: "base64",
		flags: []FlagInfo{
			{Name: "d", Description: "decode data"},
		},
	}
}

// Name returns the command name.
func (c *base64Command) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *base64Command) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the base64 command.
// Usage: base64 [OPTION]... [FILE]...
// Encodes FILEs (or stdin) to standard output, or decodes with -d.
func (c *base64Command) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs, cf := newFlagSet(c.name)
	decode := fs.Bool("d", false, "decode data")
	if handled, err := parseArgs(hc, c, "[OPTION]... [FILE]...", fs, cf, args[1:]); handled {
		return err
	}

	return ProcessFilesOrStdin(hc, fs.Args(), func(r io.Reader, name string, _, _ int) error {
		if *decode {
			return c.decode(hc.Stdout, r)
		}
		return c.encode(hc.Stdout, r)
	})
}

// encode writes the base64 encoding of r wrapped at base64LineWidth columns.
func (c *base64Command) encode(w io.Writer, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > base64LineWidth {
		if _, err := fmt.Fprintln(w, encoded[:base64LineWidth]); err != nil {
			return err
		}
		encoded = encoded[base64LineWidth:]
	}
	if len(encoded) > 0 {
		if _, err := fmt.Fprintln(w, encoded); err != nil {
			return err
		}
	}
	return nil
}

// decode writes the decoded bytes of the base64 text in r, ignoring
// whitespace the encoder inserted.
func (c *base64Command) decode(w io.Writer, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	cleaned := strings.Map(func(ch rune) rune {
		switch ch {
		case '\n', '\r', '\t', ' ':
			return -1
		}
		return ch
	}, string(data))

	decoded, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: errors.New("invalid input")}
	}
	_, err = w.Write(decoded)
	return err
}
