// SPDX-License-Identifier: MPL-2.0

package coreutil

import "context"

type (
	// Command defines the interface implemented by every built-in utility
	// (cat, gzip, seq, etc.).
	Command interface {
		// Name returns the command name (e.g. "cat", "gzip").
		Name() string

		// Run executes the command with the given context and arguments.
		// The context carries the HandlerContext with stdin/stdout/stderr.
		// args[0] is the command name (for diagnostics), args[1:] are the
		// flags and operands. Run returns nil on success; it reports
		// failures as errors and never exits the process itself.
		Run(ctx context.Context, args []string) error

		// SupportedFlags returns the flags this command accepts. The list
		// drives argument normalization (short-flag clustering) and is
		// also used for documentation and introspection.
		SupportedFlags() []FlagInfo
	}

	// FlagInfo describes one flag accepted by a Command.
	FlagInfo struct {
		// Name is the flag name without dashes (e.g. "d" for -d,
		// "decompress" for --decompress).
		Name string
		// ShortName is the single-character alias (e.g. "d" for
		// --decompress). Empty if no short form exists.
		ShortName string
		// Description explains what the flag does.
		Description string
		// TakesValue indicates whether the flag consumes a value
		// (e.g. -n 10).
		TakesValue bool
	}
)
