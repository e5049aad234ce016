// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gocoreutils/internal/config"
	"gocoreutils/internal/coreutil"
	"gocoreutils/pkg/platform"
	"gocoreutils/pkg/types"
)

// Options carries the process environment of a single dispatch: the command
// registry, the loaded configuration, and the streams and environment the
// invoked command runs against. Tests substitute buffers and fake
// environments here.
type Options struct {
	// Registry resolves command names.
	Registry *coreutil.Registry
	// Config is the loaded application configuration. Nil falls back to
	// built-in defaults.
	Config *config.Config
	// Stdin, Stdout, and Stderr are the standard streams handed to the
	// command.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Dir is the working directory relative operands resolve against.
	Dir string
	// LookupEnv and Environ expose the environment to the command.
	LookupEnv func(string) (string, bool)
	// Environ returns the full environment as "key=value" strings.
	Environ func() []string
	// GOOS names the platform dispatch runs on, normally runtime.GOOS.
	// Unix-only commands are refused when it is "windows".
	GOOS string
}

// Run resolves argv into exactly one command invocation and returns the
// process exit code.
//
// When the program name is the multi-call binary itself, the first argument
// names the command and is consumed; otherwise the program name is the
// command, supporting invocation through per-command symlinks. No arguments,
// or -h, -?, or --help in place of a command, prints the banner and the
// command listing.
func Run(ctx context.Context, argv []string, opts Options) types.ExitCode {
	if len(argv) == 0 {
		printHelp(opts)
		return types.ExitFailure
	}

	name := progName(argv[0])
	if name == config.AppName {
		if len(argv) == 1 || argv[1] == "-h" || argv[1] == "-?" || argv[1] == "--help" {
			printHelp(opts)
			return types.ExitFailure
		}
		argv = argv[1:]
		name = argv[0]
	}

	entry, ok := opts.Registry.Lookup(name)
	if !ok {
		fmt.Fprintf(opts.Stdout, "Command %s not supported.\n", name)
		fmt.Fprintf(opts.Stdout, "Use %s --help for a list of valid commands.\n", config.AppName)
		return types.ExitFailure
	}

	if entry.OnlyUnix && opts.GOOS == platform.Windows {
		fmt.Fprintf(opts.Stdout, "Command %s does not work on Windows\n", name)
		return types.ExitFailure
	}

	hc := &coreutil.HandlerContext{
		Stdin:     opts.Stdin,
		Stdout:    opts.Stdout,
		Stderr:    opts.Stderr,
		Dir:       opts.Dir,
		LookupEnv: opts.LookupEnv,
		Environ:   opts.Environ,
	}
	err := entry.Command.Run(coreutil.WithHandlerContext(ctx, hc), argv)

	code, diagnostic := coreutil.ResolveExit(name, err)
	if diagnostic != "" {
		fmt.Fprintln(opts.Stderr, diagnostic)
	}
	return code
}

// progName extracts the command name from the program path, tolerating a
// Windows .exe suffix.
func progName(arg0 string) string {
	return strings.TrimSuffix(filepath.Base(arg0), ".exe")
}
