// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"gocoreutils/pkg/platform"
	"gocoreutils/pkg/types"
)

// shCommand implements a shell whose builtins are the registered commands.
// Scripts come from -c, a script file operand, or standard input; names not
// in the registry run as external programs.
type shCommand struct {
	name     string
	flags    []FlagInfo
	registry *Registry
}

func newShCommand(registry *Registry) *shCommand {
	return &shCommand{
		name: "sh",
		flags: []FlagInfo{
			{Name: "c", Description: "read commands from COMMAND", TakesValue: true},
		},
		registry: registry,
	}
}

func (c *shCommand) Name() string { return c.name }

func (c *shCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *shCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	command := fs.String("c", "", "read commands from COMMAND")
	if handled, err := parseArgs(hc, c, "[-c COMMAND] [SCRIPT [ARG]...]", fs, cf, args[1:]); handled {
		return err
	}

	operands := fs.Args()
	var (
		src    io.Reader
		name   string
		params []string
	)
	switch {
	case *command != "":
		src = strings.NewReader(*command)
		name = c.name
		params = operands
	case len(operands) > 0:
		f, err := os.Open(hc.Resolve(operands[0]))
		if err != nil {
			return reportAs(err, operands[0])
		}
		defer f.Close()
		src = f
		name = operands[0]
		params = operands[1:]
	default:
		src = hc.Stdin
		name = c.name
	}

	prog, err := syntax.NewParser().Parse(src, name)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	opts := []interp.RunnerOption{
		interp.Dir(hc.Dir),
		interp.Env(expand.ListEnviron(hc.Environ()...)),
		interp.StdIO(hc.Stdin, hc.Stdout, hc.Stderr),
		interp.ExecHandlers(c.execHandler),
	}
	// "--" keeps script arguments that look like options out of the
	// runner's own option parsing.
	if len(params) > 0 {
		opts = append(opts, interp.Params(append([]string{"--"}, params...)...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return err
	}

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return &ExitError{Code: types.ExitCode(status)}
		}
		return err
	}
	return nil
}

// execHandler intercepts command execution: registered names run in-process
// as builtins, everything else falls through to the external executor.
func (c *shCommand) execHandler(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		if handled, err := c.tryBuiltin(ctx, args); handled {
			return err
		}
		return next(ctx, args)
	}
}

// tryBuiltin runs args through the registry. Platform-restricted commands
// on the wrong platform are left to the external executor, matching the
// dispatcher's refusal to run them in-process.
func (c *shCommand) tryBuiltin(ctx context.Context, args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}
	entry, ok := c.registry.Lookup(args[0])
	if !ok {
		return false, nil
	}
	if entry.OnlyUnix && runtime.GOOS == platform.Windows {
		return false, nil
	}

	hc := ExtractHandlerContext(ctx)
	err := entry.Command.Run(WithHandlerContext(ctx, hc), args)
	code, diagnostic := ResolveExit(args[0], err)
	if diagnostic != "" {
		fmt.Fprintln(hc.Stderr, diagnostic)
	}
	if code != types.ExitSuccess {
		return true, interp.ExitStatus(code)
	}
	return true, nil
}
