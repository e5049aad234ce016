// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"syscall"
)

type yesCommand struct {
	name  string
	flags []FlagInfo
}

func newYesCommand() *yesCommand {
	return &yesCommand{name: "yes"}
}

func (c *yesCommand) Name() string { return c.name }

func (c *yesCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run repeatedly outputs a line with all specified STRING(s), or `y', until
// interrupted or the output is closed.
func (c *yesCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	if handled, err := parseArgs(hc, c, "[STRING]...", fs, cf, args[1:]); handled {
		return err
	}

	line := strings.Join(fs.Args(), " ")
	if line == "" {
		line = "y"
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if _, err := fmt.Fprintln(hc.Stdout, line); err != nil {
			// A reader that stops consuming, as in `yes | head`, ends
			// the stream rather than being an error.
			if errors.Is(err, syscall.EPIPE) {
				return nil
			}
			return err
		}
	}
}
