// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gocoreutils/pkg/types"
)

// tailFollowInterval is how often -f polls for appended data.
const tailFollowInterval = time.Second

type tailCommand struct {
	name  string
	flags []FlagInfo
}

func newTailCommand() *tailCommand {
	return &tailCommand{
		name: "tail",
		flags: []FlagInfo{
			{Name: "follow", ShortName: "f", Description: "output appended data as the file grows"},
			{Name: "lines", ShortName: "n", Description: "output the last N lines, instead of the last 10 (+N starts at line N)", TakesValue: true},
		},
	}
}

func (c *tailCommand) Name() string { return c.name }

func (c *tailCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *tailCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	follow := fs.Bool("f", false, "output appended data as the file grows")
	fs.BoolVar(follow, "follow", false, "output appended data as the file grows")
	linesSpec := fs.String("n", "10", "output the last N lines, instead of the last 10 (+N starts at line N)")
	fs.StringVar(linesSpec, "lines", "10", "output the last N lines, instead of the last 10 (+N starts at line N)")
	if handled, err := parseArgs(hc, c, "[OPTION]... [FILE]...", fs, cf, args[1:]); handled {
		return err
	}

	numLines, fromStart, err := parseLineSpec(*linesSpec)
	if err != nil {
		fmt.Fprintf(hc.Stderr, "%s: invalid number of lines: `%s'\n", c.name, *linesSpec)
		fmt.Fprintf(hc.Stderr, "Try '%s --help' for more information.\n", c.name)
		return &ExitError{Code: types.ExitFailure}
	}

	operands := fs.Args()
	if len(operands) == 0 {
		return c.writeLast(hc.Stdout, hc.Stdin, numLines, fromStart)
	}

	// Files stay open in follow mode so the poll loop can read what gets
	// appended after the initial pass.
	var followed []*os.File
	defer func() {
		for _, f := range followed {
			f.Close()
		}
	}()

	for i, name := range operands {
		f, err := os.Open(hc.Resolve(name))
		if err != nil {
			return reportAs(err, name)
		}
		if len(operands) > 1 {
			if i > 0 {
				fmt.Fprintln(hc.Stdout)
			}
			fmt.Fprintf(hc.Stdout, "==> %s <==\n", name)
		}
		if err := c.writeLast(hc.Stdout, f, numLines, fromStart); err != nil {
			f.Close()
			return reportAs(err, name)
		}
		if *follow {
			followed = append(followed, f)
		} else {
			f.Close()
		}
	}

	if *follow {
		return c.followFiles(ctx, hc, operands, followed)
	}
	return nil
}

// parseLineSpec parses a line count such as "10" or "+5". The "+N" form
// means output starting at line N rather than the last N lines.
func parseLineSpec(s string) (n int, fromStart bool, err error) {
	if rest, ok := strings.CutPrefix(s, "+"); ok {
		n, err = strconv.Atoi(rest)
		return n, true, err
	}
	n, err = strconv.Atoi(s)
	return n, false, err
}

// writeLast copies the tail of in to out: the last n lines, or everything
// from line n when fromStart is set.
func (c *tailCommand) writeLast(out io.Writer, in io.Reader, n int, fromStart bool) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if fromStart {
		lineNum := 0
		for scanner.Scan() {
			lineNum++
			if lineNum >= n {
				fmt.Fprintln(out, scanner.Text())
			}
		}
		return scanner.Err()
	}

	if n <= 0 {
		_, err := io.Copy(io.Discard, in)
		return err
	}

	// Ring buffer of the most recent n lines.
	lines := make([]string, n)
	idx := 0
	count := 0
	for scanner.Scan() {
		lines[idx] = scanner.Text()
		idx = (idx + 1) % n
		count++
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if count < n {
		for i := range count {
			fmt.Fprintln(out, lines[i])
		}
		return nil
	}
	for i := range n {
		fmt.Fprintln(out, lines[(idx+i)%n])
	}
	return nil
}

// followFiles polls the open files and writes anything appended since the
// last pass, switching headers when the growing file changes.
func (c *tailCommand) followFiles(ctx context.Context, hc *HandlerContext, names []string, files []*os.File) error {
	ticker := time.NewTicker(tailFollowInterval)
	defer ticker.Stop()

	lastHeader := len(files) - 1
	buf := make([]byte, 32*1024)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for i, f := range files {
				for {
					n, err := f.Read(buf)
					if n > 0 {
						if len(files) > 1 && lastHeader != i {
							fmt.Fprintf(hc.Stdout, "\n==> %s <==\n", names[i])
							lastHeader = i
						}
						if _, werr := hc.Stdout.Write(buf[:n]); werr != nil {
							return werr
						}
					}
					if err != nil {
						if errors.Is(err, io.EOF) {
							break
						}
						return reportAs(err, names[i])
					}
				}
			}
		}
	}
}
