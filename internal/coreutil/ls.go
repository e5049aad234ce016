// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// lsCommand implements the ls utility.
type lsCommand struct {
	name  string
	flags []FlagInfo
}

// newLsCommand creates a new ls command.
func newLsCommand() *lsCommand {
	return &lsCommand{
		name: "ls",
		flags: []FlagInfo{
			{Name: "l", Description: "use a long listing format"},
		},
	}
}

// Name returns the command name.
func (c *lsCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *lsCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the ls command.
// Usage: ls [-l] [DIRECTORY]...
// Lists each directory's entries in sorted order, one per line.
func (c *lsCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs, cf := newFlagSet(c.name)
	long := fs.Bool("l", false, "use a long listing format")
	if handled, err := parseArgs(hc, c, "[-l] [DIRECTORY]...", fs, cf, args[1:]); handled {
		return err
	}

	operands := fs.Args()
	if len(operands) == 0 {
		operands = []string{"."}
	}

	for i, dir := range operands {
		if len(operands) > 1 {
			if i > 0 {
				fmt.Fprintln(hc.Stdout)
			}
			fmt.Fprintf(hc.Stdout, "%s:\n", dir)
		}
		if err := c.listDir(hc, dir, *long); err != nil {
			return err
		}
	}
	return nil
}

// listDir prints one directory.
func (c *lsCommand) listDir(hc *HandlerContext, dir string, long bool) error {
	entries, err := os.ReadDir(hc.Resolve(dir))
	if err != nil {
		return reportAs(err, dir)
	}

	for _, entry := range entries {
		if !long {
			fmt.Fprintln(hc.Stdout, entry.Name())
			continue
		}
		if err := c.printLong(hc, dir, entry); err != nil {
			return err
		}
	}
	return nil
}

// printLong prints one entry in long format: mode, link count, uid, gid,
// size, modification time, and name (with the symlink target if any).
func (c *lsCommand) printLong(hc *HandlerContext, dir string, entry os.DirEntry) error {
	info, err := entry.Info()
	if err != nil {
		return err
	}

	nlink, uid, gid := statOwnership(info)
	name := entry.Name()
	if info.Mode()&fs.ModeSymlink != 0 {
		if target, err := os.Readlink(filepath.Join(hc.Resolve(dir), name)); err == nil {
			name += " -> " + target
		}
	}

	_, err = fmt.Fprintf(hc.Stdout, "%s %3d %-8d %-8d %8d %s %s\n",
		modeString(info.Mode()), nlink, uid, gid, info.Size(),
		info.ModTime().Format("2006-01-02 15:04"), name)
	return err
}

// modeString renders a file mode in the traditional ls -l form, e.g.
// "drwxr-xr-x".
func modeString(mode fs.FileMode) string {
	var b [10]byte
	switch {
	case mode&fs.ModeSymlink != 0:
		b[0] = 'l'
	case mode.IsDir():
		b[0] = 'd'
	case mode&fs.ModeNamedPipe != 0:
		b[0] = 'p'
	case mode&fs.ModeSocket != 0:
		b[0] = 's'
	case mode&fs.ModeCharDevice != 0:
		b[0] = 'c'
	case mode&fs.ModeDevice != 0:
		b[0] = 'b'
	default:
		b[0] = '-'
	}

	const rwx = "rwxrwxrwx"
	perm := mode.Perm()
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			b[i+1] = rwx[i]
		} else {
			b[i+1] = '-'
		}
	}
	return string(b[:])
}
