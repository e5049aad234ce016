// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gocoreutils/pkg/types"
)

// Syslog facility and severity codes per RFC 3164. Kept platform-neutral so
// priority parsing and validation behave identically everywhere; only the
// wire delivery is platform-specific.
var (
	syslogFacilities = map[string]int{
		"kern": 0, "user": 1, "mail": 2, "daemon": 3, "auth": 4,
		"syslog": 5, "lpr": 6, "news": 7, "uucp": 8, "cron": 9,
		"authpriv": 10, "ftp": 11,
		"local0": 16, "local1": 17, "local2": 18, "local3": 19,
		"local4": 20, "local5": 21, "local6": 22, "local7": 23,
	}
	syslogLevels = map[string]int{
		"emerg": 0, "alert": 1, "crit": 2, "err": 3,
		"warning": 4, "notice": 5, "info": 6, "debug": 7,
	}
)

// loggerCommand implements the logger utility.
type loggerCommand struct {
	name  string
	flags []FlagInfo
}

// newLoggerCommand creates a new logger command.
func newLoggerCommand() *loggerCommand {
	return &loggerCommand{
		name: "logger",
		flags: []FlagInfo{
			{Name: "host", Description: "send the message to this syslog host instead of the local socket", TakesValue: true},
			{Name: "port", Description: "syslog UDP port", TakesValue: true},
			{Name: "p", Description: "the message priority as FACILITY.LEVEL", TakesValue: true},
			{Name: "s", Description: "also write the message to standard error"},
		},
	}
}

// Name returns the command name.
func (c *loggerCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *loggerCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the logger command.
// Usage: logger [OPTION]... [MESSAGE]...
// Sends MESSAGE to syslog, by default at priority user.notice.
func (c *loggerCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs, cf := newFlagSet(c.name)
	host := fs.String("host", "", "send the message to this syslog host instead of the local socket")
	port := fs.Int("port", 514, "syslog UDP port")
	priority := fs.String("p", "user.notice", "the message priority as FACILITY.LEVEL")
	stderrToo := fs.Bool("s", false, "also write the message to standard error")
	if handled, err := parseArgs(hc, c, "[OPTION]... [MESSAGE]...", fs, cf, args[1:]); handled {
		return err
	}

	prio, err := c.parsePriority(hc, *priority)
	if err != nil {
		return err
	}

	message := strings.Join(fs.Args(), " ")
	if *stderrToo {
		fmt.Fprintln(hc.Stderr, message)
	}

	network, addr := "", ""
	if *host != "" {
		network = "udp"
		addr = types.ListenPort(*port).HostPort(*host)
	}
	return sendSyslog(network, addr, prio, c.name, message)
}

// parsePriority validates a FACILITY.LEVEL pair and combines it into the
// numeric syslog priority.
func (c *loggerCommand) parsePriority(hc *HandlerContext, priority string) (int, error) {
	facilityName, levelName, found := strings.Cut(priority, ".")
	if !found {
		levelName = "notice"
	}

	facility, ok := syslogFacilities[facilityName]
	if !ok {
		fmt.Fprintf(hc.Stderr, "Unknown facility %s.\n", facilityName)
		fmt.Fprintf(hc.Stderr, "Valid facilities are: %s\n", strings.Join(sortedNames(syslogFacilities), ", "))
		return 0, &ExitError{Code: types.ExitFailure}
	}
	level, ok := syslogLevels[levelName]
	if !ok {
		fmt.Fprintf(hc.Stderr, "Unknown level %s.\n", levelName)
		fmt.Fprintf(hc.Stderr, "Valid levels are: %s\n", strings.Join(sortedNames(syslogLevels), ", "))
		return 0, &ExitError{Code: types.ExitFailure}
	}
	return facility<<3 | level, nil
}

// sortedNames returns the map's keys in sorted order.
func sortedNames(m map[string]int) []string {
	names := maps.Keys(m)
	slices.Sort(names)
	return names
}
