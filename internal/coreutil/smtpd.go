// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"net"
	"net/smtp"
	"net/textproto"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"gocoreutils/internal/config"
	"gocoreutils/pkg/types"
)

// smtpdCommand implements a toy SMTP proxy: it accepts mail on the local
// address and replays each message to the remote address. Without a remote
// address it only logs what it receives.
type smtpdCommand struct {
	name     string
	flags    []FlagInfo
	defaults config.SMTPDConfig
}

func newSMTPDCommand(defaults config.SMTPDConfig) *smtpdCommand {
	return &smtpdCommand{
		name: "smtpd",
		flags: []FlagInfo{
			{Name: "remoteaddress", ShortName: "a", Description: "remote address to connect to", TakesValue: true},
			{Name: "remoteport", ShortName: "p", Description: "remote port to connect to", TakesValue: true},
			{Name: "localaddress", ShortName: "A", Description: "local address to bind to", TakesValue: true},
			{Name: "localport", ShortName: "P", Description: "local port to listen to", TakesValue: true},
		},
		defaults: defaults,
	}
}

func (c *smtpdCommand) Name() string { return c.name }

func (c *smtpdCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *smtpdCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	remoteAddress := fs.String("a", c.defaults.RemoteAddress, "remote address to connect to")
	fs.StringVar(remoteAddress, "remoteaddress", c.defaults.RemoteAddress, "remote address to connect to")
	remotePort := fs.Int("p", int(c.defaults.RemotePort), "remote port to connect to")
	fs.IntVar(remotePort, "remoteport", int(c.defaults.RemotePort), "remote port to connect to")
	localAddress := fs.String("A", c.defaults.LocalAddress, "local address to bind to")
	fs.StringVar(localAddress, "localaddress", c.defaults.LocalAddress, "local address to bind to")
	localPort := fs.Int("P", int(c.defaults.LocalPort), "local port to listen to")
	fs.IntVar(localPort, "localport", int(c.defaults.LocalPort), "local port to listen to")
	if handled, err := parseArgs(hc, c, "[OPTION]...", fs, cf, args[1:]); handled {
		return err
	}
	if fs.NArg() > 0 {
		return extraOperand(hc, c.name, fs.Arg(0))
	}

	local := types.ListenPort(*localPort)
	if err := local.Validate(); err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}
	relayAddr := ""
	if *remoteAddress != "" {
		remote := types.ListenPort(*remotePort)
		if err := remote.Validate(); err != nil {
			return &ExitError{Code: types.ExitFailure, Err: err}
		}
		relayAddr = remote.HostPort(*remoteAddress)
	}

	logger := log.NewWithOptions(hc.Stderr, log.Options{Prefix: c.name})
	return c.serve(ctx, logger, local.HostPort(*localAddress), relayAddr)
}

// serve accepts connections until ctx is canceled or the listener fails.
func (c *smtpdCommand) serve(ctx context.Context, logger *log.Logger, localAddr, relayAddr string) error {
	listener, err := net.Listen("tcp", localAddr)
	if err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, func() { _ = listener.Close() })
	defer stop()

	logger.Info("listening", "addr", listener.Addr().String(), "relay", relayAddr)

	var wg sync.WaitGroup
	for {
		conn, err := listener.Accept()
		if err != nil {
			wg.Wait()
			// An interrupt closes the listener; that is a clean stop.
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.serveConn(logger, conn, relayAddr)
		}()
	}
}

// serveConn speaks one minimal SMTP session on conn.
func (c *smtpdCommand) serveConn(logger *log.Logger, conn net.Conn, relayAddr string) {
	defer conn.Close()
	tp := textproto.NewConn(conn)

	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "localhost"
	}
	if err := tp.PrintfLine("220 %s gocoreutils smtpd", hostname); err != nil {
		return
	}

	var from string
	var recipients []string
	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}
		verb, arg := splitVerb(line)
		switch verb {
		case "HELO", "EHLO":
			err = tp.PrintfLine("250 %s", hostname)
		case "MAIL":
			from = mailboxArg(arg, "FROM:")
			err = tp.PrintfLine("250 2.1.0 Ok")
		case "RCPT":
			if from == "" {
				err = tp.PrintfLine("503 5.5.1 Error: need MAIL command")
				break
			}
			recipients = append(recipients, mailboxArg(arg, "TO:"))
			err = tp.PrintfLine("250 2.1.5 Ok")
		case "DATA":
			if from == "" || len(recipients) == 0 {
				err = tp.PrintfLine("503 5.5.1 Error: need MAIL and RCPT commands")
				break
			}
			if err = tp.PrintfLine("354 End data with <CR><LF>.<CR><LF>"); err != nil {
				return
			}
			data, readErr := tp.ReadDotBytes()
			if readErr != nil {
				return
			}
			if deliverErr := c.deliver(logger, relayAddr, from, recipients, data); deliverErr != nil {
				err = tp.PrintfLine("451 4.3.0 Error: relay failed")
			} else {
				err = tp.PrintfLine("250 2.0.0 Ok: queued")
			}
			from, recipients = "", nil
		case "RSET":
			from, recipients = "", nil
			err = tp.PrintfLine("250 2.0.0 Ok")
		case "NOOP":
			err = tp.PrintfLine("250 2.0.0 Ok")
		case "QUIT":
			_ = tp.PrintfLine("221 2.0.0 Bye")
			return
		default:
			err = tp.PrintfLine("502 5.5.2 Error: command not recognized")
		}
		if err != nil {
			return
		}
	}
}

// deliver relays one message to the remote server, or logs it when no
// remote is configured.
func (c *smtpdCommand) deliver(logger *log.Logger, relayAddr, from string, recipients []string, data []byte) error {
	if relayAddr == "" {
		logger.Info("message received",
			"from", from,
			"to", strings.Join(recipients, ","),
			"bytes", len(data),
		)
		return nil
	}
	if err := smtp.SendMail(relayAddr, nil, from, recipients, data); err != nil {
		logger.Error("relay failed", "addr", relayAddr, "err", err)
		return err
	}
	logger.Info("message relayed",
		"addr", relayAddr,
		"from", from,
		"to", strings.Join(recipients, ","),
		"bytes", len(data),
	)
	return nil
}

// splitVerb separates an SMTP command line into its uppercased verb and the
// remaining argument text.
func splitVerb(line string) (verb, arg string) {
	verb, arg, _ = strings.Cut(line, " ")
	return strings.ToUpper(verb), strings.TrimSpace(arg)
}

// mailboxArg extracts the address from a MAIL FROM:<a@b> or RCPT TO:<a@b>
// argument, tolerating missing angle brackets.
func mailboxArg(arg, prefix string) string {
	rest := arg
	if n := len(prefix); len(arg) >= n && strings.EqualFold(arg[:n], prefix) {
		rest = arg[n:]
	}
	rest = strings.TrimSpace(rest)
	rest = strings.TrimPrefix(rest, "<")
	rest = strings.TrimSuffix(rest, ">")
	return rest
}
