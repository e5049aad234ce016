// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/smtp"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"

	"gocoreutils/internal/config"
	"gocoreutils/pkg/types"
)

// sendmailCommand implements a small SMTP submission client.
type sendmailCommand struct {
	name     string
	flags    []FlagInfo
	defaults config.SendmailConfig
}

func newSendmailCommand(defaults config.SendmailConfig) *sendmailCommand {
	return &sendmailCommand{
		name: "sendmail",
		flags: []FlagInfo{
			{Name: "address", ShortName: "a", Description: "address to send to", TakesValue: true},
			{Name: "certfile", ShortName: "c", Description: "certificate file to use, implies -s", TakesValue: true},
			{Name: "sender", ShortName: "f", Description: "set the envelope sender address", TakesValue: true},
			{Name: "r", Description: "set the envelope sender address", TakesValue: true},
			{Name: "keyfile", ShortName: "k", Description: "key file to use, implies -s", TakesValue: true},
			{Name: "messagefile", ShortName: "m", Description: "read message from file instead of standard input", TakesValue: true},
			{Name: "port", ShortName: "p", Description: "port to send to", TakesValue: true},
			{Name: "timeout", ShortName: "t", Description: "set timeout in seconds", TakesValue: true},
			{Name: "ssl", ShortName: "s", Description: "connect using ssl"},
			{Name: "verbose", ShortName: "v", Description: "show smtp session"},
		},
	}
}

func (c *sendmailCommand) Name() string { return c.name }

func (c *sendmailCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *sendmailCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	var address, sender string
	fs.StringVar(&address, "a", c.defaults.Address, "address to send to")
	fs.StringVar(&address, "address", c.defaults.Address, "address to send to")
	certFile := fs.String("c", "", "certificate file to use, implies -s")
	fs.StringVar(certFile, "certfile", "", "certificate file to use, implies -s")
	fs.StringVar(&sender, "f", "", "set the envelope sender address")
	fs.StringVar(&sender, "r", "", "set the envelope sender address")
	fs.StringVar(&sender, "sender", "", "set the envelope sender address")
	keyFile := fs.String("k", "", "key file to use, implies -s")
	fs.StringVar(keyFile, "keyfile", "", "key file to use, implies -s")
	messageFile := fs.String("m", "", "read message from file instead of standard input")
	fs.StringVar(messageFile, "messagefile", "", "read message from file instead of standard input")
	port := fs.Int("p", int(c.defaults.Port), "port to send to")
	fs.IntVar(port, "port", int(c.defaults.Port), "port to send to")
	timeout := fs.Int("t", 0, "set timeout in seconds")
	fs.IntVar(timeout, "timeout", 0, "set timeout in seconds")
	useSSL := fs.Bool("s", false, "connect using ssl")
	fs.BoolVar(useSSL, "ssl", false, "connect using ssl")
	verbose := fs.Bool("v", false, "show smtp session")
	fs.BoolVar(verbose, "verbose", false, "show smtp session")
	if handled, err := parseArgs(hc, c, "[OPTION]... RECIPIENT...", fs, cf, args[1:]); handled {
		return err
	}

	recipients := fs.Args()
	if len(recipients) == 0 {
		return missingOperand(hc, c.name, "")
	}

	listenPort := types.ListenPort(*port)
	if err := listenPort.Validate(); err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	if sender == "" {
		sender = defaultSender(hc)
	}

	message, err := c.readMessage(hc, *messageFile)
	if err != nil {
		return err
	}

	logger := log.New(io.Discard)
	if *verbose {
		logger = log.NewWithOptions(hc.Stderr, log.Options{Prefix: c.name})
	}

	withTLS := *useSSL || *certFile != "" || *keyFile != ""
	addr := listenPort.HostPort(address)
	logger.Info("connecting", "addr", addr, "tls", withTLS)
	client, err := c.dial(hc, addr, address, *certFile, *keyFile, withTLS, time.Duration(*timeout)*time.Second)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Mail(sender); err != nil {
		return err
	}
	logger.Info("sender accepted", "from", sender)
	for _, rcpt := range recipients {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
		logger.Info("recipient accepted", "to", rcpt)
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(message); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	logger.Info("message sent", "bytes", len(message), "recipients", len(recipients))

	return client.Quit()
}

// readMessage loads the message body from the named file, or from standard
// input when no file is given.
func (c *sendmailCommand) readMessage(hc *HandlerContext, messageFile string) ([]byte, error) {
	if messageFile == "" {
		return io.ReadAll(hc.Stdin)
	}
	data, err := os.ReadFile(hc.Resolve(messageFile))
	if err != nil {
		return nil, reportAs(err, messageFile)
	}
	return data, nil
}

// dial connects to the SMTP server, optionally over TLS with a client
// certificate. A zero timeout means the platform default.
func (c *sendmailCommand) dial(hc *HandlerContext, addr, host, certFile, keyFile string, withTLS bool, timeout time.Duration) (*smtp.Client, error) {
	if !withTLS {
		conn, err := net.DialTimeout("tcp", addr, timeout)
		if err != nil {
			return nil, err
		}
		return smtp.NewClient(conn, host)
	}

	cfg := &tls.Config{ServerName: host, MinVersion: tls.VersionTLS12}
	if certFile != "" && keyFile != "" {
		cert, err := tls.LoadX509KeyPair(hc.Resolve(certFile), hc.Resolve(keyFile))
		if err != nil {
			return nil, err
		}
		cfg.Certificates = []tls.Certificate{cert}
	}
	conn, err := tls.DialWithDialer(&net.Dialer{Timeout: timeout}, "tcp", addr, cfg)
	if err != nil {
		return nil, err
	}
	return smtp.NewClient(conn, host)
}

// defaultSender derives an envelope sender of the form user@hostname.
func defaultSender(hc *HandlerContext) string {
	name := hc.Getenv("USER")
	if name == "" {
		name = hc.Getenv("USERNAME")
	}
	if name == "" {
		if u, err := user.Current(); err == nil {
			name = u.Username
		}
	}
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "localhost"
	}
	return name + "@" + host
}
