// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"gocoreutils/internal/config"
	"gocoreutils/pkg/types"
)

// httpdCommand implements the httpd utility, a static file server rooted at
// the working directory.
type httpdCommand struct {
	name     string
	flags    []FlagInfo
	defaults config.HTTPDConfig
}

// newHTTPDCommand creates a new httpd command with defaults from cfg.
func newHTTPDCommand(defaults config.HTTPDConfig) *httpdCommand {
	return &httpdCommand{
		name: "httpd",
		flags: []FlagInfo{
			{Name: "address", ShortName: "a", Description: "address to bind to", TakesValue: true},
			{Name: "port", ShortName: "p", Description: "port to listen on", TakesValue: true},
		},
		defaults: defaults,
	}
}

// Name returns the command name.
func (c *httpdCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *httpdCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the httpd command.
// Usage: httpd [-a ADDRESS] [-p PORT]
// Serves the working directory over HTTP until the context is canceled.
func (c *httpdCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs, cf := newFlagSet(c.name)
	var address string
	fs.StringVar(&address, "a", c.defaults.Address, "address to bind to")
	fs.StringVar(&address, "address", c.defaults.Address, "address to bind to")
	port := fs.Int("p", int(c.defaults.Port), "port to listen on")
	fs.IntVar(port, "port", int(c.defaults.Port), "port to listen on")
	if handled, err := parseArgs(hc, c, "[-a ADDRESS] [-p PORT]", fs, cf, args[1:]); handled {
		return err
	}
	if fs.NArg() > 0 {
		return extraOperand(hc, c.name, fs.Arg(0))
	}

	listenPort := types.ListenPort(*port)
	if err := listenPort.Validate(); err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	logger := log.NewWithOptions(hc.Stderr, log.Options{Prefix: c.name})
	return c.serve(ctx, hc, logger, listenPort.HostPort(address))
}

// serve runs the file server until ctx is canceled or the listener fails.
func (c *httpdCommand) serve(ctx context.Context, hc *HandlerContext, logger *log.Logger, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	handler := http.FileServer(http.Dir(hc.Dir))
	server := &http.Server{
		Handler:           c.logRequests(logger, handler),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	logger.Info("serving", "dir", hc.Dir, "addr", listener.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		// An interrupt stops the server cleanly rather than reporting
		// the cancellation as a failure.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// logRequests logs one line per served request.
func (c *httpdCommand) logRequests(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"duration", time.Since(start),
		)
	})
}
