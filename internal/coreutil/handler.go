// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
)

type (
	// HandlerContext provides the execution environment for a command:
	// its standard streams, working directory, and environment access.
	HandlerContext struct {
		// Stdin is the input stream for the command.
		Stdin io.Reader
		// Stdout is the output stream for the command.
		Stdout io.Writer
		// Stderr is the error output stream for the command.
		Stderr io.Writer
		// Dir is the working directory used to resolve relative operands.
		Dir string
		// LookupEnv retrieves an environment variable, reporting whether
		// it is set.
		LookupEnv func(string) (string, bool)
		// Environ returns the full environment as "key=value" strings.
		Environ func() []string
	}

	// handlerContextKey is the context key for storing HandlerContext.
	handlerContextKey struct{}
)

// WithHandlerContext stores a HandlerContext in the context. The dispatcher
// uses it to hand commands their streams; tests use it to inject buffers.
func WithHandlerContext(ctx context.Context, hc *HandlerContext) context.Context {
	return context.WithValue(ctx, handlerContextKey{}, hc)
}

// GetHandlerContext retrieves the HandlerContext from the context. If none
// was stored with WithHandlerContext, it falls back to the process-global
// streams and working directory.
func GetHandlerContext(ctx context.Context) *HandlerContext {
	if hc, ok := ctx.Value(handlerContextKey{}).(*HandlerContext); ok && hc != nil {
		return hc
	}

	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	return &HandlerContext{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Dir:       dir,
		LookupEnv: os.LookupEnv,
		Environ:   os.Environ,
	}
}

// ExtractHandlerContext adapts the shell interpreter's per-execution context
// into a HandlerContext. This bridges mvdan/sh's interp.HandlerCtx to the
// command execution model; it must only be called from within an
// interpreter's exec handler.
func ExtractHandlerContext(ctx context.Context) *HandlerContext {
	hc := interp.HandlerCtx(ctx)
	return &HandlerContext{
		Stdin:  hc.Stdin,
		Stdout: hc.Stdout,
		Stderr: hc.Stderr,
		Dir:    hc.Dir,
		LookupEnv: func(name string) (string, bool) {
			v := hc.Env.Get(name)
			return v.Str, v.IsSet()
		},
		Environ: func() []string {
			var environ []string
			hc.Env.Each(func(name string, v expand.Variable) bool {
				if v.Exported && v.Kind == expand.String {
					environ = append(environ, name+"="+v.Str)
				}
				return true
			})
			return environ
		},
	}
}

// Resolve joins path with the working directory unless it is already
// absolute. Commands use it so relative operands honor Dir rather than the
// process working directory.
func (hc *HandlerContext) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(hc.Dir, path)
}

// Getenv returns the value of the named environment variable, or "" when
// unset.
func (hc *HandlerContext) Getenv(name string) string {
	if hc.LookupEnv == nil {
		return ""
	}
	v, _ := hc.LookupEnv(name)
	return v
}
