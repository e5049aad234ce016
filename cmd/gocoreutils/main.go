// SPDX-License-Identifier: MPL-2.0

// Command gocoreutils is a multi-call binary bundling reimplementations of
// common Unix utilities. It dispatches on the program name, so a symlink
// named after a command runs that command directly:
//
//	gocoreutils ls -la
//	ln -s gocoreutils ls && ./ls -la
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"gocoreutils/internal/config"
	"gocoreutils/internal/coreutil"
	"gocoreutils/internal/dispatch"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", config.AppName, err)
		os.Exit(1)
	}

	registry, err := coreutil.BuildDefaultRegistry(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", config.AppName, err)
		os.Exit(1)
	}

	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}

	code := dispatch.Run(ctx, os.Args, dispatch.Options{
		Registry:  registry,
		Config:    cfg,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Dir:       dir,
		LookupEnv: os.LookupEnv,
		Environ:   os.Environ,
		GOOS:      runtime.GOOS,
	})

	stop()
	os.Exit(int(code))
}
