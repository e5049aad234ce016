// SPDX-License-Identifier: MPL-2.0

//go:build windows

package coreutil

import (
	"os"
	"syscall"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// windowsSignals lists the few signals Windows processes can receive.
var windowsSignals = map[string]syscall.Signal{
	"SIGHUP":  syscall.SIGHUP,
	"SIGINT":  syscall.SIGINT,
	"SIGKILL": syscall.SIGKILL,
	"SIGTERM": syscall.SIGTERM,
}

// signalNames returns the platform's signal names in sorted order.
func signalNames() []string {
	names := maps.Keys(windowsSignals)
	slices.Sort(names)
	return names
}

// signalByName resolves a SIG-prefixed name to its signal.
func signalByName(name string) (os.Signal, bool) {
	sig, ok := windowsSignals[name]
	if !ok {
		return nil, false
	}
	return sig, true
}

// signalByNumber resolves a signal number to its signal.
func signalByNumber(n int) (os.Signal, bool) {
	for _, sig := range windowsSignals {
		if int(sig) == n {
			return sig, true
		}
	}
	return nil, false
}

// signalNumberOf reports the number of a named signal.
func signalNumberOf(name string) (int, bool) {
	sig, ok := windowsSignals[name]
	if !ok {
		return 0, false
	}
	return int(sig), true
}
