// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package coreutil

import (
	"os"
	"sync"
	"syscall"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sys/unix"
)

// candidateSignals is the superset of signal names offered as kill flags.
// Names the platform does not define are filtered out at first use.
var candidateSignals = []string{
	"SIGABRT", "SIGALRM", "SIGBUS", "SIGCHLD", "SIGCONT", "SIGFPE",
	"SIGHUP", "SIGILL", "SIGINT", "SIGIO", "SIGKILL", "SIGPIPE",
	"SIGPROF", "SIGQUIT", "SIGSEGV", "SIGSTOP", "SIGSYS", "SIGTERM",
	"SIGTRAP", "SIGTSTP", "SIGTTIN", "SIGTTOU", "SIGURG", "SIGUSR1",
	"SIGUSR2", "SIGVTALRM", "SIGWINCH", "SIGXCPU", "SIGXFSZ",
}

// signalTable maps the platform's signal names to their numbers, computed
// once on first use.
var signalTable = sync.OnceValue(func() map[string]syscall.Signal {
	table := make(map[string]syscall.Signal, len(candidateSignals))
	for _, name := range candidateSignals {
		if num := unix.SignalNum(name); num != 0 {
			table[name] = num
		}
	}
	return table
})

// signalNames returns the platform's signal names in sorted order.
func signalNames() []string {
	names := maps.Keys(signalTable())
	slices.Sort(names)
	return names
}

// signalByName resolves a SIG-prefixed name to its signal.
func signalByName(name string) (os.Signal, bool) {
	sig, ok := signalTable()[name]
	if !ok {
		return nil, false
	}
	return sig, true
}

// signalByNumber resolves a signal number to its signal.
func signalByNumber(n int) (os.Signal, bool) {
	for _, sig := range signalTable() {
		if int(sig) == n {
			return sig, true
		}
	}
	return nil, false
}

// signalNumberOf reports the number of a named signal.
func signalNumberOf(name string) (int, bool) {
	sig, ok := signalTable()[name]
	if !ok {
		return 0, false
	}
	return int(sig), true
}
