// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package coreutil

import (
	"os"
	"strconv"
	"testing"
)

func TestKillSendsNamedSignalToSelf(t *testing.T) {
	t.Parallel()

	// SIGCONT is harmless to deliver to a running process.
	hc, _, _ := testHandlerContext(t)
	pid := strconv.Itoa(os.Getpid())

	if err := runCommand(t, newKillCommand(), hc, "-s", "CONT", pid); err != nil {
		t.Fatalf("kill -s CONT returned error: %v", err)
	}
}

func TestKillSendsNumericSignalToSelf(t *testing.T) {
	t.Parallel()

	num, ok := signalNumberOf("SIGCONT")
	if !ok {
		t.Skip("SIGCONT not defined on this platform")
	}
	hc, _, _ := testHandlerContext(t)
	pid := strconv.Itoa(os.Getpid())

	if err := runCommand(t, newKillCommand(), hc, "-"+strconv.Itoa(num), pid); err != nil {
		t.Fatalf("kill -%d returned error: %v", num, err)
	}
}

func TestSignalTableRoundTrip(t *testing.T) {
	t.Parallel()

	names := signalNames()
	if len(names) == 0 {
		t.Fatal("no signals known on this platform")
	}
	for _, name := range names {
		num, ok := signalNumberOf(name)
		if !ok {
			t.Errorf("signalNumberOf(%q) failed for a listed signal", name)
			continue
		}
		sig, ok := signalByNumber(num)
		if !ok || sig == nil {
			t.Errorf("signalByNumber(%d) failed for %s", num, name)
		}
		if _, ok := signalByName(name); !ok {
			t.Errorf("signalByName(%q) failed for a listed signal", name)
		}
	}
}
