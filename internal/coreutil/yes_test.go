// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"strings"
	"syscall"
	"testing"
)

// pipeClosingWriter accepts a fixed number of writes and then behaves like
// a closed pipe, the way `yes | head` ends the stream.
type pipeClosingWriter struct {
	remaining int
	written   strings.Builder
}

func (w *pipeClosingWriter) Write(p []byte) (int, error) {
	if w.remaining == 0 {
		return 0, syscall.EPIPE
	}
	w.remaining--
	return w.written.Write(p)
}

func TestYesStopsCleanlyOnClosedPipe(t *testing.T) {
	t.Parallel()

	hc, _, _ := testHandlerContext(t)
	out := &pipeClosingWriter{remaining: 3}
	hc.Stdout = out

	if err := runCommand(t, newYesCommand(), hc); err != nil {
		t.Fatalf("yes returned error: %v", err)
	}
	if got := out.written.String(); got != "y\ny\ny\n" {
		t.Errorf("output = %q, want three y lines", got)
	}
}

func TestYesRepeatsOperands(t *testing.T) {
	t.Parallel()

	hc, _, _ := testHandlerContext(t)
	out := &pipeClosingWriter{remaining: 2}
	hc.Stdout = out

	if err := runCommand(t, newYesCommand(), hc, "hello", "world"); err != nil {
		t.Fatalf("yes returned error: %v", err)
	}
	if got := out.written.String(); got != "hello world\nhello world\n" {
		t.Errorf("output = %q, want the joined operands", got)
	}
}

func TestYesStopsOnCancellation(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := testHandlerContext(t)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := newYesCommand().Run(WithHandlerContext(ctx, hc), []string{"yes"})
	if err != nil {
		t.Fatalf("yes returned %v after cancellation, want nil", err)
	}
	// The loop may emit at most one line before noticing the cancellation.
	if lines := strings.Count(stdout.String(), "\n"); lines > 1 {
		t.Errorf("yes wrote %d lines after cancellation", lines)
	}
}
