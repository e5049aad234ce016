// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"

	"gocoreutils/pkg/types"
)

// ExitError carries an explicit exit code from a command back to the
// dispatcher. Err, when non-nil, is the diagnostic to report; a nil Err
// means the command already wrote its own diagnostics.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %s", e.Code)
}

// Unwrap returns the wrapped error for errors.Is/errors.As chains.
func (e *ExitError) Unwrap() error { return e.Err }

// ResolveExit translates the error returned by a command into the process
// exit code and the diagnostic line to print on stderr. An empty diagnostic
// means nothing should be printed.
//
// The mapping is uniform across all commands:
//   - nil: success, exit 0
//   - context.Canceled: exit 130 (interrupt), no diagnostic
//   - *ExitError: its code, with an optional "name: message" diagnostic
//   - *fs.PathError: "name: path: message", errno as the exit code
//   - *os.LinkError: "name: path: message", errno as the exit code
//   - anything else: "name: message", exit 1
func ResolveExit(name string, err error) (types.ExitCode, string) {
	if err == nil {
		return types.ExitSuccess, ""
	}
	if errors.Is(err, context.Canceled) {
		return types.ExitInterrupted, ""
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			return exitErr.Code, fmt.Sprintf("%s: %s", name, exitErr.Err)
		}
		return exitErr.Code, ""
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return errnoCode(pathErr.Err), fmt.Sprintf("%s: %s: %s", name, pathErr.Path, pathErr.Err)
	}

	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return errnoCode(linkErr.Err), fmt.Sprintf("%s: %s: %s", name, linkErr.Old, linkErr.Err)
	}

	return types.ExitFailure, fmt.Sprintf("%s: %s", name, err)
}

// errnoCode maps a system error to its conventional exit code (the errno
// value, e.g. ENOENT = 2). Causes without an errno, and errno values that
// do not fit in an exit code, map to the general failure code.
func errnoCode(err error) types.ExitCode {
	var errno syscall.Errno
	if !errors.As(err, &errno) || errno == 0 {
		return types.ExitFailure
	}
	code := types.ExitCode(errno)
	if code.Validate() != nil {
		return types.ExitFailure
	}
	return code
}
