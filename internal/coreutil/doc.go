// SPDX-License-Identifier: MPL-2.0

// Package coreutil implements the built-in Unix-style utilities and the
// registry that maps command names to their implementations.
//
// Each utility is a Command that performs all I/O through the
// HandlerContext carried in its context.Context, never through the
// process-global streams. The same implementations therefore serve the
// standalone multi-call binary, the embedded shell interpreter, and tests
// with redirected streams.
//
// Commands report failures as errors; they never terminate the process.
// The dispatcher translates returned errors into exit codes in one place.
package coreutil
