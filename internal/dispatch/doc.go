// SPDX-License-Identifier: MPL-2.0

// Package dispatch turns process arguments into exactly one command
// invocation and a process exit code.
//
// It supports two invocation forms: `gocoreutils COMMAND [args...]`, where
// the first argument names the command, and symlink style, where the program
// name itself is a command name. The dispatcher resolves the name against
// the registry, refuses Unix-only commands on Windows, hands the command its
// streams through a HandlerContext, and translates the command's error into
// the exit code and a uniformly formatted diagnostic.
package dispatch
