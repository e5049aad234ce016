// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility helpers.
//
// This package centralizes platform-specific concerns such as the GOOS
// string constants the dispatcher uses to decide whether a command is
// available on the current operating system.
package platform
