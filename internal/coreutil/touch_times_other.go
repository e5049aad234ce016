// SPDX-License-Identifier: MPL-2.0

//go:build !linux && !darwin && !windows

package coreutil

import (
	"os"
	"time"
)

// fileTimes returns the access and modification times recorded for a file.
// Platforms without a known stat layout report the modification time for
// both.
func fileTimes(info os.FileInfo) (atime, mtime time.Time) {
	return info.ModTime(), info.ModTime()
}
