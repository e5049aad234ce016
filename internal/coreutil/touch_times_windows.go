// SPDX-License-Identifier: MPL-2.0

//go:build windows

package coreutil

import (
	"os"
	"syscall"
	"time"
)

// fileTimes returns the access and modification times recorded for a file.
func fileTimes(info os.FileInfo) (atime, mtime time.Time) {
	if d, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return time.Unix(0, d.LastAccessTime.Nanoseconds()), info.ModTime()
	}
	return info.ModTime(), info.ModTime()
}
