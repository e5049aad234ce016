// SPDX-License-Identifier: MPL-2.0

//go:build darwin

package coreutil

import (
	"os"
	"syscall"
	"time"
)

// fileTimes returns the access and modification times recorded for a file.
func fileTimes(info os.FileInfo) (atime, mtime time.Time) {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Atimespec.Unix()), info.ModTime()
	}
	return info.ModTime(), info.ModTime()
}
