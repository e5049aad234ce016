// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package coreutil

import (
	"io/fs"
	"syscall"
)

// statOwnership extracts the link count and numeric owner from a stat
// result.
func statOwnership(info fs.FileInfo) (nlink uint64, uid, gid uint32) {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return uint64(st.Nlink), st.Uid, st.Gid
	}
	return 1, 0, 0
}
