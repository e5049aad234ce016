// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package coreutil

import "golang.org/x/sys/unix"

// changeRoot makes dir the root directory of the current process.
func changeRoot(dir string) error {
	if err := unix.Chroot(dir); err != nil {
		return err
	}
	return unix.Chdir("/")
}
