// SPDX-License-Identifier: MPL-2.0

//go:build windows

package coreutil

import "errors"

// changeRoot is unavailable on Windows; the dispatcher never routes chroot
// here, this stub only satisfies compilation.
func changeRoot(string) error {
	return errors.New("not supported on this platform")
}
