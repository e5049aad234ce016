// SPDX-License-Identifier: MPL-2.0

//go:build windows

package coreutil

import "errors"

// sendSyslog is unavailable on Windows; the dispatcher never routes logger
// here, this stub only satisfies compilation.
func sendSyslog(string, string, int, string, string) error {
	return errors.New("syslog is not supported on this platform")
}
