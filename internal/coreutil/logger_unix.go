// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package coreutil

import "log/syslog"

// sendSyslog delivers one message to syslog. An empty network dials the
// local syslog socket; otherwise network/addr name a remote daemon.
func sendSyslog(network, addr string, priority int, tag, message string) error {
	w, err := syslog.Dial(network, addr, syslog.Priority(priority), tag)
	if err != nil {
		return err
	}
	defer w.Close()

	_, err = w.Write([]byte(message))
	return err
}
