// SPDX-License-Identifier: MPL-2.0

package coreutil

import "testing"

// runCommand invokes cmd the way the dispatcher would: argv[0] is the
// command name and the HandlerContext travels in the context.
func runCommand(t *testing.T, cmd Command, hc *HandlerContext, args ...string) error {
	t.Helper()
	argv := append([]string{cmd.Name()}, args...)
	return cmd.Run(WithHandlerContext(t.Context(), hc), argv)
}
