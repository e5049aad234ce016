// SPDX-License-Identifier: MPL-2.0

package platform

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// KernelName maps a GOOS value to the kernel name traditionally reported
// by uname -s. Unknown values are returned unchanged.
func KernelName(goos string) string {
	switch goos {
	case Linux:
		return "Linux"
	case Darwin:
		return "Darwin"
	case Windows:
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	case "dragonfly":
		return "DragonFly"
	case "solaris", "illumos":
		return "SunOS"
	case "aix":
		return "AIX"
	default:
		return goos
	}
}
