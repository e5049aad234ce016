// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as the file format.
//
// Configuration is loaded from ~/.config/gocoreutils/config.toml (or XDG equivalent on Linux,
// ~/Library/Application Support/gocoreutils/config.toml on macOS,
// %APPDATA%\gocoreutils\config.toml on Windows), then from config.toml in the current
// directory, with GOCOREUTILS_* environment variables overriding both. It carries the
// defaults of the network commands (httpd, smtpd, sendmail, wget) and the help layout.
//
// Loaded values are validated before use so an out-of-range port or a negative help
// width is reported at startup rather than when the command first touches it.
package config
