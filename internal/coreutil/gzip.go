// SPDX-License-Identifier: MPL-2.0

package coreutil

// newGzipCommand creates the gzip command.
func newGzipCommand() *compressorCommand {
	return &compressorCommand{
		name:   "gzip",
		format: formatGzip,
		flags:  compressorFlags(),
	}
}

// newGunzipCommand creates the gunzip command, a gzip that decompresses by
// default.
func newGunzipCommand() *compressorCommand {
	return &compressorCommand{
		name:       "gunzip",
		format:     formatGzip,
		decompress: true,
		flags:      compressorFlags(),
	}
}
