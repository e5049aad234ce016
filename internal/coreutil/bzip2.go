// SPDX-License-Identifier: MPL-2.0

package coreutil

// newBzip2Command creates the bzip2 command.
func newBzip2Command() *compressorCommand {
	return &compressorCommand{
		name:   "bzip2",
		format: formatBzip2,
		flags:  compressorFlags(),
	}
}

// newBunzip2Command creates the bunzip2 command, a bzip2 that decompresses
// by default.
func newBunzip2Command() *compressorCommand {
	return &compressorCommand{
		name:       "bunzip2",
		format:     formatBzip2,
		decompress: true,
		flags:      compressorFlags(),
	}
}
