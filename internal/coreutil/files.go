// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// FileProcessor processes a single input stream.
// Parameters:
//   - r: the input stream to process
//   - name: the operand as given on the command line (or "-" for stdin)
//   - index: 0-based index of the current operand
//   - total: total number of operands (1 when reading stdin implicitly)
type FileProcessor func(r io.Reader, name string, index, total int) error

// ProcessFilesOrStdin applies processor to each named operand in order,
// opening paths relative to hc.Dir. With no operands at all, or for the
// operand "-", processor reads hc.Stdin instead.
func ProcessFilesOrStdin(hc *HandlerContext, operands []string, processor FileProcessor) error {
	if len(operands) == 0 {
		return processor(hc.Stdin, "-", 0, 1)
	}

	total := len(operands)
	for i, name := range operands {
		if name == "-" {
			if err := processor(hc.Stdin, name, i, total); err != nil {
				return err
			}
			continue
		}
		if err := processFile(hc, name, i, total, processor); err != nil {
			return err
		}
	}
	return nil
}

// processFile opens one operand and applies processor, aggregating close
// errors via the named return: if the processor succeeds but close fails,
// the close error is returned.
func processFile(hc *HandlerContext, name string, index, total int, processor FileProcessor) (err error) {
	f, err := os.Open(hc.Resolve(name))
	if err != nil {
		return reportAs(err, name)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return processor(f, name, index, total)
}

// reportAs rewrites the path inside a *fs.PathError so diagnostics name the
// operand as the user wrote it rather than the resolved absolute path.
func reportAs(err error, operand string) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		pathErr.Path = operand
	}
	return err
}
