// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"

	"gocoreutils/pkg/types"
)

// compressFormat selects the stream format of a compressor command.
type compressFormat int

const (
	formatGzip compressFormat = iota
	formatBzip2
)

// defaultCompressLevel is the compression level used when none of the
// -1..-9 or -C flags is given.
const defaultCompressLevel = 6

// suffix returns the conventional file name extension for the format.
func (f compressFormat) suffix() string {
	if f == formatBzip2 {
		return ".bz2"
	}
	return ".gz"
}

// compressorCommand implements gzip, gunzip, bzip2, and bunzip2. The four
// commands share one engine and differ only in stream format and direction.
type compressorCommand struct {
	name       string
	format     compressFormat
	decompress bool
	flags      []FlagInfo
}

// compressorFlags lists the flags shared by all four compressor commands.
func compressorFlags() []FlagInfo {
	flags := []FlagInfo{
		{Name: "stdout", ShortName: "c", Description: "write output to standard output"},
		{Name: "c", Description: "write output to standard output"},
		{Name: "decompress", ShortName: "d", Description: "decompress instead of compress"},
		{Name: "d", Description: "decompress instead of compress"},
		{Name: "C", Description: "set the compression level (1-9)", TakesValue: true},
	}
	for i := 1; i <= 9; i++ {
		flags = append(flags, FlagInfo{
			Name:        strconv.Itoa(i),
			Description: fmt.Sprintf("use compression level %d", i),
		})
	}
	return flags
}

// Name returns the command name.
func (c *compressorCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *compressorCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the compressor command.
// Usage: gzip [OPTION]... [FILE]...
// Compresses (or, for gunzip/bunzip2 or with -d, decompresses) each FILE
// next to the original, or filters stdin to stdout when no FILE is given.
func (c *compressorCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs, cf := newFlagSet(c.name)
	var toStdout, decompressFlag bool
	fs.BoolVar(&toStdout, "c", false, "write output to standard output")
	fs.BoolVar(&toStdout, "stdout", false, "write output to standard output")
	fs.BoolVar(&decompressFlag, "d", false, "decompress instead of compress")
	fs.BoolVar(&decompressFlag, "decompress", false, "decompress instead of compress")
	level := fs.Int("C", defaultCompressLevel, "set the compression level (1-9)")
	digits := make([]*bool, 9)
	for i := 1; i <= 9; i++ {
		digits[i-1] = fs.Bool(strconv.Itoa(i), false, fmt.Sprintf("use compression level %d", i))
	}

	if handled, err := parseArgs(hc, c, "[OPTION]... [FILE]...", fs, cf, args[1:]); handled {
		return err
	}

	for i, set := range digits {
		if *set {
			*level = i + 1
		}
	}
	if *level < 1 || *level > 9 {
		return &ExitError{Code: types.ExitFailure, Err: fmt.Errorf("invalid compression level %d", *level)}
	}
	decompress := c.decompress || decompressFlag

	operands := fs.Args()
	if len(operands) == 0 {
		operands = []string{"-"}
	}
	for _, operand := range operands {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.processOperand(hc, operand, toStdout, decompress, *level); err != nil {
			return err
		}
	}
	return nil
}

// processOperand compresses or decompresses one operand. The operand "-"
// filters stdin to stdout; named files are written next to the original
// with the format suffix added or removed.
func (c *compressorCommand) processOperand(hc *HandlerContext, operand string, toStdout, decompress bool, level int) error {
	if operand == "-" {
		return c.filter(hc.Stdin, hc.Stdout, decompress, level)
	}

	in, err := os.Open(hc.Resolve(operand))
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			pathErr.Path = operand
		}
		return err
	}
	defer in.Close()

	if toStdout {
		return c.filter(in, hc.Stdout, decompress, level)
	}

	outPath, err := c.outputPath(operand, decompress)
	if err != nil {
		return err
	}
	if ok, err := c.confirmOverwrite(hc, outPath); err != nil || !ok {
		return err
	}

	out, err := os.Create(hc.Resolve(outPath))
	if err != nil {
		return err
	}
	if err := c.filter(in, out, decompress, level); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// outputPath derives the output file name: compressing appends the format
// suffix, decompressing strips it.
func (c *compressorCommand) outputPath(operand string, decompress bool) (string, error) {
	if !decompress {
		return operand + c.format.suffix(), nil
	}
	stripped := strings.TrimSuffix(operand, c.format.suffix())
	if stripped == operand || stripped == "" {
		return "", &ExitError{
			Code: 2,
			Err:  fmt.Errorf("%s: unknown suffix -- ignored", operand),
		}
	}
	return stripped, nil
}

// confirmOverwrite asks before clobbering an existing output file. It
// reports ok=false with a code-2 exit when the user declines.
func (c *compressorCommand) confirmOverwrite(hc *HandlerContext, outPath string) (bool, error) {
	if _, err := os.Stat(hc.Resolve(outPath)); err != nil {
		return true, nil
	}

	fmt.Fprintf(hc.Stdout, "%s: %s already exists; do you wish to overwrite (y or n)? ", c.name, outPath)
	answer, _ := bufio.NewReader(hc.Stdin).ReadString('\n')
	switch strings.TrimSpace(answer) {
	case "y", "Y":
		return true, nil
	default:
		fmt.Fprintln(hc.Stderr, "not overwritten")
		return false, &ExitError{Code: 2}
	}
}

// filter streams in to out through the configured codec.
func (c *compressorCommand) filter(in io.Reader, out io.Writer, decompress bool, level int) error {
	if decompress {
		return c.decompressStream(in, out)
	}
	return c.compressStream(in, out, level)
}

func (c *compressorCommand) compressStream(in io.Reader, out io.Writer, level int) error {
	var (
		w   io.WriteCloser
		err error
	)
	switch c.format {
	case formatBzip2:
		w, err = bzip2.NewWriter(out, &bzip2.WriterConfig{Level: level})
	default:
		w, err = gzip.NewWriterLevel(out, level)
	}
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, in); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func (c *compressorCommand) decompressStream(in io.Reader, out io.Writer) error {
	var (
		r   io.ReadCloser
		err error
	)
	switch c.format {
	case formatBzip2:
		r, err = bzip2.NewReader(in, nil)
	default:
		r, err = gzip.NewReader(in)
	}
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}
	if _, err := io.Copy(out, r); err != nil {
		r.Close()
		return &ExitError{Code: types.ExitFailure, Err: err}
	}
	return r.Close()
}

// openCompressed wraps r with the decompressor matching name's extension.
// Unrecognized extensions read through unchanged. cat uses this so
// compressed files are printed decompressed.
func openCompressed(r io.Reader, name string) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return gzip.NewReader(r)
	case ".bz2":
		return bzip2.NewReader(r, nil)
	default:
		return io.NopCloser(r), nil
	}
}
