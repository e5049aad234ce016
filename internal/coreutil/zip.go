// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
)

const zipUsage = "-l [OPTION]... ZIPFILE...\n" +
	"       zip -t [OPTION]... ZIPFILE...\n" +
	"       zip -e [OPTION]... ZIPFILE TARGET\n" +
	"       zip -c [OPTION]... ZIPFILE SOURCE..."

// zipCommand packages and unpackages zip archives.
type zipCommand struct {
	name  string
	flags []FlagInfo
}

func newZipCommand() *zipCommand {
	return &zipCommand{
		name: "zip",
		flags: []FlagInfo{
			{Name: "create", ShortName: "c", Description: "create zipfile from source"},
			{Name: "extract", ShortName: "e", Description: "extract zipfile into target directory"},
			{Name: "list", ShortName: "l", Description: "list files in zipfile"},
			{Name: "test", ShortName: "t", Description: "test if a zipfile is valid"},
		},
	}
}

func (c *zipCommand) Name() string { return c.name }

func (c *zipCommand) SupportedFlags() []FlagInfo { return c.flags }

func (c *zipCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	fs, cf := newFlagSet(c.name)
	create := fs.Bool("c", false, "create zipfile from source")
	fs.BoolVar(create, "create", false, "create zipfile from source")
	extract := fs.Bool("e", false, "extract zipfile into target directory")
	fs.BoolVar(extract, "extract", false, "extract zipfile into target directory")
	list := fs.Bool("l", false, "list files in zipfile")
	fs.BoolVar(list, "list", false, "list files in zipfile")
	test := fs.Bool("t", false, "test if a zipfile is valid")
	fs.BoolVar(test, "test", false, "test if a zipfile is valid")
	if handled, err := parseArgs(hc, c, zipUsage, fs, cf, args[1:]); handled {
		return err
	}

	operands := fs.Args()
	switch {
	case *list:
		if len(operands) != 1 {
			return c.usageError(hc)
		}
		return c.list(hc, operands[0])
	case *test:
		if len(operands) != 1 {
			return c.usageError(hc)
		}
		return c.test(hc, operands[0])
	case *extract:
		if len(operands) != 2 {
			return c.usageError(hc)
		}
		return c.extract(hc, operands[0], operands[1])
	case *create:
		if len(operands) < 2 {
			return c.usageError(hc)
		}
		return c.create(hc, operands[0], operands[1:])
	}
	return c.usageError(hc)
}

func (c *zipCommand) usageError(hc *HandlerContext) error {
	fmt.Fprintf(hc.Stderr, "Usage: %s %s\n", c.name, zipUsage)
	return &ExitError{Code: 1}
}

// list prints a table of contents for the archive.
func (c *zipCommand) list(hc *HandlerContext, zipfile string) error {
	zr, err := zip.OpenReader(hc.Resolve(zipfile))
	if err != nil {
		return reportAs(err, zipfile)
	}
	defer zr.Close()

	fmt.Fprintf(hc.Stdout, "%-46s %19s %12s\n", "File Name", "Modified    ", "Size")
	for _, f := range zr.File {
		m := f.Modified
		date := fmt.Sprintf("%d-%02d-%02d %02d:%02d:%02d",
			m.Year(), m.Month(), m.Day(), m.Hour(), m.Minute(), m.Second())
		fmt.Fprintf(hc.Stdout, "%-46s %19s %12d\n", f.Name, date, f.UncompressedSize64)
	}
	return nil
}

// test reads every archive member in full so the per-file checksums are
// verified, reporting the first member that fails.
func (c *zipCommand) test(hc *HandlerContext, zipfile string) error {
	zr, err := zip.OpenReader(hc.Resolve(zipfile))
	if err != nil {
		return reportAs(err, zipfile)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if err := readMember(f); err != nil {
			fmt.Fprintf(hc.Stderr, "Error on file %s\n", f.Name)
			return &ExitError{Code: 1}
		}
	}
	fmt.Fprintf(hc.Stdout, "%s tested ok\n", zipfile)
	return nil
}

func readMember(f *zip.File) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	_, err = io.Copy(io.Discard, rc)
	return err
}

// extract unpacks the archive into the target directory, creating missing
// parent directories along the way. Member names are relative to the target;
// names that would escape it are rejected.
func (c *zipCommand) extract(hc *HandlerContext, zipfile, target string) error {
	zr, err := zip.OpenReader(hc.Resolve(zipfile))
	if err != nil {
		return reportAs(err, zipfile)
	}
	defer zr.Close()

	for _, f := range zr.File {
		name := strings.TrimPrefix(f.Name, "./")
		if name == "" || strings.HasSuffix(name, "/") {
			continue
		}
		rel := filepath.FromSlash(name)
		if !filepath.IsLocal(rel) {
			return &ExitError{Code: 1, Err: fmt.Errorf("insecure path in archive: %s", f.Name)}
		}
		tgt := filepath.Join(hc.Resolve(target), rel)
		if err := os.MkdirAll(filepath.Dir(tgt), 0o777); err != nil {
			return err
		}
		if err := extractMember(f, tgt); err != nil {
			return err
		}
	}
	return nil
}

func extractMember(f *zip.File, tgt string) (err error) {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	out, err := os.Create(tgt)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	_, err = io.Copy(out, rc)
	return err
}

// create writes a new archive holding each source, descending into source
// directories. Sources that are neither regular files nor directories are
// reported and skipped.
func (c *zipCommand) create(hc *HandlerContext, zipfile string, sources []string) (err error) {
	out, err := os.Create(hc.Resolve(zipfile))
	if err != nil {
		return reportAs(err, zipfile)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = reportAs(cerr, zipfile)
		}
	}()

	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.DefaultCompression)
	})
	defer func() {
		if cerr := zw.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for _, src := range sources {
		if err := c.addToZip(hc, zw, src, filepath.Base(src)); err != nil {
			return err
		}
	}
	return nil
}

// addToZip stores a file under arcpath or recurses over a directory's
// entries. arcpath always uses forward slashes.
func (c *zipCommand) addToZip(hc *HandlerContext, zw *zip.Writer, src, arcpath string) error {
	info, err := os.Stat(hc.Resolve(src))
	switch {
	case err == nil && info.Mode().IsRegular():
		return c.storeFile(hc, zw, src, arcpath, info)
	case err == nil && info.IsDir():
		entries, err := os.ReadDir(hc.Resolve(src))
		if err != nil {
			return reportAs(err, src)
		}
		for _, entry := range entries {
			child := filepath.Join(src, entry.Name())
			if err := c.addToZip(hc, zw, child, path.Join(arcpath, entry.Name())); err != nil {
				return err
			}
		}
		return nil
	default:
		fmt.Fprintf(hc.Stderr, "Can't store %s\n", src)
		return nil
	}
}

func (c *zipCommand) storeFile(hc *HandlerContext, zw *zip.Writer, src, arcpath string, info os.FileInfo) error {
	in, err := os.Open(hc.Resolve(src))
	if err != nil {
		return reportAs(err, src)
	}
	defer in.Close()

	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = arcpath
	hdr.Method = zip.Deflate
	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, in)
	return err
}
