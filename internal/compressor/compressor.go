// Package compressor creates the file a generated program is written to,
// optionally as a zip archive.
package compressor

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Ext marks an output path that should be written as a zip archive.
const Ext = ".zip"

// IsZip reports whether path names a zip archive.
func IsZip(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Ext)
}

// EntryName returns the name of the single entry stored in the archive at
// path: the base name without ".zip", or main.<ext> when that has no extension.
func EntryName(path, ext string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if filepath.Ext(name) == "" {
		return "main." + ext
	}
	return name
}

// Create creates or truncates the file at path. When path ends in .zip the
// returned writer stores everything written to it as one deflated entry
// named EntryName(path, ext). Close must be called to finish the file.
func Create(path, ext string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", path)
	}
	if !IsZip(path) {
		return f, nil
	}
	archive := zip.NewWriter(f)
	w, err := archive.CreateHeader(&zip.FileHeader{
		Name:   EntryName(path, ext),
		Method: zip.Deflate,
	})
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "add entry to %s", path)
	}
	return &zipSink{Writer: w, archive: archive, file: f}, nil
}

type zipSink struct {
	io.Writer
	archive *zip.Writer
	file    *os.File
}

func (z *zipSink) Close() error {
	if err := z.archive.Close(); err != nil {
		z.file.Close()
		return errors.Wrap(err, "finish archive")
	}
	return z.file.Close()
}
