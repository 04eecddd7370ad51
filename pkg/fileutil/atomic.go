// Package fileutil writes generated files so that readers never observe a
// partially written result.
package fileutil

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/thoreinstein/cctarget/internal/errors"
)

// AtomicWriteFile writes data to path using a temp file + rename.
// An interrupted write leaves any previous file intact.
//
// The caller is responsible for ensuring the parent directory exists.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	return writeAtomic(path, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// writeAtomic streams the output of fn into path atomically. If fn
// returns an error the destination is left untouched.
func writeAtomic(path string, perm os.FileMode, fn func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".cctarget-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	buf := bufio.NewWriter(tmp)
	if err := fn(buf); err != nil {
		return errors.Wrap(err, "writing temp file")
	}
	if err := buf.Flush(); err != nil {
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	return nil
}
