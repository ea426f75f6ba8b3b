package fsio

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// RealFilesystem implements Filesystem against the host OS.
type RealFilesystem struct{}

var _ Filesystem = RealFilesystem{}

func (RealFilesystem) WriteFile(path string, contents []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create directory for %s", path)
		}
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		return errors.Wrapf(err, "write file %s", path)
	}
	return nil
}

func (RealFilesystem) CopyFile(oldPath, newPath string) error {
	if dir := filepath.Dir(newPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create directory for %s", newPath)
		}
	}
	src, err := os.Open(oldPath)
	if err != nil {
		return errors.Wrapf(err, "open %s for copy", oldPath)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return errors.Wrapf(err, "stat %s", oldPath)
	}

	dst, err := os.OpenFile(newPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, "open %s for copy", newPath)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.Wrapf(err, "copy %s to %s", oldPath, newPath)
	}
	return nil
}

func (RealFilesystem) RemoveFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "remove file %s", path)
	}
	return nil
}

func (RealFilesystem) MkdirAll(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return errors.Wrapf(err, "create directory %s", path)
	}
	return nil
}
