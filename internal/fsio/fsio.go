// Package fsio abstracts the filesystem operations the selector needs
// so the apply/dry-run path can be exercised against an in-memory
// double in tests.
package fsio

// Filesystem is the seam between the selector and actual disk state.
// RealFilesystem is the production implementation; tests substitute
// MemFilesystem.
type Filesystem interface {
	// WriteFile writes contents to path, creating parent directories as
	// needed.
	WriteFile(path string, contents []byte) error

	// CopyFile copies oldPath to newPath, creating parent directories as
	// needed.
	CopyFile(oldPath, newPath string) error

	// RemoveFile deletes path. Removing a path that does not exist is
	// not an error.
	RemoveFile(path string) error

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error
}
