// Package fileinfo reads a path's FileMode and FileContents off disk,
// classifying content as text or binary the same way a difftool must:
// a NUL byte or invalid UTF-8 forces Binary.
package fileinfo

import (
	"crypto/sha1"
	"encoding/hex"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/antgroup/zeta-record/internal/record"
)

// FileInfo is what a difftool needs to know about one side of one
// path: its mode and its classified contents.
type FileInfo struct {
	Mode     record.FileMode
	Contents record.FileContents
}

// Read inspects path and returns its FileInfo. A missing path is not
// an error: both Mode and Contents report Absent.
func Read(path string) (FileInfo, error) {
	mode, err := readMode(path)
	if err != nil {
		return FileInfo{}, err
	}
	contents, err := readContents(path)
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{Mode: mode, Contents: contents}, nil
}

func readMode(path string) (record.FileMode, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return record.Absent, nil
		}
		return record.FileMode{}, errors.Wrapf(err, "stat %s", path)
	}
	if info.IsDir() {
		return record.FileMode{}, errors.Errorf("%s: is a directory", path)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return record.Unix(record.UnixSymlink), nil
	}
	if info.Mode().Perm()&0o100 != 0 {
		return record.Unix(record.UnixExecutable), nil
	}
	return record.Unix(record.UnixRegular), nil
}

func readContents(path string) (record.FileContents, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return record.AbsentContents(), nil
		}
		return record.FileContents{}, errors.Wrapf(err, "read %s", path)
	}

	sum := sha1.Sum(data)
	hash := hex.EncodeToString(sum[:])
	numBytes := uint64(len(data))

	if containsNUL(data) || !utf8.Valid(data) {
		return record.BinaryContents(hash, numBytes), nil
	}
	return record.TextContents(string(data), hash, numBytes), nil
}

func containsNUL(data []byte) bool {
	for _, b := range data {
		if b == 0 {
			return true
		}
	}
	return false
}
