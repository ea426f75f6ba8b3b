package merge3

import "fmt"

// MissingFileError reports that one of the three inputs to a merge does
// not exist on disk.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("file is missing: %s", e.Path)
}

// BinaryFileError reports that one of the three inputs to a merge is
// not text, so a line-oriented three-way merge cannot run.
type BinaryFileError struct {
	Path string
}

func (e *BinaryFileError) Error() string {
	return fmt.Sprintf("file was not text: %s", e.Path)
}
