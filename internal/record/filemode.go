// Package record implements the hierarchical change model shared by the
// diff/merge selector: FileMode, FileContents, Section, File, Commit,
// RecordState, tristate derivation, and the get_selected_contents
// projection that is the core of the whole tool.
package record

import "fmt"

// FileModeKind distinguishes an absent path from one with a concrete
// Unix-style mode word.
type FileModeKind uint8

const (
	ModeAbsent FileModeKind = iota
	ModeUnix
)

// Well-known Unix mode words used throughout the package and by callers
// constructing Files from disk state.
const (
	UnixRegular    uint32 = 0o100644
	UnixExecutable uint32 = 0o100755
	UnixSymlink    uint32 = 0o120000
)

// FileMode is either Absent (the path does not exist) or Unix(n) for a
// concrete Unix mode word. The zero value is Absent.
type FileMode struct {
	Kind FileModeKind
	Mode uint32
}

// Absent is the FileMode of a path that does not exist.
var Absent = FileMode{Kind: ModeAbsent}

// Unix constructs a FileMode carrying a concrete Unix mode word.
func Unix(mode uint32) FileMode {
	return FileMode{Kind: ModeUnix, Mode: mode}
}

func (m FileMode) IsAbsent() bool { return m.Kind == ModeAbsent }

func (m FileMode) String() string {
	if m.Kind == ModeAbsent {
		return "absent"
	}
	return fmt.Sprintf("0o%o", m.Mode)
}

// Less orders FileMode values lexicographically by their string form.
func (m FileMode) Less(other FileMode) bool {
	return m.String() < other.String()
}

// Equal compares variant and numeric mode.
func (m FileMode) Equal(other FileMode) bool {
	if m.Kind != other.Kind {
		return false
	}
	return m.Kind == ModeAbsent || m.Mode == other.Mode
}
