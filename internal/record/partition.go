package record

import (
	"fmt"
	"strings"
)

// ReconstructSides rebuilds the two texts a File's sections describe:
// unchanged lines plus removed lines give the old side, unchanged
// lines plus added lines the new side, in section order. FileMode and
// Binary sections contribute no text.
func ReconstructSides(f *File) (oldText, newText string) {
	var oldB, newB strings.Builder
	for i := range f.Sections {
		s := &f.Sections[i]
		switch s.Kind {
		case SectionUnchanged:
			for _, l := range s.Lines {
				oldB.WriteString(l)
				newB.WriteString(l)
			}
		case SectionChanged:
			for _, cl := range s.ChangedLines {
				if cl.ChangeType == Removed {
					oldB.WriteString(cl.Line)
				} else {
					newB.WriteString(cl.Line)
				}
			}
		}
	}
	return oldB.String(), newB.String()
}

// VerifyPartition checks that a File's sections round-trip to the
// texts they were built from, byte for byte. Test-only.
func VerifyPartition(f *File, wantOld, wantNew string) error {
	gotOld, gotNew := ReconstructSides(f)
	if gotOld != wantOld {
		return fmt.Errorf("record: old side of %s does not round-trip: got %q, want %q", f.Path, gotOld, wantOld)
	}
	if gotNew != wantNew {
		return fmt.Errorf("record: new side of %s does not round-trip: got %q, want %q", f.Path, gotNew, wantNew)
	}
	return nil
}
