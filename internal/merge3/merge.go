package merge3

import (
	"strings"

	"github.com/antgroup/zeta-record/internal/diffcore"
	"github.com/antgroup/zeta-record/internal/record"
)

// Paths names the three inputs to a merge, used only for error
// reporting.
type Paths struct {
	Base, Left, Right string
}

// ConflictStyle selects how the textual conflict pass presents each
// conflicting hunk before parsing.
type ConflictStyle int

const (
	// StyleDiff3 writes left, base, and right between markers.
	StyleDiff3 ConflictStyle = iota
	// StyleZealousDiff3 is StyleDiff3 with the common leading and
	// trailing lines of the left and right hunks hoisted out of the
	// conflict, shrinking what the user has to pick between.
	StyleZealousDiff3
)

// ParseConflictStyle maps a --conflict-style flag value.
func ParseConflictStyle(name string) ConflictStyle {
	if name == "zdiff3" {
		return StyleZealousDiff3
	}
	return StyleDiff3
}

// BuildMergeFile runs a three-way merge of base/left/right and returns
// the File a merge-conflict viewer should render: empty Sections if
// the merge was clean, otherwise one Changed section per conflicting
// hunk (with competing left/right edits both shown as additions over
// the discarded base text) interleaved with Unchanged context.
func BuildMergeFile(path string, paths Paths, leftMode record.FileMode, base, left, right record.FileContents, algo diffcore.Algorithm, style ConflictStyle) (record.File, error) {
	if base.Kind == record.ContentsAbsent {
		return record.File{}, &MissingFileError{Path: paths.Base}
	}
	if left.Kind == record.ContentsAbsent {
		return record.File{}, &MissingFileError{Path: paths.Left}
	}
	if right.Kind == record.ContentsAbsent {
		return record.File{}, &MissingFileError{Path: paths.Right}
	}
	if base.Kind == record.ContentsBinary {
		return record.File{}, &BinaryFileError{Path: paths.Base}
	}
	if left.Kind == record.ContentsBinary {
		return record.File{}, &BinaryFileError{Path: paths.Left}
	}
	if right.Kind == record.ContentsBinary {
		return record.File{}, &BinaryFileError{Path: paths.Right}
	}

	sections := merge(base.Text, left.Text, right.Text, algo, style)
	return record.File{
		OldPath:  &paths.Base,
		Path:     path,
		FileMode: leftMode,
		Sections: sections,
	}, nil
}

func merge(baseText, leftText, rightText string, algo diffcore.Algorithm, style ConflictStyle) []record.Section {
	oLines := splitLines(baseText)
	aLines := splitLines(leftText)
	bLines := splitLines(rightText)

	changesLeft := diffcore.Diff(algo, oLines, aLines)
	changesRight := diffcore.Diff(algo, oLines, bLines)
	regions := findRegions(changesLeft, changesRight, aLines, bLines)

	if !anyConflict(regions) {
		return nil
	}

	markers := chooseMarkers(baseText, leftText, rightText)
	text := writeConflictText(oLines, aLines, bLines, regions, markers, style)
	return parseConflictText(text, markers)
}

func anyConflict(regions []region) bool {
	for _, r := range regions {
		if r.conflict {
			return true
		}
	}
	return false
}

func writeConflictText(oLines, aLines, bLines []string, regions []region, m markerSet, style ConflictStyle) string {
	var b strings.Builder
	pos := 0
	writeLines := func(lines []string, lhs, rhs int) {
		for _, l := range lines[lhs:rhs] {
			b.WriteString(l)
		}
	}
	for _, r := range regions {
		if pos < r.start {
			writeLines(oLines, pos, r.start)
		}
		if !r.conflict {
			if len(r.left) > 0 {
				lhs, rhs := insertedRange(r.left, aLines, r.start, r.end)
				writeLines(aLines, lhs, rhs)
			} else if len(r.right) > 0 {
				lhs, rhs := insertedRange(r.right, bLines, r.start, r.end)
				writeLines(bLines, lhs, rhs)
			}
		} else {
			aLhs, aRhs := insertedRange(r.left, aLines, r.start, r.end)
			bLhs, bRhs := insertedRange(r.right, bLines, r.start, r.end)
			aHunk := aLines[aLhs:aRhs]
			bHunk := bLines[bLhs:bRhs]
			var suffix []string
			if style == StyleZealousDiff3 {
				p := diffcore.CommonPrefixLength(aHunk, bHunk)
				writeLines(aHunk, 0, p)
				aHunk, bHunk = aHunk[p:], bHunk[p:]
				s := diffcore.CommonSuffixLength(aHunk, bHunk)
				suffix = aHunk[len(aHunk)-s:]
				aHunk, bHunk = aHunk[:len(aHunk)-s], bHunk[:len(bHunk)-s]
			}
			b.WriteString(m.left + "\n")
			writeLines(aHunk, 0, len(aHunk))
			b.WriteString(m.baseStart + "\n")
			writeLines(oLines, r.start, r.end)
			b.WriteString(m.baseEnd + "\n")
			writeLines(bHunk, 0, len(bHunk))
			b.WriteString(m.right + "\n")
			writeLines(suffix, 0, len(suffix))
		}
		pos = r.end
	}
	if pos < len(oLines) {
		writeLines(oLines, pos, len(oLines))
	}
	return b.String()
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := make([]string, 0, 64)
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
