package diffbuild

import (
	"strconv"

	"github.com/antgroup/zeta-record/internal/diffcore"
	"github.com/antgroup/zeta-record/internal/record"
)

// DefaultAlgorithm is used when a caller has no preference.
const DefaultAlgorithm = diffcore.Histogram

func makeBinaryDescription(hash string, numBytes uint64) string {
	return hash + " (" + strconv.FormatUint(numBytes, 10) + " bytes)"
}

func changedLines(lines []string, ct record.ChangeType) []record.SectionChangedLine {
	out := make([]record.SectionChangedLine, len(lines))
	for i, l := range lines {
		out[i] = record.SectionChangedLine{IsChecked: false, ChangeType: ct, Line: l}
	}
	return out
}

// buildTextDiff runs the line diff algorithm over two full texts and
// folds the resulting Change list into a run of Sections: consecutive
// equal spans become Unchanged, each Change's deletions followed by
// its insertions become one Changed section. The context length is
// implicitly "the whole file" because no hunk windowing happens here;
// the UI is responsible for abbreviating long Unchanged runs.
func buildTextDiff(oldContents, newContents string, algo diffcore.Algorithm) []record.Section {
	oldLines := splitLines(oldContents)
	newLines := splitLines(newContents)
	changes := diffcore.Diff(algo, oldLines, newLines)
	if len(changes) == 0 {
		return nil
	}

	var sections []record.Section
	last := 0
	for _, ch := range changes {
		if ch.P1 > last {
			sections = append(sections, record.NewUnchanged(append([]string(nil), oldLines[last:ch.P1]...)))
		}
		var lines []record.SectionChangedLine
		if ch.Del > 0 {
			lines = append(lines, changedLines(oldLines[ch.P1:ch.P1+ch.Del], record.Removed)...)
		}
		if ch.Ins > 0 {
			lines = append(lines, changedLines(newLines[ch.P2:ch.P2+ch.Ins], record.Added)...)
		}
		if len(lines) > 0 {
			sections = append(sections, record.NewChanged(lines))
		}
		last = ch.P1 + ch.Del
	}
	if last < len(oldLines) {
		sections = append(sections, record.NewUnchanged(append([]string(nil), oldLines[last:]...)))
	}
	return sections
}

// BuildFile assembles a record.File describing the change from
// (oldMode, oldContents) to (newMode, newContents) at the given
// display path. oldPath is set by the caller when the pre-image's
// display path differs (directory diffs with renamed display names
// never happen here, but a difftool invoked on two differently-named
// files does).
func BuildFile(path string, oldPath *string, oldMode, newMode record.FileMode, oldContents, newContents record.FileContents, algo diffcore.Algorithm) record.File {
	var sections []record.Section

	if !oldMode.Equal(newMode) {
		sections = append(sections, record.NewFileModeSection(false, newMode))
	}

	switch {
	case oldContents.Kind == record.ContentsAbsent && newContents.Kind == record.ContentsAbsent:
		// nothing to show

	case oldContents.Kind == record.ContentsAbsent && newContents.Kind == record.ContentsText:
		lines := changedLines(splitLines(newContents.Text), record.Added)
		if len(lines) > 0 {
			sections = append(sections, record.NewChanged(lines))
		}

	case oldContents.Kind == record.ContentsAbsent && newContents.Kind == record.ContentsBinary:
		sections = append(sections, record.NewBinarySection(false, "",
			makeBinaryDescription(newContents.Hash, newContents.NumBytes)))

	case oldContents.Kind == record.ContentsText && newContents.Kind == record.ContentsAbsent:
		lines := changedLines(splitLines(oldContents.Text), record.Removed)
		if len(lines) > 0 {
			sections = append(sections, record.NewChanged(lines))
		}

	case oldContents.Kind == record.ContentsText && newContents.Kind == record.ContentsText:
		sections = append(sections, buildTextDiff(oldContents.Text, newContents.Text, algo)...)

	case oldContents.Kind == record.ContentsBinary && newContents.Kind == record.ContentsAbsent:
		sections = append(sections, record.NewBinarySection(false,
			makeBinaryDescription(oldContents.Hash, oldContents.NumBytes), ""))

	default:
		// At least one side is Binary and neither side is Absent: show a
		// single Binary replacement section regardless of whether the
		// other side is Text or Binary.
		oldDesc, newDesc := "", ""
		if oldContents.Kind != record.ContentsAbsent {
			oldDesc = makeBinaryDescription(oldContents.Hash, oldContents.NumBytes)
		}
		if newContents.Kind != record.ContentsAbsent {
			newDesc = makeBinaryDescription(newContents.Hash, newContents.NumBytes)
		}
		sections = append(sections, record.NewBinarySection(false, oldDesc, newDesc))
	}

	return record.File{
		OldPath:  oldPath,
		Path:     path,
		FileMode: oldMode,
		Sections: sections,
	}
}
