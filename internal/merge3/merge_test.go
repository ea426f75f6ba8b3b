package merge3

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/antgroup/zeta-record/internal/diffcore"
	"github.com/antgroup/zeta-record/internal/record"
)

func TestBuildMergeFileSingleLineConflict(t *testing.T) {
	base := "Hello world 1\nHello world 2\nHello world 3\nHello world 4\n"
	left := "Hello world 1\nHello world 2\nHello world L\nHello world 4\n"
	right := "Hello world 1\nHello world 2\nHello world R\nHello world 4\n"

	f, err := BuildMergeFile("output", Paths{Base: "base", Left: "left", Right: "right"},
		record.Unix(record.UnixRegular),
		record.TextContents(base, "", uint64(len(base))),
		record.TextContents(left, "", uint64(len(left))),
		record.TextContents(right, "", uint64(len(right))),
		diffcore.Histogram, StyleDiff3)
	require.NoError(t, err)

	require.Len(t, f.Sections, 3)
	require.Equal(t, record.SectionUnchanged, f.Sections[0].Kind)
	require.Equal(t, []string{"Hello world 1\n", "Hello world 2\n"}, f.Sections[0].Lines)

	require.Equal(t, record.SectionChanged, f.Sections[1].Kind)
	require.Equal(t, []record.SectionChangedLine{
		{ChangeType: record.Added, Line: "Hello world L\n"},
		{ChangeType: record.Removed, Line: "Hello world 3\n"},
		{ChangeType: record.Added, Line: "Hello world R\n"},
	}, f.Sections[1].ChangedLines)

	require.Equal(t, record.SectionUnchanged, f.Sections[2].Kind)
	require.Equal(t, []string{"Hello world 4\n"}, f.Sections[2].Lines)
}

func TestBuildMergeFileCleanMergeHasNoSections(t *testing.T) {
	base := "a\nb\nc\n"
	left := "a\nb2\nc\n"
	right := "a\nb\nc2\n"

	f, err := BuildMergeFile("output", Paths{Base: "base", Left: "left", Right: "right"},
		record.Unix(record.UnixRegular),
		record.TextContents(base, "", uint64(len(base))),
		record.TextContents(left, "", uint64(len(left))),
		record.TextContents(right, "", uint64(len(right))),
		diffcore.Histogram, StyleDiff3)
	require.NoError(t, err)
	require.Empty(t, f.Sections)
}

func TestBuildMergeFileSameEditIsNotAConflict(t *testing.T) {
	base := "a\nb\nc\n"
	left := "a\nZZZ\nc\n"
	right := "a\nZZZ\nc\n"

	f, err := BuildMergeFile("output", Paths{Base: "base", Left: "left", Right: "right"},
		record.Unix(record.UnixRegular),
		record.TextContents(base, "", uint64(len(base))),
		record.TextContents(left, "", uint64(len(left))),
		record.TextContents(right, "", uint64(len(right))),
		diffcore.Histogram, StyleDiff3)
	require.NoError(t, err)
	require.Empty(t, f.Sections)
}

func TestBuildMergeFileMissingFileIsFatal(t *testing.T) {
	base := "a\n"
	left := "a\n"
	_, err := BuildMergeFile("output", Paths{Base: "base", Left: "left", Right: "right"},
		record.Unix(record.UnixRegular),
		record.TextContents(base, "", uint64(len(base))),
		record.TextContents(left, "", uint64(len(left))),
		record.AbsentContents(),
		diffcore.Histogram, StyleDiff3)
	require.Error(t, err)
	var missing *MissingFileError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "right", missing.Path)
}

func TestBuildMergeFileBinaryFileIsFatal(t *testing.T) {
	base := "a\n"
	left := "a\n"
	_, err := BuildMergeFile("output", Paths{Base: "base", Left: "left", Right: "right"},
		record.Unix(record.UnixRegular),
		record.TextContents(base, "", uint64(len(base))),
		record.TextContents(left, "", uint64(len(left))),
		record.BinaryContents("hash", 4),
		diffcore.Histogram, StyleDiff3)
	require.Error(t, err)
	var binErr *BinaryFileError
	require.ErrorAs(t, err, &binErr)
	require.Equal(t, "right", binErr.Path)
}

func TestBuildMergeFileZealousStyleHoistsCommonEdges(t *testing.T) {
	base := "a\nX\nb\n"
	left := "a\nP\nQ\nb\n"
	right := "a\nP\nR\nb\n"

	f, err := BuildMergeFile("output", Paths{Base: "base", Left: "left", Right: "right"},
		record.Unix(record.UnixRegular),
		record.TextContents(base, "", uint64(len(base))),
		record.TextContents(left, "", uint64(len(left))),
		record.TextContents(right, "", uint64(len(right))),
		diffcore.Histogram, StyleZealousDiff3)
	require.NoError(t, err)

	require.Len(t, f.Sections, 3)
	require.Equal(t, record.SectionUnchanged, f.Sections[0].Kind)
	require.Equal(t, []string{"a\n", "P\n"}, f.Sections[0].Lines)

	require.Equal(t, record.SectionChanged, f.Sections[1].Kind)
	require.Equal(t, []record.SectionChangedLine{
		{ChangeType: record.Added, Line: "Q\n"},
		{ChangeType: record.Removed, Line: "X\n"},
		{ChangeType: record.Added, Line: "R\n"},
	}, f.Sections[1].ChangedLines)

	require.Equal(t, record.SectionUnchanged, f.Sections[2].Kind)
	require.Equal(t, []string{"b\n"}, f.Sections[2].Lines)
}

func TestChooseMarkersAvoidsCollidingContent(t *testing.T) {
	base := "<<<<<<<\n"
	m := chooseMarkers(base, "", "")
	require.Len(t, m.left, 8)
	require.False(t, containsAny(base, m))
}

func containsAny(s string, m markerSet) bool {
	for _, marker := range []string{m.left, m.baseStart, m.baseEnd, m.right} {
		if marker != "" && strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
