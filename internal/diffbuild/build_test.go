package diffbuild

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/antgroup/zeta-record/internal/diffcore"
	"github.com/antgroup/zeta-record/internal/record"
)

func TestBuildFileSimpleEdit(t *testing.T) {
	old := "foo\ncommon1\ncommon2\nbar\n"
	new_ := "qux1\ncommon1\ncommon2\nqux2\n"
	f := BuildFile("right", strp("left"), record.Unix(record.UnixRegular), record.Unix(record.UnixRegular),
		record.TextContents(old, "", uint64(len(old))), record.TextContents(new_, "", uint64(len(new_))), diffcore.Histogram)

	require.Len(t, f.Sections, 3)
	require.Equal(t, record.SectionChanged, f.Sections[0].Kind)
	require.Equal(t, []record.SectionChangedLine{
		{IsChecked: false, ChangeType: record.Removed, Line: "foo\n"},
		{IsChecked: false, ChangeType: record.Added, Line: "qux1\n"},
	}, f.Sections[0].ChangedLines)

	require.Equal(t, record.SectionUnchanged, f.Sections[1].Kind)
	require.Equal(t, []string{"common1\n", "common2\n"}, f.Sections[1].Lines)

	require.Equal(t, record.SectionChanged, f.Sections[2].Kind)
	require.Equal(t, []record.SectionChangedLine{
		{IsChecked: false, ChangeType: record.Removed, Line: "bar\n"},
		{IsChecked: false, ChangeType: record.Added, Line: "qux2\n"},
	}, f.Sections[2].ChangedLines)
}

func TestBuildFileNewFile(t *testing.T) {
	f := BuildFile("new.txt", nil, record.Absent, record.Unix(record.UnixRegular),
		record.AbsentContents(), record.TextContents("hello\n", "", 6), diffcore.Histogram)

	require.Len(t, f.Sections, 2)
	require.Equal(t, record.SectionFileMode, f.Sections[0].Kind)
	require.True(t, f.Sections[0].Mode.Equal(record.Unix(record.UnixRegular)))
	require.Equal(t, record.SectionChanged, f.Sections[1].Kind)
	require.Equal(t, record.Added, f.Sections[1].ChangedLines[0].ChangeType)
}

func TestBuildFileDeletedFile(t *testing.T) {
	f := BuildFile("old.txt", nil, record.Unix(record.UnixRegular), record.Absent,
		record.TextContents("bye\n", "", 4), record.AbsentContents(), diffcore.Histogram)

	require.Len(t, f.Sections, 2)
	require.Equal(t, record.SectionFileMode, f.Sections[0].Kind)
	require.True(t, f.Sections[0].Mode.IsAbsent())
	require.Equal(t, record.Removed, f.Sections[1].ChangedLines[0].ChangeType)
}

func TestBuildFileBinaryReplacement(t *testing.T) {
	f := BuildFile("img.png", nil, record.Unix(record.UnixRegular), record.Unix(record.UnixRegular),
		record.BinaryContents("abc", 123), record.BinaryContents("def", 456), diffcore.Histogram)

	require.Len(t, f.Sections, 1)
	require.Equal(t, record.SectionBinary, f.Sections[0].Kind)
	require.Equal(t, "abc (123 bytes)", f.Sections[0].OldDescription)
	require.Equal(t, "def (456 bytes)", f.Sections[0].NewDescription)
}

func TestBuildFileIdenticalContentsNoSections(t *testing.T) {
	f := BuildFile("same.txt", nil, record.Unix(record.UnixRegular), record.Unix(record.UnixRegular),
		record.TextContents("a\nb\n", "", 4), record.TextContents("a\nb\n", "", 4), diffcore.Histogram)
	require.Empty(t, f.Sections)
}

func strp(s string) *string { return &s }

func TestBuildFileSectionsRoundTripBothSides(t *testing.T) {
	cases := []struct {
		name     string
		old, new string
	}{
		{"simple-edit", "foo\ncommon1\ncommon2\nbar\n", "qux1\ncommon1\ncommon2\nqux2\n"},
		{"no-trailing-newline", "a\nb", "a\nc"},
		{"empty-old", "", "x\ny\n"},
		{"empty-new", "x\ny\n", ""},
		{"interleaved", "a\nb\nc\nd\ne\n", "a\nx\nc\ny\ne\n"},
	}
	for _, tc := range cases {
		for _, algo := range []diffcore.Algorithm{diffcore.Histogram, diffcore.Myers, diffcore.Patience, diffcore.ONP} {
			t.Run(tc.name, func(t *testing.T) {
				f := BuildFile("f", nil, record.Unix(record.UnixRegular), record.Unix(record.UnixRegular),
					record.TextContents(tc.old, "", uint64(len(tc.old))),
					record.TextContents(tc.new, "", uint64(len(tc.new))), algo)
				require.NoError(t, record.VerifyPartition(&f, tc.old, tc.new))
			})
		}
	}
}
