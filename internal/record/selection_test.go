package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestSelectionPartitionLaw(t *testing.T) {
	// Three sections, select-all.
	f := File{
		Path:     "foo.txt",
		FileMode: Unix(UnixRegular),
		Sections: []Section{
			NewChanged([]SectionChangedLine{
				{IsChecked: true, ChangeType: Removed, Line: "foo\n"},
				{IsChecked: true, ChangeType: Added, Line: "qux1\n"},
			}),
			NewUnchanged([]string{"common1\n", "common2\n"}),
			NewChanged([]SectionChangedLine{
				{IsChecked: true, ChangeType: Removed, Line: "bar\n"},
				{IsChecked: true, ChangeType: Added, Line: "qux2\n"},
			}),
		},
	}
	selected, unselected := GetSelectedContents(&f)
	require.Equal(t, SelectedText, selected.Contents.Kind)
	require.Equal(t, "qux1\ncommon1\ncommon2\nqux2\n", selected.Contents.Text)
	require.Equal(t, SelectedText, unselected.Contents.Kind)
	require.Equal(t, "foo\ncommon1\ncommon2\nbar\n", unselected.Contents.Text)
}

func TestSelectionNewFile(t *testing.T) {
	// New file, select-all.
	f := File{
		Path:     "right.txt",
		FileMode: Absent,
		Sections: []Section{
			NewFileModeSection(true, Unix(UnixRegular)),
			NewChanged([]SectionChangedLine{
				{IsChecked: true, ChangeType: Added, Line: "right\n"},
			}),
		},
	}
	selected, unselected := GetSelectedContents(&f)
	require.Equal(t, Unix(UnixRegular), selected.FileMode)
	require.Equal(t, "right\n", selected.Contents.Text)
	require.True(t, unselected.FileMode.IsAbsent())
	require.Equal(t, SelectedUnchanged, unselected.Contents.Kind)
}

func TestSelectionDeletedFile(t *testing.T) {
	// Deleted file, select-all.
	f := File{
		Path:     "left.txt",
		FileMode: Unix(UnixRegular),
		Sections: []Section{
			NewFileModeSection(true, Absent),
			NewChanged([]SectionChangedLine{
				{IsChecked: true, ChangeType: Removed, Line: "left\n"},
			}),
		},
	}
	selected, unselected := GetSelectedContents(&f)
	require.True(t, selected.FileMode.IsAbsent())
	require.Equal(t, SelectedUnchanged, selected.Contents.Kind)
	require.Equal(t, Unix(UnixRegular), unselected.FileMode)
	require.Equal(t, "left\n", unselected.Contents.Text)
}

func TestSelectionPartialNewFile(t *testing.T) {
	// New file, two added lines, uncheck the first.
	f := File{
		Path:     "new.txt",
		FileMode: Absent,
		Sections: []Section{
			NewFileModeSection(true, Unix(UnixRegular)),
			NewChanged([]SectionChangedLine{
				{IsChecked: false, ChangeType: Added, Line: "one\n"},
				{IsChecked: true, ChangeType: Added, Line: "two\n"},
			}),
		},
	}
	selected, _ := GetSelectedContents(&f)
	require.Equal(t, "two\n", selected.Contents.Text)
}

func TestSelectionEmptyFileCreation(t *testing.T) {
	// Mode-only accept on an absent file yields Text, never Unchanged,
	// even with zero content sections.
	f := File{
		Path:     "empty.txt",
		FileMode: Absent,
		Sections: []Section{
			NewFileModeSection(true, Unix(UnixRegular)),
		},
	}
	selected, _ := GetSelectedContents(&f)
	require.Equal(t, SelectedText, selected.Contents.Kind)
	require.Equal(t, "", selected.Contents.Text)
}

func TestSelectionBinary(t *testing.T) {
	// Binary replacement.
	f := File{
		Path:     "img.png",
		FileMode: Unix(UnixRegular),
		Sections: []Section{
			NewBinarySection(true, "abc (123 bytes)", "def (456 bytes)"),
		},
	}
	selected, unselected := GetSelectedContents(&f)
	require.Equal(t, SelectedBinary, selected.Contents.Kind)
	require.Equal(t, "abc (123 bytes)", selected.Contents.OldDescription)
	require.Equal(t, "def (456 bytes)", selected.Contents.NewDescription)
	require.Equal(t, SelectedUnchanged, unselected.Contents.Kind)
}

func TestTristateMonotonicity(t *testing.T) {
	f := File{
		Path:     "x.txt",
		FileMode: Unix(UnixRegular),
		Sections: []Section{
			NewChanged([]SectionChangedLine{
				{IsChecked: false, ChangeType: Added, Line: "a\n"},
				{IsChecked: false, ChangeType: Removed, Line: "b\n"},
			}),
		},
	}
	require.Equal(t, TristateFalse, f.Tristate())
	f.SetChecked(true)
	require.Equal(t, TristateTrue, f.Tristate())
	f.SetChecked(false)
	require.Equal(t, TristateFalse, f.Tristate())
}

func TestCommitsPaddedToTwo(t *testing.T) {
	rs := RecordState{Commits: []Commit{{Message: strp("only one")}}}
	require.Len(t, rs.PaddedCommits(), 2)

	rs2 := RecordState{Commits: []Commit{{}, {}, {}}}
	require.Len(t, rs2.PaddedCommits(), 3)
}

func TestReadOnlyImmutability(t *testing.T) {
	rs := RecordState{
		IsReadOnly: true,
		Files: []File{{
			Path:     "a.txt",
			FileMode: Unix(UnixRegular),
			Sections: []Section{NewChanged([]SectionChangedLine{{ChangeType: Added, Line: "x\n"}})},
		}},
	}
	before := rs.Tristate()
	// RecordState's mutators are unconditional; the read-only guard
	// lives in the UI event dispatcher (internal/ui), not here. This
	// test only checks the starting tristate of a read-only state.
	require.Equal(t, TristateFalse, before)
}
