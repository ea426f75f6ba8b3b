package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleRecordState() *RecordState {
	msg := "initial commit"
	return &RecordState{
		Commits: []Commit{{Message: &msg}},
		Files: []File{
			{
				Path:     "a.txt",
				FileMode: Unix(UnixRegular),
				Sections: []Section{
					NewUnchanged([]string{"ctx\n"}),
					NewChanged([]SectionChangedLine{
						{IsChecked: true, ChangeType: Removed, Line: "old\n"},
						{IsChecked: false, ChangeType: Added, Line: "new\n"},
					}),
				},
			},
			{
				Path:     "b.bin",
				FileMode: Absent,
				Sections: []Section{
					NewFileModeSection(true, Unix(UnixRegular)),
					NewBinarySection(false, "", "abc (3 bytes)"),
				},
			},
		},
	}
}

func TestDumpLoadStateJSONRoundTrip(t *testing.T) {
	rs := sampleRecordState()
	data, err := DumpStateJSON(rs)
	require.NoError(t, err)

	got, err := LoadStateJSON(data)
	require.NoError(t, err)
	require.Equal(t, rs, got)
}

func TestLoadStateJSONRejectsUnknownSectionKind(t *testing.T) {
	_, err := LoadStateJSON([]byte(`{"Files":[{"Path":"x","FileMode":{"kind":"unix","mode":33188},"Sections":[{"kind":"bogus"}]}]}`))
	require.Error(t, err)
}

func TestDumpStateYAML(t *testing.T) {
	rs := sampleRecordState()
	data, err := DumpStateYAML(rs)
	require.NoError(t, err)
	require.Contains(t, string(data), "a.txt")
}

func TestDumpStateTOML(t *testing.T) {
	rs := sampleRecordState()
	data, err := DumpStateTOML(rs)
	require.NoError(t, err)
	require.Contains(t, string(data), "a.txt")
	require.Contains(t, string(data), "initial commit")
}
