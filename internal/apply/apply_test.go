package apply

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/antgroup/zeta-record/internal/fsio"
	"github.com/antgroup/zeta-record/internal/record"
)

func TestChangesWritesSelectedText(t *testing.T) {
	fs := fsio.NewMemFilesystem()
	state := &record.RecordState{
		Files: []record.File{{
			Path:     "right.txt",
			FileMode: record.Unix(record.UnixRegular),
			Sections: []record.Section{
				record.NewChanged([]record.SectionChangedLine{
					{IsChecked: true, ChangeType: record.Removed, Line: "foo\n"},
					{IsChecked: true, ChangeType: record.Added, Line: "qux1\n"},
				}),
			},
		}},
	}
	require.NoError(t, Changes(fs, "", state))
	require.Equal(t, "qux1\n", string(fs.Files["right.txt"]))
}

func TestChangesDeletesOnAbsentMode(t *testing.T) {
	fs := fsio.NewMemFilesystem()
	fs.Files["left.txt"] = []byte("left\n")
	state := &record.RecordState{
		Files: []record.File{{
			Path:     "left.txt",
			FileMode: record.Unix(record.UnixRegular),
			Sections: []record.Section{
				record.NewFileModeSection(true, record.Absent),
				record.NewChanged([]record.SectionChangedLine{
					{IsChecked: true, ChangeType: record.Removed, Line: "left\n"},
				}),
			},
		}},
	}
	require.NoError(t, Changes(fs, "", state))
	_, ok := fs.Files["left.txt"]
	require.False(t, ok)
}

func TestChangesReadOnlyIsNoOp(t *testing.T) {
	fs := fsio.NewMemFilesystem()
	state := &record.RecordState{
		IsReadOnly: true,
		Files: []record.File{{
			Path:     "a.txt",
			FileMode: record.Unix(record.UnixRegular),
			Sections: []record.Section{record.NewChanged([]record.SectionChangedLine{
				{IsChecked: true, ChangeType: record.Added, Line: "x\n"},
			})},
		}},
	}
	require.NoError(t, Changes(fs, "", state))
	require.Empty(t, fs.Files)
}

func TestChangesBinaryCopiesFromOldPath(t *testing.T) {
	fs := fsio.NewMemFilesystem()
	fs.Files["left/img.png"] = []byte("binarydata")
	oldPath := "left/img.png"
	state := &record.RecordState{
		Files: []record.File{{
			OldPath:  &oldPath,
			Path:     "right/img.png",
			FileMode: record.Unix(record.UnixRegular),
			Sections: []record.Section{record.NewBinarySection(true, "abc (10 bytes)", "def (10 bytes)")},
		}},
	}
	require.NoError(t, Changes(fs, "", state))
	require.Equal(t, "binarydata", string(fs.Files["right/img.png"]))
}
