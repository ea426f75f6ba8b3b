package ui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/antgroup/zeta-record/internal/record"
	"github.com/antgroup/zeta-record/internal/term"
)

func sampleState() *record.RecordState {
	return &record.RecordState{
		Files: []record.File{
			{
				Path:     "a.txt",
				FileMode: record.Unix(record.UnixRegular),
				Sections: []record.Section{
					record.NewUnchanged([]string{"common\n"}),
					record.NewChanged([]record.SectionChangedLine{
						{IsChecked: false, ChangeType: record.Removed, Line: "old\n"},
						{IsChecked: false, ChangeType: record.Added, Line: "new\n"},
					}),
				},
			},
		},
	}
}

func TestToggleItemOnLine(t *testing.T) {
	s := New(sampleState(), nil)
	s.focus = lineAddr(0, 1, 0)

	_, err := s.HandleEvent(term.Event{Kind: term.ToggleItem})
	require.NoError(t, err)
	require.True(t, s.Record.Files[0].Sections[1].ChangedLines[0].IsChecked)
}

func TestFocusNextVisitsFileThenSectionThenLine(t *testing.T) {
	s := New(sampleState(), nil)
	require.Equal(t, fileAddr(0), s.Focus())

	// Section 0 is Unchanged context and is not focusable.
	s.HandleEvent(term.Event{Kind: term.FocusNext})
	require.Equal(t, sectionAddr(0, 1), s.Focus())

	s.HandleEvent(term.Event{Kind: term.FocusNext})
	require.Equal(t, lineAddr(0, 1, 0), s.Focus())

	s.HandleEvent(term.Event{Kind: term.FocusNext})
	require.Equal(t, lineAddr(0, 1, 1), s.Focus())
}

func TestCollapsedFileHidesSections(t *testing.T) {
	s := New(sampleState(), nil)
	s.HandleEvent(term.Event{Kind: term.ExpandItem})
	require.Equal(t, []Address{fileAddr(0)}, s.items)
}

func TestToggleAllInvertsEverySelectableLine(t *testing.T) {
	s := New(sampleState(), nil)
	s.HandleEvent(term.Event{Kind: term.ToggleAll})
	require.True(t, s.Record.Files[0].Sections[1].ChangedLines[0].IsChecked)
	require.True(t, s.Record.Files[0].Sections[1].ChangedLines[1].IsChecked)
}

func TestReadOnlyBlocksToggling(t *testing.T) {
	rs := sampleState()
	rs.IsReadOnly = true
	s := New(rs, nil)
	s.focus = lineAddr(0, 1, 0)
	s.HandleEvent(term.Event{Kind: term.ToggleItem})
	require.False(t, s.Record.Files[0].Sections[1].ChangedLines[0].IsChecked)
}

func TestQuitCancelIsImmediateWithNoPendingSelection(t *testing.T) {
	s := New(sampleState(), nil)
	outcome, err := s.HandleEvent(term.Event{Kind: term.QuitCancel})
	require.NoError(t, err)
	require.Equal(t, Cancel, outcome)
}

func TestQuitCancelOpensDialogWithPendingSelection(t *testing.T) {
	s := New(sampleState(), nil)
	s.focus = lineAddr(0, 1, 0)
	s.HandleEvent(term.Event{Kind: term.ToggleItem})

	outcome, err := s.HandleEvent(term.Event{Kind: term.QuitCancel})
	require.NoError(t, err)
	require.Equal(t, Continue, outcome)
	require.NotNil(t, s.quit)

	s.HandleEvent(term.Event{Kind: term.FocusNext})
	outcome, err = s.HandleEvent(term.Event{Kind: term.ToggleItem})
	require.NoError(t, err)
	require.Equal(t, Cancel, outcome)
}

func TestEditCommitMessageInvokesEditor(t *testing.T) {
	called := false
	editor := func(msg string) (string, error) {
		called = true
		return "new message", nil
	}
	s := New(sampleState(), editor)
	_, err := s.HandleEvent(term.Event{Kind: term.EditCommitMessage})
	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, "new message", s.CommitMessages[0])
}
