package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/antgroup/zeta-record/internal/record"
	"github.com/antgroup/zeta-record/internal/term"
)

// CancelledError is returned by Run when the user quits without
// accepting, distinguishing a clean cancel from a real failure.
type CancelledError struct{}

func (CancelledError) Error() string { return "cancelled by user" }

// Run drives the blocking read-then-render event loop: it renders the
// state, waits for a batch of input events, applies each in order,
// and re-renders, until the user accepts or cancels.
func Run(screen tcell.Screen, input term.Input, s *State) (*record.RecordState, error) {
	for {
		Render(screen, s)
		events, err := input.NextEvents()
		if err != nil {
			return nil, err
		}
		for _, ev := range events {
			outcome, err := s.HandleEvent(ev)
			if err != nil {
				return nil, err
			}
			switch outcome {
			case Accept:
				applyCommitMessages(s)
				return s.Record, nil
			case Cancel:
				return nil, CancelledError{}
			}
		}
	}
}

func applyCommitMessages(s *State) {
	for i := range s.Record.Commits {
		if i < len(s.CommitMessages) {
			msg := s.CommitMessages[i]
			s.Record.Commits[i].Message = &msg
		}
	}
}
