// Package term defines the logical input events the selector state
// machine consumes, independent of the physical terminal backend.
package term

// Kind identifies a logical event, matching the event vocabulary the
// UI state machine reacts to.
type Kind int

const (
	None Kind = iota
	FocusNext
	FocusPrev
	FocusNextSameKind
	FocusPrevSameKind
	FocusInner
	FocusOuter
	ExpandItem
	ExpandAll
	ToggleItem
	ToggleItemAndAdvance
	ToggleAll
	ToggleAllUniform
	Click
	ScrollUp
	ScrollDown
	EnsureSelectionInViewport
	EditCommitMessage
	QuitAccept
	QuitCancel
	QuitInterrupt
	Resize
)

// Event is one logical occurrence delivered to the UI state machine.
// Row/Col are only meaningful for Click; Width/Height only for Resize.
type Event struct {
	Kind   Kind
	Row    int
	Col    int
	Width  int
	Height int
}
