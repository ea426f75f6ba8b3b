package term

import (
	"github.com/gdamore/tcell/v2"
)

// TcellInput is the production Input backend: a tcell.Screen whose
// physical key/mouse/resize events are mapped onto the logical Kind
// vocabulary the UI state machine understands.
type TcellInput struct {
	screen tcell.Screen
}

// NewTcellInput initialises a tcell screen with mouse support enabled,
// matching the keystorm terminal backend's Init. Paste mode is not
// enabled.
func NewTcellInput() (*TcellInput, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	return &TcellInput{screen: screen}, nil
}

func (t *TcellInput) Screen() tcell.Screen { return t.screen }

func (t *TcellInput) Size() (int, int) { return t.screen.Size() }

func (t *TcellInput) Close() error {
	t.screen.Fini()
	return nil
}

func (t *TcellInput) NextEvents() ([]Event, error) {
	first := t.screen.PollEvent()
	events := []Event{convert(first)}
	for t.screen.HasPendingEvent() {
		events = append(events, convert(t.screen.PollEvent()))
	}
	return events, nil
}

func convert(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKey(e)
	case *tcell.EventMouse:
		return convertMouse(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Kind: Resize, Width: w, Height: h}
	default:
		return Event{Kind: None}
	}
}

func convertMouse(e *tcell.EventMouse) Event {
	col, row := e.Position()
	buttons := e.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		return Event{Kind: ScrollUp}
	case buttons&tcell.WheelDown != 0:
		return Event{Kind: ScrollDown}
	case buttons&tcell.Button1 != 0:
		return Event{Kind: Click, Row: row, Col: col}
	default:
		return Event{Kind: None}
	}
}

// convertKey maps the keybindings scm-record documents for its
// CrosstermInput onto the logical vocabulary: arrows/jk navigate,
// space toggles, enter toggles-and-advances, tab/shift-tab move
// between same-kind items, f folds, a/A toggle-all, e edits the
// commit message, q/Esc/ctrl-c quit.
func convertKey(e *tcell.EventKey) Event {
	if e.Key() == tcell.KeyRune {
		switch e.Rune() {
		case ' ':
			return Event{Kind: ToggleItem}
		case 'f':
			return Event{Kind: ExpandItem}
		case 'F':
			return Event{Kind: ExpandAll}
		case 'a':
			return Event{Kind: ToggleAll}
		case 'A':
			return Event{Kind: ToggleAllUniform}
		case 'e':
			return Event{Kind: EditCommitMessage}
		case 'c':
			return Event{Kind: QuitAccept}
		case 'q':
			return Event{Kind: QuitCancel}
		case 'j':
			return Event{Kind: FocusNext}
		case 'k':
			return Event{Kind: FocusPrev}
		case 'J':
			return Event{Kind: FocusNextSameKind}
		case 'K':
			return Event{Kind: FocusPrevSameKind}
		case 'l':
			return Event{Kind: FocusInner}
		case 'h':
			return Event{Kind: FocusOuter}
		}
		return Event{Kind: None}
	}

	switch e.Key() {
	case tcell.KeyDown:
		return Event{Kind: FocusNext}
	case tcell.KeyUp:
		return Event{Kind: FocusPrev}
	case tcell.KeyRight:
		return Event{Kind: FocusInner}
	case tcell.KeyLeft:
		return Event{Kind: FocusOuter}
	case tcell.KeyTab:
		return Event{Kind: FocusNextSameKind}
	case tcell.KeyBacktab:
		return Event{Kind: FocusPrevSameKind}
	case tcell.KeyEnter:
		return Event{Kind: ToggleItemAndAdvance}
	case tcell.KeyEscape:
		return Event{Kind: QuitInterrupt}
	case tcell.KeyCtrlC:
		return Event{Kind: QuitInterrupt}
	default:
		return Event{Kind: None}
	}
}
