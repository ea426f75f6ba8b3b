package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/antgroup/zeta-record/internal/editorinvoke"
	"github.com/antgroup/zeta-record/internal/record"
	"github.com/antgroup/zeta-record/internal/term"
)

// Outcome is what HandleEvent decided the run loop should do next.
type Outcome int

const (
	Continue Outcome = iota
	Accept
	Cancel
)

// HitTarget identifies what a rendered cell corresponds to, so Click
// events can be dispatched without re-deriving layout.
type HitTargetKind int

const (
	HitNone HitTargetKind = iota
	HitCheckbox
	HitFold
	HitLineBody
	HitMenuBar
	HitMenuItem
	HitQuitButton
)

type HitTarget struct {
	Kind HitTargetKind
	Addr Address
	Menu MenuName
	Item int
}

// State is the whole interactive selection state machine.
type State struct {
	Record *record.RecordState
	Editor func(message string) (string, error)

	expand    *expandState
	focus     Address
	lastFocus Address
	items     []Address

	Scroll         int
	ViewportHeight int

	menu   *menuState
	quit   *quitDialogState
	hitMap map[[2]int]HitTarget

	ActiveCommit    int
	CommitMessages  []string
	initialMessages []string
}

// New constructs a State ready to drive the selection loop. Editor is
// invoked for EditCommitMessage; a nil Editor leaves the message
// unchanged when the event fires.
func New(rs *record.RecordState, editor func(string) (string, error)) *State {
	s := &State{
		Record: rs,
		Editor: editor,
		expand: newExpandState(),
	}
	for _, c := range rs.PaddedCommits() {
		msg := ""
		if c.Message != nil {
			msg = *c.Message
		}
		s.CommitMessages = append(s.CommitMessages, msg)
	}
	s.initialMessages = append([]string(nil), s.CommitMessages...)
	s.refresh()
	return s
}

// EditedMessageCount reports how many commit messages currently differ
// from their value when the session started, for the quit dialog.
func (s *State) EditedMessageCount() int {
	n := 0
	for i, msg := range s.CommitMessages {
		if i < len(s.initialMessages) && msg != s.initialMessages[i] {
			n++
		}
	}
	return n
}

func (s *State) refresh() {
	s.items = visibleItems(s.Record, s.expand)
	if s.focus.Kind == 0 && s.focus.File == 0 && s.focus.Section == 0 && s.focus.Line == 0 {
		return
	}
	if indexOf(s.items, s.focus) == -1 && len(s.items) > 0 {
		s.focus = s.items[0]
	}
}

// SetHitMap installs the cell->target map the renderer built for the
// frame currently on screen, so the next Click resolves against it.
func (s *State) SetHitMap(m map[[2]int]HitTarget) { s.hitMap = m }

// Focus reports the currently focused address.
func (s *State) Focus() Address { return s.focus }

// HandleEvent applies one logical event to the state, returning
// whether the run loop should continue, accept, or cancel.
func (s *State) HandleEvent(ev term.Event) (Outcome, error) {
	if s.quit != nil {
		return s.handleQuitDialog(ev)
	}
	if s.menu != nil {
		return s.handleMenu(ev)
	}

	switch ev.Kind {
	case term.FocusNext:
		s.moveFocus(1)
	case term.FocusPrev:
		s.moveFocus(-1)
	case term.FocusNextSameKind:
		s.moveFocusSameKind(1)
	case term.FocusPrevSameKind:
		s.moveFocusSameKind(-1)
	case term.FocusInner:
		s.focusInner()
	case term.FocusOuter:
		s.focusOuter(true)
	case term.ExpandItem:
		s.toggleExpand(s.focus)
	case term.ExpandAll:
		s.expand.expandAll()
		s.refresh()
	case term.ToggleItem:
		s.toggleItem(s.focus)
	case term.ToggleItemAndAdvance:
		s.toggleItem(s.focus)
		s.moveFocus(1)
	case term.ToggleAll:
		if !s.Record.IsReadOnly {
			s.Record.ToggleAll()
		}
	case term.ToggleAllUniform:
		if !s.Record.IsReadOnly {
			s.Record.ToggleAllUniform()
		}
	case term.Click:
		return s.handleClick(ev.Row, ev.Col)
	case term.ScrollUp:
		s.scrollBy(-1)
	case term.ScrollDown:
		s.scrollBy(1)
	case term.EnsureSelectionInViewport:
		s.ensureFocusVisible()
	case term.EditCommitMessage:
		return Continue, s.editCommitMessage()
	case term.QuitAccept:
		return Accept, nil
	case term.QuitCancel:
		if s.Record.FilesWithSelection() > 0 {
			s.quit = &quitDialogState{focused: GoBack}
			return Continue, nil
		}
		return Cancel, nil
	case term.QuitInterrupt:
		s.quit = &quitDialogState{focused: GoBack}
	case term.Resize:
		s.ViewportHeight = ev.Height
	}
	return Continue, nil
}

func (s *State) handleQuitDialog(ev term.Event) (Outcome, error) {
	switch ev.Kind {
	case term.FocusNext, term.FocusPrev, term.FocusInner, term.FocusOuter:
		s.quit.toggle()
	case term.ToggleItem, term.ToggleItemAndAdvance:
		if s.quit.focused == Quit {
			return Cancel, nil
		}
		s.quit = nil
	case term.QuitInterrupt:
		return Cancel, nil
	case term.QuitCancel:
		return Cancel, nil
	}
	return Continue, nil
}

func (s *State) handleMenu(ev term.Event) (Outcome, error) {
	items := menuItems[s.menu.open]
	switch ev.Kind {
	case term.FocusNext:
		if len(items) > 0 {
			s.menu.highlight = (s.menu.highlight + 1) % len(items)
		}
	case term.FocusPrev:
		if len(items) > 0 {
			s.menu.highlight = (s.menu.highlight - 1 + len(items)) % len(items)
		}
	case term.ToggleItem, term.ToggleItemAndAdvance:
		if s.menu.highlight < len(items) {
			chosen := items[s.menu.highlight]
			s.menu = nil
			return s.HandleEvent(term.Event{Kind: chosen.Kind})
		}
	case term.QuitInterrupt:
		s.menu = nil
	}
	return Continue, nil
}

func (s *State) moveFocus(delta int) {
	i := indexOf(s.items, s.focus)
	if i == -1 {
		if len(s.items) > 0 {
			s.focus = s.items[0]
		}
		return
	}
	j := i + delta
	if j < 0 {
		j = 0
	}
	if j >= len(s.items) {
		j = len(s.items) - 1
	}
	s.focus = s.items[j]
}

func (s *State) moveFocusSameKind(delta int) {
	indices := sameKindIndices(s.items, s.focus.Kind)
	cur := indexOf(s.items, s.focus)
	pos := -1
	for k, idx := range indices {
		if idx == cur {
			pos = k
			break
		}
	}
	if pos == -1 || len(indices) == 0 {
		return
	}
	pos += delta
	if pos < 0 {
		pos = 0
	}
	if pos >= len(indices) {
		pos = len(indices) - 1
	}
	s.focus = s.items[indices[pos]]
}

func (s *State) focusInner() {
	switch s.focus.Kind {
	case KindFile:
		if !s.expand.fileExpanded(s.focus.File) {
			s.expand.toggleFile(s.focus.File)
			s.refresh()
		}
		f := &s.Record.Files[s.focus.File]
		if len(f.Sections) > 0 {
			s.focus = sectionAddr(s.focus.File, 0)
		}
	case KindSection:
		sec := &s.Record.Files[s.focus.File].Sections[s.focus.Section]
		if sec.Kind == record.SectionChanged && len(sec.ChangedLines) > 0 {
			if !s.expand.sectionExpanded(s.focus.File, s.focus.Section) {
				s.expand.toggleSection(s.focus.File, s.focus.Section)
				s.refresh()
			}
			s.focus = lineAddr(s.focus.File, s.focus.Section, 0)
		}
	}
}

// focusOuter ascends to the parent item; foldSection collapses a
// Changed section's lines when ascending out of it.
func (s *State) focusOuter(foldSection bool) {
	switch s.focus.Kind {
	case KindLine:
		if foldSection && s.expand.sectionExpanded(s.focus.File, s.focus.Section) {
			s.expand.toggleSection(s.focus.File, s.focus.Section)
		}
		s.focus = sectionAddr(s.focus.File, s.focus.Section)
		s.refresh()
	case KindSection:
		s.focus = fileAddr(s.focus.File)
	}
}

func (s *State) toggleExpand(addr Address) {
	switch addr.Kind {
	case KindFile:
		s.expand.toggleFile(addr.File)
	case KindSection:
		sec := &s.Record.Files[addr.File].Sections[addr.Section]
		if sec.Kind == record.SectionChanged {
			s.expand.toggleSection(addr.File, addr.Section)
		}
	}
	s.refresh()
}

func (s *State) toggleItem(addr Address) {
	if s.Record.IsReadOnly {
		return
	}
	switch addr.Kind {
	case KindFile:
		s.Record.Files[addr.File].ToggleAll()
	case KindSection:
		s.Record.Files[addr.File].Sections[addr.Section].ToggleAll()
	case KindLine:
		line := &s.Record.Files[addr.File].Sections[addr.Section].ChangedLines[addr.Line]
		line.IsChecked = !line.IsChecked
	}
}

func (s *State) scrollBy(delta int) {
	s.Scroll += delta
	if s.Scroll < 0 {
		s.Scroll = 0
	}
}

func (s *State) ensureFocusVisible() {
	if s.ViewportHeight <= 0 {
		return
	}
	for i, r := range buildRows(s) {
		if !r.hasAddr || !r.addr.equal(s.focus) {
			continue
		}
		if i < s.Scroll {
			s.Scroll = i
		}
		if i >= s.Scroll+s.ViewportHeight {
			s.Scroll = i - s.ViewportHeight + 1
		}
		return
	}
}

func (s *State) editCommitMessage() error {
	if s.Editor == nil {
		return nil
	}
	idx := s.ActiveCommit
	if idx < 0 || idx >= len(s.CommitMessages) {
		idx = 0
	}
	current := ""
	if idx < len(s.CommitMessages) {
		current = s.CommitMessages[idx]
	}
	updated, err := s.Editor(current)
	if err != nil {
		return err
	}
	if idx < len(s.CommitMessages) {
		s.CommitMessages[idx] = updated
	}
	return nil
}

func (s *State) handleClick(row, col int) (Outcome, error) {
	if s.hitMap == nil {
		return Continue, nil
	}
	t, ok := s.hitMap[[2]int{row, col}]
	if !ok {
		return Continue, nil
	}
	switch t.Kind {
	case HitCheckbox:
		s.toggleItem(t.Addr)
	case HitFold:
		s.toggleExpand(t.Addr)
	case HitLineBody:
		s.focus = t.Addr
	case HitMenuBar:
		s.menu = &menuState{open: t.Menu}
	case HitMenuItem:
		items := menuItems[t.Menu]
		if t.Item < len(items) {
			return s.HandleEvent(term.Event{Kind: items[t.Item].Kind})
		}
	case HitQuitButton:
		if s.quit != nil {
			if t.Item == int(Quit) {
				return Cancel, nil
			}
			s.quit = nil
		}
	}
	return Continue, nil
}

// EditWithExternalEditor is the default Editor function wired by the
// CLI entry point: it suspends the screen so the child process owns
// the terminal, shells out via internal/editorinvoke, and resumes the
// screen on return.
func EditWithExternalEditor(screen tcell.Screen, editor string) func(string) (string, error) {
	return func(message string) (string, error) {
		if screen != nil {
			if err := screen.Suspend(); err != nil {
				return "", err
			}
			defer screen.Resume()
		}
		return editorinvoke.Edit(editor, message)
	}
}
