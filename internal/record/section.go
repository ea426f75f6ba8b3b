package record

// ChangeType distinguishes an added line from a removed one within a
// Changed section.
type ChangeType uint8

const (
	Added ChangeType = iota
	Removed
)

// SectionChangedLine is one independently selectable line inside a
// Changed section. Line retains its trailing newline, if any.
type SectionChangedLine struct {
	IsChecked  bool
	ChangeType ChangeType
	Line       string
}

// SectionKind is the tag of the Section variant union.
type SectionKind uint8

const (
	SectionUnchanged SectionKind = iota
	SectionChanged
	SectionFileMode
	SectionBinary
)

// Section is one contiguous run of a File's logical content, tagged as
// Unchanged, Changed, FileMode, or Binary. Only one of the fields below
// is meaningful, selected by Kind.
type Section struct {
	Kind SectionKind

	// SectionUnchanged
	Lines []string

	// SectionChanged
	ChangedLines []SectionChangedLine

	// SectionFileMode
	ModeChecked bool
	Mode        FileMode

	// SectionBinary
	BinaryChecked  bool
	OldDescription string
	NewDescription string
}

func NewUnchanged(lines []string) Section {
	return Section{Kind: SectionUnchanged, Lines: lines}
}

func NewChanged(lines []SectionChangedLine) Section {
	return Section{Kind: SectionChanged, ChangedLines: lines}
}

func NewFileModeSection(checked bool, mode FileMode) Section {
	return Section{Kind: SectionFileMode, ModeChecked: checked, Mode: mode}
}

func NewBinarySection(checked bool, oldDesc, newDesc string) Section {
	return Section{Kind: SectionBinary, BinaryChecked: checked, OldDescription: oldDesc, NewDescription: newDesc}
}

// Selectable reports whether this section contributes any checkable
// boolean at all (Unchanged sections never do).
func (s *Section) Selectable() bool {
	switch s.Kind {
	case SectionChanged:
		return len(s.ChangedLines) > 0
	case SectionFileMode, SectionBinary:
		return true
	default:
		return false
	}
}

// Tristate derives this section's tristate from its checkable items.
// Unchanged sections contribute nothing and report False (they are
// never shown as indeterminate).
func (s *Section) Tristate() Tristate {
	switch s.Kind {
	case SectionChanged:
		bs := make([]bool, len(s.ChangedLines))
		for i, l := range s.ChangedLines {
			bs[i] = l.IsChecked
		}
		return tristateOf(bs)
	case SectionFileMode:
		return tristateOf([]bool{s.ModeChecked})
	case SectionBinary:
		return tristateOf([]bool{s.BinaryChecked})
	default:
		return TristateFalse
	}
}

// SetChecked recursively sets every selectable boolean in this section.
func (s *Section) SetChecked(checked bool) {
	switch s.Kind {
	case SectionChanged:
		for i := range s.ChangedLines {
			s.ChangedLines[i].IsChecked = checked
		}
	case SectionFileMode:
		s.ModeChecked = checked
	case SectionBinary:
		s.BinaryChecked = checked
	}
}

// ToggleAll inverts every selectable boolean in this section.
func (s *Section) ToggleAll() {
	switch s.Kind {
	case SectionChanged:
		for i := range s.ChangedLines {
			s.ChangedLines[i].IsChecked = !s.ChangedLines[i].IsChecked
		}
	case SectionFileMode:
		s.ModeChecked = !s.ModeChecked
	case SectionBinary:
		s.BinaryChecked = !s.BinaryChecked
	}
}
