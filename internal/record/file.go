package record

// File is one compared path: its pre-change mode and the ordered
// Sections describing how its content changes. OldPath is set when the
// "before" side's display path differs from Path (rename/copy/new/
// deleted views).
type File struct {
	OldPath  *string `toml:"old_path,omitempty"`
	Path     string
	FileMode FileMode
	Sections []Section
}

// fileModeSection returns the unique FileMode section, if any. A file
// should carry at most one; if more than one is present, only the
// first is used.
func (f *File) fileModeSection() *Section {
	for i := range f.Sections {
		if f.Sections[i].Kind == SectionFileMode {
			return &f.Sections[i]
		}
	}
	return nil
}

// Tristate derives the file's tristate from its sections' tristates.
func (f *File) Tristate() Tristate {
	var states []Tristate
	for i := range f.Sections {
		if f.Sections[i].Selectable() {
			states = append(states, f.Sections[i].Tristate())
		}
	}
	if len(states) == 0 {
		return TristateFalse
	}
	sawTrue, sawFalse, sawPartial := false, false, false
	for _, t := range states {
		switch t {
		case TristateTrue:
			sawTrue = true
		case TristateFalse:
			sawFalse = true
		case TristatePartial:
			sawPartial = true
		}
	}
	if sawPartial || (sawTrue && sawFalse) {
		return TristatePartial
	}
	if sawTrue {
		return TristateTrue
	}
	return TristateFalse
}

// SetChecked recursively sets every selectable boolean under this file.
func (f *File) SetChecked(checked bool) {
	for i := range f.Sections {
		f.Sections[i].SetChecked(checked)
	}
}

// ToggleAll inverts every selectable boolean under this file.
func (f *File) ToggleAll() {
	for i := range f.Sections {
		f.Sections[i].ToggleAll()
	}
}

// Commit holds the (optional) message for one logical commit the user
// is splitting changes across. Assignment of changes to a commit is
// tracked out-of-band by the UI layer, not inside Section.
type Commit struct {
	Message *string `toml:"message,omitempty"`
}

// RecordState is the whole in-memory state for one invocation.
type RecordState struct {
	IsReadOnly bool
	Commits    []Commit
	Files      []File
}

// PaddedCommits returns a copy of Commits padded to at least length 2,
// so a two-commit split UI always has both slots to render.
func (rs *RecordState) PaddedCommits() []Commit {
	commits := make([]Commit, len(rs.Commits))
	copy(commits, rs.Commits)
	for len(commits) < 2 {
		commits = append(commits, Commit{})
	}
	return commits
}

// Tristate derives the overall state's tristate from its files.
func (rs *RecordState) Tristate() Tristate {
	var states []Tristate
	for i := range rs.Files {
		states = append(states, rs.Files[i].Tristate())
	}
	sawTrue, sawFalse, sawPartial := false, false, false
	for _, t := range states {
		switch t {
		case TristateTrue:
			sawTrue = true
		case TristateFalse:
			sawFalse = true
		case TristatePartial:
			sawPartial = true
		}
	}
	if sawPartial || (sawTrue && sawFalse) {
		return TristatePartial
	}
	if sawTrue {
		return TristateTrue
	}
	return TristateFalse
}

// ToggleAll inverts every selectable boolean in the whole state.
func (rs *RecordState) ToggleAll() {
	for i := range rs.Files {
		rs.Files[i].ToggleAll()
	}
}

// ToggleAllUniform implements the UI event of the same name: set every
// selectable boolean to the negation of whether the whole state is
// currently fully checked.
func (rs *RecordState) ToggleAllUniform() {
	rs.SetCheckedAll(rs.Tristate() != TristateTrue)
}

// SetCheckedAll sets every selectable boolean in the whole state.
func (rs *RecordState) SetCheckedAll(checked bool) {
	for i := range rs.Files {
		rs.Files[i].SetChecked(checked)
	}
}

// FilesWithSelection counts files whose tristate is not False, used by
// the quit-confirmation dialog.
func (rs *RecordState) FilesWithSelection() int {
	n := 0
	for i := range rs.Files {
		if rs.Files[i].Tristate() != TristateFalse {
			n++
		}
	}
	return n
}
