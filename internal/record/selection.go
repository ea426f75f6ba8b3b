package record

// accumulator builds one side's SelectedContents incrementally as
// lines are pushed onto it.
type accumulator struct {
	contents SelectedContents
}

func (a *accumulator) push(s string) {
	switch a.contents.Kind {
	case SelectedUnchanged:
		a.contents = SelectedContents{Kind: SelectedText, Text: s}
	case SelectedBinary:
		// no-op
	case SelectedText:
		a.contents.Text += s
	}
}

func (a *accumulator) setBinary(oldDesc, newDesc string) {
	a.contents = SelectedContents{Kind: SelectedBinary, OldDescription: oldDesc, NewDescription: newDesc}
}

func (a *accumulator) setUnchanged() {
	a.contents = unchangedContents()
}

// GetSelectedContents is the central operation of the change model: a
// single pass over a File's Sections producing the two complementary
// byte streams implied by the current checkbox state. Every line is
// pushed to exactly one side unless it is Unchanged context, which is
// pushed to both, so the two outputs always partition the file.
func GetSelectedContents(f *File) (selected, unselected Selection) {
	selectedMode := f.FileMode
	unselectedMode := f.FileMode
	if ms := f.fileModeSection(); ms != nil {
		if ms.ModeChecked {
			selectedMode = ms.Mode
			unselectedMode = f.FileMode
		} else {
			selectedMode = f.FileMode
			unselectedMode = ms.Mode
		}
	}

	var selAcc, unselAcc accumulator

	for i := range f.Sections {
		s := &f.Sections[i]
		switch s.Kind {
		case SectionUnchanged:
			for _, line := range s.Lines {
				selAcc.push(line)
				unselAcc.push(line)
			}
		case SectionChanged:
			for _, cl := range s.ChangedLines {
				switch {
				case cl.ChangeType == Added && cl.IsChecked:
					selAcc.push(cl.Line)
				case cl.ChangeType == Removed && !cl.IsChecked:
					selAcc.push(cl.Line)
				case cl.ChangeType == Added && !cl.IsChecked:
					unselAcc.push(cl.Line)
					if !selectedMode.IsAbsent() {
						selAcc.push("")
					}
				case cl.ChangeType == Removed && cl.IsChecked:
					unselAcc.push(cl.Line)
					if !selectedMode.IsAbsent() {
						selAcc.push("")
					}
				}
			}
		case SectionFileMode:
			// handled above
		case SectionBinary:
			if s.BinaryChecked {
				selAcc.setBinary(s.OldDescription, s.NewDescription)
				unselAcc.setUnchanged()
			} else {
				unselAcc.setBinary(s.OldDescription, s.NewDescription)
				selAcc.setUnchanged()
			}
		}
	}

	// Accepting only a FileMode section on an originally-absent file
	// still creates the file: force an (empty) Text result instead of
	// leaving it Unchanged.
	if f.FileMode.IsAbsent() {
		if !selectedMode.IsAbsent() && selAcc.contents.Kind == SelectedUnchanged {
			selAcc.push("")
		}
		if !unselectedMode.IsAbsent() && unselAcc.contents.Kind == SelectedUnchanged {
			unselAcc.push("")
		}
	}

	selected = Selection{FileMode: selectedMode, Contents: selAcc.contents}
	unselected = Selection{FileMode: unselectedMode, Contents: unselAcc.contents}
	return selected, unselected
}
