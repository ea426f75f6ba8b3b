package ui

// expandState tracks which files and changed-sections are expanded.
// Everything defaults to expanded: a freshly opened file shows its
// sections, and a freshly opened Changed section shows its lines.
type expandState struct {
	collapsedFiles    map[int]bool
	collapsedSections map[[2]int]bool
}

func newExpandState() *expandState {
	return &expandState{
		collapsedFiles:    make(map[int]bool),
		collapsedSections: make(map[[2]int]bool),
	}
}

func (e *expandState) fileExpanded(file int) bool { return !e.collapsedFiles[file] }

func (e *expandState) sectionExpanded(file, section int) bool {
	return !e.collapsedSections[[2]int{file, section}]
}

func (e *expandState) toggleFile(file int) {
	e.collapsedFiles[file] = !e.collapsedFiles[file]
}

func (e *expandState) toggleSection(file, section int) {
	key := [2]int{file, section}
	e.collapsedSections[key] = !e.collapsedSections[key]
}

func (e *expandState) expandAll() {
	e.collapsedFiles = make(map[int]bool)
	e.collapsedSections = make(map[[2]int]bool)
}
