package ui

import "github.com/antgroup/zeta-record/internal/record"

// visibleItems returns every addressable item in display order,
// respecting the current expand/collapse state: a collapsed file
// contributes only its own Address, and a collapsed Changed section
// contributes only its own Address (its lines are hidden).
func visibleItems(state *record.RecordState, expand *expandState) []Address {
	var items []Address
	for fi := range state.Files {
		items = append(items, fileAddr(fi))
		if !expand.fileExpanded(fi) {
			continue
		}
		f := &state.Files[fi]
		for si := range f.Sections {
			s := &f.Sections[si]
			if s.Kind == record.SectionUnchanged {
				continue
			}
			items = append(items, sectionAddr(fi, si))
			if s.Kind == record.SectionChanged && expand.sectionExpanded(fi, si) {
				for li := range s.ChangedLines {
					items = append(items, lineAddr(fi, si, li))
				}
			}
		}
	}
	return items
}

func indexOf(items []Address, addr Address) int {
	for i, it := range items {
		if it.equal(addr) {
			return i
		}
	}
	return -1
}

func sameKindIndices(items []Address, kind ItemKind) []int {
	var out []int
	for i, it := range items {
		if it.Kind == kind {
			out = append(out, i)
		}
	}
	return out
}
