package merge3

import "strings"

// markerSet holds the four conflict marker strings chosen for one
// merge: they differ only in the repeated character (left `<`,
// base-start `|`, base-end `=`, right `>`) and share a length.
type markerSet struct {
	left, baseStart, baseEnd, right string
}

// chooseMarkers picks the shortest marker length, starting at 7, such
// that none of the four marker strings collides with any content in
// base, left, or right. This keeps markers introduced by the merge
// unambiguous regardless of what conflict-marker-like text the inputs
// already contain.
func chooseMarkers(base, left, right string) markerSet {
	all := base + left + right
	for n := 7; ; n++ {
		m := markerSet{
			left:      strings.Repeat("<", n),
			baseStart: strings.Repeat("|", n),
			baseEnd:   strings.Repeat("=", n),
			right:     strings.Repeat(">", n),
		}
		if !strings.Contains(all, m.left) &&
			!strings.Contains(all, m.baseStart) &&
			!strings.Contains(all, m.baseEnd) &&
			!strings.Contains(all, m.right) {
			return m
		}
	}
}
