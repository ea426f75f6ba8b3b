package merge3

import (
	"sort"

	"github.com/antgroup/zeta-record/internal/diffcore"
)

// region is a maximal run of O lines touched by an O→left or O→right
// change, along with the changes that touch it. Two changes land in
// the same region when their O-ranges overlap or they start at the same
// O position; this is what lets an edit on one side and an edit on the
// other side, at the same spot, be reported as one conflict instead of
// two. Changes whose O-ranges merely abut stay in separate regions.
type region struct {
	start, end int
	conflict   bool
	left       []diffcore.Change
	right      []diffcore.Change
}

// findRegions merges two independently-computed change lists (O→left,
// O→right) into regions, marking a region as conflicting only when
// both sides touch it and the touching edits are not identical.
func findRegions(changesLeft, changesRight []diffcore.Change, leftLines, rightLines []string) []region {
	type tagged struct {
		ch   diffcore.Change
		side int // 0 = left, 1 = right
	}
	all := make([]tagged, 0, len(changesLeft)+len(changesRight))
	for _, ch := range changesLeft {
		all = append(all, tagged{ch, 0})
	}
	for _, ch := range changesRight {
		all = append(all, tagged{ch, 1})
	}
	if len(all) == 0 {
		return nil
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ch.P1 < all[j].ch.P1 })

	var regions []region
	cur := region{start: all[0].ch.P1, end: all[0].ch.P1 + all[0].ch.Del}
	push := func(t tagged) {
		if t.side == 0 {
			cur.left = append(cur.left, t.ch)
		} else {
			cur.right = append(cur.right, t.ch)
		}
	}
	push(all[0])
	for _, t := range all[1:] {
		end := t.ch.P1 + t.ch.Del
		// Merge only on genuine O-range overlap; abutting edits stay
		// separate. Changes anchored at the same point collide even
		// when one or both have an empty range (insert vs insert).
		overlaps := t.ch.P1 < cur.end || t.ch.P1 == cur.start
		if overlaps {
			if end > cur.end {
				cur.end = end
			}
			push(t)
			continue
		}
		regions = append(regions, finalizeRegion(cur, leftLines, rightLines))
		cur = region{start: t.ch.P1, end: end}
		push(t)
	}
	regions = append(regions, finalizeRegion(cur, leftLines, rightLines))
	return regions
}

func finalizeRegion(r region, leftLines, rightLines []string) region {
	r.conflict = len(r.left) > 0 && len(r.right) > 0
	if r.conflict && sameEdit(r.left, r.right, leftLines, rightLines) {
		r.conflict = false
	}
	return r
}

// sameEdit reports whether both sides made the identical single edit,
// so a region touched by both is not actually a conflict.
func sameEdit(left, right []diffcore.Change, leftLines, rightLines []string) bool {
	if len(left) != 1 || len(right) != 1 {
		return false
	}
	a, b := left[0], right[0]
	if a.P1 != b.P1 || a.Del != b.Del || a.Ins != b.Ins {
		return false
	}
	for i := 0; i < a.Ins; i++ {
		if leftLines[a.P2+i] != rightLines[b.P2+i] {
			return false
		}
	}
	return true
}

// insertedRange returns the [lhs, rhs) slice of one side's lines
// spanned by the changes touching a region, widened to cover the
// region's full O-range even where a particular change left a gap.
func insertedRange(changes []diffcore.Change, lines []string, regionStart, regionEnd int) (lhs, rhs int) {
	if len(changes) == 0 {
		return regionStart, regionEnd
	}
	abLhs, abRhs := len(lines), -1
	oLhs, oRhs := regionEnd, regionStart
	for _, ch := range changes {
		if ch.P1 < oLhs {
			oLhs = ch.P1
		}
		if end := ch.P1 + ch.Del; end > oRhs {
			oRhs = end
		}
		if ch.P2 < abLhs {
			abLhs = ch.P2
		}
		if end := ch.P2 + ch.Ins; end > abRhs {
			abRhs = end
		}
	}
	lhs = abLhs + (regionStart - oLhs)
	rhs = abRhs + (regionEnd - oRhs)
	if lhs < 0 {
		lhs = 0
	}
	if rhs > len(lines) {
		rhs = len(lines)
	}
	if lhs > rhs {
		lhs = rhs
	}
	return lhs, rhs
}
