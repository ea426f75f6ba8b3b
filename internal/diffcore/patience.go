// MIT License

// Copyright (c) 2022 Peter Evans

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package diffcore

import "slices"

// Dfio is one run of the patience diff's recursive output: a maximal
// span of one Operation over contiguous elements.
type Dfio[E comparable] struct {
	T Operation
	E []E
}

func uniqueElements[E comparable](a []E) ([]E, []int) {
	counts := make(map[E]int, len(a))
	for _, e := range a {
		counts[e]++
	}
	var elements []E
	var indices []int
	for i, e := range a {
		if counts[e] == 1 {
			elements = append(elements, e)
			indices = append(indices, i)
		}
	}
	return elements, indices
}

func patienceLCS[E comparable](a, b []E) [][2]int {
	lcs := make([][]int, len(a)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(b)+1)
	}
	for i := 1; i < len(lcs); i++ {
		for j := 1; j < len(lcs[i]); j++ {
			if a[i-1] == b[j-1] {
				lcs[i][j] = lcs[i-1][j-1] + 1
			} else {
				lcs[i][j] = max(lcs[i-1][j], lcs[i][j-1])
			}
		}
	}
	i, j := len(a), len(b)
	s := make([][2]int, 0, lcs[i][j])
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			s = append(s, [2]int{i - 1, j - 1})
			i--
			j--
		case lcs[i-1][j] > lcs[i][j-1]:
			i--
		default:
			j--
		}
	}
	slices.Reverse(s)
	return s
}

// patienceDfio computes the patience diff of a and b as a sequence of
// Equal/Insert/Delete runs, recursing on the gaps between unique common
// lines (the "patience" heuristic).
func patienceDfio[E comparable](a, b []E) []Dfio[E] {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	if len(a) == 0 {
		return []Dfio[E]{{E: b, T: Insert}}
	}
	if len(b) == 0 {
		return []Dfio[E]{{E: a, T: Delete}}
	}
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	if i > 0 {
		return append([]Dfio[E]{{E: a[:i], T: Equal}}, patienceDfio(a[i:], b[i:])...)
	}
	j := 0
	for j < len(a) && j < len(b) && a[len(a)-1-j] == b[len(b)-1-j] {
		j++
	}
	if j > 0 {
		return append(patienceDfio(a[:len(a)-j], b[:len(b)-j]), Dfio[E]{E: a[len(a)-j:], T: Equal})
	}
	ua, idxa := uniqueElements(a)
	ub, idxb := uniqueElements(b)
	lcs := patienceLCS(ua, ub)
	if len(lcs) == 0 {
		return []Dfio[E]{{E: a, T: Delete}, {E: b, T: Insert}}
	}
	for i, x := range lcs {
		lcs[i][0] = idxa[x[0]]
		lcs[i][1] = idxb[x[1]]
	}
	var diffs []Dfio[E]
	ga, gb := 0, 0
	for _, ip := range lcs {
		diffs = append(diffs, patienceDfio(a[ga:ip[0]], b[gb:ip[1]])...)
		diffs = append(diffs, Dfio[E]{T: Equal, E: []E{a[ip[0]]}})
		ga, gb = ip[0]+1, ip[1]+1
	}
	diffs = append(diffs, patienceDfio(a[ga:], b[gb:])...)
	return diffs
}

// PatienceDiff computes an edit script using the patience diff
// heuristic (anchor on lines unique to both sides, recurse on the
// gaps), which tends to avoid interleaving unrelated changes.
func PatienceDiff[E comparable](a, b []E) []Change {
	runs := patienceDfio(a, b)
	changes := make([]Change, 0, len(runs))
	var p1, p2 int
	var pending *Change
	flush := func() {
		if pending != nil {
			changes = append(changes, *pending)
			pending = nil
		}
	}
	for _, r := range runs {
		switch r.T {
		case Equal:
			flush()
			p1 += len(r.E)
			p2 += len(r.E)
		case Delete:
			if pending == nil || pending.P1+pending.Del != p1 {
				flush()
				pending = &Change{P1: p1, P2: p2}
			}
			pending.Del += len(r.E)
			p1 += len(r.E)
		case Insert:
			if pending == nil || pending.P2+pending.Ins != p2 {
				flush()
				pending = &Change{P1: p1, P2: p2}
			}
			pending.Ins += len(r.E)
			p2 += len(r.E)
		}
	}
	flush()
	return changes
}
