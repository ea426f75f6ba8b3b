// Histogram diff, after https://github.com/pascalkuthe/imara-diff.
//
// https://stackoverflow.com/questions/32365271/whats-the-difference-between-git-diff-patience-and-git-diff-histogram/32367597#32367597
// https://arxiv.org/abs/1902.02467
package diffcore

// maxChainLen bounds how common a token is allowed to be before the
// histogram search gives up on it as a useful anchor and falls back to
// OnpDiff for that span.
const maxChainLen = 63

type histogram[E comparable] struct {
	tokenOccurrences map[E][]int
}

func (h *histogram[E]) populate(a []E) {
	for i, e := range a {
		h.tokenOccurrences[e] = append(h.tokenOccurrences[e], i)
	}
}

func (h *histogram[E]) numTokenOccurrences(e E) int {
	return len(h.tokenOccurrences[e])
}

func (h *histogram[E]) clear() {
	clear(h.tokenOccurrences)
}

type lcsSpan struct {
	beforeStart int
	afterStart  int
	length      int
}

type lcsSearch[E comparable] struct {
	lcs            lcsSpan
	minOccurrences int
	foundCommon    bool
}

func (s *lcsSearch[E]) run(before, after []E, h *histogram[E]) {
	pos := 0
	for pos < len(after) {
		e := after[pos]
		if num := h.numTokenOccurrences(e); num != 0 {
			s.foundCommon = true
			if num <= s.minOccurrences {
				pos = s.updateLcs(before, after, pos, e, h)
				continue
			}
		}
		pos++
	}
	h.clear()
}

func (s *lcsSearch[E]) updateLcs(before, after []E, afterPos int, token E, h *histogram[E]) int {
	nextTokenIndex2 := afterPos + 1
	occurrences := h.tokenOccurrences[token]
	tokenIndex1 := occurrences[0]
	pos := 1
occurrencesIter:
	for {
		count := h.numTokenOccurrences(token)
		s1, s2 := tokenIndex1, afterPos
		for s1 != 0 && s2 != 0 {
			t1, t2 := before[s1-1], after[s2-1]
			if t1 != t2 {
				break
			}
			s1--
			s2--
			count = min(count, h.numTokenOccurrences(t1))
		}
		e1, e2 := tokenIndex1+1, afterPos+1
		for e1 < len(before) && e2 < len(after) {
			t1, t2 := before[e1], after[e2]
			if t1 != t2 {
				break
			}
			count = min(count, h.numTokenOccurrences(t1))
			e1++
			e2++
		}
		if nextTokenIndex2 < e2 {
			nextTokenIndex2 = e2
		}
		length := e2 - s2
		if s.lcs.length < length || s.minOccurrences > count {
			s.minOccurrences = count
			s.lcs = lcsSpan{beforeStart: s1, afterStart: s2, length: length}
		}
		for {
			if pos >= len(occurrences) {
				break occurrencesIter
			}
			next := occurrences[pos]
			pos++
			if next > e2 {
				tokenIndex1 = next
				break
			}
		}
	}
	return nextTokenIndex2
}

func (s *lcsSearch[E]) ok() bool {
	return !s.foundCommon || s.minOccurrences <= maxChainLen
}

func findLcs[E comparable](before, after []E, h *histogram[E]) *lcsSpan {
	s := lcsSearch[E]{minOccurrences: maxChainLen + 1}
	s.run(before, after, h)
	if s.ok() {
		return &s.lcs
	}
	return nil
}

func histogramRun[E comparable](h *histogram[E], before []E, beforePos int, after []E, afterPos int, out *[]Change) {
	for {
		if len(before) == 0 {
			if len(after) != 0 {
				*out = append(*out, Change{P1: beforePos, P2: afterPos, Ins: len(after)})
			}
			return
		}
		if len(after) == 0 {
			*out = append(*out, Change{P1: beforePos, P2: afterPos, Del: len(before)})
			return
		}
		h.populate(before)
		lcs := findLcs(before, after, h)
		if lcs == nil {
			*out = append(*out, OnpDiff(before, after, beforePos, afterPos)...)
			return
		}
		if lcs.length == 0 {
			*out = append(*out, Change{P1: beforePos, P2: afterPos, Del: len(before), Ins: len(after)})
			return
		}
		histogramRun(h, before[:lcs.beforeStart], beforePos, after[:lcs.afterStart], afterPos, out)
		e1 := lcs.beforeStart + lcs.length
		before, beforePos = before[e1:], beforePos+e1
		e2 := lcs.afterStart + lcs.length
		after, afterPos = after[e2:], afterPos+e2
	}
}

// HistogramDiff computes an edit script favoring low-frequency tokens
// as anchors, which tends to produce more readable diffs than Myers on
// source code with repeated lines (braces, blank lines).
func HistogramDiff[E comparable](before, after []E) []Change {
	prefix := commonPrefixLength(before, after)
	before, after = before[prefix:], after[prefix:]
	suffix := commonSuffixLength(before, after)
	before, after = before[:len(before)-suffix], after[:len(after)-suffix]
	h := &histogram[E]{tokenOccurrences: make(map[E][]int, len(before))}
	out := make([]Change, 0, 16)
	histogramRun(h, before, prefix, after, prefix, &out)
	return out
}
