package merge3

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/antgroup/zeta-record/internal/record"
)

type markerKind int

const (
	markerNone markerKind = iota
	markerLeft
	markerBaseStart
	markerBaseEnd
	markerRight
)

func classify(line string, m markerSet) markerKind {
	switch {
	case strings.HasPrefix(line, m.left):
		return markerLeft
	case strings.HasPrefix(line, m.baseStart):
		return markerBaseStart
	case strings.HasPrefix(line, m.baseEnd):
		return markerBaseEnd
	case strings.HasPrefix(line, m.right):
		return markerRight
	default:
		return markerNone
	}
}

type parseState int

const (
	stateEmpty parseState = iota
	stateUnchanged
	stateLeft
	stateBase
	stateRight
)

// parseConflictText runs the five-state machine over marker-delimited
// merge output: Empty/Unchanged/Left/Base/Right, emitting an Unchanged
// section for plain runs and a single Changed section per conflict
// (left lines as Added, then base lines as Removed, then right lines
// as Added — left and right are shown as competing additions over the
// discarded base).
func parseConflictText(text string, m markerSet) []record.Section {
	var sections []record.Section
	state := stateEmpty
	var unchangedLines, leftLines, baseLines, rightLines []string

	emitUnchanged := func() {
		if len(unchangedLines) > 0 {
			sections = append(sections, record.NewUnchanged(unchangedLines))
		}
		unchangedLines = nil
	}
	emitConflict := func() {
		var lines []record.SectionChangedLine
		for _, l := range leftLines {
			lines = append(lines, record.SectionChangedLine{ChangeType: record.Added, Line: l})
		}
		for _, l := range baseLines {
			lines = append(lines, record.SectionChangedLine{ChangeType: record.Removed, Line: l})
		}
		for _, l := range rightLines {
			lines = append(lines, record.SectionChangedLine{ChangeType: record.Added, Line: l})
		}
		sections = append(sections, record.NewChanged(lines))
		leftLines, baseLines, rightLines = nil, nil, nil
	}

	for _, line := range splitLines(text) {
		kind := classify(line, m)
		switch state {
		case stateEmpty:
			if kind == markerLeft {
				state = stateLeft
			} else {
				unchangedLines = append(unchangedLines, line)
				state = stateUnchanged
			}

		case stateUnchanged:
			if kind == markerLeft {
				emitUnchanged()
				state = stateLeft
			} else {
				unchangedLines = append(unchangedLines, line)
			}

		case stateLeft:
			if kind == markerBaseStart {
				state = stateBase
			} else {
				leftLines = append(leftLines, line)
			}

		case stateBase:
			if kind == markerBaseEnd {
				state = stateRight
			} else {
				baseLines = append(baseLines, line)
			}

		case stateRight:
			if kind == markerRight {
				emitConflict()
				state = stateEmpty
			} else {
				rightLines = append(rightLines, line)
			}
		}
	}

	switch state {
	case stateEmpty:
	case stateUnchanged:
		emitUnchanged()
	default:
		logUnterminatedConflict(state)
	}

	return sections
}

func logUnterminatedConflict(state parseState) {
	logrus.Warnf("diff section not terminated: parser stopped in state %d", state)
}
