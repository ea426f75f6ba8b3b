package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/antgroup/zeta-record/internal/record"
)

const contextLines = 3

var controlGlyphs = map[rune]rune{
	0x00: '␀',
	0x07: '␇',
	0x1b: '␛',
	0x7f: '␡',
	'\n': '⏎',
	'\r': '␍',
}

// row is one line of rendered output: its logical address (if any),
// the text, the style to paint it with, and the cell columns of its
// interactive glyphs so clicks hit-test without re-deriving layout.
type row struct {
	addr    Address
	hasAddr bool
	text    string
	style   tcell.Style

	checkboxCol int // leftmost cell of the 3-cell checkbox glyph, -1 if none
	foldCol     int // cell of the fold glyph, -1 if none

	isFileHeader bool
	file         int
}

// Render lays the current state out into the screen, building a
// cell->target hit map on s.
func Render(screen tcell.Screen, s *State) {
	screen.Clear()
	width, height := screen.Size()
	visibleHeight := height - 2 // menu bar row + status row
	s.ViewportHeight = visibleHeight

	hitMap := make(map[[2]int]HitTarget)
	drawMenuBar(screen, width, hitMap)

	rows := buildRows(s)
	s.scrollFocusIntoView(rows, visibleHeight)
	if s.Scroll > len(rows) {
		s.Scroll = len(rows)
	}

	for i := 0; i < visibleHeight && s.Scroll+i < len(rows); i++ {
		drawLine(screen, i+1, width, rows[s.Scroll+i], hitMap)
	}

	drawStickyHeader(screen, width, rows, s, hitMap)
	drawStatus(screen, height-1, width, s)

	if s.quit != nil {
		drawQuitDialog(screen, width, height, s, hitMap)
	}
	if s.menu != nil {
		drawMenuPopup(screen, width, s.menu, hitMap)
	}

	s.SetHitMap(hitMap)
	screen.Show()
}

// scrollFocusIntoView adjusts Scroll by the minimum amount that puts
// the focused item's row inside the viewport. It only fires when the
// focus moved since the last frame, so ScrollUp/ScrollDown can still
// move the viewport away from the focus.
func (s *State) scrollFocusIntoView(rows []row, visibleHeight int) {
	if visibleHeight <= 0 || s.lastFocus.equal(s.focus) {
		return
	}
	s.lastFocus = s.focus
	for i, r := range rows {
		if r.hasAddr && r.addr.equal(s.focus) {
			if i < s.Scroll {
				s.Scroll = i
			}
			if i >= s.Scroll+visibleHeight {
				s.Scroll = i - visibleHeight + 1
			}
			return
		}
	}
}

// drawStickyHeader pins the enclosing file's header to the first
// content row whenever the viewport starts below it; clicks on the
// pinned copy resolve to the real header.
func drawStickyHeader(screen tcell.Screen, width int, rows []row, s *State, hitMap map[[2]int]HitTarget) {
	if s.Scroll <= 0 || s.Scroll >= len(rows) {
		return
	}
	if rows[s.Scroll].isFileHeader {
		return
	}
	for i := s.Scroll; i >= 0; i-- {
		if rows[i].isFileHeader {
			drawLine(screen, 1, width, rows[i], hitMap)
			return
		}
	}
}

// lineNumbers formats the global old/new line number gutter: both
// sides for context lines, one side for added/removed lines.
func lineNumbers(oldNum, newNum int) string {
	oldCol, newCol := "    ", "    "
	if oldNum > 0 {
		oldCol = fmt.Sprintf("%4d", oldNum)
	}
	if newNum > 0 {
		newCol = fmt.Sprintf("%4d", newNum)
	}
	return oldCol + " " + newCol + " "
}

func buildRows(s *State) []row {
	var rows []row
	for fi := range s.Record.Files {
		f := &s.Record.Files[fi]
		rows = append(rows, buildFileHeader(s, fi, f))
		if !s.expand.fileExpanded(fi) {
			continue
		}
		oldNum, newNum := 1, 1
		for si := range f.Sections {
			rows = append(rows, sectionRows(s, fi, si, &f.Sections[si], &oldNum, &newNum)...)
		}
	}
	return rows
}

func buildFileHeader(s *State, fi int, f *record.File) row {
	addr := fileAddr(fi)
	focused := addr.equal(s.focus)
	label := f.Path
	if f.OldPath != nil && *f.OldPath != f.Path {
		label = *f.OldPath + " -> " + f.Path
	}
	fold := "v"
	if !s.expand.fileExpanded(fi) {
		fold = ">"
	}
	style := tcell.StyleDefault.Bold(true)
	if focused {
		style = style.Reverse(true)
	}
	glyph := f.Tristate().Glyph(focused, s.Record.IsReadOnly)
	return row{
		addr: addr, hasAddr: true,
		text:         fmt.Sprintf("%s %s %s (%s)", fold, glyph, label, f.FileMode),
		style:        style,
		foldCol:      0,
		checkboxCol:  2,
		isFileHeader: true,
		file:         fi,
	}
}

func sectionRows(s *State, fi, si int, sec *record.Section, oldNum, newNum *int) []row {
	addr := sectionAddr(fi, si)
	focused := addr.equal(s.focus)
	var rows []row
	switch sec.Kind {
	case record.SectionUnchanged:
		rows = append(rows, unchangedRows(s, fi, si, sec.Lines, oldNum, newNum)...)

	case record.SectionFileMode:
		style := tcell.StyleDefault
		if focused {
			style = style.Reverse(true)
		}
		rows = append(rows, row{
			addr: addr, hasAddr: true,
			text:        fmt.Sprintf("  %s mode -> %s", sec.Tristate().Glyph(focused, s.Record.IsReadOnly), sec.Mode),
			style:       style,
			foldCol:     -1,
			checkboxCol: 2,
			file:        fi,
		})

	case record.SectionBinary:
		style := tcell.StyleDefault
		if focused {
			style = style.Reverse(true)
		}
		rows = append(rows, row{
			addr: addr, hasAddr: true,
			text:        fmt.Sprintf("  %s binary: %s -> %s", sec.Tristate().Glyph(focused, s.Record.IsReadOnly), sec.OldDescription, sec.NewDescription),
			style:       style,
			foldCol:     -1,
			checkboxCol: 2,
			file:        fi,
		})

	case record.SectionChanged:
		fold := "v"
		expanded := s.expand.sectionExpanded(fi, si)
		if !expanded {
			fold = ">"
		}
		style := tcell.StyleDefault
		if focused {
			style = style.Reverse(true)
		}
		rows = append(rows, row{
			addr: addr, hasAddr: true,
			text:        fmt.Sprintf("  %s %s changed (%d lines)", fold, sec.Tristate().Glyph(focused, s.Record.IsReadOnly), len(sec.ChangedLines)),
			style:       style,
			foldCol:     2,
			checkboxCol: 4,
			file:        fi,
		})
		for li, cl := range sec.ChangedLines {
			var numbers string
			if cl.ChangeType == record.Removed {
				numbers = lineNumbers(*oldNum, 0)
				*oldNum++
			} else {
				numbers = lineNumbers(0, *newNum)
				*newNum++
			}
			if !expanded {
				continue
			}
			la := lineAddr(fi, si, li)
			lineFocused := la.equal(s.focus)
			lineStyle := tcell.StyleDefault
			sign := "+"
			if cl.ChangeType == record.Removed {
				sign = "-"
				lineStyle = lineStyle.Foreground(tcell.ColorRed)
			} else {
				lineStyle = lineStyle.Foreground(tcell.ColorGreen)
			}
			if lineFocused {
				lineStyle = lineStyle.Reverse(true)
			}
			glyph := record.TristateFalse
			if cl.IsChecked {
				glyph = record.TristateTrue
			}
			rows = append(rows, row{
				addr: la, hasAddr: true,
				text:        fmt.Sprintf("    %s %s%s%s", glyph.Glyph(lineFocused, s.Record.IsReadOnly), numbers, sign, renderLine(cl.Line)),
				style:       lineStyle,
				foldCol:     -1,
				checkboxCol: 4,
				file:        fi,
			})
		}
	}
	return rows
}

// unchangedRows renders a run of context lines, keeping the global
// line-number counters in step even for lines hidden behind the
// ellipsis. Runs longer than 2*contextLines abbreviate to a leading
// and trailing window, but only when an adjacent Changed section is
// expanded; otherwise the run renders in full.
func unchangedRows(s *State, fi, si int, lines []string, oldNum, newNum *int) []row {
	contextRow := func(l string, o, n int) row {
		return row{
			text:        "        " + lineNumbers(o, n) + " " + renderLine(l),
			style:       tcell.StyleDefault,
			foldCol:     -1,
			checkboxCol: -1,
			file:        fi,
		}
	}

	n := len(lines)
	if n <= 2*contextLines || !adjacentChangedExpanded(s, fi, si) {
		rows := make([]row, 0, n)
		for _, l := range lines {
			rows = append(rows, contextRow(l, *oldNum, *newNum))
			*oldNum++
			*newNum++
		}
		return rows
	}

	var rows []row
	for i := 0; i < contextLines; i++ {
		rows = append(rows, contextRow(lines[i], *oldNum, *newNum))
		*oldNum++
		*newNum++
	}
	rows = append(rows, row{text: "        ...", foldCol: -1, checkboxCol: -1, file: fi})
	*oldNum += n - 2*contextLines
	*newNum += n - 2*contextLines
	for i := n - contextLines; i < n; i++ {
		rows = append(rows, contextRow(lines[i], *oldNum, *newNum))
		*oldNum++
		*newNum++
	}
	return rows
}

// adjacentChangedExpanded reports whether a neighbouring section of
// sections[si] is a Changed section currently showing its lines.
func adjacentChangedExpanded(s *State, fi, si int) bool {
	secs := s.Record.Files[fi].Sections
	for _, j := range []int{si - 1, si + 1} {
		if j < 0 || j >= len(secs) {
			continue
		}
		if secs[j].Kind == record.SectionChanged && s.expand.sectionExpanded(fi, j) {
			return true
		}
	}
	return false
}

// renderLine replaces control characters with their Unicode "symbol
// for" glyphs and expands tabs to the next 8-column stop.
func renderLine(line string) string {
	var b strings.Builder
	col := 0
	for _, r := range line {
		switch {
		case r == '\t':
			b.WriteRune('→')
			col++
			for col%8 != 0 {
				b.WriteByte(' ')
				col++
			}
		case r == 0x200d || r == 0x200c:
			b.WriteRune('�')
			col++
		default:
			if g, ok := controlGlyphs[r]; ok {
				b.WriteRune(g)
				col++
			} else {
				b.WriteRune(r)
				col += uniseg.StringWidth(string(r))
			}
		}
	}
	return b.String()
}

func truncate(s string, width int) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	gr := uniseg.NewGraphemes(s)
	var b strings.Builder
	col := 0
	for gr.Next() {
		w := uniseg.StringWidth(gr.Str())
		if col+w > width-1 {
			break
		}
		b.WriteString(gr.Str())
		col += w
	}
	b.WriteString("…")
	return b.String()
}

func drawLine(screen tcell.Screen, y, width int, r row, hitMap map[[2]int]HitTarget) {
	text := truncate(r.text, width)
	x := 0
	for _, g := range graphemes(text) {
		runes := []rune(g)
		screen.SetContent(x, y, runes[0], runes[1:], r.style)
		x += uniseg.StringWidth(g)
	}
	for ; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
	if !r.hasAddr {
		return
	}
	for col := 0; col < width; col++ {
		target := HitTarget{Kind: HitLineBody, Addr: r.addr}
		if r.checkboxCol >= 0 && col >= r.checkboxCol && col < r.checkboxCol+3 {
			target.Kind = HitCheckbox
		}
		if r.foldCol >= 0 && col == r.foldCol {
			target.Kind = HitFold
		}
		hitMap[[2]int{y, col}] = target
	}
}

func graphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

func drawMenuBar(screen tcell.Screen, width int, hitMap map[[2]int]HitTarget) {
	x := 0
	for _, name := range menuBarOrder {
		label := " " + menuBarLabels[name] + " "
		for _, g := range graphemes(label) {
			screen.SetContent(x, 0, []rune(g)[0], nil, tcell.StyleDefault.Bold(true))
			for col := x; col < x+uniseg.StringWidth(g); col++ {
				hitMap[[2]int{0, col}] = HitTarget{Kind: HitMenuBar, Menu: name}
			}
			x += uniseg.StringWidth(g)
		}
	}
}

func drawMenuPopup(screen tcell.Screen, width int, m *menuState, hitMap map[[2]int]HitTarget) {
	items := menuItems[m.open]
	for i, it := range items {
		y := i + 1
		style := tcell.StyleDefault
		if i == m.highlight {
			style = style.Reverse(true)
		}
		for x, r := range it.Label {
			screen.SetContent(x, y, r, nil, style)
		}
		for col := 0; col < width; col++ {
			hitMap[[2]int{y, col}] = HitTarget{Kind: HitMenuItem, Menu: m.open, Item: i}
		}
	}
}

func drawQuitDialog(screen tcell.Screen, width, height int, s *State, hitMap map[[2]int]HitTarget) {
	q := s.quit
	y := height / 2
	prompt := fmt.Sprintf("Quit? %d files with selections and %d edited commit messages will be discarded.",
		s.Record.FilesWithSelection(), s.EditedMessageCount())
	x := 2
	for _, g := range graphemes(truncate(prompt, width-2)) {
		runes := []rune(g)
		screen.SetContent(x, y-1, runes[0], runes[1:], tcell.StyleDefault.Bold(true))
		x += uniseg.StringWidth(g)
	}
	goBackStyle := tcell.StyleDefault
	quitStyle := tcell.StyleDefault
	if q.focused == GoBack {
		goBackStyle = goBackStyle.Reverse(true)
	} else {
		quitStyle = quitStyle.Reverse(true)
	}
	x = 2
	for _, r := range "[ Go Back ]" {
		screen.SetContent(x, y, r, nil, goBackStyle)
		x++
	}
	for col := 2; col < x; col++ {
		hitMap[[2]int{y, col}] = HitTarget{Kind: HitQuitButton, Item: int(GoBack)}
	}
	x += 2
	start := x
	for _, r := range "[ Quit ]" {
		screen.SetContent(x, y, r, nil, quitStyle)
		x++
	}
	for col := start; col < x; col++ {
		hitMap[[2]int{y, col}] = HitTarget{Kind: HitQuitButton, Item: int(Quit)}
	}
}

func drawStatus(screen tcell.Screen, y, width int, s *State) {
	text := fmt.Sprintf("%d files, %d selected", len(s.Record.Files), s.Record.FilesWithSelection())
	for x, r := range truncate(text, width) {
		screen.SetContent(x, y, r, nil, tcell.StyleDefault.Dim(true))
	}
}
