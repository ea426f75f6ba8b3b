// Package diffbuild turns two raw file contents into the Section tree
// that internal/record operates on, using internal/diffcore as the
// underlying line-matching engine.
package diffbuild

// splitLines splits text into lines that retain their original
// trailing newline, matching split_inclusive('\n') semantics: the
// final fragment has no newline if the text didn't end with one.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := make([]string, 0, 64)
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
