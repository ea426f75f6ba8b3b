// Package cliplan prints the dry-run description of what an apply
// would do, without touching the filesystem.
package cliplan

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"

	"github.com/antgroup/zeta-record/internal/record"
)

// IsTerminal reports whether w is a terminal-backed writer, the same
// way the rest of the toolchain decides whether to colorize output.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Print writes one block per file describing the action Changes would
// take, matching the wording of print_dry_run: "Would delete",
// "Would change file mode", "Would leave file unchanged", "Would
// update text file", "Would update binary file".
func Print(w io.Writer, writeRoot string, state *record.RecordState) {
	color := IsTerminal(w)
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	label := func(code, text string) string {
		if !color {
			return text
		}
		return ansi.Color(text, code)
	}

	for i := range state.Files {
		f := &state.Files[i]
		filePath := filepath.Join(writeRoot, f.Path)
		selected, _ := record.GetSelectedContents(f)

		if selected.FileMode.IsAbsent() {
			fmt.Fprintf(bw, "%s %s\n", label("red", "Would delete file:"), filePath)
			continue
		}

		modeChanged := !f.FileMode.Equal(selected.FileMode)
		if modeChanged {
			fmt.Fprintf(bw, "%s %s to %s: %s\n", label("yellow", "Would change file mode from"),
				f.FileMode.String(), selected.FileMode.String(), filePath)
		}

		switch selected.Contents.Kind {
		case record.SelectedUnchanged:
			if !modeChanged {
				fmt.Fprintf(bw, "%s %s\n", label("cyan", "Would leave file unchanged:"), filePath)
			}
		case record.SelectedBinary:
			fmt.Fprintf(bw, "%s %s\n", label("green", "Would update binary file:"), filePath)
			fmt.Fprintf(bw, "  Old: %q\n", selected.Contents.OldDescription)
			fmt.Fprintf(bw, "  New: %q\n", selected.Contents.NewDescription)
		case record.SelectedText:
			fmt.Fprintf(bw, "%s %s\n", label("green", "Would update text file:"), filePath)
			if selected.Contents.Text != "" {
				for _, line := range strings.Split(strings.TrimSuffix(selected.Contents.Text, "\n"), "\n") {
					fmt.Fprintf(bw, "  %s\n", line)
				}
			}
		}
	}
}
