// Package apply writes a RecordState's accepted selection to disk, or
// (in dry-run mode) describes what it would have written.
package apply

import (
	"errors"
	"path"
	"path/filepath"

	"github.com/antgroup/zeta-record/internal/fsio"
	"github.com/antgroup/zeta-record/internal/record"
)

// ErrDryRun is returned by the caller orchestrating a dry run after it
// has printed the plan, so the process still exits non-zero without
// reporting a real failure.
var ErrDryRun = errors.New("dry run: no changes written")

// Changes writes every file's selected contents under writeRoot. A
// read-only state is a no-op success: the caller never reaches this
// function with pending edits in that case, but treating it as a
// guaranteed no-op here too keeps the function safe to call directly.
func Changes(fs fsio.Filesystem, writeRoot string, state *record.RecordState) error {
	if state.IsReadOnly {
		return nil
	}
	for i := range state.Files {
		if err := applyOne(fs, writeRoot, &state.Files[i]); err != nil {
			return err
		}
	}
	return nil
}

func applyOne(fs fsio.Filesystem, writeRoot string, f *record.File) error {
	selected, _ := record.GetSelectedContents(f)
	target := filepath.Join(writeRoot, f.Path)

	if selected.FileMode.IsAbsent() {
		return fs.RemoveFile(target)
	}

	switch selected.Contents.Kind {
	case record.SelectedUnchanged:
		// no filesystem operation

	case record.SelectedBinary:
		oldPath := f.Path
		if f.OldPath != nil {
			oldPath = *f.OldPath
		}
		return fs.CopyFile(filepath.Join(writeRoot, oldPath), target)

	case record.SelectedText:
		if dir := path.Dir(f.Path); dir != "." {
			if err := fs.MkdirAll(filepath.Join(writeRoot, dir)); err != nil {
				return err
			}
		}
		return fs.WriteFile(target, []byte(selected.Contents.Text))
	}
	return nil
}
