package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/antgroup/zeta-record/internal/apply"
	"github.com/antgroup/zeta-record/internal/cliplan"
	"github.com/antgroup/zeta-record/internal/diffbuild"
	"github.com/antgroup/zeta-record/internal/diffcore"
	"github.com/antgroup/zeta-record/internal/fileinfo"
	"github.com/antgroup/zeta-record/internal/fsio"
	"github.com/antgroup/zeta-record/internal/merge3"
	"github.com/antgroup/zeta-record/internal/record"
	"github.com/antgroup/zeta-record/internal/term"
	"github.com/antgroup/zeta-record/internal/ui"
	"github.com/antgroup/zeta-record/internal/walk"
)

func (app *App) algorithm() diffcore.Algorithm {
	algo, err := diffcore.AlgorithmFromName(app.Algorithm)
	if err != nil {
		return diffbuild.DefaultAlgorithm
	}
	return algo
}

// Run validates the flag combination, builds the RecordState for
// whichever of the three modes was selected, drives the interactive
// UI, and applies (or dry-run prints) the result.
func (app *App) Run(g *Globals) error {
	log := newLogger(g)

	if app.DirDiff && app.Base != "" {
		return fail(2, "--dir-diff conflicts with --base")
	}
	if app.Base != "" && app.Output == "" {
		return fail(2, "--base requires --output")
	}

	state, writeRoot, err := app.buildState()
	if err != nil {
		log.WithError(err).Error("build record state")
		return errToExit(err)
	}
	state.IsReadOnly = app.ReadOnly

	if err := app.maybeDumpState(state); err != nil {
		log.WithError(err).Warn("dump state")
	}

	if app.DryRun {
		cliplan.Print(os.Stdout, writeRoot, state)
		return fail(1, "%v", apply.ErrDryRun)
	}

	finalState, err := app.runUI(state)
	if err != nil {
		if _, ok := err.(ui.CancelledError); ok {
			return fail(1, "cancelled by user")
		}
		return errors.Wrap(err, "record")
	}

	if err := apply.Changes(fsio.RealFilesystem{}, writeRoot, finalState); err != nil {
		log.WithError(err).Error("apply changes")
		return fail(1, "%v", err)
	}
	return nil
}

// buildState constructs the RecordState for the selected mode and
// returns the filesystem root subsequent writes should be relative
// to.
func (app *App) buildState() (*record.RecordState, string, error) {
	if app.LoadState != "" {
		data, err := os.ReadFile(app.LoadState)
		if err != nil {
			return nil, "", errors.Wrapf(err, "read state file %s", app.LoadState)
		}
		rs, err := record.LoadStateJSON(data)
		if err != nil {
			return nil, "", errors.Wrapf(err, "parse state file %s", app.LoadState)
		}
		return rs, "", nil
	}

	switch {
	case app.Base != "":
		return app.buildMergeState()
	case app.DirDiff:
		return app.buildDirDiffState()
	default:
		return app.buildFileDiffState()
	}
}

func (app *App) buildFileDiffState() (*record.RecordState, string, error) {
	left, err := fileinfo.Read(app.Left)
	if err != nil {
		return nil, "", err
	}
	right, err := fileinfo.Read(app.Right)
	if err != nil {
		return nil, "", err
	}
	f := diffbuild.BuildFile(app.Right, &app.Left, left.Mode, right.Mode, left.Contents, right.Contents, app.algorithm())
	return &record.RecordState{Files: []record.File{f}}, "", nil
}

func (app *App) buildDirDiffState() (*record.RecordState, string, error) {
	paths, err := walk.DiffPaths(app.Left, app.Right)
	if err != nil {
		return nil, "", err
	}
	files := make([]record.File, 0, len(paths))
	for _, p := range paths {
		left, err := fileinfo.Read(filepath.Join(app.Left, p))
		if err != nil {
			return nil, "", err
		}
		right, err := fileinfo.Read(filepath.Join(app.Right, p))
		if err != nil {
			return nil, "", err
		}
		files = append(files, diffbuild.BuildFile(p, nil, left.Mode, right.Mode, left.Contents, right.Contents, app.algorithm()))
	}
	return &record.RecordState{Files: files}, app.Right, nil
}

func (app *App) buildMergeState() (*record.RecordState, string, error) {
	base, err := fileinfo.Read(app.Base)
	if err != nil {
		return nil, "", err
	}
	left, err := fileinfo.Read(app.Left)
	if err != nil {
		return nil, "", err
	}
	right, err := fileinfo.Read(app.Right)
	if err != nil {
		return nil, "", err
	}
	paths := merge3.Paths{Base: app.Base, Left: app.Left, Right: app.Right}
	f, err := merge3.BuildMergeFile(app.Output, paths, left.Mode, base.Contents, left.Contents, right.Contents, app.algorithm(), merge3.ParseConflictStyle(app.ConflictStyle))
	if err != nil {
		return nil, "", err
	}
	return &record.RecordState{Files: []record.File{f}}, "", nil
}

// maybeDumpState writes state to --dump-state, if set, purely for
// debugging a run after the fact. JSON is the reference encoding;
// --dump-format selects the YAML or TOML dump instead.
func (app *App) maybeDumpState(state *record.RecordState) error {
	if app.DumpState == "" {
		return nil
	}
	var data []byte
	var err error
	switch app.DumpFormat {
	case "yaml":
		data, err = record.DumpStateYAML(state)
	case "toml":
		data, err = record.DumpStateTOML(state)
	default:
		data, err = record.DumpStateJSON(state)
	}
	if err != nil {
		return errors.Wrap(err, "encode state")
	}
	return errors.Wrap(os.WriteFile(app.DumpState, data, 0o644), "write state file")
}

// runUI opens the terminal screen, drives the event loop, and
// restores the terminal before returning.
func (app *App) runUI(state *record.RecordState) (*record.RecordState, error) {
	input, err := term.NewTcellInput()
	if err != nil {
		return nil, errors.Wrap(err, "initialise terminal")
	}
	defer input.Close()

	var editor func(string) (string, error)
	if !app.ReadOnly {
		editor = ui.EditWithExternalEditor(input.Screen(), app.Editor)
	}
	s := ui.New(state, editor)
	return ui.Run(input.Screen(), input, s)
}

func errToExit(err error) error {
	switch err.(type) {
	case *merge3.MissingFileError, *merge3.BinaryFileError:
		return fail(3, "%v", err)
	}
	return fail(1, "%v", err)
}
