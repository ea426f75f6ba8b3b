// Package main implements zeta-record, an interactive change selector
// for two-way diffs, directory diffs, and three-way merge conflicts.
package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/antgroup/zeta-record/pkg/version"
)

// App is the whole command-line surface: two positional paths plus
// the mode/output flags that pick between two-way diff, directory
// diff, and three-way merge.
type App struct {
	Globals

	Left  string `arg:"" help:"Left (old) file or directory"`
	Right string `arg:"" help:"Right (new) file or directory"`

	DirDiff       bool   `short:"d" name:"dir-diff" help:"Treat left/right as directories and walk them recursively"`
	Base          string `short:"b" name:"base" help:"Base file for a three-way merge; requires --output"`
	Output        string `short:"o" name:"output" help:"Write the merge result to this path"`
	ReadOnly      bool   `name:"read-only" help:"Disable editing; render only"`
	DryRun        bool   `short:"N" name:"dry-run" help:"Print planned writes; do not modify the filesystem"`
	LoadState     string `name:"load-state" hidden:"" help:"Replay a previously dumped RecordState instead of diffing the filesystem"`
	DumpState     string `name:"dump-state" hidden:"" help:"Write the final RecordState to this path before exiting"`
	DumpFormat    string `name:"dump-format" hidden:"" default:"json" enum:"json,yaml,toml" help:"Encoding for --dump-state"`
	Editor        string `name:"editor" help:"Override $EDITOR for commit-message editing"`
	Algorithm     string `name:"algorithm" default:"histogram" enum:"histogram,myers,patience,onp" help:"Line-diff algorithm"`
	ConflictStyle string `name:"conflict-style" default:"diff3" enum:"diff3,zdiff3" help:"How much shared context a merge conflict hunk keeps"`
}

func main() {
	var app App
	ctx := kong.Parse(&app,
		kong.Name("zeta-record"),
		kong.Description("zeta-record - interactively select and apply a change set"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version.GetVersionString()},
	)
	err := ctx.Run(&app.Globals)
	if err == nil {
		return
	}
	os.Exit(exitCode(err))
}
