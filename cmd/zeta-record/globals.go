package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/antgroup/zeta-record/pkg/version"
)

// Globals mirrors command.Globals from the wider toolchain: a
// verbosity flag and a self-terminating version flag, shared by every
// subcommand-free invocation of this tool.
type Globals struct {
	Verbose bool        `short:"V" name:"verbose" help:"Make the operation more talkative"`
	Version VersionFlag `short:"v" name:"version" help:"Show version number and quit"`
}

type VersionFlag bool

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(version.GetVersionString())
	app.Exit(0)
	return nil
}

// ErrExitCode carries the process exit code a failure should produce,
// the same shape the wider toolchain attaches to CLI-boundary errors.
type ErrExitCode struct {
	ExitCode int
	Message  string
}

func (e *ErrExitCode) Error() string { return e.Message }

func exitCode(err error) int {
	if e, ok := err.(*ErrExitCode); ok {
		return e.ExitCode
	}
	return 1
}

func fail(code int, format string, a ...any) error {
	return &ErrExitCode{ExitCode: code, Message: fmt.Sprintf(format, a...)}
}

// newLogger builds the structured logger Run uses for its
// non-interactive diagnostics (state-building errors such as walk or
// merge failures, state-dump errors, apply errors); the interactive UI
// owns the terminal and never logs to it.
func newLogger(g *Globals) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()),
	})
	if g.Verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
