package ui

import "github.com/antgroup/zeta-record/internal/term"

// MenuName identifies one of the menu bar's top-level popups.
type MenuName int

const (
	MenuFile MenuName = iota
	MenuEdit
	MenuSelect
	MenuHelp
)

var menuBarOrder = []MenuName{MenuFile, MenuEdit, MenuSelect, MenuHelp}

var menuBarLabels = map[MenuName]string{
	MenuFile:   "File",
	MenuEdit:   "Edit",
	MenuSelect: "Select",
	MenuHelp:   "Help",
}

// MenuItem is one row of an open menu popup, naming the logical event
// it dispatches when activated.
type MenuItem struct {
	Label string
	Kind  term.Kind
}

var menuItems = map[MenuName][]MenuItem{
	MenuFile: {
		{Label: "Confirm (c)", Kind: term.QuitAccept},
		{Label: "Quit (q)", Kind: term.QuitCancel},
	},
	MenuEdit: {
		{Label: "Edit commit message (e)", Kind: term.EditCommitMessage},
	},
	MenuSelect: {
		{Label: "Toggle all (a)", Kind: term.ToggleAll},
		{Label: "Toggle all uniform (A)", Kind: term.ToggleAllUniform},
		{Label: "Expand all (F)", Kind: term.ExpandAll},
	},
	MenuHelp: {},
}

// menuState tracks an open menu bar popup and which of its rows is
// highlighted.
type menuState struct {
	open      MenuName
	highlight int
}
