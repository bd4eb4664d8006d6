package types

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// ClearSearchAction cancels the current query
type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

// Navigation actions
type MoveCursorAction struct {
	Delta int
}

func (a MoveCursorAction) Type() string { return "move_cursor" }

type MoveMenuCursorAction struct {
	Delta int
}

func (a MoveMenuCursorAction) Type() string { return "move_menu_cursor" }

// Tab actions
type NextTabAction struct{}

func (a NextTabAction) Type() string { return "next_tab" }

type PrevTabAction struct{}

func (a PrevTabAction) Type() string { return "prev_tab" }

type SelectTabAction struct {
	Key string // "All" or a category key
}

func (a SelectTabAction) Type() string { return "select_tab" }

// Filter actions
type ToggleFilterAction struct {
	Index int // position in the settings menu
}

func (a ToggleFilterAction) Type() string { return "toggle_filter" }

type ToggleMenuAction struct {
	Open bool
}

func (a ToggleMenuAction) Type() string { return "toggle_menu" }

// Row actions
type CopyAction struct {
	Index int // row index in the displayed results
}

func (a CopyAction) Type() string { return "copy" }

// Application actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
