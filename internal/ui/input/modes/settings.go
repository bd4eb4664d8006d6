package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"searchtabs/internal/ui/input/types"
)

// SettingsMode drives the category visibility menu
type SettingsMode struct {
	keys types.KeyMap
}

func NewSettingsMode(keys types.KeyMap) *SettingsMode {
	return &SettingsMode{keys: keys}
}

func (m *SettingsMode) Name() string { return "settings" }

func (m *SettingsMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.ToggleMenuAction{Open: true}}
}

// Exit always closes the menu, whichever key left the mode
func (m *SettingsMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.ToggleMenuAction{Open: false}}
}

func (m *SettingsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Settings):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.MoveMenuCursorAction{Delta: -1}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.MoveMenuCursorAction{Delta: 1}}, true
	case key.Matches(msg, m.keys.Toggle):
		if ctx.MenuItemCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ToggleFilterAction{Index: ctx.MenuCursor()}}, true
	}
	return nil, true
}
