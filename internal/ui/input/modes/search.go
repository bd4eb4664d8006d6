package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"searchtabs/internal/ui/input/types"
)

// SearchMode edits the query. Keys it does not claim go to the text input.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model, keys types.KeyMap) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti, keys),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Cancel):
		if ctx.QueryBlank() {
			return []types.Action{types.QuitAction{}}, true
		}
		return []types.Action{types.ClearSearchAction{}}, true
	case key.Matches(msg, m.keys.NextTab):
		return []types.Action{types.NextTabAction{}}, true
	case key.Matches(msg, m.keys.PrevTab):
		return []types.Action{types.PrevTabAction{}}, true
	case key.Matches(msg, m.keys.JumpTab):
		return jumpTab(msg, ctx), true
	case key.Matches(msg, m.keys.InputHelp):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, m.keys.Settings):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSettings}}, true
	case key.Matches(msg, m.keys.Down):
		if ctx.ResultCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeResults}}, true
	default:
		return m.TextInputMode.HandleKey(msg, ctx)
	}
}

// jumpTab selects the tab in the slot named by an alt+digit key. Slots past the
// offered tabs do nothing.
func jumpTab(msg tea.KeyMsg, ctx types.Context) []types.Action {
	slot, ok := types.TabSlot(msg)
	tabs := ctx.VisibleTabs()
	if !ok || slot >= len(tabs) {
		return nil
	}
	return []types.Action{types.SelectTabAction{Key: tabs[slot]}}
}
