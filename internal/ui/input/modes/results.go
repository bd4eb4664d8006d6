package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"searchtabs/internal/ui/input/types"
)

// ResultsMode moves a cursor over the displayed rows
type ResultsMode struct {
	keys types.KeyMap
}

func NewResultsMode(keys types.KeyMap) *ResultsMode {
	return &ResultsMode{keys: keys}
}

func (m *ResultsMode) Name() string { return "results" }

func (m *ResultsMode) Enter(ctx types.Context) []types.Action { return nil }

func (m *ResultsMode) Exit(ctx types.Context) []types.Action { return nil }

func (m *ResultsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	toSearch := types.ChangeModeAction{Mode: types.ModeSearch}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Search):
		return []types.Action{toSearch}, true
	case key.Matches(msg, m.keys.Up):
		if ctx.Cursor() <= 0 {
			return []types.Action{toSearch}, true
		}
		return []types.Action{types.MoveCursorAction{Delta: -1}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.MoveCursorAction{Delta: 1}}, true
	case key.Matches(msg, m.keys.Copy):
		if ctx.ResultCount() == 0 {
			return nil, true
		}
		return []types.Action{types.CopyAction{Index: ctx.Cursor()}}, true
	case key.Matches(msg, m.keys.NextTab):
		return []types.Action{types.NextTabAction{}, toSearch}, true
	case key.Matches(msg, m.keys.PrevTab):
		return []types.Action{types.PrevTabAction{}, toSearch}, true
	case key.Matches(msg, m.keys.JumpTab):
		if actions := jumpTab(msg, ctx); actions != nil {
			return append(actions, toSearch), true
		}
		return nil, true
	case key.Matches(msg, m.keys.Settings):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSettings}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, true
}
