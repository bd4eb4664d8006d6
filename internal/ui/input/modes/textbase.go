package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"searchtabs/internal/ui/input/types"
)

// TextInputMode is a base for modes that accept text input. The text survives
// leaving and re-entering the mode; only an explicit clear resets it.
type TextInputMode struct {
	mode      types.Mode
	name      string
	textInput *textinput.Model
	keys      types.KeyMap
}

func NewTextInputMode(mode types.Mode, name string, ti *textinput.Model, keys types.KeyMap) TextInputMode {
	return TextInputMode{
		mode:      mode,
		name:      name,
		textInput: ti,
		keys:      keys,
	}
}

func (m TextInputMode) Name() string {
	return m.name
}

func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

// HandleKey returns false for keys the text input itself should process
func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	return nil, false
}
