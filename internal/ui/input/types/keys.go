package types

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds every binding the widget reacts to
type KeyMap struct {
	Quit     key.Binding
	Cancel   key.Binding
	Up       key.Binding
	Down     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	JumpTab  key.Binding
	Settings key.Binding
	Toggle   key.Binding
	Copy     key.Binding
	Search   key.Binding
	Help     key.Binding

	// InputHelp opens help while the search bar has focus, where "?" is text
	InputHelp key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		JumpTab: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5"),
			key.WithHelp("alt+1…5", "jump to tab"),
		),
		Settings: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "categories"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Copy: key.NewBinding(
			key.WithKeys("enter", "y", "ctrl+y"),
			key.WithHelp("enter/y", "copy"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "help"),
		),
		InputHelp: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
	}
}

// TabSlot returns the zero-based tab position a JumpTab key points at
func TabSlot(msg tea.KeyMsg) (int, bool) {
	if !msg.Alt || msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}

// ForMode returns the bindings worth advertising while mode is active
func (k KeyMap) ForMode(mode Mode) help.KeyMap {
	return modeKeys{keys: k, mode: mode}
}

type modeKeys struct {
	keys KeyMap
	mode Mode
}

func (m modeKeys) helpKey() key.Binding {
	if m.mode == ModeSearch {
		return m.keys.InputHelp
	}
	return m.keys.Help
}

func (m modeKeys) ShortHelp() []key.Binding {
	k := m.keys
	switch m.mode {
	case ModeResults:
		return []key.Binding{k.Copy, k.Search, k.NextTab, k.JumpTab, m.helpKey()}
	case ModeSettings:
		return []key.Binding{k.Up, k.Down, k.Toggle, k.Cancel}
	default:
		return []key.Binding{k.Cancel, k.NextTab, k.JumpTab, k.Settings, m.helpKey()}
	}
}

func (m modeKeys) FullHelp() [][]key.Binding {
	k := m.keys
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab, k.JumpTab},
		{k.Copy, k.Search, k.Cancel},
		{k.Settings, k.Toggle, m.helpKey(), k.Quit},
	}
}
