package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"searchtabs/internal/config"
	"searchtabs/internal/domain"
	"searchtabs/internal/eventbus"
	"searchtabs/internal/ui/commands"
	"searchtabs/internal/ui/coordinator"
	"searchtabs/internal/ui/input"
	inputtypes "searchtabs/internal/ui/input/types"
	"searchtabs/internal/ui/state"
	"searchtabs/internal/ui/viewmodels"
	"searchtabs/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	coord  *coordinator.Coordinator
	config *config.Config
	state  *state.AppState
	logger *zap.Logger

	help     help.Model
	keys     inputtypes.KeyMap
	spinner  spinner.Model
	spinning bool // a spinner tick is in flight

	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
}

// NewModel creates a new UI model
func NewModel(coord *coordinator.Coordinator, cfg *config.Config, logger *zap.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	appState := state.NewAppState()
	keys := inputtypes.DefaultKeyMap()

	m := &Model{
		coord:        coord,
		config:       cfg,
		state:        appState,
		logger:       logger.Named("ui"),
		help:         help.New(),
		keys:         keys,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		renderer:     views.NewRenderer(),
		cmdExecutor:  commands.NewExecutor(coord, logger),
		inputHandler: input.New(keys),
	}

	m.viewModel = viewmodels.NewViewModel(appState, coord, cfg.Search.PlaceholderRows)

	return m
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.state.ShowHelp {
			// Any key closes the help overlay
			m.state.ShowHelp = false
			return m, nil
		}

		before := m.inputHandler.CurrentMode()
		actions, cmd := m.inputHandler.HandleKey(msg, m.context())
		if after := m.inputHandler.CurrentMode(); after != before && after == inputtypes.ModeSearch {
			m.state.Cursor = 0
		}

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		cmds = append(cmds, m.syncPipeline())

		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
	mode := m.inputHandler.CurrentMode()
	m.viewModel.UpdateSpinner(m.spinner)
	m.viewModel.SetHelp(m.help, m.keys.ForMode(mode))
	m.viewModel.SetResultsFocused(mode == inputtypes.ModeResults)

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug("process action", zap.String("action", action.Type()))

	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		m.state.Cursor = 0
		return m.cmdExecutor.ExecuteQuery(a.Text)

	case inputtypes.ClearSearchAction:
		var cmds []tea.Cmd
		for _, follow := range m.inputHandler.ClearText(m.context()) {
			cmds = append(cmds, m.processAction(follow))
		}
		m.state.Cursor = 0
		cmds = append(cmds, m.cmdExecutor.ExecuteClear())
		return tea.Batch(cmds...)

	case inputtypes.MoveCursorAction:
		m.state.MoveCursor(a.Delta, len(m.coord.Search.Snapshot().Results))

	case inputtypes.MoveMenuCursorAction:
		m.state.MoveMenuCursor(a.Delta, len(domain.Categories()))

	case inputtypes.NextTabAction:
		return m.cmdExecutor.ExecuteCycleTab(true)

	case inputtypes.PrevTabAction:
		return m.cmdExecutor.ExecuteCycleTab(false)

	case inputtypes.SelectTabAction:
		return m.cmdExecutor.ExecuteSelectTab(a.Key)

	case inputtypes.ToggleFilterAction:
		cats := domain.Categories()
		if a.Index < 0 || a.Index >= len(cats) {
			return nil
		}
		return m.cmdExecutor.ExecuteToggleFilter(string(cats[a.Index]))

	case inputtypes.ToggleMenuAction:
		m.state.MenuOpen = a.Open

	case inputtypes.CopyAction:
		return m.cmdExecutor.ExecuteCopy(m.coord.Search.Snapshot().Results, a.Index)

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg processes events, spinner ticks and command results
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case spinner.TickMsg:
		if !m.coord.Search.Snapshot().IsLoading() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.CopyDoneMsg:
		if msg.Err != nil {
			// Copy failures stay in the log
			m.logger.Warn("copy failed", zap.String("item", msg.ItemID), zap.Error(msg.Err))
		}
		return m, nil

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// handleEvent reacts to domain events published by the services. Rendering
// always re-reads service state, so most events only need a repaint.
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch event.(type) {
	case eventbus.PhaseChangedEvent, eventbus.SearchSettledEvent, eventbus.SearchClearedEvent:
		return m.syncPipeline()
	}
	return nil
}

// syncPipeline keeps the cursor and mode consistent with the current results
// and starts the spinner when a search begins loading
func (m *Model) syncPipeline() tea.Cmd {
	snap := m.coord.Search.Snapshot()

	m.state.ClampCursor(len(snap.Results))
	if len(snap.Results) == 0 && m.inputHandler.CurrentMode() == inputtypes.ModeResults {
		m.inputHandler.ChangeMode(inputtypes.ModeSearch, m.context())
	}

	if snap.IsLoading() && !m.spinning {
		m.spinning = true
		return m.spinner.Tick
	}
	return nil
}

// context exposes read-only model state to the input modes
func (m *Model) context() inputtypes.Context {
	return modelContext{m: m}
}

type modelContext struct {
	m *Model
}

func (c modelContext) QueryBlank() bool {
	return c.m.coord.Search.Snapshot().IsEmpty()
}

func (c modelContext) ResultCount() int {
	return len(c.m.coord.Search.Snapshot().Results)
}

func (c modelContext) Cursor() int {
	return c.m.state.Cursor
}

func (c modelContext) MenuCursor() int {
	return c.m.state.MenuCursor
}

func (c modelContext) MenuItemCount() int {
	return len(domain.Categories())
}

func (c modelContext) VisibleTabs() []string {
	tabs := c.m.coord.VisibleTabs()
	keys := make([]string, len(tabs))
	for i, tab := range tabs {
		keys[i] = string(tab)
	}
	return keys
}
