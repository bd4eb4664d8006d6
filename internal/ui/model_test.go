package ui

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchtabs/internal/catalog"
	"searchtabs/internal/clock"
	"searchtabs/internal/config"
	"searchtabs/internal/domain"
	"searchtabs/internal/eventbus"
	"searchtabs/internal/ui/commands"
	"searchtabs/internal/ui/coordinator"
	inputtypes "searchtabs/internal/ui/input/types"
	"searchtabs/internal/ui/views"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

type harness struct {
	model  *Model
	clock  *clock.FakeClock
	copied []string
	fail   error
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{clock: clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))}
	cfg := config.DefaultConfig()
	coord := coordinator.NewCoordinator(catalog.Default(), coordinator.Settings{
		Debounce:       cfg.Debounce(),
		Loading:        cfg.Loading(),
		CopyAck:        cfg.CopyAck(),
		InitialFilters: cfg.InitialFilters(),
		ClipboardWrite: func(text string) error {
			if h.fail != nil {
				return h.fail
			}
			h.copied = append(h.copied, text)
			return nil
		},
	}, h.clock, nil, nil)
	t.Cleanup(coord.Close)

	h.model = NewModel(coord, cfg, nil)
	h.model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	_, cmd := h.model.Update(msg)
	return cmd
}

func (h *harness) typeText(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *harness) key(t tea.KeyType) tea.Cmd {
	return h.send(tea.KeyMsg{Type: t})
}

func (h *harness) settle() {
	h.clock.Advance(1500 * time.Millisecond)
	h.send(EventMsg{Event: eventbus.SearchSettledEvent{}})
}

func (h *harness) view() string {
	return ansi.Strip(h.model.View())
}

func TestViewBeforeWindowSize(t *testing.T) {
	h := newHarness(t)
	h.model.state.Width = 0
	assert.Equal(t, "Loading...", h.model.View())
}

func TestBlankQueryRendersOnlyTheBar(t *testing.T) {
	h := newHarness(t)
	out := h.view()
	assert.Contains(t, out, "quick access")
	assert.Contains(t, out, views.SettingsHint)
	assert.NotContains(t, out, "All 5", "no tabs bar under a blank query")
	assert.NotContains(t, out, "Files 3")
	assert.NotContains(t, out, views.NoResultsText)

	h.typeText("   ")
	assert.NotContains(t, h.view(), "All 5", "whitespace counts as blank")
}

func TestTabsBarAppearsOnceQueryIsTyped(t *testing.T) {
	h := newHarness(t)
	h.typeText("a")
	out := h.view()
	assert.Contains(t, out, "All 5")
	assert.Contains(t, out, "Files 3")
	assert.Contains(t, out, "People 2")
	assert.Contains(t, out, "Lists 0")
	assert.NotContains(t, out, "Chats", "hidden categories get no tab")
}

func TestTypingRunsTheStagedSearch(t *testing.T) {
	h := newHarness(t)
	h.typeText("Michal")
	assert.Equal(t, domain.PhaseDebouncing, h.model.coord.Search.Snapshot().Phase)
	assert.Contains(t, h.view(), views.CancelText)

	h.clock.Advance(500 * time.Millisecond)
	cmd := h.send(EventMsg{Event: eventbus.PhaseChangedEvent{Phase: domain.PhaseLoading}})
	require.NotNil(t, cmd, "loading starts the spinner")
	assert.Equal(t, 5, strings.Count(h.view(), "██"))

	h.settle()
	out := h.view()
	assert.Contains(t, out, "Random Michal Folder")
	assert.Contains(t, out, "12 Files")
	assert.NotContains(t, out, "██")
}

func TestNoResultsMessage(t *testing.T) {
	h := newHarness(t)
	h.typeText("zzz")
	h.settle()
	assert.Contains(t, h.view(), views.NoResultsText)
}

func TestEscClearsThenQuits(t *testing.T) {
	h := newHarness(t)
	h.typeText("Michal")
	h.settle()

	assert.Nil(t, h.key(tea.KeyEsc))
	assert.Equal(t, domain.PhaseIdle, h.model.coord.Search.Snapshot().Phase)
	assert.Empty(t, h.model.inputHandler.TextInput().Value())
	assert.NotContains(t, h.view(), "Michal")

	cmd := h.key(tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestCopyShowsAcknowledgmentPerRow(t *testing.T) {
	h := newHarness(t)
	h.typeText("ago")
	h.settle()
	results := h.model.coord.Search.Snapshot().Results
	require.Len(t, results, 4)

	h.key(tea.KeyDown)
	require.Equal(t, inputtypes.ModeResults, h.model.inputHandler.CurrentMode())
	h.key(tea.KeyDown)

	cmd := h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cmd)
	msg := cmd()
	done, ok := msg.(commands.CopyDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.Err)
	h.send(msg)

	assert.Equal(t, []string{results[1].CopyText()}, h.copied)
	assert.Equal(t, 1, strings.Count(h.view(), "Copied!"))

	h.clock.Advance(1500 * time.Millisecond)
	assert.NotContains(t, h.view(), "Copied!")
}

func TestCopyFailureLeavesRowUnacknowledged(t *testing.T) {
	h := newHarness(t)
	h.fail = errors.New("no clipboard")
	h.typeText("Michal")
	h.settle()

	h.key(tea.KeyDown)
	cmd := h.key(tea.KeyEnter)
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Error(t, msg.(commands.CopyDoneMsg).Err)
	h.send(msg)
	assert.NotContains(t, h.view(), "Copied!")
}

func TestResultsModeFallsBackWhenRowsVanish(t *testing.T) {
	h := newHarness(t)
	h.typeText("Michal")
	h.settle()
	h.key(tea.KeyDown)
	require.Equal(t, inputtypes.ModeResults, h.model.inputHandler.CurrentMode())

	h.key(tea.KeyTab)
	assert.Equal(t, inputtypes.ModeSearch, h.model.inputHandler.CurrentMode())
	assert.Equal(t, domain.Tab("files"), h.model.coord.Selection.Active())
	assert.Equal(t, domain.PhaseDebouncing, h.model.coord.Search.Snapshot().Phase, "tab change restarts the pipeline")
}

func TestSettingsMenuTogglesFilters(t *testing.T) {
	h := newHarness(t)
	h.typeText("a")
	h.key(tea.KeyCtrlS)
	assert.True(t, h.model.state.MenuOpen)
	out := h.view()
	assert.Contains(t, out, "[off]")

	// Files, People, Chats: move to chats and turn it on
	h.key(tea.KeyDown)
	h.key(tea.KeyDown)
	h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, h.model.coord.Filters.Visible(domain.CategoryChats))
	assert.Contains(t, h.view(), "Chats 0")

	h.key(tea.KeyEsc)
	assert.False(t, h.model.state.MenuOpen)
	assert.Equal(t, inputtypes.ModeSearch, h.model.inputHandler.CurrentMode())
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	h := newHarness(t)
	h.typeText("Michal")
	h.settle()
	h.key(tea.KeyDown)
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.True(t, h.model.state.ShowHelp)

	h.key(tea.KeyDown)
	assert.False(t, h.model.state.ShowHelp)
	assert.Equal(t, 0, h.model.state.Cursor, "the closing key is not processed")
}

func TestSpinnerStopsWhenSettled(t *testing.T) {
	h := newHarness(t)
	h.typeText("Michal")
	h.clock.Advance(500 * time.Millisecond)
	cmd := h.send(EventMsg{Event: eventbus.PhaseChangedEvent{Phase: domain.PhaseLoading}})
	require.NotNil(t, cmd)
	tick := cmd()

	h.clock.Advance(time.Second)
	assert.Nil(t, h.send(tick))
	assert.False(t, h.model.spinning)
}

func TestAltDigitJumpsToTab(t *testing.T) {
	h := newHarness(t)
	h.typeText("Kristinge")
	h.settle()
	require.Len(t, h.model.coord.Search.Snapshot().Results, 1)

	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}, Alt: true})
	assert.Equal(t, domain.Tab("files"), h.model.coord.Selection.Active())
	assert.Equal(t, "Kristinge", h.model.inputHandler.TextInput().Value())
	assert.Equal(t, domain.PhaseDebouncing, h.model.coord.Search.Snapshot().Phase)

	h.settle()
	assert.Empty(t, h.model.coord.Search.Snapshot().Results, "people row is scoped out of files")
	assert.Contains(t, h.view(), views.NoResultsText)
}

func TestF1OpensHelpFromSearchBar(t *testing.T) {
	h := newHarness(t)
	h.typeText("a")
	assert.Contains(t, h.view(), "f1 help")
	assert.NotContains(t, h.view(), "? help")

	h.key(tea.KeyF1)
	assert.True(t, h.model.state.ShowHelp)
	assert.Equal(t, "a", h.model.inputHandler.TextInput().Value())
}
