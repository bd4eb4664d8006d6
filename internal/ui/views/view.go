package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/x/ansi"
)

// Texts shown by the renderer
const (
	NoResultsText = "No results found"
	CancelText    = "Cancel (esc)"
	ShortcutKey   = "S"
	ShortcutLabel = "quick access"
	SettingsHint  = "⚙ ctrl+s"
)

// TabView is one entry of the tabs bar
type TabView struct {
	Label  string
	Count  int
	Active bool
}

// MenuEntry is one toggle in the settings menu
type MenuEntry struct {
	Label string
	Icon  string
	On    bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Search bar
	Input      string
	QueryBlank bool

	// Settings menu
	MenuOpen   bool
	Menu       []MenuEntry
	MenuCursor int

	// Tabs bar
	Tabs    []TabView
	Spinner string // empty when no search is loading

	// Body
	Loading         bool
	PlaceholderRows int
	Results         []ResultRow
	Cursor          int // -1 when the results list is not focused

	// Help
	ShowHelp  bool
	HelpModel help.Model
	Keys      help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	rowRender   *RowRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		rowRender:   NewRowRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	// Account for main container padding
	innerWidth := termWidth - 4
	if innerWidth < 20 {
		innerWidth = 20
	}

	content := &strings.Builder{}
	content.WriteString(r.renderSearchBar(state, innerWidth))
	content.WriteString("\n")

	if state.MenuOpen {
		content.WriteString(r.renderMenu(state))
		content.WriteString("\n")
	}

	// A blank query shows nothing under the bar except an explicitly opened menu
	if !state.QueryBlank {
		content.WriteString(r.renderTabs(state, innerWidth))
		content.WriteString("\n\n")
		content.WriteString(r.renderBody(state, innerWidth))
	}

	helpText := ""
	if !state.ShowHelp && !state.QueryBlank && state.Keys != nil {
		helpText = r.styles.Help.Render(state.HelpModel.ShortHelpView(state.Keys.ShortHelp()))
	}

	// Push the help line to the bottom
	if helpText != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22 // Default terminal height minus padding
		}
		if padding := availableLines - currentLines - 1; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString("\n")
		content.WriteString(helpText)
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ShowHelp && state.Keys != nil {
		helpContent := state.HelpModel.FullHelpView(state.Keys.FullHelp())
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, state.Height, termWidth, r.styles.HelpBox)
	}
	return finalContent
}

// renderSearchBar renders the input with the quick access hint or the cancel
// action, followed by the settings shortcut
func (r *Renderer) renderSearchBar(state ViewState, width int) string {
	var right string
	if state.QueryBlank {
		right = r.styles.ShortcutKey.Render(ShortcutKey) + " " + r.styles.Shortcut.Render(ShortcutLabel)
	} else {
		right = r.styles.Cancel.Render(CancelText)
	}
	right += "  " + r.styles.Settings.Render(SettingsHint)

	// Border and padding take four columns
	inner := width - 4
	left := r.styles.SearchIcon.Render("⌕") + " " + state.Input
	return r.styles.SearchBar.Width(width - 2).Render(joinEdges(left, right, inner))
}

// renderMenu renders the category toggles
func (r *Renderer) renderMenu(state ViewState) string {
	lines := make([]string, 0, len(state.Menu))
	for i, entry := range state.Menu {
		marker := "  "
		if i == state.MenuCursor {
			marker = r.styles.MenuCursor.Render("› ")
		}

		label := fmt.Sprintf("%s %-8s", GetGlyph(entry.Icon), entry.Label)
		var toggle string
		if entry.On {
			label = r.styles.MenuItem.Render(label)
			toggle = r.styles.SwitchOn.Render("[on ]")
		} else {
			label = r.styles.MenuItemOff.Render(label)
			toggle = r.styles.SwitchOff.Render("[off]")
		}
		lines = append(lines, marker+label+" "+toggle)
	}
	return r.styles.Menu.Render(strings.Join(lines, "\n"))
}

// renderTabs renders the tab strip with counts and the loading spinner
func (r *Renderer) renderTabs(state ViewState, width int) string {
	parts := make([]string, 0, len(state.Tabs))
	for _, tab := range state.Tabs {
		style := r.styles.Tab
		if tab.Active {
			style = r.styles.TabActive
		}
		parts = append(parts, style.Render(tab.Label)+r.styles.TabCount.Render(fmt.Sprintf("%d", tab.Count)))
	}
	left := strings.Join(parts, " ")
	if state.Spinner != "" {
		left += " " + r.styles.Spinner.Render(state.Spinner)
	}

	return ansi.Truncate(left, width, "…")
}

// renderBody renders placeholders, results or the empty message
func (r *Renderer) renderBody(state ViewState, width int) string {
	switch {
	case state.Loading:
		rows := make([]string, 0, state.PlaceholderRows)
		for i := 0; i < state.PlaceholderRows; i++ {
			rows = append(rows, r.rowRender.RenderPlaceholder(width))
		}
		return strings.Join(rows, "\n")
	case len(state.Results) == 0:
		return r.styles.NoResults.Render(NoResultsText)
	}

	rows := make([]string, 0, len(state.Results))
	for i, row := range state.Results {
		rows = append(rows, r.rowRender.RenderRow(row, i == state.Cursor, width))
	}
	return strings.Join(rows, "\n")
}
