package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"searchtabs/internal/domain"
	"searchtabs/internal/ui/coordinator"
	"searchtabs/internal/ui/state"
	"searchtabs/internal/ui/views"
)

// categoryIcons maps categories to their menu glyph names
var categoryIcons = map[domain.Category]string{
	domain.CategoryFiles:  "file",
	domain.CategoryPeople: "user",
	domain.CategoryChats:  "comment",
	domain.CategoryLists:  "list",
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state           *state.AppState
	coord           *coordinator.Coordinator
	placeholderRows int
	help            help.Model
	keys            help.KeyMap
	textInput       textinput.Model
	spinner         spinner.Model
	resultsFocused  bool
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, coord *coordinator.Coordinator, placeholderRows int) *ViewModel {
	return &ViewModel{
		state:           appState,
		coord:           coord,
		placeholderRows: placeholderRows,
	}
}

// SetHelp sets the help model and the bindings it describes
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.textInput = textInput
}

// UpdateSpinner updates the loading spinner
func (vm *ViewModel) UpdateSpinner(s spinner.Model) {
	vm.spinner = s
}

// SetResultsFocused marks whether the row cursor should be drawn
func (vm *ViewModel) SetResultsFocused(focused bool) {
	vm.resultsFocused = focused
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	snap := vm.coord.Search.Snapshot()

	cursor := -1
	if vm.resultsFocused {
		cursor = vm.state.Cursor
	}

	spin := ""
	if snap.IsLoading() {
		spin = vm.spinner.View()
	}

	return views.ViewState{
		Width:           vm.state.Width,
		Height:          vm.state.Height,
		Input:           vm.textInput.View(),
		QueryBlank:      snap.IsEmpty(),
		MenuOpen:        vm.state.MenuOpen,
		Menu:            vm.menuEntries(),
		MenuCursor:      vm.state.MenuCursor,
		Tabs:            vm.tabs(),
		Spinner:         spin,
		Loading:         snap.IsLoading(),
		PlaceholderRows: vm.placeholderRows,
		Results:         vm.rows(snap.Results),
		Cursor:          cursor,
		ShowHelp:        vm.state.ShowHelp,
		HelpModel:       vm.help,
		Keys:            vm.keys,
	}
}

// tabs lists "All" and each visible category with its catalog count
func (vm *ViewModel) tabs() []views.TabView {
	counts := vm.coord.Catalog.CountByCategory()
	active := vm.coord.Selection.Active()

	choices := vm.coord.VisibleTabs()
	tabs := make([]views.TabView, 0, len(choices))
	for _, tab := range choices {
		count := vm.coord.Catalog.Len()
		if cat, ok := tab.Category(); ok {
			count = counts[cat]
		}
		tabs = append(tabs, views.TabView{
			Label:  tab.Label(),
			Count:  count,
			Active: tab == active,
		})
	}
	return tabs
}

// menuEntries lists every category toggle in display order
func (vm *ViewModel) menuEntries() []views.MenuEntry {
	visible := vm.coord.Filters.Snapshot()
	entries := make([]views.MenuEntry, 0, len(visible))
	for _, cat := range domain.Categories() {
		entries = append(entries, views.MenuEntry{
			Label: cat.Label(),
			Icon:  categoryIcons[cat],
			On:    visible[cat],
		})
	}
	return entries
}

func (vm *ViewModel) rows(results []domain.Item) []views.ResultRow {
	rows := make([]views.ResultRow, 0, len(results))
	for _, item := range results {
		rows = append(rows, views.ResultRow{
			ID:       item.ID,
			Title:    item.Title,
			Subtitle: item.Subtitle,
			Badge:    item.Badge,
			Avatar:   item.Avatar,
			Icon:     item.Icon,
			Copied:   vm.coord.Clipboard.JustCopied(item.ID),
		})
	}
	return rows
}
