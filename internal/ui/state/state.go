package state

// AppState contains the presentation state not owned by the services
type AppState struct {
	// Row cursor over the displayed results
	Cursor int

	// Settings menu
	MenuOpen   bool
	MenuCursor int

	// UI state
	Width    int
	Height   int
	ShowHelp bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// MoveCursor moves the row cursor by delta, clamped to [0, count)
func (s *AppState) MoveCursor(delta, count int) {
	s.Cursor = clamp(s.Cursor+delta, count)
}

// ClampCursor keeps the row cursor inside a result list of the given size
func (s *AppState) ClampCursor(count int) {
	s.Cursor = clamp(s.Cursor, count)
}

// MoveMenuCursor moves the settings cursor by delta, clamped to [0, count)
func (s *AppState) MoveMenuCursor(delta, count int) {
	s.MenuCursor = clamp(s.MenuCursor+delta, count)
}

func clamp(v, count int) int {
	if count <= 0 || v < 0 {
		return 0
	}
	if v >= count {
		return count - 1
	}
	return v
}
