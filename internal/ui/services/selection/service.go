package selection

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"searchtabs/internal/domain"
	"searchtabs/internal/eventbus"
)

// Service tracks the single active tab. Selecting a tab whose category is
// hidden is allowed; the pipeline then yields an empty result.
type Service struct {
	mu        sync.RWMutex
	active    domain.Tab
	listeners []ChangeListener
	bus       eventbus.EventBus
	logger    *zap.Logger
}

// NewService creates a selection service starting on "All"
func NewService(bus eventbus.EventBus, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		active: domain.TabAll,
		bus:    bus,
		logger: logger.Named("selection"),
	}
}

// OnChange registers a listener called after every Select
func (s *Service) OnChange(fn ChangeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Select replaces the active tab unconditionally, even with the same value
func (s *Service) Select(tab domain.Tab) {
	s.mu.Lock()
	s.active = tab
	listeners := append([]ChangeListener(nil), s.listeners...)
	s.mu.Unlock()

	s.logger.Debug("tab selected", zap.String("tab", string(tab)))
	if s.bus != nil {
		s.bus.Publish(eventbus.TabSelectedEvent{Tab: tab})
	}
	for _, fn := range listeners {
		fn()
	}
}

// SelectKey parses a raw key and selects it
func (s *Service) SelectKey(key string) error {
	tab, ok := domain.ParseTab(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTab, key)
	}
	s.Select(tab)
	return nil
}

// Active returns the active tab
func (s *Service) Active() domain.Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Choices returns the tabs offered to the user: "All" followed by the visible categories
func Choices(visible []domain.Category) []domain.Tab {
	tabs := make([]domain.Tab, 0, len(visible)+1)
	tabs = append(tabs, domain.TabAll)
	for _, cat := range visible {
		tabs = append(tabs, domain.TabFor(cat))
	}
	return tabs
}

// Next selects the tab after the active one among the offered choices.
// A hidden active tab restarts the cycle at "All".
func (s *Service) Next(visible []domain.Category) {
	s.Select(step(Choices(visible), s.Active(), 1))
}

// Prev selects the tab before the active one among the offered choices
func (s *Service) Prev(visible []domain.Category) {
	s.Select(step(Choices(visible), s.Active(), -1))
}

func step(choices []domain.Tab, current domain.Tab, delta int) domain.Tab {
	idx := -1
	for i, tab := range choices {
		if tab == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.TabAll
	}
	n := len(choices)
	return choices[((idx+delta)%n+n)%n]
}
