package filters

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"searchtabs/internal/domain"
	"searchtabs/internal/eventbus"
)

// Service owns the per-category visibility map. It is never cleared
// wholesale; the only mutation is Toggle.
type Service struct {
	mu        sync.RWMutex
	visible   map[domain.Category]bool
	listeners []ChangeListener
	bus       eventbus.EventBus
	logger    *zap.Logger
}

// NewService creates a filter service. Categories missing from initial start hidden.
func NewService(initial map[domain.Category]bool, bus eventbus.EventBus, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	visible := make(map[domain.Category]bool, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		visible[cat] = initial[cat]
	}
	return &Service{
		visible: visible,
		bus:     bus,
		logger:  logger.Named("filters"),
	}
}

// OnChange registers a listener called after every successful toggle
func (s *Service) OnChange(fn ChangeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Toggle flips exactly one category's visibility. An unknown key leaves the
// state untouched, notifies nobody and returns ErrUnknownCategory.
func (s *Service) Toggle(key string) error {
	cat, ok := domain.ParseCategory(key)
	if !ok {
		s.logger.Warn("ignoring toggle of unknown category", zap.String("key", key))
		return fmt.Errorf("%w: %q", ErrUnknownCategory, key)
	}

	s.mu.Lock()
	s.visible[cat] = !s.visible[cat]
	now := s.visible[cat]
	listeners := append([]ChangeListener(nil), s.listeners...)
	s.mu.Unlock()

	s.logger.Debug("filter toggled", zap.String("category", string(cat)), zap.Bool("visible", now))
	if s.bus != nil {
		s.bus.Publish(eventbus.FilterToggledEvent{Category: cat, Visible: now})
	}
	for _, fn := range listeners {
		fn()
	}
	return nil
}

// Visible reports whether a category is currently shown
func (s *Service) Visible(cat domain.Category) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible[cat]
}

// Snapshot returns a copy of the visibility map
func (s *Service) Snapshot() map[domain.Category]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[domain.Category]bool, len(s.visible))
	for k, v := range s.visible {
		out[k] = v
	}
	return out
}

// VisibleCategories returns the visible categories in tab order
func (s *Service) VisibleCategories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Category
	for _, cat := range domain.Categories() {
		if s.visible[cat] {
			out = append(out, cat)
		}
	}
	return out
}
