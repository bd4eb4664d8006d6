package search

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"searchtabs/internal/clock"
	"searchtabs/internal/domain"
	"searchtabs/internal/eventbus"
)

// Service is the staged search pipeline: Idle -> Debouncing -> Loading ->
// Settled. Every trigger stops the live timer before scheduling a new one, so
// at most one pipeline timer exists at a time. Each scheduled callback carries
// the generation it was created for and returns without touching state when a
// newer trigger has superseded it.
type Service struct {
	mu         sync.Mutex
	query      string
	phase      domain.Phase
	results    []domain.Item
	timer      *clock.Timer
	generation uint64

	items   ItemSource
	tabs    TabSource
	filters FilterSource

	debounce       time.Duration
	loading        time.Duration
	instantRescope bool

	listeners []Listener
	clock     clock.Clock
	bus       eventbus.EventBus
	logger    *zap.Logger
}

// NewService creates an idle pipeline
func NewService(items ItemSource, tabs TabSource, filters FilterSource, opts Options) *Service {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Loading <= 0 {
		opts.Loading = DefaultLoading
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Service{
		phase:          domain.PhaseIdle,
		items:          items,
		tabs:           tabs,
		filters:        filters,
		debounce:       opts.Debounce,
		loading:        opts.Loading,
		instantRescope: opts.InstantRescope,
		clock:          opts.Clock,
		bus:            opts.Bus,
		logger:         opts.Logger.Named("search"),
	}
}

// OnChange registers a listener called after every transition
func (s *Service) OnChange(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// SetQuery records new search text and restarts the pipeline. It re-triggers
// even when the text did not change.
func (s *Service) SetQuery(query string) {
	s.mu.Lock()
	s.query = query
	s.publish(eventbus.QueryChangedEvent{Query: query})
	prev := s.phase
	s.restartLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.emit(prev, st)
}

// Trigger re-evaluates the pipeline after a tab or filter change
func (s *Service) Trigger() {
	s.mu.Lock()
	prev := s.phase
	if s.instantRescope && s.phase == domain.PhaseSettled {
		s.results = s.evaluateLocked()
		s.logger.Debug("rescoped settled results", zap.Int("count", len(s.results)))
	} else {
		s.restartLocked()
	}
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.emit(prev, st)
}

// Clear cancels any pending work and returns to Idle with an empty query
func (s *Service) Clear() {
	s.SetQuery("")
}

// Close stops the live timer. The service stays usable.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
	s.generation++
}

// Snapshot returns the current pipeline state
func (s *Service) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Query returns the current raw query
func (s *Service) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

func (s *Service) restartLocked() {
	s.stopTimerLocked()
	s.generation++
	s.results = nil

	if strings.TrimSpace(s.query) == "" {
		s.phase = domain.PhaseIdle
		return
	}

	s.phase = domain.PhaseDebouncing
	gen := s.generation
	s.timer = s.clock.AfterFunc(s.debounce, func() { s.debounced(gen) })
}

func (s *Service) debounced(gen uint64) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	prev := s.phase
	s.phase = domain.PhaseLoading
	s.timer = s.clock.AfterFunc(s.loading, func() { s.loaded(gen) })
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.emit(prev, st)
}

func (s *Service) loaded(gen uint64) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	prev := s.phase
	s.timer = nil
	s.results = s.evaluateLocked()
	s.phase = domain.PhaseSettled
	st := s.snapshotLocked()
	tab := s.activeTab()
	s.mu.Unlock()

	s.logger.Info("search settled",
		zap.String("query", st.Query),
		zap.String("tab", string(tab)),
		zap.Int("count", len(st.Results)))
	s.publish(eventbus.SearchSettledEvent{Query: st.Query, Tab: tab, Count: len(st.Results)})
	s.emit(prev, st)
}

func (s *Service) evaluateLocked() []domain.Item {
	var visible map[domain.Category]bool
	if s.filters != nil {
		visible = s.filters.Snapshot()
	}
	var items []domain.Item
	if s.items != nil {
		items = s.items.Items()
	}
	return Match(items, s.query, s.activeTab(), visible)
}

func (s *Service) activeTab() domain.Tab {
	if s.tabs == nil {
		return domain.TabAll
	}
	return s.tabs.Active()
}

func (s *Service) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Service) snapshotLocked() State {
	results := make([]domain.Item, len(s.results))
	copy(results, s.results)
	return State{
		Query:   s.query,
		Phase:   s.phase,
		Results: results,
	}
}

func (s *Service) emit(prev domain.Phase, st State) {
	if prev != st.Phase {
		s.logger.Debug("phase transition",
			zap.Stringer("from", prev),
			zap.Stringer("to", st.Phase),
			zap.String("query", st.Query))
		if st.Phase == domain.PhaseIdle {
			s.publish(eventbus.SearchClearedEvent{})
		}
	}
	s.publish(eventbus.PhaseChangedEvent{Phase: st.Phase, Query: st.Query})

	s.mu.Lock()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(st)
	}
}

func (s *Service) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
