package search

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"searchtabs/internal/clock"
	"searchtabs/internal/domain"
	"searchtabs/internal/eventbus"
)

// State is an immutable snapshot of the pipeline handed to presentation
type State struct {
	Query   string
	Phase   domain.Phase
	Results []domain.Item
}

// IsEmpty reports whether the query is blank after trimming whitespace
func (s State) IsEmpty() bool {
	return strings.TrimSpace(s.Query) == ""
}

// IsLoading reports whether placeholder rows should be shown
func (s State) IsLoading() bool {
	return s.Phase == domain.PhaseLoading
}

// ItemSource is the read-only catalog the pipeline matches against
type ItemSource interface {
	Items() []domain.Item
}

// TabSource provides the active tab at evaluation time
type TabSource interface {
	Active() domain.Tab
}

// FilterSource provides the category visibility map at evaluation time
type FilterSource interface {
	Snapshot() map[domain.Category]bool
}

// Listener receives the pipeline state after every transition
type Listener func(State)

// Options configures the pipeline timers and collaborators
type Options struct {
	Debounce time.Duration
	Loading  time.Duration

	// InstantRescope re-runs only the match and scope step when a tab or
	// filter changes while settled, instead of the full two-stage delay.
	InstantRescope bool

	Clock  clock.Clock
	Bus    eventbus.EventBus
	Logger *zap.Logger
}

// Default pipeline timings
const (
	DefaultDebounce = 500 * time.Millisecond
	DefaultLoading  = 1000 * time.Millisecond
)
