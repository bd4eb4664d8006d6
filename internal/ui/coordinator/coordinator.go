package coordinator

import (
	"time"

	"go.uber.org/zap"

	"searchtabs/internal/catalog"
	"searchtabs/internal/clock"
	"searchtabs/internal/domain"
	"searchtabs/internal/eventbus"
	"searchtabs/internal/ui/services/clipboard"
	"searchtabs/internal/ui/services/filters"
	"searchtabs/internal/ui/services/search"
	"searchtabs/internal/ui/services/selection"
)

// Settings carries the tunables the services need
type Settings struct {
	Debounce       time.Duration
	Loading        time.Duration
	CopyAck        time.Duration
	InstantRescope bool
	InitialFilters map[domain.Category]bool
	ClipboardWrite clipboard.Writer // nil uses the system clipboard
}

// Coordinator manages all UI services and their interactions
type Coordinator struct {
	Filters   *filters.Service
	Selection *selection.Service
	Search    *search.Service
	Clipboard *clipboard.Service

	Catalog *catalog.Catalog

	bus    eventbus.EventBus
	logger *zap.Logger
}

// NewCoordinator creates a coordinator with all services wired together
func NewCoordinator(cat *catalog.Catalog, settings Settings, clk clock.Clock, bus eventbus.EventBus, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clk == nil {
		clk = clock.Real()
	}
	c := &Coordinator{
		Filters:   filters.NewService(settings.InitialFilters, bus, logger),
		Selection: selection.NewService(bus, logger),
		Clipboard: clipboard.NewService(settings.ClipboardWrite, settings.CopyAck, clk, bus, logger),
		Catalog:   cat,
		bus:       bus,
		logger:    logger,
	}
	c.Search = search.NewService(cat, c.Selection, c.Filters, search.Options{
		Debounce:       settings.Debounce,
		Loading:        settings.Loading,
		InstantRescope: settings.InstantRescope,
		Clock:          clk,
		Bus:            bus,
		Logger:         logger,
	})

	c.wireServices()

	return c
}

// wireServices connects services with their dependencies
func (c *Coordinator) wireServices() {
	// Tab and filter changes are pipeline triggers
	c.Filters.OnChange(c.Search.Trigger)
	c.Selection.OnChange(c.Search.Trigger)

	// Acknowledgments only live as long as their row is displayed
	c.Search.OnChange(func(st search.State) {
		ids := make([]string, 0, len(st.Results))
		for _, item := range st.Results {
			ids = append(ids, item.ID)
		}
		c.Clipboard.Retain(ids)
	})
}

// VisibleTabs returns the tabs currently offered as choices
func (c *Coordinator) VisibleTabs() []domain.Tab {
	return selection.Choices(c.Filters.VisibleCategories())
}

// Close stops every pending timer
func (c *Coordinator) Close() {
	c.Search.Close()
	c.Clipboard.Close()
}
