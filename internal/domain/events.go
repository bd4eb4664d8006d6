package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryChanged   EventType = "QueryChanged"
	EventTabSelected    EventType = "TabSelected"
	EventFilterToggled  EventType = "FilterToggled"
	EventPhaseChanged   EventType = "PhaseChanged"
	EventSearchSettled  EventType = "SearchSettled"
	EventSearchCleared  EventType = "SearchCleared"
	EventCopySucceeded  EventType = "CopySucceeded"
	EventCopyFailed     EventType = "CopyFailed"
	EventCopyAckExpired EventType = "CopyAckExpired"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryChangedEvent is emitted whenever the raw search text changes
type QueryChangedEvent struct {
	Query string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// TabSelectedEvent is emitted when the active tab is replaced
type TabSelectedEvent struct {
	Tab Tab
}

func (e TabSelectedEvent) Type() EventType { return EventTabSelected }

// FilterToggledEvent is emitted when a category's visibility flips
type FilterToggledEvent struct {
	Category Category
	Visible  bool
}

func (e FilterToggledEvent) Type() EventType { return EventFilterToggled }

// PhaseChangedEvent is emitted on every pipeline phase transition
type PhaseChangedEvent struct {
	Phase Phase
	Query string
}

func (e PhaseChangedEvent) Type() EventType { return EventPhaseChanged }

// SearchSettledEvent is emitted when a pipeline run produces its result
type SearchSettledEvent struct {
	Query string
	Tab   Tab
	Count int
}

func (e SearchSettledEvent) Type() EventType { return EventSearchSettled }

// SearchClearedEvent is emitted when the pipeline returns to idle
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// CopySucceededEvent is emitted when a row's text reached the clipboard
type CopySucceededEvent struct {
	ItemID string
}

func (e CopySucceededEvent) Type() EventType { return EventCopySucceeded }

// CopyFailedEvent is emitted when the clipboard write failed
type CopyFailedEvent struct {
	ItemID string
	Err    error
}

func (e CopyFailedEvent) Type() EventType { return EventCopyFailed }

// CopyAckExpiredEvent is emitted when a row's "copied" acknowledgment clears
type CopyAckExpiredEvent struct {
	ItemID string
}

func (e CopyAckExpiredEvent) Type() EventType { return EventCopyAckExpired }
