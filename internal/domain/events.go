package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventFocusChanged     EventType = "FocusChanged"
	EventDisabledChanged  EventType = "DisabledChanged"
	EventQueryUpdated     EventType = "QueryUpdated"
	EventCatalogChanged   EventType = "CatalogChanged"
	EventStateCleared     EventType = "StateCleared"
	EventAccepted         EventType = "Accepted"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted after every committed selection mutation
type SelectionChangedEvent struct {
	Selection Selection
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// FocusChangedEvent is emitted when the focused index moves
type FocusChangedEvent struct {
	OldIndex int
	NewIndex int
}

func (e FocusChangedEvent) Type() EventType { return EventFocusChanged }

// DisabledChangedEvent is emitted when the disabled set is edited or replaced
type DisabledChangedEvent struct {
	Disabled []int
}

func (e DisabledChangedEvent) Type() EventType { return EventDisabledChanged }

// QueryUpdatedEvent is emitted when the raw search text changes
type QueryUpdatedEvent struct {
	Query string
}

func (e QueryUpdatedEvent) Type() EventType { return EventQueryUpdated }

// CatalogChangedEvent is emitted when the active catalog is re-derived
type CatalogChangedEvent struct {
	Query    string // query the catalog was filtered with, "" when unfiltered
	Total    int    // size of the source item list
	Visible  int    // size of the active catalog
	Filtered bool
}

func (e CatalogChangedEvent) Type() EventType { return EventCatalogChanged }

// StateClearedEvent is emitted when selection, disabled set and focus are reset
type StateClearedEvent struct{}

func (e StateClearedEvent) Type() EventType { return EventStateCleared }

// AcceptedEvent is emitted when the user confirms the current selection
type AcceptedEvent struct {
	Selection Selection
	Items     []Item
}

func (e AcceptedEvent) Type() EventType { return EventAccepted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Items int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
