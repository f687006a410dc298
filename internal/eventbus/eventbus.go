package eventbus

import (
	"listselect/internal/domain"
	"log"
	"runtime/debug"
	"sync"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSelectionChanged = domain.EventSelectionChanged
	EventFocusChanged     = domain.EventFocusChanged
	EventDisabledChanged  = domain.EventDisabledChanged
	EventQueryUpdated     = domain.EventQueryUpdated
	EventCatalogChanged   = domain.EventCatalogChanged
	EventStateCleared     = domain.EventStateCleared
	EventAccepted         = domain.EventAccepted
	EventError            = domain.EventError
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
)

// Re-export domain event types
type SelectionChangedEvent = domain.SelectionChangedEvent
type FocusChangedEvent = domain.FocusChangedEvent
type DisabledChangedEvent = domain.DisabledChangedEvent
type QueryUpdatedEvent = domain.QueryUpdatedEvent
type CatalogChangedEvent = domain.CatalogChangedEvent
type StateClearedEvent = domain.StateClearedEvent
type AcceptedEvent = domain.AcceptedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus delivers events synchronously, in subscription order, on the
// publishing goroutine. Publish returns once every handler has run.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	if event == nil {
		return
	}

	// Skip logging for high-frequency events
	switch event.Type() {
	case EventFocusChanged:
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	// Copy so handlers may subscribe, unsubscribe or publish re-entrantly
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.call(sub.handler, event)
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, s := range subs {
				if s.id == id {
					b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
		})
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (NullBus) Publish(event DomainEvent) {}
func (NullBus) Subscribe(eventType EventType, handler EventHandler) func() {
	return func() {}
}
