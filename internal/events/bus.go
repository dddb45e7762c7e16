// Package events carries attack lifecycle notifications between the attack
// service, the authority and the chat adapter.
package events

import (
	"cmp"
	"fmt"
	"log"
	"slices"
	"sync"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus delivers events to listeners in priority order, lowest first
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe adds a listener for an event type. Listeners with equal priority
// run in subscription order.
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)
	slices.SortStableFunc(b.listeners[eventType], func(x, y EventListener) int {
		return cmp.Compare(x.Priority(), y.Priority())
	})

	log.Printf("EventBus: Subscribed %s to %s with priority %d", listener.ID(), eventType, listener.Priority())
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	before := len(b.listeners[eventType])
	b.listeners[eventType] = slices.DeleteFunc(b.listeners[eventType], func(l EventListener) bool {
		return l.ID() == listenerID
	})

	if len(b.listeners[eventType]) < before {
		log.Printf("EventBus: Unsubscribed %s from %s", listenerID, eventType)
	}
}

// Emit sends an event to all registered listeners. A listener error stops
// delivery and is returned; a cancelled event stops quietly.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := slices.Clone(b.listeners[event.GetType()])
	b.mu.RUnlock()

	for _, listener := range listeners {
		if event.IsCancelled() {
			log.Printf("EventBus: %s cancelled before %s", event.GetType(), listener.ID())
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}
