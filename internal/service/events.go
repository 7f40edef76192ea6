package service

import (
	"sync"

	"github.com/google/uuid"
)

// EventType defines the type of event
type EventType string

const (
	EventStageChanged EventType = "stage_changed"
	EventBuildFailed  EventType = "build_failed"
)

// Event represents an event that occurred during construction
type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// StageChange is the payload of EventStageChanged
type StageChange struct {
	From      Stage     `json:"from"`
	To        Stage     `json:"to"`
	NetworkID uuid.UUID `json:"network_id"`
}

// BuildFailure is the payload of EventBuildFailed
type BuildFailure struct {
	Stage Stage  `json:"stage"`
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// EventBus allows publishing and subscribing to events
type EventBus struct {
	mu          sync.RWMutex
	subscribers []chan<- Event
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make([]chan<- Event, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (eb *EventBus) Subscribe(ch chan<- Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.subscribers = append(eb.subscribers, ch)
}

// Publish sends an event to all subscribers
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	for _, ch := range eb.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber is slow, skip
		}
	}
}
