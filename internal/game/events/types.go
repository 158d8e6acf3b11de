package events

import (
	"time"
)

// Event is the base interface for all match events.
type Event interface {
	// Type returns the event type as a string for filtering and logging
	Type() string
	// Timestamp returns when the event occurred
	Timestamp() time.Time
	// MatchID returns the ID of the match this event belongs to
	MatchID() string
}

// BaseEvent provides common fields for all events.
type BaseEvent struct {
	EventType string    `json:"type"`
	Time      time.Time `json:"timestamp"`
	Match     string    `json:"match_id"`
}

// Type implements Event.
func (e BaseEvent) Type() string {
	return e.EventType
}

// Timestamp implements Event.
func (e BaseEvent) Timestamp() time.Time {
	return e.Time
}

// MatchID implements Event.
func (e BaseEvent) MatchID() string {
	return e.Match
}

// EventHandler is a function that processes events.
type EventHandler func(Event)

// Subscriber represents an entity that can receive events.
type Subscriber interface {
	// ID returns a unique identifier for this subscriber
	ID() string
	// HandleEvent processes an event
	HandleEvent(Event)
	// InterestedIn returns true if the subscriber wants this event type
	InterestedIn(eventType string) bool
}

// Publisher is the interface for publishing events. The engine depends
// on this rather than the concrete bus so it runs identically with or
// without anyone listening.
type Publisher interface {
	Publish(Event)
}

// Bus is the main event bus interface.
type Bus interface {
	Publisher
	Subscribe(Subscriber)
	Unsubscribe(subscriberID string)
}
