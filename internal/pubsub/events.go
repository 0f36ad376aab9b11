// Package pubsub provides a generic publish/subscribe event system used for
// log fan-out and invocation activity.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the type of event being published.
type EventType string

const (
	// CreatedEvent marks a new item, e.g. a log entry.
	CreatedEvent EventType = "created"
	// DispatchedEvent marks a command handed to the host.
	DispatchedEvent EventType = "dispatched"
	// SettledEvent marks a host invocation that resolved or failed.
	SettledEvent EventType = "settled"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
