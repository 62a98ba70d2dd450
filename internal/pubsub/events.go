// Package pubsub provides a generic publish/subscribe event system.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the type of event being published.
type EventType string

const (
	// StepStartedEvent marks the beginning of a publish pipeline step.
	StepStartedEvent EventType = "step_started"
	// StepFinishedEvent marks the successful end of a publish pipeline step.
	StepFinishedEvent EventType = "step_finished"
	// WarningEvent carries a non-fatal condition the operator should see.
	WarningEvent EventType = "warning"
	// LogEvent carries a formatted log line.
	LogEvent EventType = "log"
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
