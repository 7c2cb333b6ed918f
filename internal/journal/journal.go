// Package journal defines a durable, append-only record of every change
// event this service hands to the message broker.
//
// The broker is fire-and-forget: a publish that fails is logged and
// dropped. The journal keeps a local copy of what was (or should have
// been) published so an operator can audit or replay events, and
// correlate each one with its distributed trace via the trace_id column.
package journal

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Entry is a single journaled event.
type Entry struct {
	// Queue is the logical topic the event was published to
	// (menu_updates or order_updates).
	Queue string

	// Action is the event's action field (order_received, menu_updated, ...).
	Action string

	// EntityID is the id of the order or menu the event concerns.
	EntityID string

	// Payload is the exact JSON body handed to the publisher.
	Payload string

	// TraceID and SpanID identify the request that produced the event.
	// Empty when no span was active (e.g. in unit tests).
	TraceID string
	SpanID  string

	// CreatedAt is the wall-clock time the entry was written.
	CreatedAt time.Time
}

// Repository persists journal entries. Append-only: each call adds a row.
// Saving is best-effort from the caller's perspective, like publishing.
type Repository interface {
	Save(ctx context.Context, e *Entry) error
}

// NewEntry builds an Entry with trace identifiers extracted from the
// active OpenTelemetry span in ctx, if any.
func NewEntry(ctx context.Context, queue, action, entityID, payload string) *Entry {
	e := &Entry{
		Queue:     queue,
		Action:    action,
		EntityID:  entityID,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}

	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		e.TraceID = sc.TraceID().String()
		e.SpanID = sc.SpanID().String()
	}
	return e
}
