package ports

import "context"

// Publisher delivers JSON change events to a named queue, at-least-once.
// Callers treat publishing as fire-and-forget: a delivery failure is
// logged and never rolls back the mutation that produced the event.
type Publisher interface {
	Publish(ctx context.Context, queue string, body []byte) error
}
