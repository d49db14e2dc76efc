package service

import "context"

// ─────────────────────────────────────────────────────────────
// EventEmitter — decouples services from the host surface
// ─────────────────────────────────────────────────────────────

// EventEmitter is an interface for notifying the host (AR scene shell,
// CLI, MCP client) about pipeline events: catalog changes, ingest
// completion, rendering warnings. Services receive this interface
// instead of a concrete host, which makes them independently testable
// with a mock emitter.
type EventEmitter interface {
	Emit(ctx context.Context, event string, data any)
}

// NoopEmitter discards all events. Useful for one-shot CLI commands.
type NoopEmitter struct{}

func (NoopEmitter) Emit(context.Context, string, any) {}

// MockEmitter is a test-friendly EventEmitter that records all calls.
type MockEmitter struct {
	Events []EmittedEvent
}

// EmittedEvent holds a single recorded emission for test assertions.
type EmittedEvent struct {
	Event string
	Data  any
}

func (m *MockEmitter) Emit(_ context.Context, event string, data any) {
	m.Events = append(m.Events, EmittedEvent{Event: event, Data: data})
}
