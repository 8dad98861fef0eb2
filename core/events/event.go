// Package events defines the structured audit records emitted by the core
// (spec §6.2) and the emitter interface consumers register against. It
// mirrors the teacher's core/events package: one Go type per event record,
// each rendering itself into the wire-level core/types.Event.
package events

import "github.com/houstonswap/launchpad/core/types"

// Event is anything that can describe itself as a core/types.Event for
// emission to the audit sink.
type Event interface {
	EventType() string
	Event() *types.Event
}

// Emitter broadcasts events to downstream subscribers (indexers, RPC
// streams). The core never blocks on delivery.
type Emitter interface {
	Emit(Event)
}

// NoopEmitter discards every event. It is the default emitter for engines
// that have not been wired to a real sink, matching the teacher's
// core/events.NoopEmitter.
type NoopEmitter struct{}

// Emit implements Emitter.
func (NoopEmitter) Emit(Event) {}

// FuncEmitter adapts a plain function to the Emitter interface, useful for
// tests that want to capture emitted events without a full sink.
type FuncEmitter func(Event)

// Emit implements Emitter.
func (f FuncEmitter) Emit(e Event) {
	if f != nil {
		f(e)
	}
}

// RecordingEmitter accumulates every event it receives, in order. It is the
// test double used by the native/* engine test suites, following the
// teacher's native/escrow/engine_test.go convention of a stand-in emitter
// rather than asserting against a real event bus.
type RecordingEmitter struct {
	Events []Event
}

// Emit implements Emitter.
func (r *RecordingEmitter) Emit(e Event) {
	if r == nil {
		return
	}
	r.Events = append(r.Events, e)
}
