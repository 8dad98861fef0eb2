// Package clock provides the monotone wall-clock collaborator the core
// depends on (spec §1, "Clock"), following the teacher's convention of
// injecting a now() function into an engine (native/escrow.Engine.SetNowFunc)
// rather than calling time.Now() directly, so tests can drive deterministic
// timelines.
package clock

import "time"

// Clock exposes the current wall-clock time in seconds, the only primitive
// the core requires (spec §1: "a monotone wall-clock exposing now_seconds()").
type Clock interface {
	NowSeconds() uint64
}

// System is a Clock backed by the real wall clock.
type System struct{}

// NowSeconds implements Clock.
func (System) NowSeconds() uint64 {
	return uint64(time.Now().Unix())
}

// Fixed is a Clock that always reports a caller-controlled time, used by
// tests to drive the lifecycle state machines in native/supply,
// native/vesting and native/ido deterministically.
type Fixed struct {
	Seconds uint64
}

// NowSeconds implements Clock.
func (f *Fixed) NowSeconds() uint64 {
	return f.Seconds
}

// Advance moves the fixed clock forward by delta seconds.
func (f *Fixed) Advance(delta uint64) {
	f.Seconds += delta
}
