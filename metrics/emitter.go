package metrics

import (
	"strconv"

	"github.com/houstonswap/launchpad/core/events"
)

// Observer adapts Metrics to the core's events.Emitter interface, so a
// single emitter wired into each engine both records metrics and forwards
// to whatever downstream sink the caller supplies (log, event bus, or a
// RecordingEmitter in tests).
type Observer struct {
	metrics *Metrics
	next    events.Emitter
}

// NewObserver wraps next with m, recording metrics before forwarding every
// event. next may be nil.
func NewObserver(m *Metrics, next events.Emitter) *Observer {
	return &Observer{metrics: m, next: next}
}

// Emit implements events.Emitter.
func (o *Observer) Emit(ev events.Event) {
	switch e := ev.(type) {
	case events.ManualBurn:
		o.metrics.ObserveManualBurn(e.Admin.String(), e.Amount)
	case events.VestingClaim:
		o.metrics.ObserveVestingClaim(strconv.FormatUint(e.PoolID, 10), e.Amount)
	case events.Deposit:
		o.metrics.ObserveIDODeposit(string(e.Offered), string(e.Payment), e.Amount)
	case events.Claim:
		o.metrics.ObserveIDOClaim(string(e.Offered), e.Claimed)
	case events.WithdrawPayment:
		o.metrics.ObserveIDOWithdrawal(string(e.Offered), string(e.Payment), e.Amount)
	}
	if o.next != nil {
		o.next.Emit(ev)
	}
}
