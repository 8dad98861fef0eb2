package events

import (
	"github.com/houstonswap/launchpad/core/types"
)

// TypeManualBurn is emitted whenever the supply admin manually burns HOU from
// their own balance (spec §6.2, ManualBurnEvent).
const TypeManualBurn = "supply.manual_burn"

// ManualBurn captures an admin-initiated burn of previously minted HOU.
type ManualBurn struct {
	Admin  types.Address
	Amount uint64
}

// EventType implements Event.
func (ManualBurn) EventType() string { return TypeManualBurn }

// Event implements Event.
func (e ManualBurn) Event() *types.Event {
	return &types.Event{
		Type: TypeManualBurn,
		Attributes: map[string]string{
			"correlationId": newCorrelationID(),
			"admin":         e.Admin.String(),
			"amount":        formatAmount(e.Amount),
		},
	}
}
