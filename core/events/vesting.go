package events

import (
	"strconv"

	"github.com/houstonswap/launchpad/core/types"
)

// TypeVestingClaim is emitted whenever an allocation tranche is claimed
// (spec §6.2, VestingEvent).
const TypeVestingClaim = "vesting.claim"

// VestingClaim captures a single claim against an allocation tranche.
type VestingClaim struct {
	PoolID uint64
	Amount uint64
	To     types.Address
}

// EventType implements Event.
func (VestingClaim) EventType() string { return TypeVestingClaim }

// Event implements Event.
func (e VestingClaim) Event() *types.Event {
	return &types.Event{
		Type: TypeVestingClaim,
		Attributes: map[string]string{
			"correlationId": newCorrelationID(),
			"poolId":        strconv.FormatUint(e.PoolID, 10),
			"amount":        formatAmount(e.Amount),
			"to":            e.To.String(),
		},
	}
}
