package events

import (
	"github.com/houstonswap/launchpad/core/types"
)

// Event types emitted by the IDO engine (spec §6.2).
const (
	TypePoolCreated     = "ido.pool_created"
	TypeDeposit         = "ido.deposit"
	TypeClaim           = "ido.claim"
	TypeWithdrawPayment = "ido.withdraw_payment"
)

// PoolCreated is emitted once, at create_launch.
type PoolCreated struct {
	Offered            types.AssetID
	TotalDistributeAmt uint64
	MaxRaised          uint64
	SalePrice          string // decimal string rendering of the u128 sale price
}

// EventType implements Event.
func (PoolCreated) EventType() string { return TypePoolCreated }

// Event implements Event.
func (e PoolCreated) Event() *types.Event {
	return &types.Event{
		Type: TypePoolCreated,
		Attributes: map[string]string{
			"correlationId":      newCorrelationID(),
			"offered":            string(e.Offered),
			"totalDistributeAmt": formatAmount(e.TotalDistributeAmt),
			"maxRaised":          formatAmount(e.MaxRaised),
			"salePrice":          e.SalePrice,
		},
	}
}

// Deposit is emitted on every successful deposit, public or capability-gated.
type Deposit struct {
	Offered types.AssetID
	User    types.Address
	Amount  uint64
	Payment types.AssetID
}

// EventType implements Event.
func (Deposit) EventType() string { return TypeDeposit }

// Event implements Event.
func (e Deposit) Event() *types.Event {
	return &types.Event{
		Type: TypeDeposit,
		Attributes: map[string]string{
			"correlationId": newCorrelationID(),
			"offered":       string(e.Offered),
			"user":          e.User.String(),
			"amount":        formatAmount(e.Amount),
			"paymentCoin":   string(e.Payment),
		},
	}
}

// Claim is emitted whenever a user's vesting schedule releases a non-zero
// amount of the offered token.
type Claim struct {
	Offered types.AssetID
	User    types.Address
	Claimed uint64
}

// EventType implements Event.
func (Claim) EventType() string { return TypeClaim }

// Event implements Event.
func (e Claim) Event() *types.Event {
	return &types.Event{
		Type: TypeClaim,
		Attributes: map[string]string{
			"correlationId": newCorrelationID(),
			"offered":       string(e.Offered),
			"user":          e.User.String(),
			"claimed":       formatAmount(e.Claimed),
		},
	}
}

// WithdrawPayment is emitted when the treasury withdraws escrowed payment.
type WithdrawPayment struct {
	Offered types.AssetID
	To      types.Address
	Amount  uint64
	Payment types.AssetID
}

// EventType implements Event.
func (WithdrawPayment) EventType() string { return TypeWithdrawPayment }

// Event implements Event.
func (e WithdrawPayment) Event() *types.Event {
	return &types.Event{
		Type: TypeWithdrawPayment,
		Attributes: map[string]string{
			"correlationId": newCorrelationID(),
			"offered":       string(e.Offered),
			"to":            e.To.String(),
			"amount":        formatAmount(e.Amount),
			"paymentCoin":   string(e.Payment),
		},
	}
}
