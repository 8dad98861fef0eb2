// Package ido implements the initial-offering engine (spec §3.3, §4.3): one
// sale per offered-token type, accepting deposits in one or more payment
// assets, computing entitlement under fixed-cap or overflow subscription
// modes, vesting the claim, refunding oversubscription, and letting the
// treasury withdraw unrefunded payment. It is grounded on the same engine
// shape as native/supply and native/vesting, sized up for the larger state
// machine per pool.
package ido

import (
	"github.com/holiman/uint256"

	"github.com/houstonswap/launchpad/core/types"
)

// PricePrecision and TGEPercentDenom are the fixed scale factors spec §6.5
// assigns.
const (
	PricePrecision  = uint64(1_000_000_000_000) // 10^12
	TGEPercentDenom = uint64(10_000)
)

// Pool is one sale for offered asset L, keyed by (admin address, L) in the
// Engine's pool map (spec §3.3).
type Pool struct {
	Admin    types.Address
	Treasury types.Address
	Offered  types.AssetID

	StartTime           uint64
	EndTime             uint64
	DistributeStartTime uint64

	SalePrice           uint256.Int // units: base_units(L) * PricePrecision / base_unit(P)
	TotalOfferAmount    uint64
	OfferCoins          uint64 // live escrow, decremented as users claim
	TotalSubscribedAmount uint64
	MaxRaised           uint64
	MaxRaisedPerUser    uint64

	TGEPercent      uint64
	VestingInterval uint64
	TotalVestingTime uint64

	AcceptedTokens  []types.AssetID
	DefaultDecimals uint8
}

// PaymentStore is the escrow of one accepted payment asset for a pool (spec
// §3.3).
type PaymentStore struct {
	Value     uint64
	Withdrawn bool
}

// UserInfo is one depositor's state within a pool (spec §3.3).
type UserInfo struct {
	SubscribedAmount uint64
	DepositAmounts   []uint64 // parallel to Pool.AcceptedTokens
	Entitled         uint64
	Claimed          uint64
}

// SubscribeCapability is an unforgeable witness letting its holder deposit
// without the per-user cap check (spec §3.3, §4.3.7). Following the same
// discipline as native/supply.MiningCapability, it is only constructible via
// Engine.RequestCap. It records no pool: DepositWithCap accepts it for any
// pool of the Engine that issued it.
type SubscribeCapability struct{ authorized bool }

func (s SubscribeCapability) isAuthorized() bool { return s.authorized }
