// Package supply implements the fixed-cap mint controller and linear mining
// emission schedule (spec §3.1, §4.1). It follows the teacher's
// native/escrow engine shape: an Engine that holds no ledger state of its own
// beyond the in-memory SupplyInfo it needs to reconcile, and capability
// witnesses gating the privileged entry points.
package supply

import "github.com/houstonswap/launchpad/core/types"

// Numeric constants fixed by spec §6.5.
const (
	HouDecimals  = 8
	HouName      = "Houston Token"
	HouSymbol    = "HOU"
	HouMaxSupply = uint64(1_000_000_000) * 1e8 // 10^9 * 10^8 base units

	// MiningCap is the absolute cap on cumulative mining emission.
	MiningCap = uint64(450_000_000) * 1e8 // 4.5*10^8 * 10^8 base units

	threeYearsSeconds = uint64(3 * 365 * 24 * 3600)
	// MiningRatePerSec is the fixed linear emission rate, cap/(3 years).
	MiningRatePerSec = MiningCap / threeYearsSeconds
)

// SupplyInfo is the singleton mining-emission ledger kept per admin address
// (spec §3.1).
type SupplyInfo struct {
	Max          uint64
	SupplyPerSec uint64
	AccSupply    uint64
	LastSupplyTs uint64
	TotalMinted  uint64
}

// MiningCapability is an unforgeable witness authorizing Engine.Mint.
// Following spec §9's guidance for languages without linear types, values
// are only constructible via Engine.AuthorizeMining, which gates issuance on
// caller identity; the unexported field prevents a caller from fabricating
// one directly.
type MiningCapability struct{ authorized bool }

// BurningCapability is an unforgeable witness authorizing Engine.Burn, with
// the same issuance discipline as MiningCapability.
type BurningCapability struct{ authorized bool }

// Caps names the admin address that HOU's ledger capabilities are bound to
// at coin initialization (spec §3.1). It does not hold the capabilities:
// Engine keeps the mint and burn capabilities itself and discards the freeze
// capability.
type Caps struct {
	Admin types.Address
}
