// Package vesting implements the fixed-tranche allocation schedule (spec
// §3.2, §4.2): TGE-plus-cliff-plus-linear-vesting claims against a
// one-shot-initialized set of named tranches. It follows the same engine
// shape as native/supply.
package vesting

import "github.com/houstonswap/launchpad/core/types"

// oneMonth is 365*24*3600/12 seconds, per spec §6.5.
const oneMonth = uint64(365*24*3600) / 12

const tokenUnit = uint64(1e8)

// PoolID indexes the four fixed tranches in AllocationStore.
type PoolID int

// The four tranches, in the fixed order spec §4.2 requires.
const (
	PoolEcosystem PoolID = iota
	PoolTeam
	PoolAdvisor
	PoolLaunchpad
	poolCount
)

// Allocation is one named tranche's schedule and mint watermark (spec
// §3.2).
type Allocation struct {
	Max           uint64
	Minted        uint64
	TGEMint       uint64
	CliffAmount   uint64
	CliffStart    uint64
	CliffPeriod   uint64
	VestingAmount uint64
	VestingStart  uint64
	VestingPeriod uint64
}

// AllocationStore holds the four tranches for one admin address, indexed by
// PoolID (spec §3.2).
type AllocationStore struct {
	Pools [poolCount]Allocation
}

// defaultTranches builds the four fixed tranches per spec §4.2's table,
// anchored at now.
func defaultTranches(now uint64) [poolCount]Allocation {
	sixMonths := 6 * oneMonth
	return [poolCount]Allocation{
		PoolEcosystem: {
			Max:           260_000_000 * tokenUnit,
			TGEMint:       13_000_000 * tokenUnit, // 5% of 260M
			CliffAmount:   0,
			VestingAmount: 247_000_000 * tokenUnit, // remainder
			VestingStart:  now,
			VestingPeriod: 24 * oneMonth,
		},
		PoolTeam: {
			Max:           250_000_000 * tokenUnit,
			TGEMint:       0,
			CliffAmount:   25_000_000 * tokenUnit, // 10% of 250M
			CliffStart:    now,
			CliffPeriod:   sixMonths,
			VestingAmount: 225_000_000 * tokenUnit, // remainder
			VestingStart:  now + sixMonths,
			VestingPeriod: 36 * oneMonth,
		},
		PoolAdvisor: {
			Max:           20_000_000 * tokenUnit,
			TGEMint:       0,
			CliffAmount:   2_000_000 * tokenUnit, // 10% of 20M
			CliffStart:    now,
			CliffPeriod:   sixMonths,
			VestingAmount: 18_000_000 * tokenUnit, // remainder
			VestingStart:  now + sixMonths,
			VestingPeriod: 36 * oneMonth,
		},
		PoolLaunchpad: {
			Max:     20_000_000 * tokenUnit,
			TGEMint: 20_000_000 * tokenUnit, // 100%
		},
	}
}

// Caps mirrors native/supply.Caps: the admin address the vester is bound to.
type Caps struct {
	Admin types.Address
}
