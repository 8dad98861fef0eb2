package vesting

import (
	"sync"

	"github.com/houstonswap/launchpad/clock"
	"github.com/houstonswap/launchpad/core/events"
	"github.com/houstonswap/launchpad/core/types"
	"github.com/houstonswap/launchpad/ledger"
)

// Engine administers one admin's AllocationStore (spec §4.2), gating claims
// on admin identity and minting through the shared HOU mint capability the
// caller already holds.
type Engine struct {
	mu sync.Mutex

	ledger  ledger.Ledger
	clock   clock.Clock
	emitter events.Emitter

	admin types.Address
	asset types.AssetID

	store *AllocationStore
}

// NewEngine constructs an allocation vester bound to admin, minting the
// given asset (normally HOU) through led.
func NewEngine(admin types.Address, asset types.AssetID, led ledger.Ledger, clk clock.Clock, emitter events.Emitter) *Engine {
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	return &Engine{ledger: led, clock: clk, emitter: emitter, admin: admin, asset: asset}
}

func (e *Engine) assertAdmin(caller types.Address) error {
	if caller != e.admin {
		return ErrNotOwner
	}
	return nil
}

// InitializeAllocation populates the four fixed tranches anchored at the
// current time (spec §4.2, initialize_allocation). One-shot: fails
// ErrAllocationAlreadyInit on a second call.
func (e *Engine) InitializeAllocation(admin types.Address) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.assertAdmin(admin); err != nil {
		return err
	}
	if e.store != nil {
		return ErrAllocationAlreadyInit
	}
	now := e.clock.NowSeconds()
	tranches := defaultTranches(now)
	e.store = &AllocationStore{Pools: tranches}
	return nil
}

// PendingClaim is a pure read of the amount currently claimable from pool,
// clamped so minted+claimable never exceeds max (spec §4.2, pending_claim).
func (e *Engine) PendingClaim(pool PoolID) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pendingClaimLocked(pool)
}

func (e *Engine) pendingClaimLocked(pool PoolID) (uint64, error) {
	if e.store == nil {
		return 0, ErrNotInitialized
	}
	a := &e.store.Pools[pool]
	now := e.clock.NowSeconds()

	entitled := a.TGEMint
	if a.CliffAmount > 0 && now >= a.CliffStart+a.CliffPeriod {
		entitled += a.CliffAmount
	}
	if a.VestingAmount > 0 && now > a.VestingStart {
		elapsed := now - a.VestingStart
		if elapsed >= a.VestingPeriod {
			entitled += a.VestingAmount
		} else {
			entitled += vestedAmount(a.VestingAmount, elapsed, a.VestingPeriod)
		}
	}

	if entitled < a.Minted {
		return 0, nil
	}
	claimable := entitled - a.Minted
	if a.Minted+claimable > a.Max {
		claimable = a.Max - a.Minted
	}
	return claimable, nil
}

// Claim mints amount (or the full pending claim if amount == 0) from pool to
// to, admin-gated (spec §4.2, claim).
func (e *Engine) Claim(admin types.Address, pool PoolID, amount uint64, to types.Address, cap MintAuthority) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.assertAdmin(admin); err != nil {
		return err
	}
	if !cap.authorized {
		return ErrNotOwner
	}
	pending, err := e.pendingClaimLocked(pool)
	if err != nil {
		return err
	}
	if amount > pending {
		return ErrPendingAmountNotEnough
	}
	if amount == 0 {
		amount = pending
	}
	if amount == 0 {
		return nil
	}

	a := &e.store.Pools[pool]
	a.Minted += amount

	coin, err := e.ledger.Mint(e.asset, amount, cap.mintCap)
	if err != nil {
		return err
	}
	if err := e.ledger.Deposit(to, coin); err != nil {
		return err
	}

	e.emitter.Emit(events.VestingClaim{PoolID: uint64(pool), Amount: amount, To: to})
	return nil
}

// MintAuthority carries the ledger mint capability the vester spends on
// behalf of admin, following the same admin-issued-witness pattern as
// native/supply.MiningCapability.
type MintAuthority struct {
	authorized bool
	mintCap    ledger.MintCap
}

// NewMintAuthority wraps a ledger.MintCap already obtained by admin from the
// supply controller's InitializeCoin/Initialize call, authorizing this
// vester to mint against it.
func NewMintAuthority(mintCap ledger.MintCap) MintAuthority {
	return MintAuthority{authorized: true, mintCap: mintCap}
}
