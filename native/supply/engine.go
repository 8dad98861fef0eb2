package supply

import (
	"sync"

	"github.com/houstonswap/launchpad/clock"
	"github.com/houstonswap/launchpad/core/events"
	"github.com/houstonswap/launchpad/core/types"
	"github.com/houstonswap/launchpad/ledger"
)

// Engine administers the HOU mint cap and mining emission schedule (spec
// §4.1). One Engine instance owns the SupplyInfo singleton for a single
// admin address; the caller is responsible for keeping at most one Engine
// per admin, exactly as spec §5 requires ("one mutex per Pool<L>" extended
// here to one mutex per admin's SupplyInfo).
type Engine struct {
	mu sync.Mutex

	ledger  ledger.Ledger
	clock   clock.Clock
	emitter events.Emitter

	admin types.Address
	asset types.AssetID

	caps       *ledger.MintCap
	burnCap    *ledger.BurnCap
	supplyInfo *SupplyInfo
}

// NewEngine constructs a supply controller engine bound to admin, backed by
// led and clk. emitter may be nil, in which case events are discarded,
// matching the teacher's native/escrow.NewEngine default.
func NewEngine(admin types.Address, led ledger.Ledger, clk clock.Clock, emitter events.Emitter) *Engine {
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	return &Engine{
		ledger:  led,
		clock:   clk,
		emitter: emitter,
		admin:   admin,
		asset:   types.AssetID(HouSymbol),
	}
}

func (e *Engine) emit(ev events.Event) {
	if e.emitter != nil && ev != nil {
		e.emitter.Emit(ev)
	}
}

func (e *Engine) assertAdmin(caller types.Address) error {
	if caller != e.admin {
		return ErrNotOwner
	}
	return nil
}

// InitializeCoin idempotently registers HOU with the ledger at the fixed
// decimals/name/symbol (spec §4.1, initialize_coin).
func (e *Engine) InitializeCoin(admin types.Address) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.assertAdmin(admin); err != nil {
		return err
	}
	if e.ledger.IsInitialized(e.asset) {
		return nil
	}
	mint, _, burn, err := e.ledger.Initialize(admin, HouName, HouSymbol, HouDecimals, true)
	if err != nil {
		return err
	}
	e.caps = &mint
	e.burnCap = &burn
	return nil
}

// InitializeMining idempotently creates SupplyInfo for admin (spec §4.1,
// initialize_mining). It requires admin to already possess the ledger caps
// (InitializeCoin must have run first).
func (e *Engine) InitializeMining(admin types.Address) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.assertAdmin(admin); err != nil {
		return err
	}
	if e.caps == nil {
		return ErrSupplyInfoMissing
	}
	if e.supplyInfo != nil {
		return nil
	}
	e.supplyInfo = &SupplyInfo{
		Max:          MiningCap,
		SupplyPerSec: MiningRatePerSec,
		AccSupply:    0,
		LastSupplyTs: e.clock.NowSeconds(),
	}
	return nil
}

// PendingSupply is a pure read of the base units accrued but not yet minted,
// clamped so total minted never exceeds Max (spec §4.1, pending_supply).
func (e *Engine) PendingSupply() (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pendingSupplyLocked()
}

func (e *Engine) pendingSupplyLocked() (uint64, error) {
	if e.supplyInfo == nil {
		return 0, ErrSupplyInfoMissing
	}
	info := e.supplyInfo
	now := e.clock.NowSeconds()
	elapsed := now - info.LastSupplyTs
	linear := info.SupplyPerSec * elapsed
	pending := info.AccSupply + linear
	if info.TotalMinted+pending > info.Max {
		pending = info.Max - info.TotalMinted
	}
	return pending, nil
}

// AuthorizeMining issues a MiningCapability to admin, requiring both the
// ledger caps and SupplyInfo to be present (spec §4.1, authorize_mining).
func (e *Engine) AuthorizeMining(admin types.Address) (MiningCapability, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.assertAdmin(admin); err != nil {
		return MiningCapability{}, err
	}
	if e.caps == nil || e.supplyInfo == nil {
		return MiningCapability{}, ErrSupplyInfoMissing
	}
	return MiningCapability{authorized: true}, nil
}

// MintAuthorityFor hands admin the raw ledger.MintCap backing this
// controller's HOU asset, so it can be passed on to a collaborator engine
// (e.g. native/vesting.NewMintAuthority) that mints the same asset under its
// own admin gate. It requires InitializeCoin to have already run.
func (e *Engine) MintAuthorityFor(admin types.Address) (ledger.MintCap, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.assertAdmin(admin); err != nil {
		return ledger.MintCap{}, err
	}
	if e.caps == nil {
		return ledger.MintCap{}, ErrSupplyInfoMissing
	}
	return *e.caps, nil
}

// AuthorizeBurning issues a BurningCapability to admin under the same
// preconditions as AuthorizeMining (spec §4.1, authorize_burning).
func (e *Engine) AuthorizeBurning(admin types.Address) (BurningCapability, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.assertAdmin(admin); err != nil {
		return BurningCapability{}, err
	}
	if e.caps == nil || e.supplyInfo == nil {
		return BurningCapability{}, ErrSupplyInfoMissing
	}
	return BurningCapability{authorized: true}, nil
}

// Mint produces exactly amount base units of HOU against the mining emission
// schedule, or fails without minting (spec §4.1, mint). The returned coin must be deposited by the
// caller; the engine never deposits on the caller's behalf.
func (e *Engine) Mint(cap MiningCapability, amount uint64) (types.Coin, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !cap.authorized {
		return types.Coin{}, errUnauthorizedCap
	}
	if e.supplyInfo == nil {
		return types.Coin{}, ErrSupplyInfoMissing
	}
	info := e.supplyInfo
	if info.TotalMinted+amount > info.Max {
		return types.Coin{}, ErrMaxOut
	}

	pending, err := e.pendingSupplyLocked()
	if err != nil {
		return types.Coin{}, err
	}
	info.AccSupply = pending
	info.LastSupplyTs = e.clock.NowSeconds()

	if amount == 0 {
		return e.ledger.Zero(e.asset), nil
	}
	if amount > info.AccSupply {
		return types.Coin{}, ErrPendingAmountNotEnough
	}
	info.AccSupply -= amount
	info.TotalMinted += amount

	coin, err := e.ledger.Mint(e.asset, amount, *e.caps)
	if err != nil {
		return types.Coin{}, err
	}
	return coin, nil
}

// Burn destroys coin, backed by cap's authorization (spec §4.1, burn).
func (e *Engine) Burn(cap BurningCapability, coin types.Coin) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !cap.authorized {
		return errUnauthorizedCap
	}
	if e.burnCap == nil {
		return ErrSupplyInfoMissing
	}
	return e.ledger.Burn(coin, *e.burnCap)
}

// ManualBurn burns amount of admin's own HOU balance (spec §4.1,
// manual_burn).
func (e *Engine) ManualBurn(admin types.Address, amount uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.assertAdmin(admin); err != nil {
		return err
	}
	if e.burnCap == nil {
		return ErrSupplyInfoMissing
	}
	coin, err := e.ledger.Withdraw(e.asset, admin, amount)
	if err != nil {
		return err
	}
	if err := e.ledger.Burn(coin, *e.burnCap); err != nil {
		return err
	}
	e.emit(events.ManualBurn{Admin: admin, Amount: amount})
	return nil
}
