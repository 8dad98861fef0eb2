// Package ledger specifies the fungible-asset contract the core depends on
// (spec §6.1) and provides a reference in-memory implementation for tests
// and the demo binary. A production embedder is expected to supply its own
// Ledger backed by a real balance store; the accounting core in native/*
// never assumes anything about Ledger beyond this interface.
package ledger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/houstonswap/launchpad/core/types"
)

// ErrInsufficientBalance is returned by Withdraw when the signer's balance is
// less than the requested amount.
var ErrInsufficientBalance = errors.New("ledger: insufficient balance")

// ErrNotInitialized is returned by any asset operation performed before
// Initialize has registered the asset.
var ErrNotInitialized = errors.New("ledger: asset not initialized")

// ErrAlreadyInitialized is returned by Initialize when the asset is already
// registered.
var ErrAlreadyInitialized = errors.New("ledger: asset already initialized")

// ErrNotRegistered is the error a Ledger reports for an address that has
// never called Register for the asset. MemLedger never returns it: its
// Deposit registers the address implicitly and its Balance reports zero.
var ErrNotRegistered = errors.New("ledger: address not registered for asset")

// MintCap, FreezeCap and BurnCap are the capability triple returned by
// Initialize (spec §6.1). Possession, not a runtime check, authorizes the
// corresponding operation — mirroring the teacher's capability-witness
// pattern for privileged operations.
type MintCap struct{ asset types.AssetID }

// FreezeCap authorizes freezing an account's balance for an asset. The core
// never exercises freezing itself; it is carried only because the Ledger
// contract issues it alongside Mint/Burn at initialization.
type FreezeCap struct{ asset types.AssetID }

// BurnCap authorizes Burn for the asset it was issued against.
type BurnCap struct{ asset types.AssetID }

// Ledger is the external fungible-asset collaborator the core calls into
// (spec §6.1). Every method is keyed by an explicit AssetID rather than a
// phantom type parameter, per spec §9.
type Ledger interface {
	Initialize(admin types.Address, name, symbol string, decimals uint8, monitorSupply bool) (MintCap, FreezeCap, BurnCap, error)
	Mint(asset types.AssetID, amount uint64, cap MintCap) (types.Coin, error)
	Burn(coin types.Coin, cap BurnCap) error
	Withdraw(asset types.AssetID, signer types.Address, amount uint64) (types.Coin, error)
	Deposit(addr types.Address, coin types.Coin) error
	Balance(asset types.AssetID, addr types.Address) (uint64, error)
	Value(coin types.Coin) uint64
	Merge(dst *types.Coin, src types.Coin) error
	Extract(src *types.Coin, amount uint64) (types.Coin, error)
	Zero(asset types.AssetID) types.Coin
	Decimals(asset types.AssetID) (uint8, error)
	Supply(asset types.AssetID) (uint64, bool)
	IsInitialized(asset types.AssetID) bool
	IsRegistered(asset types.AssetID, addr types.Address) bool
	Register(asset types.AssetID, addr types.Address) error
}

type assetState struct {
	name          string
	symbol        string
	decimals      uint8
	monitorSupply bool
	supply        uint64
	balances      map[types.Address]uint64
	registered    map[types.Address]bool
}

// MemLedger is an in-memory reference Ledger implementation. It is not part
// of the accounting core; it exists so native/supply, native/vesting and
// native/ido can be exercised without a real balance store, the same role
// the teacher's native/escrow mockState plays in engine_test.go.
type MemLedger struct {
	mu     sync.Mutex
	assets map[types.AssetID]*assetState
}

// NewMemLedger constructs an empty reference ledger.
func NewMemLedger() *MemLedger {
	return &MemLedger{assets: make(map[types.AssetID]*assetState)}
}

func (l *MemLedger) state(asset types.AssetID) (*assetState, error) {
	st, ok := l.assets[asset]
	if !ok {
		return nil, ErrNotInitialized
	}
	return st, nil
}

// Initialize registers a new asset and returns its capability triple.
func (l *MemLedger) Initialize(admin types.Address, name, symbol string, decimals uint8, monitorSupply bool) (MintCap, FreezeCap, BurnCap, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	asset := types.AssetID(symbol)
	if _, ok := l.assets[asset]; ok {
		return MintCap{}, FreezeCap{}, BurnCap{}, ErrAlreadyInitialized
	}
	l.assets[asset] = &assetState{
		name:          name,
		symbol:        symbol,
		decimals:      decimals,
		monitorSupply: monitorSupply,
		balances:      make(map[types.Address]uint64),
		registered:    map[types.Address]bool{admin: true},
	}
	return MintCap{asset: asset}, FreezeCap{asset: asset}, BurnCap{asset: asset}, nil
}

// Mint produces a fresh coin, backed by cap's authorization for asset.
func (l *MemLedger) Mint(asset types.AssetID, amount uint64, cap MintCap) (types.Coin, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if cap.asset != asset {
		return types.Coin{}, fmt.Errorf("ledger: mint capability does not match asset %q", asset)
	}
	st, err := l.state(asset)
	if err != nil {
		return types.Coin{}, err
	}
	st.supply += amount
	return types.Coin{Asset: asset, Amount: amount}, nil
}

// Burn destroys a coin, backed by cap's authorization.
func (l *MemLedger) Burn(coin types.Coin, cap BurnCap) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if cap.asset != coin.Asset {
		return fmt.Errorf("ledger: burn capability does not match asset %q", coin.Asset)
	}
	st, err := l.state(coin.Asset)
	if err != nil {
		return err
	}
	if coin.Amount > st.supply {
		return fmt.Errorf("ledger: burn amount exceeds supply")
	}
	st.supply -= coin.Amount
	return nil
}

// Withdraw debits signer's balance and returns the withdrawn coin.
func (l *MemLedger) Withdraw(asset types.AssetID, signer types.Address, amount uint64) (types.Coin, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, err := l.state(asset)
	if err != nil {
		return types.Coin{}, err
	}
	if st.balances[signer] < amount {
		return types.Coin{}, ErrInsufficientBalance
	}
	st.balances[signer] -= amount
	return types.Coin{Asset: asset, Amount: amount}, nil
}

// Deposit credits addr's balance with coin.
func (l *MemLedger) Deposit(addr types.Address, coin types.Coin) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, err := l.state(coin.Asset)
	if err != nil {
		return err
	}
	if !st.registered[addr] {
		st.registered[addr] = true
	}
	st.balances[addr] += coin.Amount
	return nil
}

// Balance reports addr's balance of asset.
func (l *MemLedger) Balance(asset types.AssetID, addr types.Address) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, err := l.state(asset)
	if err != nil {
		return 0, err
	}
	return st.balances[addr], nil
}

// Value reports the amount carried by coin.
func (l *MemLedger) Value(coin types.Coin) uint64 { return coin.Amount }

// Merge adds src's value into dst, zeroing src's contribution.
func (l *MemLedger) Merge(dst *types.Coin, src types.Coin) error {
	if dst.Asset == "" {
		dst.Asset = src.Asset
	}
	if dst.Asset != src.Asset {
		return fmt.Errorf("ledger: cannot merge coins of different assets %q and %q", dst.Asset, src.Asset)
	}
	dst.Amount += src.Amount
	return nil
}

// Extract removes amount from src and returns it as a new coin.
func (l *MemLedger) Extract(src *types.Coin, amount uint64) (types.Coin, error) {
	if src.Amount < amount {
		return types.Coin{}, fmt.Errorf("ledger: extract amount exceeds coin value")
	}
	src.Amount -= amount
	return types.Coin{Asset: src.Asset, Amount: amount}, nil
}

// Zero returns a zero-value coin of asset.
func (l *MemLedger) Zero(asset types.AssetID) types.Coin {
	return types.Coin{Asset: asset, Amount: 0}
}

// Decimals reports the configured decimals for asset.
func (l *MemLedger) Decimals(asset types.AssetID) (uint8, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, err := l.state(asset)
	if err != nil {
		return 0, err
	}
	return st.decimals, nil
}

// Supply reports the live supply for asset, if it monitors supply.
func (l *MemLedger) Supply(asset types.AssetID) (uint64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, err := l.state(asset)
	if err != nil || !st.monitorSupply {
		return 0, false
	}
	return st.supply, true
}

// IsInitialized reports whether asset has been registered.
func (l *MemLedger) IsInitialized(asset types.AssetID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.assets[asset]
	return ok
}

// IsRegistered reports whether addr has an account entry for asset.
func (l *MemLedger) IsRegistered(asset types.AssetID, addr types.Address) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, err := l.state(asset)
	if err != nil {
		return false
	}
	return st.registered[addr]
}

// Register opens an account entry for addr under asset.
func (l *MemLedger) Register(asset types.AssetID, addr types.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, err := l.state(asset)
	if err != nil {
		return err
	}
	st.registered[addr] = true
	return nil
}
