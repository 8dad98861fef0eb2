package supply_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/houstonswap/launchpad/clock"
	"github.com/houstonswap/launchpad/core/events"
	"github.com/houstonswap/launchpad/core/types"
	"github.com/houstonswap/launchpad/ledger"
	"github.com/houstonswap/launchpad/native/supply"
)

func newTestAddress(fill byte) types.Address {
	var addr types.Address
	for i := range addr {
		addr[i] = fill
	}
	return addr
}

func newTestEngine(t *testing.T) (*supply.Engine, *ledger.MemLedger, *clock.Fixed, *events.RecordingEmitter, types.Address) {
	t.Helper()
	admin := newTestAddress(0xAA)
	led := ledger.NewMemLedger()
	clk := &clock.Fixed{Seconds: 1_000_000}
	rec := &events.RecordingEmitter{}
	engine := supply.NewEngine(admin, led, clk, rec)
	require.NoError(t, engine.InitializeCoin(admin))
	require.NoError(t, engine.InitializeMining(admin))
	return engine, led, clk, rec, admin
}

func TestInitializeIsIdempotent(t *testing.T) {
	engine, _, _, _, admin := newTestEngine(t)
	require.NoError(t, engine.InitializeCoin(admin))
	require.NoError(t, engine.InitializeMining(admin))
}

func TestInitializeRejectsNonAdmin(t *testing.T) {
	engine, _, _, _, _ := newTestEngine(t)
	stranger := newTestAddress(0x01)
	err := engine.InitializeCoin(stranger)
	require.ErrorIs(t, err, supply.ErrNotOwner)
}

func TestPendingSupplyAccruesLinearly(t *testing.T) {
	engine, _, clk, _, _ := newTestEngine(t)
	clk.Advance(10)
	pending, err := engine.PendingSupply()
	require.NoError(t, err)
	require.Equal(t, 10*supply.MiningRatePerSec, pending)
}

func TestPendingSupplyClampsToCap(t *testing.T) {
	engine, _, clk, _, admin := newTestEngine(t)
	cap, err := engine.AuthorizeMining(admin)
	require.NoError(t, err)

	clk.Advance(3 * 365 * 24 * 3600 * 10) // far past the 3 year schedule
	pending, err := engine.PendingSupply()
	require.NoError(t, err)
	require.LessOrEqual(t, pending, supply.MiningCap)

	coin, err := engine.Mint(cap, pending)
	require.NoError(t, err)
	require.Equal(t, pending, coin.Amount)

	// A second mint of any nonzero amount must fail: total minted is at cap.
	_, err = engine.Mint(cap, 1)
	require.ErrorIs(t, err, supply.ErrMaxOut)
}

func TestMintRejectsForgedCapability(t *testing.T) {
	engine, _, clk, _, _ := newTestEngine(t)
	clk.Advance(10)
	var forged supply.MiningCapability
	_, err := engine.Mint(forged, 1)
	require.Error(t, err)
	require.False(t, errors.Is(err, supply.ErrMaxOut))
}

func TestMintRejectsAmountAboveAccrued(t *testing.T) {
	engine, _, clk, _, admin := newTestEngine(t)
	cap, err := engine.AuthorizeMining(admin)
	require.NoError(t, err)
	clk.Advance(1)
	_, err = engine.Mint(cap, supply.MiningRatePerSec*2)
	require.ErrorIs(t, err, supply.ErrPendingAmountNotEnough)
}

func TestManualBurnEmitsEvent(t *testing.T) {
	engine, led, clk, rec, admin := newTestEngine(t)
	mintCap, err := engine.AuthorizeMining(admin)
	require.NoError(t, err)
	clk.Advance(10)
	coin, err := engine.Mint(mintCap, 5*supply.MiningRatePerSec)
	require.NoError(t, err)
	require.NoError(t, led.Deposit(admin, coin))

	require.NoError(t, engine.ManualBurn(admin, coin.Amount))

	bal, err := led.Balance(types.AssetID(supply.HouSymbol), admin)
	require.NoError(t, err)
	require.Zero(t, bal)

	require.Len(t, rec.Events, 1)
	require.Equal(t, events.TypeManualBurn, rec.Events[0].EventType())
}

func TestTotalMintedNeverExceedsMax(t *testing.T) {
	engine, _, clk, _, admin := newTestEngine(t)
	cap, err := engine.AuthorizeMining(admin)
	require.NoError(t, err)

	var minted uint64
	for i := 0; i < 5; i++ {
		clk.Advance(30 * 24 * 3600)
		pending, err := engine.PendingSupply()
		require.NoError(t, err)
		coin, err := engine.Mint(cap, pending)
		require.NoError(t, err)
		minted += coin.Amount
		require.LessOrEqual(t, minted, supply.MiningCap)
	}
}
