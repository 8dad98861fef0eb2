package vesting_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/houstonswap/launchpad/clock"
	"github.com/houstonswap/launchpad/core/events"
	"github.com/houstonswap/launchpad/core/types"
	"github.com/houstonswap/launchpad/ledger"
	"github.com/houstonswap/launchpad/native/vesting"
)

const oneMonth = uint64(365*24*3600) / 12
const tokenUnit = uint64(1e8)

func newTestAddress(fill byte) types.Address {
	var addr types.Address
	for i := range addr {
		addr[i] = fill
	}
	return addr
}

func newTestEngine(t *testing.T) (*vesting.Engine, *clock.Fixed, vesting.MintAuthority, types.Address, *ledger.MemLedger) {
	t.Helper()
	admin := newTestAddress(0xAA)
	led := ledger.NewMemLedger()
	mintCap, _, _, err := led.Initialize(admin, "Houston Token", "HOU", 8, true)
	require.NoError(t, err)

	clk := &clock.Fixed{Seconds: 1_000_000}
	engine := vesting.NewEngine(admin, "HOU", led, clk, events.NoopEmitter{})
	require.NoError(t, engine.InitializeAllocation(admin))
	return engine, clk, vesting.NewMintAuthority(mintCap), admin, led
}

func TestInitializeAllocationIsOneShot(t *testing.T) {
	engine, _, _, admin, _ := newTestEngine(t)
	err := engine.InitializeAllocation(admin)
	require.ErrorIs(t, err, vesting.ErrAllocationAlreadyInit)
}

func TestLaunchpadFullClaim(t *testing.T) {
	engine, _, cap, admin, led := newTestEngine(t)
	alice := newTestAddress(0x01)

	pending, err := engine.PendingClaim(vesting.PoolLaunchpad)
	require.NoError(t, err)
	require.Equal(t, uint64(20_000_000)*tokenUnit, pending)

	require.NoError(t, engine.Claim(admin, vesting.PoolLaunchpad, 1000, alice, cap))
	bal, err := led.Balance("HOU", alice)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), bal)

	remaining, err := engine.PendingClaim(vesting.PoolLaunchpad)
	require.NoError(t, err)
	require.Equal(t, pending-1000, remaining)

	require.NoError(t, engine.Claim(admin, vesting.PoolLaunchpad, 0, alice, cap))
	bal, err = led.Balance("HOU", alice)
	require.NoError(t, err)
	require.Equal(t, pending, bal)

	err = engine.Claim(admin, vesting.PoolLaunchpad, 1, alice, cap)
	require.ErrorIs(t, err, vesting.ErrPendingAmountNotEnough)
}

func TestTeamCliffAndVesting(t *testing.T) {
	engine, clk, cap, admin, led := newTestEngine(t)
	alice := newTestAddress(0x02)

	pending, err := engine.PendingClaim(vesting.PoolTeam)
	require.NoError(t, err)
	require.Zero(t, pending)

	clk.Advance(6 * oneMonth)
	pending, err = engine.PendingClaim(vesting.PoolTeam)
	require.NoError(t, err)
	require.Equal(t, uint64(25_000_000)*tokenUnit, pending)

	require.NoError(t, engine.Claim(admin, vesting.PoolTeam, 0, alice, cap))
	bal, err := led.Balance("HOU", alice)
	require.NoError(t, err)
	require.Equal(t, uint64(25_000_000)*tokenUnit, bal)

	clk.Advance(oneMonth)
	pending, err = engine.PendingClaim(vesting.PoolTeam)
	require.NoError(t, err)
	require.Equal(t, uint64(225_000_000)*tokenUnit/36, pending)
}

func TestEcosystemImmediateTGEAndFullVest(t *testing.T) {
	engine, clk, cap, admin, led := newTestEngine(t)
	alice := newTestAddress(0x03)

	pending, err := engine.PendingClaim(vesting.PoolEcosystem)
	require.NoError(t, err)
	require.Equal(t, uint64(13_000_000)*tokenUnit, pending)
	require.NoError(t, engine.Claim(admin, vesting.PoolEcosystem, 0, alice, cap))

	clk.Advance(24*oneMonth + 1)
	pending, err = engine.PendingClaim(vesting.PoolEcosystem)
	require.NoError(t, err)
	require.Equal(t, uint64(260_000_000)*tokenUnit-uint64(13_000_000)*tokenUnit, pending)

	bal, err := led.Balance("HOU", alice)
	require.NoError(t, err)
	require.Equal(t, uint64(13_000_000)*tokenUnit, bal)
}

func TestMintedNeverExceedsMax(t *testing.T) {
	engine, clk, cap, admin, led := newTestEngine(t)
	alice := newTestAddress(0x04)

	clk.Advance(100 * 24 * oneMonth)
	for _, pool := range []vesting.PoolID{vesting.PoolEcosystem, vesting.PoolTeam, vesting.PoolAdvisor, vesting.PoolLaunchpad} {
		pending, err := engine.PendingClaim(pool)
		require.NoError(t, err)
		require.NoError(t, engine.Claim(admin, pool, pending, alice, cap))
		remaining, err := engine.PendingClaim(pool)
		require.NoError(t, err)
		require.Zero(t, remaining)
	}
	bal, err := led.Balance("HOU", alice)
	require.NoError(t, err)
	require.Equal(t, uint64(260_000_000+250_000_000+20_000_000+20_000_000)*tokenUnit, bal)
}
