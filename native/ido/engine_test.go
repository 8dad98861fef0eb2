package ido_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/houstonswap/launchpad/clock"
	"github.com/houstonswap/launchpad/core/events"
	"github.com/houstonswap/launchpad/core/types"
	"github.com/houstonswap/launchpad/ledger"
	"github.com/houstonswap/launchpad/native/ido"
)

const oneMonth = uint64(2_628_000)

func newTestAddress(fill byte) types.Address {
	var addr types.Address
	for i := range addr {
		addr[i] = fill
	}
	return addr
}

type testFixture struct {
	engine      *ido.Engine
	ledger      *ledger.MemLedger
	clock       *clock.Fixed
	rec         *events.RecordingEmitter
	admin       types.Address
	treasury    types.Address
	usdtMintCap ledger.MintCap
}

func newFixture(t *testing.T, offerSupply uint64) *testFixture {
	t.Helper()
	admin := newTestAddress(0xAA)
	treasury := newTestAddress(0xBB)
	led := ledger.NewMemLedger()

	lMintCap, _, _, err := led.Initialize(admin, "Launch Token", "L", 8, true)
	require.NoError(t, err)
	usdtMintCap, _, _, err := led.Initialize(admin, "Tether", "USDT", 8, true)
	require.NoError(t, err)

	offerCoin, err := led.Mint("L", offerSupply, lMintCap)
	require.NoError(t, err)
	require.NoError(t, led.Deposit(admin, offerCoin))

	clk := &clock.Fixed{Seconds: 1_000_000}
	rec := &events.RecordingEmitter{}
	engine := ido.NewEngine(admin, led, clk, rec)
	return &testFixture{
		engine: engine, ledger: led, clock: clk, rec: rec,
		admin: admin, treasury: treasury, usdtMintCap: usdtMintCap,
	}
}

func (f *testFixture) seedUSDT(t *testing.T, user types.Address, amount uint64) {
	t.Helper()
	coin, err := f.ledger.Mint("USDT", amount, f.usdtMintCap)
	require.NoError(t, err)
	require.NoError(t, f.ledger.Deposit(user, coin))
}

func TestCreateLaunchRejectsBadTimeOrder(t *testing.T) {
	f := newFixture(t, 1_000_000_000000)
	price := uint256.NewInt(1_000_000_000000)
	err := f.engine.CreateLaunch(f.admin, f.treasury, "L", "USDT", 8, 100, 50, 200, 1_000_000_000000, price, 0, 0)
	require.ErrorIs(t, err, ido.ErrTimeOrder)
}

func TestCreateLaunchNormalizesFixedCapMaxRaised(t *testing.T) {
	f := newFixture(t, 1_000_000_000000)
	price := uint256.NewInt(1_000_000_000000) // 10^12, PRICE_PRECISION scale
	totalOffer := uint64(1_000_000_000000)    // 10^12
	err := f.engine.CreateLaunch(f.admin, f.treasury, "L", "USDT", 8,
		f.clock.NowSeconds()+10, f.clock.NowSeconds()+20, f.clock.NowSeconds()+30,
		totalOffer, price, 123, 0)
	require.NoError(t, err)
	require.Len(t, f.rec.Events, 1)

	// 10^12 * 10^12 / 10^12: the requested 123 is replaced by the cap at
	// which the full offer clears exactly at the sale price.
	created, ok := f.rec.Events[0].(events.PoolCreated)
	require.True(t, ok)
	require.Equal(t, uint64(1_000_000_000000), created.MaxRaised)
}

func TestFixedCapNoVestingSale(t *testing.T) {
	f := newFixture(t, 1_000_000_000000)
	alice := newTestAddress(0x01)

	price := uint256.NewInt(1_000_000_000000_000) // 10^15
	start := f.clock.NowSeconds() + 1
	end := start + 100
	distribute := end + 100
	err := f.engine.CreateLaunch(f.admin, f.treasury, "L", "USDT", 8, start, end, distribute,
		1_000_000_000000, price, 1_000_000_000, 1_000_000_000)
	require.NoError(t, err)

	f.seedUSDT(t, alice, 5_000_000_00000000)

	f.clock.Advance(2)
	subscribed, err := f.engine.Deposit(alice, "L", "USDT", 500_000_000)
	require.NoError(t, err)
	require.Equal(t, uint64(500_000_000), subscribed)

	f.clock.Advance(200)
	err = f.engine.Claim(alice, "L", "USDT")
	require.NoError(t, err)

	balL, err := f.ledger.Balance("L", alice)
	require.NoError(t, err)
	require.Equal(t, uint64(500_000_000_000), balL)

	balUSDT, err := f.ledger.Balance("USDT", alice)
	require.NoError(t, err)
	require.Equal(t, uint64(5_000_000_00000000-500_000_000), balUSDT)
}

func TestDoubleWithdrawFails(t *testing.T) {
	f := newFixture(t, 1_000_000_000000)
	price := uint256.NewInt(1_000_000_000000_000)
	start := f.clock.NowSeconds() + 1
	end := start + 10
	distribute := end + 10
	require.NoError(t, f.engine.CreateLaunch(f.admin, f.treasury, "L", "USDT", 8, start, end, distribute,
		1_000_000_000000, price, 1_000_000_000, 0))

	f.clock.Advance(20)
	_, err := f.engine.WithdrawPayment(f.treasury, "L", "USDT")
	require.ErrorIs(t, err, ido.ErrWithdrawZeroAmt)

	_, err = f.engine.WithdrawPayment(f.treasury, "L", "USDT")
	require.ErrorIs(t, err, ido.ErrWithdrawn)
}

func TestOverflowRefundConservation(t *testing.T) {
	f := newFixture(t, 1_000_000_000000)
	alice := newTestAddress(0x01)
	bob := newTestAddress(0x02)

	price := uint256.NewInt(1_000_000_000000_000)
	start := f.clock.NowSeconds() + 1
	end := start + 20
	distribute := end + 10
	require.NoError(t, f.engine.CreateLaunch(f.admin, f.treasury, "L", "USDT", 8, start, end, distribute,
		1_000_000_000000, price, 0, 3_000_000_000000))

	f.seedUSDT(t, alice, 1_000_000_000000)
	f.seedUSDT(t, bob, 1_000_000_000000)

	f.clock.Advance(2)
	_, err := f.engine.Deposit(alice, "L", "USDT", 1_000_000_000000)
	require.NoError(t, err)
	f.clock.Advance(10)
	_, err = f.engine.Deposit(bob, "L", "USDT", 1_000_000_000000)
	require.NoError(t, err)

	f.clock.Advance(100)
	require.NoError(t, f.engine.Claim(alice, "L", "USDT"))
	require.NoError(t, f.engine.Claim(bob, "L", "USDT"))

	claimedTotal := uint64(0)
	for _, addr := range []types.Address{alice, bob} {
		bal, err := f.ledger.Balance("L", addr)
		require.NoError(t, err)
		claimedTotal += bal
	}
	require.LessOrEqual(t, claimedTotal, uint64(1_000_000_000000))

	balancesUSDT := uint64(0)
	for _, addr := range []types.Address{alice, bob} {
		bal, err := f.ledger.Balance("USDT", addr)
		require.NoError(t, err)
		balancesUSDT += bal
	}
	require.LessOrEqual(t, balancesUSDT, uint64(2_000_000_000000))
}

func TestVestingScheduleTenPercentTGE(t *testing.T) {
	f := newFixture(t, 1_000_000_000000)
	alice := newTestAddress(0x01)

	price := uint256.NewInt(1_000_000_000000_000)
	start := f.clock.NowSeconds() + 1
	end := start + 10
	distribute := end + 10
	require.NoError(t, f.engine.CreateLaunch(f.admin, f.treasury, "L", "USDT", 8, start, end, distribute,
		1_000_000_000000, price, 1_000_000_000, 0))
	require.NoError(t, f.engine.AddVesting(f.admin, "L", 1_000, oneMonth, 3*oneMonth))

	f.seedUSDT(t, alice, 1_000_000_000)
	f.clock.Advance(2)
	_, err := f.engine.Deposit(alice, "L", "USDT", 1_000_000_000)
	require.NoError(t, err)

	f.clock.Advance(19) // lands exactly on distribute
	require.NoError(t, f.engine.Claim(alice, "L", "USDT"))
	entitled := uint64(1_000_000_000_000)
	tge := entitled / 10

	bal, err := f.ledger.Balance("L", alice)
	require.NoError(t, err)
	require.Equal(t, tge, bal)

	f.clock.Advance(oneMonth)
	require.NoError(t, f.engine.Claim(alice, "L", "USDT"))
	bal, err = f.ledger.Balance("L", alice)
	require.NoError(t, err)
	left := entitled - tge
	expected := tge + left/3
	require.Equal(t, expected, bal)
}

func TestAddPaymentTokensAcceptsSecondAsset(t *testing.T) {
	f := newFixture(t, 1_000_000_000000)
	alice := newTestAddress(0x01)

	usdcMintCap, _, _, err := f.ledger.Initialize(f.admin, "USD Coin", "USDC", 8, true)
	require.NoError(t, err)
	coin, err := f.ledger.Mint("USDC", 1_000_000_000, usdcMintCap)
	require.NoError(t, err)
	require.NoError(t, f.ledger.Deposit(alice, coin))

	price := uint256.NewInt(1_000_000_000000_000)
	start := f.clock.NowSeconds() + 10
	end := start + 10
	distribute := end + 10
	require.NoError(t, f.engine.CreateLaunch(f.admin, f.treasury, "L", "USDT", 8, start, end, distribute,
		1_000_000_000000, price, 0, 0))

	// The sale has not opened yet, so the time-window check rejects the
	// deposit before the payment asset is looked up.
	_, err = f.engine.Deposit(alice, "L", "USDC", 1_000_000)
	require.ErrorIs(t, err, ido.ErrDepositTime)

	require.NoError(t, f.engine.AddPaymentTokens(f.admin, "L", "USDC", 8))

	f.clock.Advance(11)
	subscribed, err := f.engine.Deposit(alice, "L", "USDC", 1_000_000)
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000), subscribed)

	balUSDC, err := f.ledger.Balance("USDC", alice)
	require.NoError(t, err)
	require.Equal(t, uint64(999_000_000), balUSDC)
}

func TestPublicDepositRejectsOverPerUserCapWithoutPartialEffect(t *testing.T) {
	f := newFixture(t, 1_000_000_000000)
	alice := newTestAddress(0x01)

	price := uint256.NewInt(1_000_000_000000_000)
	start := f.clock.NowSeconds() + 1
	end := start + 100
	distribute := end + 10
	require.NoError(t, f.engine.CreateLaunch(f.admin, f.treasury, "L", "USDT", 8, start, end, distribute,
		1_000_000_000000, price, 0, 1_000_000_000))

	f.seedUSDT(t, alice, 5_000_000_000)
	f.clock.Advance(2)

	subscribed, err := f.engine.Deposit(alice, "L", "USDT", 500_000_000)
	require.NoError(t, err)
	require.Equal(t, uint64(500_000_000), subscribed)

	_, err = f.engine.Deposit(alice, "L", "USDT", 600_000_000)
	require.ErrorIs(t, err, ido.ErrCap)

	// A later deposit that exactly reaches the cap must still succeed,
	// proving the rejected attempt above left no partial effect on
	// SubscribedAmount, the pool total, or the escrowed payment balance.
	subscribed, err = f.engine.Deposit(alice, "L", "USDT", 500_000_000)
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000_000), subscribed)

	balUSDT, err := f.ledger.Balance("USDT", alice)
	require.NoError(t, err)
	require.Equal(t, uint64(5_000_000_000-1_000_000_000), balUSDT)
}

func TestOverflowWithdrawPaymentLeavesReserveForLaterRefund(t *testing.T) {
	f := newFixture(t, 1_000_000_000000)
	alice := newTestAddress(0x01)
	bob := newTestAddress(0x02)

	price := uint256.NewInt(1_000_000_000000_000)
	start := f.clock.NowSeconds() + 1
	end := start + 20
	distribute := end + 10
	require.NoError(t, f.engine.CreateLaunch(f.admin, f.treasury, "L", "USDT", 8, start, end, distribute,
		1_000_000_000000, price, 0, 3_000_000_000000))

	f.seedUSDT(t, alice, 1_000_000_000000)
	f.seedUSDT(t, bob, 1_000_000_000000)

	f.clock.Advance(2)
	_, err := f.engine.Deposit(alice, "L", "USDT", 1_000_000_000000)
	require.NoError(t, err)
	f.clock.Advance(10)
	_, err = f.engine.Deposit(bob, "L", "USDT", 1_000_000_000000)
	require.NoError(t, err)

	f.clock.Advance(100)
	require.NoError(t, f.engine.Claim(alice, "L", "USDT"))

	withdrawn, err := f.engine.WithdrawPayment(f.treasury, "L", "USDT")
	require.NoError(t, err)
	require.Greater(t, withdrawn, uint64(0))
	require.Less(t, withdrawn, uint64(2_000_000_000000))

	require.NoError(t, f.engine.Claim(bob, "L", "USDT"))

	treasuryBal, err := f.ledger.Balance("USDT", f.treasury)
	require.NoError(t, err)
	require.Equal(t, withdrawn, treasuryBal)

	aliceBal, err := f.ledger.Balance("USDT", alice)
	require.NoError(t, err)
	bobBal, err := f.ledger.Balance("USDT", bob)
	require.NoError(t, err)

	require.LessOrEqual(t, withdrawn+aliceBal+bobBal, uint64(2_000_000_000000))
}

func TestClaimWithZeroClaimableIsSilentNoOp(t *testing.T) {
	f := newFixture(t, 1_000_000_000000)
	alice := newTestAddress(0x01)

	price := uint256.NewInt(1_000_000_000000_000)
	start := f.clock.NowSeconds() + 1
	end := start + 10
	distribute := end + 10
	require.NoError(t, f.engine.CreateLaunch(f.admin, f.treasury, "L", "USDT", 8, start, end, distribute,
		1_000_000_000000, price, 1_000_000_000, 0))
	require.NoError(t, f.engine.AddVesting(f.admin, "L", 1_000, oneMonth, 3*oneMonth))

	f.seedUSDT(t, alice, 1_000_000_000)
	f.clock.Advance(2)
	_, err := f.engine.Deposit(alice, "L", "USDT", 1_000_000_000)
	require.NoError(t, err)

	f.clock.Advance(19) // lands exactly on distribute
	require.NoError(t, f.engine.Claim(alice, "L", "USDT"))
	before := len(f.rec.Events)
	require.NoError(t, f.engine.Claim(alice, "L", "USDT"))
	require.Len(t, f.rec.Events, before)
}
