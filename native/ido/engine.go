package ido

import (
	"sync"

	"github.com/holiman/uint256"

	"github.com/houstonswap/launchpad/clock"
	"github.com/houstonswap/launchpad/core/events"
	"github.com/houstonswap/launchpad/core/types"
	"github.com/houstonswap/launchpad/ledger"
)

type poolState struct {
	pool          Pool
	paymentStores map[types.AssetID]*PaymentStore
	users         map[types.Address]*UserInfo
}

// Engine runs one or more concurrent sales, one Pool per offered asset,
// bound to a single admin address (spec §4.3). Every entry point holds one
// engine-wide mutex for its whole duration, so calls on all pools are
// serialized, which also gives spec §5's per-Pool<L> serializability.
type Engine struct {
	mu sync.Mutex

	ledger  ledger.Ledger
	clock   clock.Clock
	emitter events.Emitter

	admin types.Address
	pools map[types.AssetID]*poolState
}

// NewEngine constructs an IDO engine bound to admin, backed by led and clk.
func NewEngine(admin types.Address, led ledger.Ledger, clk clock.Clock, emitter events.Emitter) *Engine {
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	return &Engine{
		ledger:  led,
		clock:   clk,
		emitter: emitter,
		admin:   admin,
		pools:   make(map[types.AssetID]*poolState),
	}
}

func (e *Engine) assertAdmin(caller types.Address) error {
	if caller != e.admin {
		return ErrNotOwner
	}
	return nil
}

func (e *Engine) state(offered types.AssetID) (*poolState, error) {
	st, ok := e.pools[offered]
	if !ok {
		return nil, ErrPoolNotFound
	}
	return st, nil
}

// IsIdoStarted reports whether offered's pool exists and its open window has
// begun (spec §4.3.1, §4.3.7 "friend"-only accessor).
func (e *Engine) IsIdoStarted(offered types.AssetID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.pools[offered]
	if !ok {
		return false
	}
	return e.clock.NowSeconds() >= st.pool.StartTime
}

// CreateLaunch opens a new sale for offered asset L, paid in payment asset P
// (spec §4.3.2).
func (e *Engine) CreateLaunch(
	admin types.Address,
	treasury types.Address,
	offered types.AssetID,
	payment types.AssetID,
	paymentDecimals uint8,
	start, end, distribute uint64,
	totalOfferCoins uint64,
	salePrice *uint256.Int,
	maxRaised uint64,
	maxRaisedPerUser uint64,
) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.assertAdmin(admin); err != nil {
		return err
	}
	if _, exists := e.pools[offered]; exists {
		return ErrPoolDuplicate
	}
	now := e.clock.NowSeconds()
	if !(now <= start && start < end && end < distribute) {
		return ErrTimeOrder
	}

	withdrawn, err := e.ledger.Withdraw(offered, admin, totalOfferCoins)
	if err != nil {
		return err
	}

	normalized := normalizedMaxRaised(u64(totalOfferCoins), salePrice, maxRaised)

	pool := Pool{
		Admin:                 admin,
		Treasury:              treasury,
		Offered:               offered,
		StartTime:             start,
		EndTime:               end,
		DistributeStartTime:   distribute,
		SalePrice:             *salePrice,
		TotalOfferAmount:      totalOfferCoins,
		OfferCoins:            withdrawn.Amount,
		MaxRaised:             normalized,
		MaxRaisedPerUser:      maxRaisedPerUser,
		TGEPercent:            TGEPercentDenom,
		AcceptedTokens:        []types.AssetID{payment},
		DefaultDecimals:       paymentDecimals,
	}

	e.pools[offered] = &poolState{
		pool: pool,
		paymentStores: map[types.AssetID]*PaymentStore{
			payment: {},
		},
		users: make(map[types.Address]*UserInfo),
	}

	e.emitter.Emit(events.PoolCreated{
		Offered:            offered,
		TotalDistributeAmt: totalOfferCoins,
		MaxRaised:          normalized,
		SalePrice:          salePrice.Dec(),
	})
	return nil
}

// AddVesting configures the TGE-plus-interval vesting schedule applied at
// claim (spec §4.3.3). Permitted only before the sale opens.
func (e *Engine) AddVesting(admin types.Address, offered types.AssetID, tgePercent, vestingInterval, totalVestingTime uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.assertAdmin(admin); err != nil {
		return err
	}
	st, err := e.state(offered)
	if err != nil {
		return err
	}
	if e.clock.NowSeconds() >= st.pool.StartTime {
		return ErrTimeOrder
	}
	if tgePercent >= TGEPercentDenom || totalVestingTime < vestingInterval {
		return ErrVestingSetting
	}
	st.pool.TGEPercent = tgePercent
	st.pool.VestingInterval = vestingInterval
	st.pool.TotalVestingTime = totalVestingTime
	return nil
}

// AddPaymentTokens appends a second (or later) accepted payment asset to an
// existing pool (spec §4.3.3). Permitted only before the sale opens.
func (e *Engine) AddPaymentTokens(admin types.Address, offered types.AssetID, payment types.AssetID, decimals uint8) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.assertAdmin(admin); err != nil {
		return err
	}
	st, err := e.state(offered)
	if err != nil {
		return err
	}
	if e.clock.NowSeconds() >= st.pool.StartTime {
		return ErrTimeOrder
	}
	if _, exists := st.paymentStores[payment]; exists {
		return ErrDuplicateTokens
	}
	if decimals != st.pool.DefaultDecimals {
		return ErrPaymentDecimals
	}
	st.pool.AcceptedTokens = append(st.pool.AcceptedTokens, payment)
	st.paymentStores[payment] = &PaymentStore{}
	for _, u := range st.users {
		u.DepositAmounts = append(u.DepositAmounts, 0)
	}
	return nil
}

// Deposit is the public deposit path, enforcing the per-user cap (spec
// §4.3.4).
func (e *Engine) Deposit(user types.Address, offered types.AssetID, payment types.AssetID, amount uint64) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.depositLocked(user, offered, payment, amount, false)
}

// DepositWithCap is the capability-gated deposit path, bypassing the
// per-user cap (spec §4.3.4, §4.3.7).
func (e *Engine) DepositWithCap(user types.Address, offered types.AssetID, payment types.AssetID, amount uint64, cap SubscribeCapability) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !cap.isAuthorized() {
		return 0, ErrUnauthorizedCap
	}
	return e.depositLocked(user, offered, payment, amount, true)
}

func (e *Engine) depositLocked(user types.Address, offered types.AssetID, payment types.AssetID, amount uint64, bypassCap bool) (uint64, error) {
	st, err := e.state(offered)
	if err != nil {
		return 0, err
	}
	pool := &st.pool
	now := e.clock.NowSeconds()
	if now < pool.StartTime || now > pool.EndTime {
		return 0, ErrDepositTime
	}
	store, ok := st.paymentStores[payment]
	if !ok {
		return 0, ErrPaymentToken
	}

	if pool.MaxRaised > 0 {
		if pool.MaxRaised <= pool.TotalSubscribedAmount {
			return 0, ErrCap
		}
		if remaining := pool.MaxRaised - pool.TotalSubscribedAmount; remaining < amount {
			amount = remaining
		}
	}

	idx := paymentIndex(pool.AcceptedTokens, payment)
	existing := st.users[user]
	var priorSubscribed uint64
	if existing != nil {
		priorSubscribed = existing.SubscribedAmount
	}
	if !bypassCap && pool.MaxRaisedPerUser > 0 && priorSubscribed+amount > pool.MaxRaisedPerUser {
		return 0, ErrCap
	}

	coin, err := e.ledger.Withdraw(payment, user, amount)
	if err != nil {
		return 0, err
	}

	pool.TotalSubscribedAmount += amount
	store.Value += coin.Amount

	u := existing
	if u == nil {
		u = &UserInfo{DepositAmounts: make([]uint64, len(pool.AcceptedTokens))}
		st.users[user] = u
	}
	u.SubscribedAmount += amount
	u.DepositAmounts[idx] += amount
	if pool.MaxRaised > 0 {
		u.Entitled = fixedCapEntitlement(&pool.SalePrice, u.SubscribedAmount)
	}

	e.emitter.Emit(events.Deposit{Offered: offered, User: user, Amount: amount, Payment: payment})
	return u.SubscribedAmount, nil
}

func paymentIndex(accepted []types.AssetID, payment types.AssetID) int {
	for i, a := range accepted {
		if a == payment {
			return i
		}
	}
	return -1
}

// Claim releases the caller's currently vested entitlement of the offered
// asset, refunding any oversubscribed payment in the process (spec §4.3.5).
func (e *Engine) Claim(user types.Address, offered types.AssetID, payment types.AssetID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, err := e.state(offered)
	if err != nil {
		return err
	}
	pool := &st.pool
	now := e.clock.NowSeconds()
	if now < pool.DistributeStartTime {
		return ErrClaimTime
	}
	u, ok := st.users[user]
	if !ok {
		return ErrNoDeposit
	}

	nonOverflow := fixedCapEntitlement(&pool.SalePrice, u.SubscribedAmount)
	var overflow uint64
	if pool.MaxRaised > 0 {
		overflow = nonOverflow
	} else {
		overflow = overflowEntitlement(pool.TotalOfferAmount, u.SubscribedAmount, pool.TotalSubscribedAmount)
	}

	if overflow < nonOverflow {
		idx := paymentIndex(pool.AcceptedTokens, payment)
		if idx >= 0 {
			d := u.DepositAmounts[idx]
			if d > 0 {
				refund := refundAmount(nonOverflow, overflow, &pool.SalePrice, d, u.SubscribedAmount)
				if refund >= d {
					return ErrRefund
				}
				if refund > 0 {
					if err := e.ledger.Deposit(user, types.Coin{Asset: payment, Amount: refund}); err != nil {
						return err
					}
					store := st.paymentStores[payment]
					store.Value -= refund
					u.DepositAmounts[idx] = 0
					if !e.ledger.IsRegistered(offered, user) {
						if err := e.ledger.Register(offered, user); err != nil {
							return err
						}
					}
				}
			}
		}
	}

	if u.Entitled == 0 {
		u.Entitled = minU64(overflow, nonOverflow)
	}

	var claimable uint64
	if u.Entitled > 0 && now >= pool.DistributeStartTime {
		claimable = vestedClaimable(u.Entitled, u.Claimed, pool.TGEPercent, pool.VestingInterval, pool.TotalVestingTime, now-pool.DistributeStartTime)
	}
	if claimable == 0 {
		return nil
	}

	extracted, err := e.ledger.Extract(&types.Coin{Asset: offered, Amount: pool.OfferCoins}, claimable)
	if err != nil {
		return err
	}
	pool.OfferCoins -= claimable
	if !e.ledger.IsRegistered(offered, user) {
		if err := e.ledger.Register(offered, user); err != nil {
			return err
		}
	}
	if err := e.ledger.Deposit(user, extracted); err != nil {
		return err
	}
	u.Claimed += claimable

	e.emitter.Emit(events.Claim{Offered: offered, User: user, Claimed: claimable})
	return nil
}

func minU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// WithdrawPayment lets the pool's treasury withdraw escrowed payment once
// the sale has ended (spec §4.3.6). It may be called once per accepted
// payment asset.
func (e *Engine) WithdrawPayment(treasury types.Address, offered types.AssetID, payment types.AssetID) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, err := e.state(offered)
	if err != nil {
		return 0, err
	}
	pool := &st.pool
	store, ok := st.paymentStores[payment]
	if !ok {
		return 0, ErrPaymentToken
	}
	if store.Withdrawn {
		return 0, ErrWithdrawn
	}
	if treasury != pool.Treasury {
		return 0, ErrTreasury
	}
	if e.clock.NowSeconds() <= pool.EndTime {
		return 0, ErrWithdrawPaymentTime
	}

	amount := withdrawableAmount(pool.MaxRaised, pool.TotalOfferAmount, store.Value, pool.TotalSubscribedAmount, &pool.SalePrice)
	store.Withdrawn = true
	if amount == 0 {
		return 0, ErrWithdrawZeroAmt
	}

	extracted, err := e.ledger.Extract(&types.Coin{Asset: payment, Amount: store.Value}, amount)
	if err != nil {
		return 0, err
	}
	store.Value -= amount
	if !e.ledger.IsRegistered(payment, treasury) {
		if err := e.ledger.Register(payment, treasury); err != nil {
			return 0, err
		}
	}
	if err := e.ledger.Deposit(treasury, extracted); err != nil {
		return 0, err
	}

	e.emitter.Emit(events.WithdrawPayment{Offered: offered, To: treasury, Amount: amount, Payment: payment})
	return amount, nil
}

// RequestCap issues a SubscribeCapability for offered's pool, admin-gated
// (spec §4.3.7). It is designed to be consumed by a package-external
// whitelist module via the native/ido/capability mirror.
func (e *Engine) RequestCap(admin types.Address, offered types.AssetID) (SubscribeCapability, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.assertAdmin(admin); err != nil {
		return SubscribeCapability{}, err
	}
	if _, err := e.state(offered); err != nil {
		return SubscribeCapability{}, err
	}
	return SubscribeCapability{authorized: true}, nil
}
