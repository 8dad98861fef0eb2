package ido

import (
	"errors"

	"github.com/houstonswap/launchpad/errcode"
)

var (
	errNotOwner          = errors.New("ido: caller is not the admin")
	errPoolDuplicate     = errors.New("ido: pool already exists for this offered asset")
	errTimeOrder         = errors.New("ido: start/end/distribute times are not strictly ordered")
	errDepositTime       = errors.New("ido: deposits are only accepted while the sale is open")
	errCap               = errors.New("ido: deposit exceeds the remaining or per-user cap")
	errTreasury          = errors.New("ido: caller is not the pool treasury")
	errClaimTime         = errors.New("ido: claims are only accepted after distribution starts")
	errNoDeposit         = errors.New("ido: caller has not deposited into this pool")
	errWithdrawTime      = errors.New("ido: withdrawal is only permitted after the sale ends")
	errWithdrawZeroAmt   = errors.New("ido: withdrawable amount is zero")
	errWithdrawn         = errors.New("ido: payment asset has already been withdrawn")
	errVestingSetting    = errors.New("ido: invalid tge percent or vesting interval")
	errDuplicateTokens   = errors.New("ido: payment asset already accepted")
	errPaymentToken      = errors.New("ido: payment asset is not accepted by this pool")
	errRefund            = errors.New("ido: refund would not be less than the recorded deposit")
	errPaymentDecimals   = errors.New("ido: payment asset decimals do not match the pool")
	errPoolNotFound      = errors.New("ido: no pool exists for this offered asset")
	errUnauthorizedCap   = errors.New("ido: subscribe capability was not issued by RequestCap")
)

// Abort codes per spec §7 (IDO context).
const (
	CodeNotOwner            uint32 = 1
	CodeDepositTime         uint32 = 3
	CodePoolDuplicates      uint32 = 5
	CodeTimeOrder           uint32 = 6
	CodeCap                 uint32 = 7
	CodeTreasury            uint32 = 8
	CodeClaimTime           uint32 = 9
	CodeNoDeposit           uint32 = 10
	CodeWithdrawPaymentTime uint32 = 11
	CodeWithdrawZeroAmt     uint32 = 12
	CodeClaimed             uint32 = 13
	CodeVestingSetting      uint32 = 14
	CodeDuplicateTokens     uint32 = 15
	CodePaymentToken        uint32 = 16
	CodeRefund              uint32 = 19
	CodePaymentDecimals     uint32 = 20
	CodeWithdrawn           uint32 = 21
)

var (
	// ErrNotOwner is returned when a caller other than the configured admin
	// attempts an admin-gated operation.
	ErrNotOwner = errcode.New(CodeNotOwner, errNotOwner)
	// ErrPoolDuplicate is returned by CreateLaunch when a pool already
	// exists for the offered asset.
	ErrPoolDuplicate = errcode.New(CodePoolDuplicates, errPoolDuplicate)
	// ErrTimeOrder is returned when start/end/distribute are not strictly
	// increasing at pool creation.
	ErrTimeOrder = errcode.New(CodeTimeOrder, errTimeOrder)
	// ErrDepositTime is returned by Deposit/DepositWithCap outside the open
	// window.
	ErrDepositTime = errcode.New(CodeDepositTime, errDepositTime)
	// ErrCap is returned when a deposit would exceed the pool's remaining
	// capacity or the caller's per-user cap.
	ErrCap = errcode.New(CodeCap, errCap)
	// ErrTreasury is returned when a non-treasury caller attempts
	// WithdrawPayment.
	ErrTreasury = errcode.New(CodeTreasury, errTreasury)
	// ErrClaimTime is returned by Claim before distribution starts.
	ErrClaimTime = errcode.New(CodeClaimTime, errClaimTime)
	// ErrNoDeposit is returned by Claim when the caller has never deposited
	// into the pool.
	ErrNoDeposit = errcode.New(CodeNoDeposit, errNoDeposit)
	// ErrWithdrawPaymentTime is returned by WithdrawPayment before the sale
	// ends.
	ErrWithdrawPaymentTime = errcode.New(CodeWithdrawPaymentTime, errWithdrawTime)
	// ErrWithdrawZeroAmt is returned when the computed withdrawable amount
	// is zero.
	ErrWithdrawZeroAmt = errcode.New(CodeWithdrawZeroAmt, errWithdrawZeroAmt)
	// ErrVestingSetting is returned by AddVesting for an invalid schedule.
	ErrVestingSetting = errcode.New(CodeVestingSetting, errVestingSetting)
	// ErrDuplicateTokens is returned by AddPaymentTokens for an
	// already-accepted asset.
	ErrDuplicateTokens = errcode.New(CodeDuplicateTokens, errDuplicateTokens)
	// ErrPaymentToken is returned when a payment asset is not accepted by
	// the pool.
	ErrPaymentToken = errcode.New(CodePaymentToken, errPaymentToken)
	// ErrRefund is returned when a computed refund is not strictly less
	// than the user's recorded deposit (spec §9 open question: kept strict).
	ErrRefund = errcode.New(CodeRefund, errRefund)
	// ErrPaymentDecimals is returned by AddPaymentTokens for a mismatched
	// decimals count.
	ErrPaymentDecimals = errcode.New(CodePaymentDecimals, errPaymentDecimals)
	// ErrWithdrawn is returned by WithdrawPayment on a second call for the
	// same payment asset.
	ErrWithdrawn = errcode.New(CodeWithdrawn, errWithdrawn)
	// ErrPoolNotFound is returned when no pool exists for the offered
	// asset.
	ErrPoolNotFound = errcode.New(CodeNoDeposit, errPoolNotFound)
	// ErrUnauthorizedCap is returned by DepositWithCap for a zero-value
	// capability, one not obtained from RequestCap. A capability is not
	// bound to the pool it was requested for, so one issued for any pool is
	// accepted by every pool of the same Engine.
	ErrUnauthorizedCap = errcode.New(CodeNotOwner, errUnauthorizedCap)
)
