package vesting

import (
	"errors"

	"github.com/houstonswap/launchpad/errcode"
)

var (
	errNotOwner         = errors.New("vesting: caller is not the admin")
	errAlreadyInit      = errors.New("vesting: allocations already initialized")
	errNotInit          = errors.New("vesting: allocations not initialized")
	errPendingAmtNoEnuf = errors.New("vesting: amount exceeds pending claim")
)

// Abort codes per spec §7 (allocation-vester context).
const (
	CodeNotOwner              uint32 = 1
	CodeAllocationAlreadyInit uint32 = 6
	CodeSupplyInfo            uint32 = 4
	CodePendingAmountNotEnough uint32 = 5
)

// ErrNotOwner is returned when a caller other than the configured admin
// attempts an admin-gated operation.
var ErrNotOwner = errcode.New(CodeNotOwner, errNotOwner)

// ErrAllocationAlreadyInit is returned by InitializeAllocation on a second
// call for the same admin.
var ErrAllocationAlreadyInit = errcode.New(CodeAllocationAlreadyInit, errAlreadyInit)

// ErrNotInitialized is returned when Claim or PendingClaim is called before
// InitializeAllocation.
var ErrNotInitialized = errcode.New(CodeSupplyInfo, errNotInit)

// ErrPendingAmountNotEnough is returned by Claim when the requested amount
// exceeds the tranche's currently claimable balance.
var ErrPendingAmountNotEnough = errcode.New(CodePendingAmountNotEnough, errPendingAmtNoEnuf)
