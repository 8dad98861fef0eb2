package supply

import (
	"errors"

	"github.com/houstonswap/launchpad/errcode"
)

// Sentinel errors for the supply controller, following the teacher's
// native/lending convention of one errXxx per failure mode.
var (
	errNotOwner             = errors.New("supply: caller is not the admin")
	errSupplyInfoMissing    = errors.New("supply: mining not initialized")
	errCoinAlreadyInit      = errors.New("supply: HOU already initialized")
	errMaxOut               = errors.New("supply: mint would exceed the mining cap")
	errPendingAmountNoEnuff = errors.New("supply: amount exceeds pending mining supply")
	errUnauthorizedCap      = errors.New("supply: capability was not issued by this admin")
)

// Abort codes per spec §7 (supply-controller context).
const (
	CodeNotOwner              uint32 = 1
	CodeMaxOut                uint32 = 2
	CodeSupplyInfo            uint32 = 4
	CodePendingAmountNotEnough uint32 = 5
)

// ErrNotOwner is returned when a caller other than the configured admin
// attempts an admin-gated operation.
var ErrNotOwner = errcode.New(CodeNotOwner, errNotOwner)

// ErrMaxOut is returned by Mint when total minted plus the requested amount
// would exceed the mining cap.
var ErrMaxOut = errcode.New(CodeMaxOut, errMaxOut)

// ErrSupplyInfoMissing is returned when mining has not been initialized.
var ErrSupplyInfoMissing = errcode.New(CodeSupplyInfo, errSupplyInfoMissing)

// ErrPendingAmountNotEnough is returned by Mint when the requested amount
// exceeds the currently accrued, unminted supply.
var ErrPendingAmountNotEnough = errcode.New(CodePendingAmountNotEnough, errPendingAmountNoEnuff)
