package vesting

import "math/big"

// precision is the 128-bit intermediate scale spec §4.2/§9 requires for the
// vesting fraction. Unlike the teacher's native/lending rayMul/rayDiv (which
// round half-up for interest accrual), every division here truncates,
// matching spec §9's "final results truncate to 64-bit" requirement.
var precision = big.NewInt(1_000_000_000_000) // 10^12

// vestedAmount computes floor(vestingAmount * elapsed / period), the linear
// portion of a tranche's vesting release (spec §4.2, pending_claim).
func vestedAmount(vestingAmount, elapsed, period uint64) uint64 {
	if period == 0 {
		return 0
	}
	num := new(big.Int).Mul(big.NewInt(0).SetUint64(vestingAmount), precision)
	num.Mul(num, big.NewInt(0).SetUint64(elapsed))
	num.Quo(num, big.NewInt(0).SetUint64(period))
	num.Quo(num, precision)
	return num.Uint64()
}
