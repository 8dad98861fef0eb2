package ido

import "github.com/holiman/uint256"

var pricePrecision256 = uint256.NewInt(PricePrecision)
var tgeDenom256 = uint256.NewInt(TGEPercentDenom)

// mulDivFloor returns floor(a * b / c) in 256-bit intermediate arithmetic,
// matching spec §9's "all ratio arithmetic uses 128-bit intermediates ...
// final results truncate" rule. Every ratio computation in this package goes
// through this helper so the truncation behaviour is uniform and never rounds
// half-up the way the teacher's native/lending ray math does.
func mulDivFloor(a, b, c *uint256.Int) *uint256.Int {
	if c.IsZero() {
		return new(uint256.Int)
	}
	product := new(uint256.Int).Mul(a, b)
	return new(uint256.Int).Div(product, c)
}

func u64(v uint64) *uint256.Int { return uint256.NewInt(v) }

// normalizedMaxRaised recomputes max_raised so the full offer clears exactly
// at salePrice (spec §4.3.2). Returns the input unchanged if maxRaised is
// zero (overflow mode) or already exact.
func normalizedMaxRaised(totalOfferCoins, salePrice *uint256.Int, maxRaised uint64) uint64 {
	if maxRaised == 0 {
		return 0
	}
	exact := mulDivFloor(pricePrecision256, totalOfferCoins, salePrice)
	if exact.Uint64() == maxRaised {
		return maxRaised
	}
	return exact.Uint64()
}

// fixedCapEntitlement computes floor(salePrice * amount / PricePrecision),
// the entitlement formula shared by deposit (fixed-cap mode) and claim's
// non_overflow candidate (spec §4.3.4, §4.3.5).
func fixedCapEntitlement(salePrice *uint256.Int, amount uint64) uint64 {
	return mulDivFloor(salePrice, u64(amount), pricePrecision256).Uint64()
}

// overflowEntitlement computes floor(totalOfferAmount * subscribed /
// totalSubscribed), the pro-rata overflow-mode candidate (spec §4.3.5).
func overflowEntitlement(totalOfferAmount, subscribed, totalSubscribed uint64) uint64 {
	if totalSubscribed == 0 {
		return 0
	}
	return mulDivFloor(u64(totalOfferAmount), u64(subscribed), u64(totalSubscribed)).Uint64()
}

// refundAmount computes the per-payment-asset refund owed when overflow <
// nonOverflow entitlement (spec §4.3.5), as two sequential floor divisions:
//
//	floor(floor((nonOverflow-overflow) * PricePrecision / salePrice) * d / subscribed)
//
// The intermediate floor(diff * PricePrecision / salePrice) must be taken on
// its own before multiplying by d and dividing by subscribed — collapsing
// both steps into a single wider division changes the result for some
// inputs, and withdrawableAmount's independently-computed treasury reserve
// assumes this exact two-step form.
func refundAmount(nonOverflow, overflow uint64, salePrice *uint256.Int, deposit, subscribed uint64) uint64 {
	if subscribed == 0 {
		return 0
	}
	diff := u64(nonOverflow - overflow)
	step := mulDivFloor(diff, pricePrecision256, salePrice)
	return mulDivFloor(step, u64(deposit), u64(subscribed)).Uint64()
}

// vestedClaimable computes the cumulative-then-incremental claimable amount
// for entitled/claimed under the TGE-plus-interval schedule (spec §4.3.5).
func vestedClaimable(entitled, claimed, tgePercent, vestingInterval, totalVestingTime, elapsedSinceDistribute uint64) uint64 {
	if entitled == 0 {
		return 0
	}
	if tgePercent == TGEPercentDenom {
		if entitled < claimed {
			return 0
		}
		return entitled - claimed
	}
	if vestingInterval == 0 || totalVestingTime == 0 {
		return 0
	}
	numIntervals := elapsedSinceDistribute / vestingInterval
	tge := mulDivFloor(u64(entitled), u64(tgePercent), tgeDenom256).Uint64()
	left := entitled - tge
	passed := numIntervals * vestingInterval
	if passed > totalVestingTime {
		passed = totalVestingTime
	}
	vested := mulDivFloor(u64(left), u64(passed), u64(totalVestingTime)).Uint64()
	cumulative := tge + vested
	if cumulative < claimed {
		return 0
	}
	return cumulative - claimed
}

// withdrawableAmount computes the amount of payment asset P the treasury may
// withdraw for a pool's PaymentStore (spec §4.3.6).
func withdrawableAmount(maxRaised uint64, totalOfferAmount, stored, totalSubscribed uint64, salePrice *uint256.Int) uint64 {
	if maxRaised > 0 {
		return stored
	}
	if totalSubscribed == 0 {
		return 0
	}
	offerInPayment := mulDivFloor(u64(totalOfferAmount), u64(stored), u64(totalSubscribed))
	allowed := mulDivFloor(offerInPayment, pricePrecision256, salePrice).Uint64()
	if stored < allowed {
		return stored
	}
	return allowed
}
