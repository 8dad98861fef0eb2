// Package capability mirrors the "friend"-visibility boundary spec §9
// describes for deposit_with_cap and is_ido_started: operations meant to be
// reachable only from a whitelist/ticket module, never from a general
// caller. Go has no friend keyword; the idiomatic substitute is a narrow
// adapter type that re-exports just the two gated calls, plus RequestCap to
// obtain the capability the deposit call spends, which a real
// deployment would in turn keep reachable only from an internal/ package
// rooted alongside native/ido (the Go compiler enforces internal/
// boundaries at the module level the way `friend` does at the source level).
package capability

import (
	"github.com/houstonswap/launchpad/core/types"
	"github.com/houstonswap/launchpad/native/ido"
)

// WhitelistGateway is the narrow surface a whitelist/ticket module needs: it
// can request a SubscribeCapability for a pool and spend it on a capped
// deposit, but nothing else on Engine.
type WhitelistGateway struct {
	engine *ido.Engine
}

// NewWhitelistGateway wraps engine for whitelist-module consumption.
func NewWhitelistGateway(engine *ido.Engine) *WhitelistGateway {
	return &WhitelistGateway{engine: engine}
}

// RequestCap proxies Engine.RequestCap.
func (g *WhitelistGateway) RequestCap(admin types.Address, offered types.AssetID) (ido.SubscribeCapability, error) {
	return g.engine.RequestCap(admin, offered)
}

// DepositWithCap proxies Engine.DepositWithCap.
func (g *WhitelistGateway) DepositWithCap(user types.Address, offered, payment types.AssetID, amount uint64, cap ido.SubscribeCapability) (uint64, error) {
	return g.engine.DepositWithCap(user, offered, payment, amount, cap)
}

// IsIdoStarted proxies Engine.IsIdoStarted.
func (g *WhitelistGateway) IsIdoStarted(offered types.AssetID) bool {
	return g.engine.IsIdoStarted(offered)
}
