package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/houstonswap/launchpad/clock"
	"github.com/houstonswap/launchpad/config"
	"github.com/houstonswap/launchpad/core/events"
	"github.com/houstonswap/launchpad/core/types"
	"github.com/houstonswap/launchpad/identity"
	"github.com/houstonswap/launchpad/ledger"
	"github.com/houstonswap/launchpad/metrics"
	"github.com/houstonswap/launchpad/native/ido"
	idocap "github.com/houstonswap/launchpad/native/ido/capability"
	"github.com/houstonswap/launchpad/native/supply"
	"github.com/houstonswap/launchpad/native/vesting"
	"github.com/houstonswap/launchpad/observability/logging"
	"github.com/houstonswap/launchpad/storage"
)

func main() {
	configFile := flag.String("config", "./config.toml", "Path to the configuration file")
	flag.Parse()

	env := strings.TrimSpace(os.Getenv("HOUSTONSWAP_ENV"))
	logger := logging.Setup("houstonswapd", env)

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := storage.NewLevelDB(cfg.DataDir)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	admin, err := types.ParseAddress(cfg.AdminAddress)
	if err != nil {
		logger.Warn("admin address unset or invalid, using zero address for demo wiring", "error", err)
	}

	led := ledger.NewMemLedger()
	clk := clock.System{}
	registry := metrics.Registry()

	supplyEmitter := metrics.NewObserver(registry, events.NoopEmitter{})
	vestingEmitter := metrics.NewObserver(registry, events.NoopEmitter{})
	idoEmitter := metrics.NewObserver(registry, events.NoopEmitter{})

	supplyEngine := supply.NewEngine(admin, led, clk, supplyEmitter)
	vestingEngine := vesting.NewEngine(admin, types.AssetID(cfg.HouSymbol), led, clk, vestingEmitter)
	idoEngine := ido.NewEngine(admin, led, clk, idoEmitter)

	if err := supplyEngine.InitializeCoin(admin); err != nil {
		logger.Error("initialize_coin failed", "error", err)
		os.Exit(1)
	}
	if err := supplyEngine.InitializeMining(admin); err != nil {
		logger.Error("initialize_mining failed", "error", err)
		os.Exit(1)
	}

	if err := bootstrapAllocationVesting(admin, supplyEngine, vestingEngine, led, logger); err != nil {
		logger.Error("vesting bootstrap failed", "error", err)
		os.Exit(1)
	}

	if err := bootstrapDemoLaunch(admin, idoEngine, led, clk, logger); err != nil {
		logger.Error("ido bootstrap failed", "error", err)
		os.Exit(1)
	}

	go serveMetrics(cfg.MetricsListenAddress, logger)

	logger.Info("houstonswapd ready",
		slog.String("network", cfg.NetworkName),
		slog.String("hou_symbol", cfg.HouSymbol),
		slog.String("metrics_addr", cfg.MetricsListenAddress),
	)
	select {}
}

// bootstrapAllocationVesting opens the four fixed allocation tranches and
// immediately draws down the launchpad tranche's TGE-eligible portion, so the
// vesting engine is exercised at startup rather than left idle.
func bootstrapAllocationVesting(admin types.Address, supplyEngine *supply.Engine, vestingEngine *vesting.Engine, led ledger.Ledger, logger *slog.Logger) error {
	if err := vestingEngine.InitializeAllocation(admin); err != nil {
		return err
	}
	mintCap, err := supplyEngine.MintAuthorityFor(admin)
	if err != nil {
		return err
	}
	pending, err := vestingEngine.PendingClaim(vesting.PoolLaunchpad)
	if err != nil {
		return err
	}
	if pending == 0 {
		logger.Info("launchpad tranche has no TGE-eligible balance yet")
		return nil
	}
	if err := vestingEngine.Claim(admin, vesting.PoolLaunchpad, pending, admin, vesting.NewMintAuthority(mintCap)); err != nil {
		return err
	}
	balance, err := led.Balance(types.AssetID(supply.HouSymbol), admin)
	if err != nil {
		return err
	}
	logger.Info("launchpad tranche TGE claimed", "amount", pending, "admin_balance", balance)
	return nil
}

// bootstrapDemoLaunch mints a demo sale asset, initializes a payment asset
// (none of it is minted), opens a sale, and issues a capability through the whitelist gateway, exercising
// the admin-facing configuration surface of the IDO engine at startup. The
// time-gated deposit/claim/withdrawal path is left to engine_test.go's fixed
// clock, since the sale window here is anchored to wall-clock time.
func bootstrapDemoLaunch(admin types.Address, idoEngine *ido.Engine, led ledger.Ledger, clk clock.Clock, logger *slog.Logger) error {
	const (
		offered = types.AssetID("HOUIDO")
		payment = types.AssetID("USDC")
	)

	offeredSupply := uint64(1_000_000) * 1_000_000_000
	mintCap, _, _, err := led.Initialize(admin, "HOU IDO Demo Token", string(offered), 9, true)
	if err != nil {
		return err
	}
	offerCoin, err := led.Mint(offered, offeredSupply, mintCap)
	if err != nil {
		return err
	}
	if err := led.Deposit(admin, offerCoin); err != nil {
		return err
	}

	if _, _, _, err := led.Initialize(admin, "USD Coin Demo", string(payment), 6, true); err != nil {
		return err
	}

	treasuryKey, err := ethcrypto.GenerateKey()
	if err != nil {
		return err
	}
	treasury := identity.NewECDSASigner(treasuryKey).Address()

	now := clk.NowSeconds()
	salePrice := uint256.NewInt(ido.PricePrecision / 10) // 0.1 offered base unit per payment base unit
	if err := idoEngine.CreateLaunch(
		admin, treasury, offered, payment, 6,
		now+60, now+3600, now+7200,
		offeredSupply, salePrice,
		0, 0,
	); err != nil {
		return err
	}
	if err := idoEngine.AddVesting(admin, offered, 1_000, 86_400, 8*86_400); err != nil {
		return err
	}

	gateway := idocap.NewWhitelistGateway(idoEngine)
	if _, err := gateway.RequestCap(admin, offered); err != nil {
		return err
	}

	logger.Info("demo ido launch opened",
		slog.String("offered", string(offered)),
		slog.String("payment", string(payment)),
		slog.Bool("started", gateway.IsIdoStarted(offered)),
	)
	return nil
}

func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("metrics server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", "error", err)
	}
}
