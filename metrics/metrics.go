// Package metrics exposes Prometheus counters and gauges for the three core
// engines, grounded on the teacher's observability/metrics.Potso singleton
// pattern: a package-level registry built once via sync.Once and returned by
// an accessor, rather than threading a *Metrics through every constructor.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds every gauge/counter the core engines report against.
type Metrics struct {
	mintedTotal        *prometheus.CounterVec
	manualBurnTotal    *prometheus.CounterVec
	pendingSupply       prometheus.Gauge
	vestingClaimedTotal *prometheus.CounterVec
	idoDepositsTotal    *prometheus.CounterVec
	idoClaimedTotal     *prometheus.CounterVec
	idoWithdrawnTotal   *prometheus.CounterVec
}

var (
	once     sync.Once
	registry *Metrics
)

// Registry returns the process-wide Metrics singleton, registering it with
// the default Prometheus registry on first use.
func Registry() *Metrics {
	once.Do(func() {
		registry = &Metrics{
			mintedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "houstonswap_supply_minted_total",
				Help: "Cumulative HOU base units minted by the supply controller.",
			}, []string{"admin"}),
			manualBurnTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "houstonswap_supply_manual_burn_total",
				Help: "Cumulative HOU base units manually burned by the admin.",
			}, []string{"admin"}),
			pendingSupply: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "houstonswap_supply_pending",
				Help: "Base units accrued by the mining schedule but not yet minted.",
			}),
			vestingClaimedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "houstonswap_vesting_claimed_total",
				Help: "Cumulative base units claimed per allocation tranche.",
			}, []string{"pool"}),
			idoDepositsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "houstonswap_ido_deposits_total",
				Help: "Cumulative payment base units deposited per pool and payment asset.",
			}, []string{"offered", "payment"}),
			idoClaimedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "houstonswap_ido_claimed_total",
				Help: "Cumulative offered-asset base units claimed per pool.",
			}, []string{"offered"}),
			idoWithdrawnTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "houstonswap_ido_withdrawn_total",
				Help: "Cumulative payment base units withdrawn to treasury per pool and payment asset.",
			}, []string{"offered", "payment"}),
		}
		prometheus.MustRegister(
			registry.mintedTotal,
			registry.manualBurnTotal,
			registry.pendingSupply,
			registry.vestingClaimedTotal,
			registry.idoDepositsTotal,
			registry.idoClaimedTotal,
			registry.idoWithdrawnTotal,
		)
	})
	return registry
}

// ObserveMint records a successful supply-controller mint.
func (m *Metrics) ObserveMint(admin string, amount uint64) {
	if m == nil {
		return
	}
	m.mintedTotal.WithLabelValues(admin).Add(float64(amount))
}

// ObserveManualBurn records a successful admin self-burn.
func (m *Metrics) ObserveManualBurn(admin string, amount uint64) {
	if m == nil {
		return
	}
	m.manualBurnTotal.WithLabelValues(admin).Add(float64(amount))
}

// SetPendingSupply reports the current accrued-but-unminted supply.
func (m *Metrics) SetPendingSupply(amount uint64) {
	if m == nil {
		return
	}
	m.pendingSupply.Set(float64(amount))
}

// ObserveVestingClaim records a successful allocation-tranche claim.
func (m *Metrics) ObserveVestingClaim(pool string, amount uint64) {
	if m == nil {
		return
	}
	m.vestingClaimedTotal.WithLabelValues(pool).Add(float64(amount))
}

// ObserveIDODeposit records a successful IDO deposit.
func (m *Metrics) ObserveIDODeposit(offered, payment string, amount uint64) {
	if m == nil {
		return
	}
	m.idoDepositsTotal.WithLabelValues(offered, payment).Add(float64(amount))
}

// ObserveIDOClaim records a successful IDO claim.
func (m *Metrics) ObserveIDOClaim(offered string, amount uint64) {
	if m == nil {
		return
	}
	m.idoClaimedTotal.WithLabelValues(offered).Add(float64(amount))
}

// ObserveIDOWithdrawal records a successful treasury withdrawal.
func (m *Metrics) ObserveIDOWithdrawal(offered, payment string, amount uint64) {
	if m == nil {
		return
	}
	m.idoWithdrawnTotal.WithLabelValues(offered, payment).Add(float64(amount))
}
