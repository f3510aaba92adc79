package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateMetrics aggregates the Prometheus instruments for the rate engine.
// A nil *RateMetrics is valid; every Record method is a no-op on it, so
// callers never guard.
type RateMetrics struct {
	resolutionsTotal      *prometheus.CounterVec
	resolutionErrorsTotal *prometheus.CounterVec
	resolutionDuration    *prometheus.HistogramVec
	providerMissesTotal   prometheus.Counter
	rateUpdatesTotal      *prometheus.CounterVec
	refreshesTotal        *prometheus.CounterVec
}

// NewRateMetrics registers the rate instruments with the given registerer.
// Pass prometheus.DefaultRegisterer in production.
func NewRateMetrics(reg prometheus.Registerer) *RateMetrics {
	factory := promauto.With(reg)

	return &RateMetrics{
		resolutionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "exchange_rate_resolutions_total",
			Help: "Successful rate resolutions by winning source.",
		}, []string{"source"}),
		resolutionErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "exchange_rate_resolution_errors_total",
			Help: "Failed rate resolutions by reason.",
		}, []string{"reason"}),
		resolutionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "exchange_rate_resolution_duration_seconds",
			Help:    "Rate resolution latency by winning source.",
			Buckets: prometheus.DefBuckets,
		}, []string{"source"}),
		providerMissesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "exchange_rate_provider_misses_total",
			Help: "Resolutions where every external provider failed.",
		}),
		rateUpdatesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "exchange_rate_updates_total",
			Help: "Manual rate updates by pair.",
		}, []string{"pair"}),
		refreshesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "exchange_rate_refreshes_total",
			Help: "Per-pair refresh outcomes.",
		}, []string{"outcome"}),
	}
}

func (m *RateMetrics) RecordResolution(source string, seconds float64) {
	if m == nil {
		return
	}
	m.resolutionsTotal.WithLabelValues(source).Inc()
	m.resolutionDuration.WithLabelValues(source).Observe(seconds)
}

func (m *RateMetrics) RecordResolutionError(reason string) {
	if m == nil {
		return
	}
	m.resolutionErrorsTotal.WithLabelValues(reason).Inc()
}

func (m *RateMetrics) RecordProviderMiss() {
	if m == nil {
		return
	}
	m.providerMissesTotal.Inc()
}

func (m *RateMetrics) RecordRateUpdate(pair string) {
	if m == nil {
		return
	}
	m.rateUpdatesTotal.WithLabelValues(pair).Inc()
}

func (m *RateMetrics) RecordRefresh(ok bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.refreshesTotal.WithLabelValues(outcome).Inc()
}
