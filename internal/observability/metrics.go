package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// sweeps run by the status engine, by outcome (ok, error)
	SweepRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salonads_status_sweeps_total",
			Help: "Status sweeps executed",
		},
		[]string{"outcome"},
	)

	SweepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "salonads_status_sweep_duration_seconds",
			Help:    "Duration of a full status sweep",
			Buckets: prometheus.DefBuckets,
		},
	)

	// derived or manual status changes, by source and target status
	StatusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salonads_status_transitions_total",
			Help: "Ad status changes applied",
		},
		[]string{"source", "status"},
	)

	// ad mutations by operation (create, update, delete) and outcome
	Mutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salonads_ad_mutations_total",
			Help: "Ad mutation requests",
		},
		[]string{"operation", "outcome"},
	)

	ResolveRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salonads_resolve_requests_total",
			Help: "Targeting resolutions, labelled by whether an hour filter was applied",
		},
		[]string{"hour_filter"},
	)

	ResolvedAds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "salonads_resolved_ads",
			Help:    "Number of ads returned per resolution",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)
)

// Register adds every collector to reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		SweepRuns, SweepDuration, StatusTransitions, Mutations, ResolveRequests, ResolvedAds,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Outcome labels an operation result.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
