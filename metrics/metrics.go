// Package metrics defines Prometheus metrics for tight-simulation runs.
//
// A Recorder owns its collectors and registers them on a caller-supplied
// prometheus.Registerer, so tests and embedders can use private registries.
// Every method is safe on a nil *Recorder, which records nothing.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Ball outcomes, used as the "outcome" label of BallsTotal.
const (
	OutcomeAccepted  = "accepted"
	OutcomeRejected  = "rejected"
	OutcomeRedundant = "redundant"
)

// Recorder groups the collectors of one engine instance.
type Recorder struct {
	MatchesTotal   *prometheus.CounterVec
	BallsTotal     *prometheus.CounterVec
	MatchDuration  prometheus.Histogram
	DualSimPasses  prometheus.Histogram
	CandidateCount prometheus.Gauge
}

// NewRecorder creates the collectors and registers them on reg.
// Collectors already registered on reg (for example by a second Recorder
// over the same registry) are reused.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		MatchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tightsim_matches_total",
				Help: "Total match runs by result",
			},
			[]string{"result"},
		),
		BallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tightsim_balls_total",
				Help: "Candidate balls by outcome",
			},
			[]string{"outcome"},
		),
		MatchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tightsim_match_duration_seconds",
				Help:    "Duration of a full match run in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		DualSimPasses: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tightsim_dualsim_passes",
				Help:    "Fixpoint passes of the global dual simulation",
				Buckets: prometheus.LinearBuckets(1, 2, 10),
			},
		),
		CandidateCount: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "tightsim_center_candidates",
				Help: "Candidate centers of the most recent match run",
			},
		),
	}

	var err error
	if r.MatchesTotal, err = register(reg, r.MatchesTotal); err != nil {
		return nil, err
	}
	if r.BallsTotal, err = register(reg, r.BallsTotal); err != nil {
		return nil, err
	}
	if r.MatchDuration, err = register(reg, r.MatchDuration); err != nil {
		return nil, err
	}
	if r.DualSimPasses, err = register(reg, r.DualSimPasses); err != nil {
		return nil, err
	}
	if r.CandidateCount, err = register(reg, r.CandidateCount); err != nil {
		return nil, err
	}

	return r, nil
}

// register registers c, or returns the existing equivalent collector.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}

	return c, nil
}

// ObserveMatch records one finished run.
func (r *Recorder) ObserveMatch(result string, d time.Duration) {
	if r == nil {
		return
	}
	r.MatchesTotal.WithLabelValues(result).Inc()
	r.MatchDuration.Observe(d.Seconds())
}

// Ball counts one ball with the given outcome.
func (r *Recorder) Ball(outcome string) {
	if r == nil {
		return
	}
	r.BallsTotal.WithLabelValues(outcome).Inc()
}

// Redundant counts n balls dropped by the redundancy filter.
func (r *Recorder) Redundant(n int) {
	if r == nil || n == 0 {
		return
	}
	r.BallsTotal.WithLabelValues(OutcomeRedundant).Add(float64(n))
}

// Passes records the pass count of one global fixpoint.
func (r *Recorder) Passes(n int) {
	if r == nil {
		return
	}
	r.DualSimPasses.Observe(float64(n))
}

// Candidates sets the number of candidate centers of the current run.
func (r *Recorder) Candidates(n int) {
	if r == nil {
		return
	}
	r.CandidateCount.Set(float64(n))
}
