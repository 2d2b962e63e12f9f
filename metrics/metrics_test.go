package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tightsim/metrics"
)

func TestRecorder_Counts(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	r, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	r.Ball(metrics.OutcomeAccepted)
	r.Ball(metrics.OutcomeAccepted)
	r.Ball(metrics.OutcomeRejected)
	r.Redundant(3)
	r.Redundant(0)
	r.ObserveMatch("ok", 20*time.Millisecond)
	r.Passes(4)
	r.Candidates(7)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.BallsTotal.WithLabelValues(metrics.OutcomeAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.BallsTotal.WithLabelValues(metrics.OutcomeRejected)))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.BallsTotal.WithLabelValues(metrics.OutcomeRedundant)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.MatchesTotal.WithLabelValues("ok")))
	assert.Equal(t, 7.0, testutil.ToFloat64(r.CandidateCount))
	assert.Equal(t, 1, testutil.CollectAndCount(r.MatchDuration))

	n, err := testutil.GatherAndCount(reg, "tightsim_dualsim_passes")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecorder_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := metrics.NewRecorder(reg)
	require.NoError(t, err)
	b, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	a.Ball(metrics.OutcomeAccepted)
	b.Ball(metrics.OutcomeAccepted)
	assert.Equal(t, 2.0, testutil.ToFloat64(a.BallsTotal.WithLabelValues(metrics.OutcomeAccepted)))
}

func TestRecorder_Nil(t *testing.T) {
	var r *metrics.Recorder
	assert.NotPanics(t, func() {
		r.Ball(metrics.OutcomeAccepted)
		r.Redundant(2)
		r.ObserveMatch("ok", time.Second)
		r.Passes(1)
		r.Candidates(1)
	})
}
