// SPDX-License-Identifier: MIT
//
// File: match.go
// Role: The tight-simulation pipeline: dual simulation, match graph, then
// one ball per candidate center, validated concurrently.
// Determinism:
//   - The returned balls are sorted by center; the set itself does not
//     depend on the worker count or scheduling.
// Concurrency:
//   - Workers share the match graph and candidate map read-only; each owns
//     the ball it extracts. Accepted balls are appended under one mutex.
// AI-HINT (file):
//   - A missing match is a nil slice with a nil error.
//   - Cancellation surfaces as ctx.Err(), possibly wrapped.

package tightsim

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tightsim/ball"
	"github.com/katalvlaran/tightsim/core"
	"github.com/katalvlaran/tightsim/dualsim"
	"github.com/katalvlaran/tightsim/metrics"
	"github.com/katalvlaran/tightsim/query"
)

var tracer = otel.Tracer("tightsim")

// Match returns every tight-simulation ball of q in data, sorted by center.
//
// Implementation:
//   - Stage 1: dual simulation of q over data; an empty map ends the run.
//   - Stage 2: match graph of the result.
//   - Stage 3: for each candidate of q's selected center, extract the ball of
//     q's radius and keep it if the dual filter accepts it.
//
// The balls are not filtered for redundancy; see Filter.
func Match(data core.View, q *query.Query, opts ...Option) ([]*ball.Ball, error) {
	if data == nil {
		return nil, ErrGraphNil
	}
	if q == nil {
		return nil, ErrQueryNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	runID := uuid.New()
	log := o.Logger.WithFields(logrus.Fields{
		"run_id":       runID.String(),
		"query_size":   q.Size(),
		"query_radius": q.Radius(),
		"query_center": q.Center(),
	})
	ctx, span := tracer.Start(o.Ctx, "tightsim.Match", trace.WithAttributes(
		attribute.String("run_id", runID.String()),
		attribute.Int("data.vertices", data.VertexCount()),
		attribute.Int("query.vertices", q.Size()),
		attribute.Int("query.radius", q.Radius()),
	))
	defer span.End()

	start := time.Now()
	balls, err := run(ctx, data, q, o, log, span)
	elapsed := time.Since(start)

	switch {
	case err != nil:
		result := resultError
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			result = resultCancelled
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.Metrics.ObserveMatch(result, elapsed)
		log.WithError(err).Warn("match aborted")
		return nil, err
	case len(balls) == 0:
		o.Metrics.ObserveMatch(resultNoMatch, elapsed)
	default:
		o.Metrics.ObserveMatch(resultMatched, elapsed)
	}
	span.SetAttributes(attribute.Int("balls", len(balls)))
	log.WithFields(logrus.Fields{"balls": len(balls), "elapsed": elapsed}).Info("match finished")

	return balls, nil
}

func run(ctx context.Context, data core.View, q *query.Query, o Options, log *logrus.Entry, span trace.Span) ([]*ball.Ball, error) {
	passes := 0
	m, err := dualsim.Compute(data, q.Graph(),
		dualsim.WithContext(ctx),
		dualsim.WithOnPass(func(pass int, _ []int) { passes = pass }),
	)
	if err != nil {
		return nil, fmt.Errorf("tightsim: dual simulation: %w", err)
	}
	o.Metrics.Passes(passes)
	if m.Empty() {
		log.WithField("passes", passes).Debug("dual simulation empty")
		return nil, nil
	}

	mg, err := dualsim.MatchGraph(data, q.Graph(), m)
	if err != nil {
		return nil, fmt.Errorf("tightsim: match graph: %w", err)
	}
	centers := m.Candidates(q.Center())
	o.Metrics.Candidates(len(centers))
	span.SetAttributes(
		attribute.Int("match_graph.vertices", mg.VertexCount()),
		attribute.Int("match_graph.edges", mg.EdgeCount()),
		attribute.Int("centers", len(centers)),
	)
	log.WithFields(logrus.Fields{
		"passes":      passes,
		"mg_vertices": mg.VertexCount(),
		"mg_edges":    mg.EdgeCount(),
		"centers":     len(centers),
	}).Debug("match graph built")

	return validate(ctx, mg, q, m, centers, o, log)
}

// validate runs extraction and the dual filter for every center on a bounded
// worker pool and returns the accepted balls sorted by center.
func validate(ctx context.Context, mg core.View, q *query.Query, m *dualsim.CandidateMap,
	centers []int, o Options, log *logrus.Entry) ([]*ball.Ball, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)

	var (
		mu       sync.Mutex
		accepted []*ball.Ball
	)
	for _, c := range centers {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := ball.Extract(mg, c, q.Radius(), ball.WithContext(gctx))
			if err != nil {
				return fmt.Errorf("tightsim: ball %d: %w", c, err)
			}
			ok, err := b.DualFilter(q, m, ball.WithContext(gctx))
			if err != nil {
				return fmt.Errorf("tightsim: dual filter %d: %w", c, err)
			}
			if !ok {
				o.Metrics.Ball(metrics.OutcomeRejected)
				log.WithField("center", c).Trace("ball rejected")
				return nil
			}
			o.Metrics.Ball(metrics.OutcomeAccepted)
			mu.Lock()
			accepted = append(accepted, b)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// the loop may have stopped early without any worker failing
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(accepted, func(a, b *ball.Ball) int { return a.Center() - b.Center() })

	return accepted, nil
}
