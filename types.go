package tightsim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tightsim/metrics"
)

// Sentinel errors for tight simulation.
var (
	// ErrGraphNil is returned when Match receives a nil data graph.
	ErrGraphNil = errors.New("tightsim: data graph is nil")

	// ErrQueryNil is returned when Match receives a nil query.
	ErrQueryNil = errors.New("tightsim: query is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tightsim: invalid option supplied")
)

// Result labels reported to metrics.ObserveMatch.
const (
	resultMatched   = "matched"
	resultNoMatch   = "no_match"
	resultError     = "error"
	resultCancelled = "cancelled"
)

// Option configures Match via functional arguments.
type Option func(*Options)

// Options holds the parameters of one Match run.
type Options struct {
	// Ctx is checked between dual-simulation passes and before every ball.
	Ctx context.Context

	// Workers bounds the number of balls validated concurrently.
	Workers int

	// Logger receives structured progress records. Defaults to a discarding logger.
	Logger *logrus.Logger

	// Metrics, if non-nil, records run and ball counters.
	Metrics *metrics.Recorder

	err error
}

// DefaultOptions returns Options with a background context, GOMAXPROCS
// workers, a silent logger and no metrics.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
		Logger:  silent,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds ball validation to n concurrent workers (n ≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger routes progress records to l.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records the run on r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *Options) {
		o.Metrics = r
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
