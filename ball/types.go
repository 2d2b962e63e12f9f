package ball

import (
	"context"
	"errors"
)

// Sentinel errors for ball extraction.
var (
	// ErrGraphNil is returned when Extract receives a nil match graph.
	ErrGraphNil = errors.New("ball: match graph is nil")

	// ErrCenterNotFound is returned when the center is not a vertex of the match graph.
	ErrCenterNotFound = errors.New("ball: center not in match graph")

	// ErrNegativeRadius is returned for radius < 0.
	ErrNegativeRadius = errors.New("ball: radius cannot be negative")

	// ErrQueryNil is returned when DualFilter receives a nil query.
	ErrQueryNil = errors.New("ball: query is nil")
)

// Option configures Extract and DualFilter.
type Option func(*Options)

// Options holds the parameters shared by Extract and DualFilter.
type Options struct {
	// Ctx is polled by the BFS walker and between refinement passes.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
