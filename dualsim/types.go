// Package dualsim provides options and error definitions for dual simulation.
package dualsim

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for dual simulation.
var (
	// ErrGraphNil is returned when the data graph is nil.
	ErrGraphNil = errors.New("dualsim: data graph is nil")

	// ErrQueryNil is returned when the query graph is nil.
	ErrQueryNil = errors.New("dualsim: query graph is nil")

	// ErrQueryNotDense is returned when query IDs are not exactly 0..n-1.
	ErrQueryNotDense = errors.New("dualsim: query vertex IDs must be dense")

	// ErrOrderMismatch is returned when a candidate map is too small for the graph it refines against.
	ErrOrderMismatch = errors.New("dualsim: candidate map does not cover the graph's ID space")

	// ErrPassLimit is returned when the fixpoint did not converge within WithMaxPasses.
	ErrPassLimit = errors.New("dualsim: pass limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dualsim: invalid option supplied")
)

// Option configures Compute and Refine via functional arguments.
type Option func(*Options)

// Options holds the parameters of one fixpoint run.
type Options struct {
	// Ctx allows cancellation; it is checked once before every pass.
	Ctx context.Context

	// OnPass is called after every completed pass with the 1-based pass
	// number and the candidate-set sizes indexed by query vertex.
	// The slice is owned by the callee for the duration of the call only.
	OnPass func(pass int, sizes []int)

	// MaxPasses, if > 0, bounds the number of passes. 0 means unlimited.
	MaxPasses int

	err error
}

// DefaultOptions returns Options with a background context, no hook and no pass limit.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnPass: func(int, []int) {},
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

// WithOnPass registers a per-pass observer.
func WithOnPass(fn func(pass int, sizes []int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// WithMaxPasses bounds the number of refinement passes (n > 0), or removes
// the bound (n == 0). Negative values are rejected with ErrOptionViolation.
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPasses cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPasses = n
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
