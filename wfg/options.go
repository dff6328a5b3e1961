// SPDX-License-Identifier: MIT

package wfg

import "github.com/katalvlaran/hypervolume/front"

const (
	panicStrategyInvalid  = "wfg: WithStrategy: unknown strategy"
	panicSenseInvalid     = "wfg: WithSense: unknown sense"
	panicMaxPointsInvalid = "wfg: WithMaxPoints: limit must be non-negative"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// WithStrategy selects the recursion specialization.
func WithStrategy(s Strategy) Option {
	if s < Plain || s > TreeSweep {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.Strategy = s }
}

// WithSense selects maximization or minimization.
func WithSense(s front.Sense) Option {
	if !s.Valid() {
		panic(panicSenseInvalid)
	}

	return func(o *Options) { o.Sense = s }
}

// WithMinimize is shorthand for WithSense(front.Minimize).
func WithMinimize() Option {
	return func(o *Options) { o.Sense = front.Minimize }
}

// WithMaxPoints caps the front size scratch may be allocated for (0 = unlimited).
func WithMaxPoints(limit int) Option {
	if limit < 0 {
		panic(panicMaxPointsInvalid)
	}

	return func(o *Options) { o.MaxPoints = limit }
}

// WithOptions replaces every field with the values of opts.
// It lets callers holding an Options struct (e.g. from configuration) reuse
// the functional entry points.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

// ResolveOptions applies opts over DefaultOptions and validates the result,
// exactly as Compute and NewComputation do.
//
// Errors: ErrUnknownStrategy, ErrUnknownSense, ErrAllocation.
func ResolveOptions(opts ...Option) (Options, error) {
	return gatherOptions(opts)
}

// gatherOptions applies setters over the defaults and validates the result.
func gatherOptions(setters []Option) (Options, error) {
	o := DefaultOptions()
	for _, set := range setters {
		if set != nil {
			set(&o)
		}
	}
	if o.Strategy < Plain || o.Strategy > TreeSweep {
		return Options{}, ErrUnknownStrategy
	}
	if !o.Sense.Valid() {
		return Options{}, ErrUnknownSense
	}
	if o.MaxPoints < 0 {
		return Options{}, ErrAllocation
	}

	return o, nil
}
