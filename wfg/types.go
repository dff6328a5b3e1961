// SPDX-License-Identifier: MIT

package wfg

import (
	"errors"

	"github.com/katalvlaran/hypervolume/front"
)

// Sentinel errors returned by the wfg package. The shape and value errors
// alias their front counterparts so errors.Is works with either name.
var (
	// ErrEmptyFront indicates that the input front has no points.
	ErrEmptyFront = front.ErrEmptyFront

	// ErrDimensionMismatch indicates that the reference point, or a front
	// handed to a reusable Computation, has the wrong number of objectives.
	ErrDimensionMismatch = front.ErrDimensionMismatch

	// ErrNaNInf indicates a NaN or ±Inf coordinate in the front or the reference.
	ErrNaNInf = front.ErrNaNInf

	// ErrBadShape indicates non-positive objective or point counts, or a flat
	// value slice whose length is not objectives*points.
	ErrBadShape = front.ErrBadShape

	// ErrAllocation indicates that the scratch arena cannot be sized: the
	// request exceeds the configured MaxPoints, overflows, or a reusable
	// Computation is handed a front larger than it was built for.
	ErrAllocation = errors.New("wfg: scratch arena allocation failed")

	// ErrUnknownStrategy indicates an Options value with an undefined Strategy.
	ErrUnknownStrategy = errors.New("wfg: unknown strategy")

	// ErrUnknownSense indicates an Options value with an undefined Sense.
	ErrUnknownSense = errors.New("wfg: unknown sense")
)

// Strategy selects how far the WFG recursion is specialized.
//
//   - Plain     — unsorted WFG: every exclusive volume recurses on the full
//     number of objectives until single points remain.
//   - Sorted    — sorts by OrderByLastImprovement before each level and uses
//     the planar base case for two objectives.
//   - Sliced    — Sorted plus slicing: the last objective becomes a height
//     factor, so every level drops one objective.
//   - TreeSweep — Sliced with the 3D dimension-sweep base case (default).
//
// All strategies compute the same volume; they differ in speed and memory.
type Strategy int

const (
	// Plain is the unsorted reference recursion.
	Plain Strategy = iota

	// Sorted adds sorting and the planar base case.
	Sorted

	// Sliced adds slicing of the last objective.
	Sliced

	// TreeSweep adds the 3D sweep base case.
	TreeSweep
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Plain:
		return "plain"
	case Sorted:
		return "sorted"
	case Sliced:
		return "sliced"
	case TreeSweep:
		return "treesweep"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a name produced by String back to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range []Strategy{Plain, Sorted, Sliced, TreeSweep} {
		if s.String() == name {
			return s, nil
		}
	}

	return 0, ErrUnknownStrategy
}

// slicing reports whether s drops one objective per recursion level.
func (s Strategy) slicing() bool { return s == Sliced || s == TreeSweep }

// Options configures a hypervolume computation.
//
// Fields:
//   - Strategy  — recursion specialization (default TreeSweep).
//   - Sense     — front.Maximize (default) or front.Minimize.
//   - MaxPoints — upper bound on the front size a computation may allocate
//     scratch for; 0 means unlimited. Larger fronts fail with ErrAllocation.
type Options struct {
	Strategy  Strategy
	Sense     front.Sense
	MaxPoints int
}

// DefaultOptions returns the fastest configuration under maximization.
//
// Defaults:
//   - Strategy:  TreeSweep
//   - Sense:     front.Maximize
//   - MaxPoints: 0 (unlimited)
func DefaultOptions() Options {
	return Options{
		Strategy:  TreeSweep,
		Sense:     front.Maximize,
		MaxPoints: 0,
	}
}
