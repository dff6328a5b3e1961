// SPDX-License-Identifier: MIT

package wfg

import (
	"fmt"

	"github.com/katalvlaran/hypervolume/front"
	"github.com/katalvlaran/hypervolume/sweep"
)

// Computation owns every piece of scratch a hypervolume computation needs:
// the working copy of the front, the depth-indexed arena and the 3D sweeper.
// It is sized once and reused across fronts of at most MaxPoints points.
//
// A Computation is not safe for concurrent use; give each goroutine its own.
type Computation struct {
	opts       Options
	objectives int
	maxPoints  int

	ref     front.Point    // private copy of the current reference point
	work    *front.Front   // filtered working copy of the caller's front
	orig    []int          // work index → caller index
	scratch *arena         // limit-set slots, one per recursion depth
	sweeper *sweep.Sweeper // nil unless TreeSweep with ≥ 3 objectives
	top     *front.Front   // width-n limit set for Contributions, lazily built
}

// NewComputation allocates a reusable computation for fronts with the given
// number of objectives and at most maxPoints points.
//
// Stage 1 (Validate): objectives ≥ 1, maxPoints ≥ 1, options well-formed,
// maxPoints within Options.MaxPoints when that limit is set.
// Stage 2 (Prepare): size and allocate the arena, the working copy and,
// for TreeSweep with three or more objectives, the sweeper.
//
// Errors: ErrBadShape, ErrAllocation, ErrUnknownStrategy, ErrUnknownSense.
func NewComputation(objectives, maxPoints int, opts ...Option) (*Computation, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if objectives < 1 || maxPoints < 1 {
		return nil, ErrBadShape
	}
	if o.MaxPoints > 0 && maxPoints > o.MaxPoints {
		return nil, fmt.Errorf("wfg: %d points exceed the limit of %d: %w", maxPoints, o.MaxPoints, ErrAllocation)
	}

	scratch, err := newArena(o.Strategy, objectives, maxPoints)
	if err != nil {
		return nil, err
	}
	work, err := front.NewFront(maxPoints, objectives)
	if err != nil {
		return nil, fmt.Errorf("wfg: working copy: %w", ErrAllocation)
	}

	c := &Computation{
		opts:       o,
		objectives: objectives,
		maxPoints:  maxPoints,
		ref:        make(front.Point, objectives),
		work:       work,
		orig:       make([]int, maxPoints),
		scratch:    scratch,
	}
	if o.Strategy == TreeSweep && objectives >= 3 {
		c.sweeper = sweep.NewSweeper(maxPoints, o.Sense)
	}

	return c, nil
}

// Objectives returns the number of objectives the computation was built for.
func (c *Computation) Objectives() int { return c.objectives }

// MaxPoints returns the largest front the computation accepts.
func (c *Computation) MaxPoints() int { return c.maxPoints }

// Options returns the effective options.
func (c *Computation) Options() Options { return c.opts }

// Hypervolume returns the volume of the region dominated by f and bounded by ref.
//
// Points that do not strictly beat ref in every objective enclose no volume
// and are ignored; when none remain the volume is 0. f is not modified.
//
// Errors: ErrEmptyFront, ErrNaNInf, ErrDimensionMismatch (f or ref with the
// wrong number of objectives), ErrAllocation (f larger than MaxPoints).
func (c *Computation) Hypervolume(f *front.Front, ref front.Point) (float64, error) {
	if err := c.load(f, ref); err != nil {
		return 0, err
	}
	if c.work.Len() == 0 {
		return 0, nil
	}

	return c.hv(c.work, c.objectives), nil
}

// Contributions returns, for every point of f, the volume that point
// dominates alone: the hypervolume of f minus the hypervolume of f without
// that point. Dominated points, duplicates and points not beating ref
// contribute 0.
//
// Errors: as for Hypervolume.
// Complexity: one exclusive-volume computation per point.
func (c *Computation) Contributions(f *front.Front, ref front.Point) ([]float64, error) {
	if err := c.load(f, ref); err != nil {
		return nil, err
	}
	out := make([]float64, f.Len())
	m := c.work.Len()
	if m == 0 {
		return out, nil
	}
	if c.top == nil {
		top, err := front.NewFront(max(c.maxPoints-1, 1), c.objectives)
		if err != nil {
			return nil, fmt.Errorf("wfg: contribution slot: %w", ErrAllocation)
		}
		c.top = top
	}

	pts := c.work.Points()
	for k := 0; k < m; k++ {
		// Move point k to the front so the remainder is every other point.
		pts[0], pts[k] = pts[k], pts[0]
		c.orig[0], c.orig[k] = c.orig[k], c.orig[0]

		volume := inclusive(pts[0], c.ref, c.objectives)
		if m > 1 {
			limitSet(c.top, pts[0], pts[1:], c.objectives, c.opts.Sense)
			volume -= c.hv(c.top, c.objectives)
		}
		out[c.orig[0]] = volume

		pts[0], pts[k] = pts[k], pts[0]
		c.orig[0], c.orig[k] = c.orig[k], c.orig[0]
	}

	return out, nil
}

// load validates f and ref and fills the working copy with the points of f
// that strictly beat ref.
func (c *Computation) load(f *front.Front, ref front.Point) error {
	if err := front.Validate(f); err != nil {
		return err
	}
	if f.Objectives() != c.objectives {
		return fmt.Errorf("wfg: front has %d objectives, computation expects %d: %w",
			f.Objectives(), c.objectives, ErrDimensionMismatch)
	}
	if f.Len() > c.maxPoints {
		return fmt.Errorf("wfg: front has %d points, computation holds %d: %w", f.Len(), c.maxPoints, ErrAllocation)
	}
	if err := front.ValidateReference(ref, c.objectives); err != nil {
		return err
	}

	copy(c.ref, ref)
	c.work.Reset()
	for i, p := range f.Points() {
		if c.opts.Sense.StrictlyBeats(p, c.ref, c.objectives) {
			c.orig[c.work.Len()] = i
			c.work.Push(p)
		}
	}

	return nil
}

// Compute returns the hypervolume of f bounded by ref using a fresh
// Computation sized for f.
//
// Errors: ErrEmptyFront, ErrNaNInf, ErrDimensionMismatch, ErrAllocation,
// ErrUnknownStrategy, ErrUnknownSense.
//
// Complexity: worst case exponential in the number of objectives; the
// arena is allocated once, up front.
func Compute(f *front.Front, ref front.Point, opts ...Option) (float64, error) {
	if err := front.Validate(f); err != nil {
		return 0, err
	}
	// Check ref before sizing scratch for f.
	if err := front.ValidateReference(ref, f.Objectives()); err != nil {
		return 0, err
	}
	c, err := NewComputation(f.Objectives(), f.Len(), opts...)
	if err != nil {
		return 0, err
	}

	return c.Hypervolume(f, ref)
}

// ComputeFlat is the flat-array form of Compute: values holds points rows of
// objectives coordinates each, and the reference point is the origin.
//
// Errors: ErrBadShape when the counts are non-positive, their product
// overflows, or len(values) != objectives*points, otherwise as for Compute.
func ComputeFlat(objectives, points int, values []float64, opts ...Option) (float64, error) {
	f, err := front.FromFlat(objectives, points, values)
	if err != nil {
		return 0, err
	}

	return Compute(f, make(front.Point, objectives), opts...)
}
