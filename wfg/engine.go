// SPDX-License-Identifier: MIT

package wfg

import (
	"math"
	"slices"

	"github.com/katalvlaran/hypervolume/front"
)

// hv returns the hypervolume of ps on its first w objectives, bounded by c.ref.
//
// Algorithm (Sliced/TreeSweep):
//  1. Sort ps ascending by OrderByLastImprovement on w objectives.
//  2. w == 2 → planar; w == 3 with TreeSweep → dimension sweep.
//  3. Otherwise treat objective w-1 as a height: walking from the best
//     point to the worst, add |p[w-1] − ref[w-1]| times the exclusive
//     volume of p on the first w-1 objectives relative to the later points.
//
// Plain and Sorted sum the exclusive volumes on all w objectives instead.
//
// Recursion ends because every level either reaches a base case, drops one
// objective, or works on a strictly smaller limit set.
func (c *Computation) hv(ps *front.Front, w int) float64 {
	var (
		pts    = ps.Points()
		sense  = c.opts.Sense
		volume float64
	)
	if w == 1 {
		return linear(pts, c.ref, sense)
	}

	if c.opts.Strategy != Plain {
		slices.SortFunc(pts, func(p, q front.Point) int { return sense.OrderByLastImprovement(p, q, w) })
		if w == 2 {
			return planar(pts, c.ref, sense)
		}
	}

	if !c.opts.Strategy.slicing() {
		for i := range pts {
			volume += c.exclusive(ps, i, w)
		}

		return volume
	}

	if w == 3 && c.opts.Strategy == TreeSweep {
		return c.sweeper.Volume(pts, c.ref)
	}

	last := w - 1
	for i := len(pts) - 1; i >= 0; i-- {
		volume += math.Abs(pts[i][last]-c.ref[last]) * c.exclusive(ps, i, last)
	}

	return volume
}

// exclusive returns the volume dominated by ps[i] on the first w objectives
// and by none of ps[i+1:].
func (c *Computation) exclusive(ps *front.Front, i, w int) float64 {
	volume := inclusive(ps.Point(i), c.ref, w)
	if i+1 < ps.Len() {
		bit := c.dominatedBit(ps, i, w)
		volume -= c.hv(bit, w)
		c.scratch.release()
	}

	return volume
}

// dominatedBit builds, in the next arena slot, the limit set of ps[p]
// against ps[p+1:] on w objectives with dominated points removed.
// The caller must release the slot when done with it.
func (c *Computation) dominatedBit(ps *front.Front, p, w int) *front.Front {
	pts := ps.Points()
	bit := c.scratch.acquire()
	limitSet(bit, pts[p], pts[p+1:], w, c.opts.Sense)

	return bit
}

// limitSet writes into dst, for every point q of others, the point whose
// coordinates are the worse of pivot and q, then reduces dst to its
// non-dominated subset in a single pass.
//
// Reduction: candidate i is folded against the kept prefix dst[0:kept]:
//   - candidate dominates kept j → swap-remove j (kept shrinks, j re-checked);
//   - kept j dominates or equals the candidate → drop the candidate;
//   - incomparable → next kept point.
//
// A surviving candidate is swapped into position kept. Equal points are
// dropped like dominated ones, so dst never holds duplicates.
//
// Complexity: O(k²·w) for k = len(others).
func limitSet(dst *front.Front, pivot front.Point, others []front.Point, w int, sense front.Sense) {
	var (
		z    = len(others)
		i, j int
		kept int
		keep bool
	)
	dst.Truncate(z)
	out := dst.Points()
	for i = 0; i < z; i++ {
		for j = 0; j < w; j++ {
			out[i][j] = sense.Worse(pivot[j], others[i][j])
		}
	}
	if z == 0 {
		return
	}

	kept = 1
	for i = 1; i < z; i++ {
		j, keep = 0, true
		for j < kept && keep {
			switch sense.Compare(out[i], out[j], w) {
			case front.Dominates:
				kept--
				out[j], out[kept] = out[kept], out[j]
			case front.Incomparable:
				j++
			default: // Dominated or Equal
				keep = false
			}
		}
		if keep {
			out[kept], out[i] = out[i], out[kept]
			kept++
		}
	}
	dst.Truncate(kept)
}
