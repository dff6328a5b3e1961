// SPDX-License-Identifier: MIT

package sweep

import (
	"math"

	"github.com/katalvlaran/hypervolume/front"
)

// Sweeper computes 3D hypervolumes by dimension sweep. It owns one skyline
// tree sized for Capacity points and reuses it across calls.
//
// A Sweeper is not safe for concurrent use.
type Sweeper struct {
	sense    front.Sense
	set      orderedSet
	capacity int
}

// NewSweeper allocates a sweeper for fronts of at most capacity points.
// A non-positive capacity is treated as 1.
func NewSweeper(capacity int, sense front.Sense) *Sweeper {
	if capacity < 1 {
		capacity = 1
	}

	return &Sweeper{sense: sense, set: newTree(capacity, sense), capacity: capacity}
}

// Capacity returns the maximum number of points a single Volume call accepts.
func (s *Sweeper) Capacity() int { return s.capacity }

// Volume returns the hypervolume of pts (first three coordinates) bounded by ref.
//
// Contract:
//   - pts is sorted ascending by OrderByLastImprovement on 3 coordinates,
//     so pts[len-1] holds the best third coordinate.
//   - every point strictly beats ref on the first three coordinates.
//   - len(pts) <= Capacity().
//
// Algorithm:
//  1. Walk the points from the best third coordinate to the worst, keeping
//     the 2D skyline of the points seen so far in the tree (keyed by the
//     first coordinate) together with its area.
//  2. For point p, the ceiling neighbor (closest key not worse than p[0])
//     is the only skyline member that can dominate p in 2D. If it does,
//     p adds no area.
//  3. Otherwise remove the skyline members p dominates (an equal-key ceiling,
//     then predecessors walking backward while p's second coordinate is not
//     worse), subtracting their strips, and add back p's strip and the new
//     strip of its successor.
//  4. Add area × slab to the volume, where the slab reaches down to the next
//     point's third coordinate or to the reference.
//
// The skyline area is kept as a sum of strips: the member h with predecessor
// g contributes |x(h) − x(g)|·|y(h) − ref[1]|, with x(g) = ref[0] for the
// worst key.
//
// Complexity: O(p log p) time, O(1) extra space (tree pool preallocated).
func (s *Sweeper) Volume(pts []front.Point, ref front.Point) float64 {
	if len(pts) == 0 {
		return 0
	}
	var (
		set    = s.set
		rx, ry = ref[0], ref[1]
		area   float64
		volume float64
	)
	defer set.reset()

	// strip is the area owned by skyline member h.
	strip := func(h int) float64 {
		x, y := set.key(h)
		bound := rx
		if g := set.prev(h); g != none {
			bound, _ = set.key(g)
		}

		return math.Abs(x-bound) * math.Abs(y-ry)
	}

	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		x, y := p[0], p[1]

		succ := set.ceiling(x)
		dominated := false
		if succ != none {
			_, sy := set.key(succ)
			dominated = s.sense.BeatsEq(sy, y)
		}

		if !dominated {
			// right is p's successor once p is in the skyline; an equal-key
			// ceiling is dominated by p and goes away.
			right := succ
			if succ != none {
				if sx, _ := set.key(succ); sx == x {
					right = set.next(succ)
				}
			}
			var oldRight float64
			if right != none {
				oldRight = strip(right)
			}
			if right != succ {
				area -= strip(succ)
				set.remove(succ)
			}

			left := set.floor(x)
			for left != none {
				_, ly := set.key(left)
				if !s.sense.BeatsEq(y, ly) {
					break
				}
				g := set.prev(left)
				area -= strip(left)
				set.remove(left)
				left = g
			}

			bound := rx
			if left != none {
				bound, _ = set.key(left)
			}
			area += math.Abs(x-bound) * math.Abs(y-ry)
			if right != none {
				kx, ky := set.key(right)
				area += math.Abs(kx-x)*math.Abs(ky-ry) - oldRight
			}
			set.insert(x, y)
		}

		next := ref[2]
		if i > 0 {
			next = pts[i-1][2]
		}
		volume += area * math.Abs(p[2]-next)
	}

	return volume
}
