// SPDX-License-Identifier: MIT

package wfg

import (
	"math"

	"github.com/katalvlaran/hypervolume/front"
)

// planar returns the hypervolume of a two-objective front bounded by ref.
//
// Contract: pts is sorted ascending by OrderByLastImprovement on 2
// coordinates (improving in the second objective) and every point strictly
// beats ref.
//
// Walking from the best second objective down, each point whose first
// objective improves on the best seen so far adds the strip
// |x − bound|·|y − ref[1]|. On a non-dominated front this is the running sum
// of rectangles |x0 − r0|·|y0 − r1| + Σ |xi − r0|·|yi − y(i−1)| taken in the
// other direction; dominated or duplicate points add nothing.
//
// Complexity: O(p).
func planar(pts []front.Point, ref front.Point, sense front.Sense) float64 {
	var (
		volume float64
		bound  = ref[0]
		x      float64
	)
	for i := len(pts) - 1; i >= 0; i-- {
		x = pts[i][0]
		if sense.Beats(x, bound) {
			volume += math.Abs(x-bound) * math.Abs(pts[i][1]-ref[1])
			bound = x
		}
	}

	return volume
}

// linear returns the one-objective hypervolume: the improvement of the best
// point over ref.
func linear(pts []front.Point, ref front.Point, sense front.Sense) float64 {
	best := ref[0]
	for _, p := range pts {
		best = sense.Better(best, p[0])
	}

	return math.Abs(best - ref[0])
}

// Inclusive returns the volume of the axis-aligned box between p and ref:
// the product of |p[i] − ref[i]| over the coordinates of p.
// ref must have at least len(p) coordinates.
//
// Complexity: O(n).
func Inclusive(p, ref front.Point) float64 {
	return inclusive(p, ref, len(p))
}

func inclusive(p, ref front.Point, n int) float64 {
	volume := 1.0
	for i := 0; i < n; i++ {
		volume *= math.Abs(p[i] - ref[i])
	}

	return volume
}
