// SPDX-License-Identifier: MIT

// Package wfg computes the exact hypervolume of a front with the WFG
// algorithm (While, Bradstreet, Barone).
//
// 🚀 What is the hypervolume?
//
//	For a set of points in objective space and a reference point that every
//	point beats, the hypervolume is the measure of the region dominated by
//	at least one point and bounded by the reference. It is the standard
//	quality indicator for multi-objective optimizers:
//	  • comparing Pareto-front approximations
//	  • archive truncation (drop the point with the least contribution)
//	  • indicator-based selection
//
// ✨ Key features:
//   - exclusive volume = inclusive box − hypervolume of the limit set
//   - slicing: the last objective becomes a height factor, so every level
//     of the recursion drops one objective
//   - base cases: planar staircase (2 objectives) and dimension sweep over a
//     balanced skyline tree (3 objectives, package sweep)
//   - all scratch preallocated once in a depth-indexed arena
//   - Strategy chooses any subset of the specializations at run time
//   - Maximize (default) or Minimize through front.Sense
//   - per-point exclusive contributions
//
// ⚙️ Usage:
//
//	import (
//		"github.com/katalvlaran/hypervolume/front"
//		"github.com/katalvlaran/hypervolume/wfg"
//	)
//
//	f, _ := front.FromRows([][]float64{{1, 3}, {2, 2}, {3, 1}})
//	hv, err := wfg.Compute(f, front.Point{0, 0})
//	// hv == 6
//
//	// Reuse scratch across many fronts of up to 500 points:
//	c, err := wfg.NewComputation(4, 500, wfg.WithMinimize())
//	hv, err = c.Hypervolume(next, ref)
//
// Performance:
//
//   - Time:   exponential in the number of objectives in the worst case;
//     O(p log p) for 3 objectives with TreeSweep, O(p log p) for 2.
//   - Memory: O(p·n²) float64 values for the arena with slicing,
//     O(p²·n) without.
package wfg
