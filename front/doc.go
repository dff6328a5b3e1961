// SPDX-License-Identifier: MIT

// Package front defines the geometry primitives shared by every hypervolume
// algorithm in this module: points, fronts and the dominance relation.
//
// 🚀 What is a front?
//
//	A front is a set of candidate solutions of a multi-objective optimizer,
//	each described by n objective values. Fronts are stored row-major in a
//	single flat slice; the rows are exposed as Point views that can be
//	permuted in place without copying coordinates.
//
// ✨ Key features:
//   - Sense: a pluggable strict order (Maximize ">" or Minimize "<"),
//     so every comparison is written once for both conventions.
//   - Compare: full pairwise dominance check returning one of four outcomes.
//   - OrderByLastImprovement: the total order used to sort a front before
//     slicing; it agrees with Compare on the first differing coordinate.
//   - Validate / ValidateReference: shape and finiteness guards.
//
// ⚙️ Usage:
//
//	f, err := front.FromRows([][]float64{{1, 3}, {2, 2}, {3, 1}})
//	if err != nil {
//		// handle ErrEmptyFront or ErrRaggedRows
//	}
//	d := front.Maximize.Compare(f.Point(0), f.Point(1), f.Objectives())
//	fmt.Println(d) // incomparable
//
// Complexity:
//
//   - Compare, OrderByLastImprovement: O(n)
//   - FromRows, FromFlat, Clone:       O(p·n)
package front
