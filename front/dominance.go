// SPDX-License-Identifier: MIT

package front

// Beats reports whether a is strictly better than b under s.
// Complexity: O(1).
func (s Sense) Beats(a, b float64) bool {
	if s == Minimize {
		return a < b
	}

	return a > b
}

// BeatsEq reports whether a is at least as good as b under s.
// Complexity: O(1).
func (s Sense) BeatsEq(a, b float64) bool {
	if s == Minimize {
		return a <= b
	}

	return a >= b
}

// Worse returns the worse of a and b (a on ties).
func (s Sense) Worse(a, b float64) float64 {
	if s.Beats(b, a) {
		return a
	}

	return b
}

// Better returns the better of a and b (b on ties).
func (s Sense) Better(a, b float64) float64 {
	if s.Beats(b, a) {
		return b
	}

	return a
}

// Compare performs the full pairwise dominance check of p against q on the
// first n coordinates.
//
// Implementation:
//   - Stage 1: scan coordinates from n-1 down to 0 until one point beats the other.
//   - Stage 2: check that the loser never beats the winner on any remaining
//     (lower) coordinate; if it does, the pair is Incomparable.
//   - If no coordinate differs, the points are Equal.
//
// Contract: len(p) >= n and len(q) >= n (not checked; hot path).
//
// Complexity: O(n) time, O(1) space.
func (s Sense) Compare(p, q Point, n int) Dominance {
	var i, j int
	for i = n - 1; i >= 0; i-- {
		if s.Beats(p[i], q[i]) {
			// p wins on i: q must not win anywhere below.
			for j = i - 1; j >= 0; j-- {
				if s.Beats(q[j], p[j]) {
					return Incomparable
				}
			}

			return Dominates
		}
		if s.Beats(q[i], p[i]) {
			// q wins on i: p must not win anywhere below.
			for j = i - 1; j >= 0; j-- {
				if s.Beats(p[j], q[j]) {
					return Incomparable
				}
			}

			return Dominated
		}
	}

	return Equal
}

// OrderByLastImprovement is the total order used to sort a front before
// slicing. Coordinates are compared from n-1 down to 0 and the first
// non-tied comparison decides: it returns 1 when p beats q, -1 when q beats p
// and 0 when the points are equal on the first n coordinates.
//
// Sorting ascending with this function places points "improving in the last
// objective": index 0 holds the worst value of coordinate n-1.
//
// Complexity: O(n).
func (s Sense) OrderByLastImprovement(p, q Point, n int) int {
	for i := n - 1; i >= 0; i-- {
		if s.Beats(p[i], q[i]) {
			return 1
		}
		if s.Beats(q[i], p[i]) {
			return -1
		}
	}

	return 0
}

// Compare is Maximize.Compare on all coordinates of p.
// It is a convenience for the default convention; p and q must have equal length.
func Compare(p, q Point) Dominance {
	return Maximize.Compare(p, q, len(p))
}
