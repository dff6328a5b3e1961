// SPDX-License-Identifier: MIT

// Validation helpers shared by the hypervolume façades.
//
// All checks are pure and allocate nothing; they return plain sentinels
// wrapped with the offending position so call sites can match with errors.Is.

package front

import (
	"fmt"
	"math"
)

// Validate checks that f is non-nil, non-empty and holds only finite values.
//
// Errors: ErrEmptyFront, ErrNaNInf.
// Complexity: O(p·n).
func Validate(f *Front) error {
	if f == nil || f.Len() == 0 {
		return ErrEmptyFront
	}
	var i, j int
	for i = 0; i < f.n; i++ {
		for j = 0; j < f.cols; j++ {
			if isNonFinite(f.points[i][j]) {
				return fmt.Errorf("front: point %d objective %d: %w", i, j, ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateReference checks that ref has exactly n finite coordinates.
//
// Errors: ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(n).
func ValidateReference(ref Point, n int) error {
	if len(ref) != n {
		return fmt.Errorf("front: reference has %d objectives, front has %d: %w", len(ref), n, ErrDimensionMismatch)
	}
	for i, v := range ref {
		if isNonFinite(v) {
			return fmt.Errorf("front: reference objective %d: %w", i, ErrNaNInf)
		}
	}

	return nil
}

// StrictlyBeats reports whether p beats ref on every one of the first n coordinates.
// Points failing this test enclose no volume with ref.
func (s Sense) StrictlyBeats(p, ref Point, n int) bool {
	for i := 0; i < n; i++ {
		if !s.Beats(p[i], ref[i]) {
			return false
		}
	}

	return true
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
