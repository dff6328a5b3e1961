// SPDX-License-Identifier: MIT

package front

import "errors"

// Sentinel errors returned by the front package.
// Every message is prefixed with "front: ..."; match with errors.Is.
var (
	// ErrBadShape is returned when a requested shape is invalid
	// (non-positive point or objective count, or a flat slice of the wrong length).
	ErrBadShape = errors.New("front: invalid shape")

	// ErrEmptyFront indicates that no points were supplied.
	ErrEmptyFront = errors.New("front: front has no points")

	// ErrRaggedRows indicates that the rows of a front have different lengths.
	ErrRaggedRows = errors.New("front: rows have uneven lengths")

	// ErrDimensionMismatch indicates that a point (usually the reference point)
	// does not have the same number of objectives as the front.
	ErrDimensionMismatch = errors.New("front: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf coordinate.
	ErrNaNInf = errors.New("front: NaN or Inf encountered")
)

// Sense is the strict order that decides which of two objective values is better.
//
//   - Maximize — larger values are better (a > b). This is the default.
//   - Minimize — smaller values are better (a < b).
type Sense int

const (
	// Maximize treats larger objective values as better.
	Maximize Sense = iota

	// Minimize treats smaller objective values as better.
	Minimize
)

// String implements fmt.Stringer.
func (s Sense) String() string {
	switch s {
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the known senses.
func (s Sense) Valid() bool {
	return s == Maximize || s == Minimize
}

// Dominance is the outcome of a pairwise dominance check between p and q.
type Dominance int

const (
	// Incomparable — each point beats the other on at least one objective.
	Incomparable Dominance = iota

	// Dominates — p is at least as good as q everywhere and strictly better somewhere.
	Dominates

	// Dominated — q dominates p.
	Dominated

	// Equal — all coordinates are equal.
	Equal
)

// String implements fmt.Stringer.
func (d Dominance) String() string {
	switch d {
	case Incomparable:
		return "incomparable"
	case Dominates:
		return "dominates"
	case Dominated:
		return "dominated"
	case Equal:
		return "equal"
	default:
		return "unknown"
	}
}

// Inverse returns the outcome of the same check with the arguments swapped.
func (d Dominance) Inverse() Dominance {
	switch d {
	case Dominates:
		return Dominated
	case Dominated:
		return Dominates
	default:
		return d
	}
}
