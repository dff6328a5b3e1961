// SPDX-License-Identifier: MIT

package front

import (
	"fmt"
	"math"
	"strings"
)

// Point is one objective vector. Inside a Front it is a view into the
// front's flat storage, so writing through it mutates the front.
type Point []float64

// Clone returns a deep copy of p.
func (p Point) Clone() Point {
	cp := make(Point, len(p))
	copy(cp, p)

	return cp
}

// Front is a row-major set of points sharing the same number of objectives.
//
// Storage is a flat slice of capacity×objectives values; the points slice
// holds row views that may be permuted (Swap, sorting) without touching the
// coordinates. Only the first Len() views are active.
type Front struct {
	cols   int       // objectives per point
	n      int       // active point count, 0 ≤ n ≤ len(points)
	data   []float64 // flat backing storage, length == len(points)*cols
	points []Point   // row views into data
}

// NewFront creates a front with room for capacity points of the given
// number of objectives. All capacity points are active and zeroed.
//
// Stage 1 (Validate): capacity and objectives must be > 0 and their
// product must fit in an int.
// Stage 2 (Prepare): allocate one flat slice and carve the row views.
//
// Complexity: O(capacity·objectives) time and memory.
func NewFront(capacity, objectives int) (*Front, error) {
	if !validShape(capacity, objectives) {
		return nil, ErrBadShape
	}
	var (
		data   = make([]float64, capacity*objectives)
		points = make([]Point, capacity)
		i      int
	)
	for i = 0; i < capacity; i++ {
		points[i] = Point(data[i*objectives : (i+1)*objectives : (i+1)*objectives])
	}

	return &Front{cols: objectives, n: capacity, data: data, points: points}, nil
}

// FromRows copies rows into a new front.
//
// Errors:
//   - ErrEmptyFront if rows is empty.
//   - ErrBadShape if the first row has no coordinates.
//   - ErrRaggedRows if any row length differs from the first.
func FromRows(rows [][]float64) (*Front, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyFront
	}
	cols := len(rows[0])
	f, err := NewFront(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("front: row %d has %d values, want %d: %w", i, len(row), cols, ErrRaggedRows)
		}
		copy(f.points[i], row)
	}

	return f, nil
}

// FromFlat copies a row-major slice of points×objectives values into a new front.
// It returns ErrBadShape when the counts are non-positive, their product
// overflows, or len(values) differs from objectives*points.
func FromFlat(objectives, points int, values []float64) (*Front, error) {
	if !validShape(points, objectives) || len(values) != objectives*points {
		return nil, ErrBadShape
	}
	f, err := NewFront(points, objectives)
	if err != nil {
		return nil, err
	}
	copy(f.data, values)

	return f, nil
}

// validShape reports whether rows×cols is positive and does not overflow.
func validShape(rows, cols int) bool {
	return rows > 0 && cols > 0 && rows <= math.MaxInt/cols
}

// Len returns the number of active points.
func (f *Front) Len() int { return f.n }

// Cap returns the number of point slots.
func (f *Front) Cap() int { return len(f.points) }

// Objectives returns the number of coordinates per point.
func (f *Front) Objectives() int { return f.cols }

// Point returns the i-th active point view. It panics if i is out of range,
// like a slice index.
func (f *Front) Point(i int) Point { return f.points[:f.n][i] }

// Points returns the active point views. Reordering the returned slice
// reorders the front.
func (f *Front) Points() []Point { return f.points[:f.n] }

// Swap exchanges the point views at positions i and j.
func (f *Front) Swap(i, j int) { f.points[i], f.points[j] = f.points[j], f.points[i] }

// Reset makes the front empty without releasing storage.
func (f *Front) Reset() { f.n = 0 }

// Truncate sets the active point count to n, clamped to [0, Cap()].
func (f *Front) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(f.points) {
		n = len(f.points)
	}
	f.n = n
}

// Push copies the first Objectives() coordinates of p into the next free
// slot and activates it. It reports false when the front is full.
// Complexity: O(n).
func (f *Front) Push(p Point) bool {
	if f.n == len(f.points) {
		return false
	}
	copy(f.points[f.n], p[:f.cols])
	f.n++

	return true
}

// Clone returns a deep copy holding only the active points, in their current order.
func (f *Front) Clone() *Front {
	cp, _ := NewFront(max(f.n, 1), f.cols)
	cp.n = f.n
	for i := 0; i < f.n; i++ {
		copy(cp.points[i], f.points[i])
	}

	return cp
}

// Rows returns a deep copy of the active points as plain slices.
func (f *Front) Rows() [][]float64 {
	rows := make([][]float64, f.n)
	for i := 0; i < f.n; i++ {
		rows[i] = []float64(f.points[i].Clone())
	}

	return rows
}

// String implements fmt.Stringer; one point per line.
func (f *Front) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < f.n; i++ { // iterate over active points
		sb.WriteByte('[')
		for j = 0; j < f.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", f.points[i][j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
