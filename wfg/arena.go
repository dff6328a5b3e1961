// SPDX-License-Identifier: MIT

package wfg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hypervolume/front"
)

// maxArenaValues bounds the total number of float64 scratch values
// (8 bytes each) an arena may request.
const maxArenaValues = math.MaxInt / 16

// arena is the stack of preallocated fronts used across recursion levels.
// Slot d serves recursion depth d; acquire/release must pair exactly.
type arena struct {
	slots []*front.Front
	depth int
}

// arenaLayout returns the slot count and the (capacity, width) of slot d for
// a computation over fronts of up to points points with n objectives.
//
//   - slicing: n-2 slots (n-3 with the 3D sweep), width n-d-1.
//   - otherwise: points-1 slots of width n.
//
// In both cases slot d holds at most points-1-d points, since every level
// is a limit set strictly smaller than the front it was built from.
func arenaLayout(s Strategy, n, points int) (count int, slot func(d int) (capacity, width int)) {
	capacity := func(d int) int { return max(points-1-d, 1) }
	switch {
	case n < 2:
		return 0, nil
	case s == TreeSweep:
		count = max(n-3, 0)
	case s == Sliced:
		count = n - 2
	default:
		count = max(points-1, 0)
		if s == Sorted && n == 2 {
			count = 0 // the planar base case handles the whole front
		}

		return count, func(d int) (int, int) { return capacity(d), n }
	}

	return min(count, max(points-1, 0)), func(d int) (int, int) { return capacity(d), n - d - 1 }
}

// newArena sizes and allocates every slot once.
//
// Errors: ErrAllocation when the total size overflows maxArenaValues.
// Complexity: O(total slot values).
func newArena(s Strategy, n, points int) (*arena, error) {
	count, slot := arenaLayout(s, n, points)

	// Stage 1: size check before any allocation.
	var total int
	for d := 0; d < count; d++ {
		c, w := slot(d)
		if c > maxArenaValues/w || total > maxArenaValues-c*w {
			return nil, fmt.Errorf("wfg: arena for %d points × %d objectives: %w", points, n, ErrAllocation)
		}
		total += c * w
	}

	// Stage 2: allocate.
	a := &arena{slots: make([]*front.Front, count)}
	for d := 0; d < count; d++ {
		c, w := slot(d)
		f, err := front.NewFront(c, w)
		if err != nil {
			return nil, fmt.Errorf("wfg: arena slot %d: %w", d, ErrAllocation)
		}
		a.slots[d] = f
	}

	return a, nil
}

// acquire returns the next free slot, emptied, and advances the depth.
// It panics if the recursion outgrows the arena (a sizing bug, not user input).
func (a *arena) acquire() *front.Front {
	f := a.slots[a.depth]
	a.depth++
	f.Reset()

	return f
}

// release returns the most recently acquired slot.
func (a *arena) release() { a.depth-- }

// reserved returns the total number of float64 values held by the arena.
func (a *arena) reserved() int {
	var total int
	for _, f := range a.slots {
		total += f.Cap() * f.Objectives()
	}

	return total
}
