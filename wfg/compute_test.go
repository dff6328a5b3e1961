// SPDX-License-Identifier: MIT

package wfg_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypervolume/front"
	"github.com/katalvlaran/hypervolume/wfg"
)

// unionVolume is an inclusion–exclusion oracle: the volume of the union of
// the boxes between every point and ref. Exponential in len(rows); keep
// fronts small.
func unionVolume(rows [][]float64, ref []float64, sense front.Sense) float64 {
	var (
		total float64
		n     = len(ref)
		m     = len(rows)
		meet  = make([]float64, n)
	)
	for mask := 1; mask < 1<<m; mask++ {
		copy(meet, ref)
		first, bits := true, 0
		for i := 0; i < m; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			bits++
			for j := 0; j < n; j++ {
				if first {
					meet[j] = rows[i][j]
				} else {
					meet[j] = sense.Worse(meet[j], rows[i][j])
				}
			}
			first = false
		}
		box := 1.0
		for j := 0; j < n; j++ {
			if !sense.Beats(meet[j], ref[j]) {
				box = 0
				break
			}
			box *= math.Abs(meet[j] - ref[j])
		}
		if bits%2 == 1 {
			total += box
		} else {
			total -= box
		}
	}

	return total
}

// randomRows draws m points in (0, 1]^n on a coarse grid so that ties and
// dominated points occur.
func randomRows(rng *rand.Rand, m, n int) [][]float64 {
	rows := make([][]float64, m)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = float64(1+rng.Intn(8)) / 8
		}
	}

	return rows
}

func mustFront(t *testing.T, rows [][]float64) *front.Front {
	t.Helper()
	f, err := front.FromRows(rows)
	require.NoError(t, err)

	return f
}

// TestCompute_UnitSquare pins the single-point planar case.
func TestCompute_UnitSquare(t *testing.T) {
	hv, err := wfg.Compute(mustFront(t, [][]float64{{1, 1}}), front.Point{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, hv)
}

// TestCompute_Staircase pins the three-step staircase: 3 + 2 + 1.
func TestCompute_Staircase(t *testing.T) {
	f := mustFront(t, [][]float64{{1, 3}, {2, 2}, {3, 1}})
	for _, s := range []wfg.Strategy{wfg.Plain, wfg.Sorted, wfg.Sliced, wfg.TreeSweep} {
		hv, err := wfg.Compute(f, front.Point{0, 0}, wfg.WithStrategy(s))
		require.NoError(t, err, s.String())
		assert.InDelta(t, 6.0, hv, 1e-12, s.String())
	}
}

// TestCompute_MinimizeUnitCube pins the minimization convention.
func TestCompute_MinimizeUnitCube(t *testing.T) {
	hv, err := wfg.Compute(mustFront(t, [][]float64{{1, 1, 1}}), front.Point{2, 2, 2}, wfg.WithMinimize())
	require.NoError(t, err)
	assert.Equal(t, 1.0, hv)
}

// TestCompute_OverlappingBoxes counts the shared region once.
func TestCompute_OverlappingBoxes(t *testing.T) {
	// Boxes [0,2]x[0,1] and [0,1]x[0,2] overlap in the unit square.
	hv, err := wfg.Compute(mustFront(t, [][]float64{{2, 1}, {1, 2}}), front.Point{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 3.0, hv)
}

// TestCompute_OneObjective reduces to the best improvement.
func TestCompute_OneObjective(t *testing.T) {
	hv, err := wfg.Compute(mustFront(t, [][]float64{{2}, {5}, {3}}), front.Point{1})
	require.NoError(t, err)
	assert.Equal(t, 4.0, hv)
}

// TestCompute_SinglePointIsInclusive checks hv({p}) == Inclusive(p, ref).
func TestCompute_SinglePointIsInclusive(t *testing.T) {
	p := front.Point{1.5, 2, 0.25, 4, 3}
	ref := front.Point{0.5, 1, 0, 1, 1}
	hv, err := wfg.Compute(mustFront(t, [][]float64{p}), ref)
	require.NoError(t, err)
	assert.InDelta(t, wfg.Inclusive(p, ref), hv, 1e-12)
	assert.InDelta(t, 1*1*0.25*3*2, hv, 1e-12)
}

// TestCompute_DiscardsPointsBeyondReference ignores points that do not
// strictly beat the reference; a front with no such point has volume 0.
func TestCompute_DiscardsPointsBeyondReference(t *testing.T) {
	f := mustFront(t, [][]float64{{2, 2}, {-1, 5}, {3, 0}})
	hv, err := wfg.Compute(f, front.Point{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 4.0, hv)

	hv, err = wfg.Compute(mustFront(t, [][]float64{{-1, -1}, {0, 3}}), front.Point{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, hv)
}

// TestCompute_DoesNotMutateInput checks that the caller's front is untouched.
func TestCompute_DoesNotMutateInput(t *testing.T) {
	rows := [][]float64{{3, 1, 2}, {1, 3, 2}, {2, 2, 3}, {1, 1, 1}}
	f := mustFront(t, rows)
	_, err := wfg.Compute(f, front.Point{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, rows, f.Rows())
}

// TestCompute_PermutationInvariance reorders the same front.
func TestCompute_PermutationInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rows := randomRows(rng, 9, 4)
	ref := front.Point{0, 0, 0, 0}
	want, err := wfg.Compute(mustFront(t, rows), ref)
	require.NoError(t, err)

	for trial := 0; trial < 5; trial++ {
		rng.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
		got, err := wfg.Compute(mustFront(t, rows), ref)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12)
	}
}

// TestCompute_DominatedPointsAddNothing appends dominated points and duplicates.
func TestCompute_DominatedPointsAddNothing(t *testing.T) {
	base := [][]float64{{4, 1, 2}, {1, 4, 2}, {2, 2, 4}}
	ref := front.Point{0, 0, 0}
	want, err := wfg.Compute(mustFront(t, base), ref)
	require.NoError(t, err)

	extended := append(append([][]float64{}, base...), []float64{1, 1, 1}, []float64{2, 2, 4}, []float64{4, 1, 1})
	got, err := wfg.Compute(mustFront(t, extended), ref)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
}

// TestCompute_AgainstInclusionExclusion compares random fronts with the oracle.
func TestCompute_AgainstInclusionExclusion(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 1; n <= 6; n++ {
		for trial := 0; trial < 10; trial++ {
			rows := randomRows(rng, 1+rng.Intn(9), n)
			ref := make(front.Point, n)
			want := unionVolume(rows, ref, front.Maximize)
			got, err := wfg.Compute(mustFront(t, rows), ref)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-9, "n=%d rows=%v", n, rows)
		}
	}
}

// TestCompute_MinimizeMirrorsMaximize negates a front and the reference.
func TestCompute_MinimizeMirrorsMaximize(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 2; n <= 5; n++ {
		rows := randomRows(rng, 10, n)
		neg := make([][]float64, len(rows))
		for i, r := range rows {
			neg[i] = make([]float64, n)
			for j, v := range r {
				neg[i][j] = -v
			}
		}
		ref := make(front.Point, n)
		want, err := wfg.Compute(mustFront(t, rows), ref)
		require.NoError(t, err)
		got, err := wfg.Compute(mustFront(t, neg), ref, wfg.WithMinimize())
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-9, "n=%d", n)
	}
}

// TestCompute_Errors covers every façade error path.
func TestCompute_Errors(t *testing.T) {
	f := mustFront(t, [][]float64{{1, 2}, {2, 1}})

	_, err := wfg.Compute(nil, front.Point{0, 0})
	assert.ErrorIs(t, err, wfg.ErrEmptyFront)

	_, err = wfg.Compute(f, front.Point{0, 0, 0})
	assert.ErrorIs(t, err, wfg.ErrDimensionMismatch)

	_, err = wfg.Compute(f, front.Point{0, math.NaN()})
	assert.ErrorIs(t, err, wfg.ErrNaNInf)

	_, err = wfg.Compute(mustFront(t, [][]float64{{1, math.Inf(1)}}), front.Point{0, 0})
	assert.ErrorIs(t, err, wfg.ErrNaNInf)

	_, err = wfg.Compute(f, front.Point{0, 0}, wfg.WithMaxPoints(1))
	assert.ErrorIs(t, err, wfg.ErrAllocation)

	_, err = wfg.Compute(f, front.Point{0, 0}, wfg.WithOptions(wfg.Options{Strategy: wfg.Strategy(9)}))
	assert.ErrorIs(t, err, wfg.ErrUnknownStrategy)

	_, err = wfg.Compute(f, front.Point{0, 0}, wfg.WithOptions(wfg.Options{Sense: front.Sense(5)}))
	assert.ErrorIs(t, err, wfg.ErrUnknownSense)
}

// TestComputeFlat uses the origin as reference.
func TestComputeFlat(t *testing.T) {
	hv, err := wfg.ComputeFlat(2, 3, []float64{1, 3, 2, 2, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, 6.0, hv)

	_, err = wfg.ComputeFlat(2, 3, []float64{1, 3, 2})
	assert.ErrorIs(t, err, wfg.ErrBadShape)

	_, err = wfg.ComputeFlat(0, 0, nil)
	assert.ErrorIs(t, err, wfg.ErrBadShape)

	// objectives×points overflowing int is a shape error, not a panic.
	assert.NotPanics(t, func() {
		_, err = wfg.ComputeFlat(1<<62, 4, nil)
	})
	assert.ErrorIs(t, err, wfg.ErrBadShape)
}

// TestOptions_PanicOnNonsense checks constructor panics.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { wfg.WithStrategy(wfg.Strategy(-1)) })
	assert.Panics(t, func() { wfg.WithSense(front.Sense(7)) })
	assert.Panics(t, func() { wfg.WithMaxPoints(-1) })
}

// TestResolveOptions layers setters over the defaults and validates them.
func TestResolveOptions(t *testing.T) {
	o, err := wfg.ResolveOptions()
	require.NoError(t, err)
	assert.Equal(t, wfg.DefaultOptions(), o)

	o, err = wfg.ResolveOptions(wfg.WithStrategy(wfg.Plain), wfg.WithMinimize())
	require.NoError(t, err)
	assert.Equal(t, wfg.Plain, o.Strategy)
	assert.Equal(t, front.Minimize, o.Sense)

	_, err = wfg.ResolveOptions(wfg.WithOptions(wfg.Options{Strategy: wfg.Strategy(9)}))
	assert.ErrorIs(t, err, wfg.ErrUnknownStrategy)
}

// TestParseStrategy round-trips every strategy name.
func TestParseStrategy(t *testing.T) {
	for _, s := range []wfg.Strategy{wfg.Plain, wfg.Sorted, wfg.Sliced, wfg.TreeSweep} {
		got, err := wfg.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := wfg.ParseStrategy("quantum")
	assert.ErrorIs(t, err, wfg.ErrUnknownStrategy)
	assert.Equal(t, "unknown", wfg.Strategy(42).String())
}
