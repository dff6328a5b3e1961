// SPDX-License-Identifier: MIT

package sweep_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hypervolume/front"
	"github.com/katalvlaran/hypervolume/sweep"
)

// benchmarkVolume sweeps a spherical (mutually non-dominated) front of n points.
func benchmarkVolume(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(1))
	pts := make([]front.Point, n)
	for i := range pts {
		x, y, z := rng.Float64(), rng.Float64(), rng.Float64()
		norm := math.Sqrt(x*x + y*y + z*z)
		pts[i] = front.Point{x / norm, y / norm, z / norm}
	}
	pts = sorted(pts, front.Maximize)
	s := sweep.NewSweeper(n, front.Maximize)
	ref := front.Point{0, 0, 0}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Volume(pts, ref)
	}
}

// BenchmarkVolume_100 sweeps 100 points.
func BenchmarkVolume_100(b *testing.B) { benchmarkVolume(b, 100) }

// BenchmarkVolume_10000 sweeps 10 000 points.
func BenchmarkVolume_10000(b *testing.B) { benchmarkVolume(b, 10000) }
