// SPDX-License-Identifier: MIT

// Package hypervolume computes the exact hypervolume indicator of Pareto
// fronts, from the geometry primitives up to a parallel command-line driver.
//
// 🚀 What is in the module?
//
//	A pure-Go implementation of the WFG algorithm (While, Bradstreet,
//	Barone) with every specialization selectable at run time:
//		• Geometry: points, fronts, dominance under Maximize or Minimize
//		• Planar base case for two objectives
//		• Dimension sweep over a balanced skyline tree for three objectives
//		• Recursive slicing engine with a preallocated scratch arena
//		• Per-point exclusive contributions
//		• Front files: '#'-separated text, optionally gzip/zstd/lz4 compressed
//		• wfg command: worker pool, Prometheus metrics, text or YAML reports
//
// Under the hood, everything is organized in small packages:
//
//	front/      — Point, Front, Sense, Dominance, validation
//	sweep/      — AVL skyline tree and the 3D sweep
//	wfg/        — engine, scratch arena, Compute / ComputeFlat / Computation
//	frontfile/  — reading and writing fronts, transparent compression
//	internal/   — runner (pool, logging, metrics, reports) and cli (cobra + viper)
//	cmd/wfg/    — the binary
//
// Quick ASCII example (maximization, reference at the origin):
//
//	3 ●
//	2 │  ●         hv = 3 + 2 + 1 = 6
//	1 │  │  ●
//	  └──┴──┴──
//	     1  2  3
//
//	go install github.com/katalvlaran/hypervolume/cmd/wfg@latest
package hypervolume
