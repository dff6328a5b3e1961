// SPDX-License-Identifier: MIT

// Package sweep computes three-objective hypervolumes by dimension sweep.
//
// The sweep walks a sorted front along the third objective and maintains the
// 2D skyline of the points seen so far in a balanced search tree keyed by the
// first objective. The tree is an AVL tree over a preallocated node pool with
// in-order neighbor links, so inserting a point, removing the skyline members
// it dominates and finding its neighbors all cost O(log p) or O(1).
//
// Complexity:
//
//   - Volume: O(p log p) time
//   - Memory: O(p) nodes, allocated once per Sweeper
//
// A Sweeper is reusable and not safe for concurrent use; see package wfg for
// the engine that drives it.
package sweep
