// SPDX-License-Identifier: MIT

package sweep

import "github.com/katalvlaran/hypervolume/front"

// none is the null handle.
const none = -1

const panicPoolExhausted = "sweep: tree node pool exhausted"

// orderedSet is what the sweep needs from its search structure: ordered
// insertion/removal keyed by the first coordinate, closest-key search and
// O(1) neighbor steps. Handles are opaque ints; nodes never leave the package.
type orderedSet interface {
	insert(x, y float64) int
	remove(h int)
	ceiling(x float64) int
	floor(x float64) int
	prev(h int) int
	next(h int) int
	key(h int) (x, y float64)
	len() int
	reset()
}

var _ orderedSet = (*tree)(nil)

// node is one tree slot. x is the search key, y the payload (second coordinate).
type node struct {
	x, y                float64
	left, right, parent int
	prev, next          int // in-order neighbors
	height              int
}

// tree is an AVL tree over a fixed pool of nodes, ordered from the worst key
// to the best key under sense. Besides the usual child/parent links every
// node is threaded into a doubly linked list in key order.
//
// The pool is allocated once; reset clears the structure and keeps the nodes.
// Handles below used have been handed out since the last reset; removed ones
// wait on the free stack and are reused first.
type tree struct {
	sense front.Sense
	nodes []node
	free  []int // stack of removed handles
	used  int   // high-water mark of handed-out handles
	root  int
	head  int // worst key
	size  int
}

// newTree allocates a tree able to hold capacity keys at once.
// Complexity: O(capacity) memory.
func newTree(capacity int, sense front.Sense) *tree {
	t := &tree{
		sense: sense,
		nodes: make([]node, capacity),
		free:  make([]int, 0, capacity),
	}
	t.reset()

	return t
}

// reset empties the tree without releasing the pool.
// Complexity: O(1).
func (t *tree) reset() {
	t.root, t.head, t.size = none, none, 0
	t.free = t.free[:0]
	t.used = 0
}

// alloc hands out a removed handle, or else the next never-used one.
// It panics when the pool is exhausted.
func (t *tree) alloc() int {
	if n := len(t.free); n > 0 {
		h := t.free[n-1]
		t.free = t.free[:n-1]

		return h
	}
	if t.used == len(t.nodes) {
		panic(panicPoolExhausted)
	}
	t.used++

	return t.used - 1
}

func (t *tree) len() int { return t.size }

// first returns the node with the worst key, or none.
func (t *tree) first() int { return t.head }

func (t *tree) prev(h int) int { return t.nodes[h].prev }

func (t *tree) next(h int) int { return t.nodes[h].next }

func (t *tree) key(h int) (float64, float64) { return t.nodes[h].x, t.nodes[h].y }

// less orders keys from worst to best.
func (t *tree) less(a, b float64) bool { return t.sense.Beats(b, a) }

// ceiling returns the node with the smallest key not worse than x, or none.
// Complexity: O(log n).
func (t *tree) ceiling(x float64) int {
	res := none
	for h := t.root; h != none; {
		if t.less(t.nodes[h].x, x) {
			h = t.nodes[h].right
		} else {
			res = h
			h = t.nodes[h].left
		}
	}

	return res
}

// floor returns the node with the largest key not better than x, or none.
// Complexity: O(log n).
func (t *tree) floor(x float64) int {
	res := none
	for h := t.root; h != none; {
		if t.less(x, t.nodes[h].x) {
			h = t.nodes[h].left
		} else {
			res = h
			h = t.nodes[h].right
		}
	}

	return res
}

// insert adds (x, y) and returns its handle. Equal keys go to the right.
// It panics when the pool is exhausted.
// Complexity: O(log n).
func (t *tree) insert(x, y float64) int {
	h := t.alloc()
	t.nodes[h] = node{x: x, y: y, left: none, right: none, parent: none, prev: none, next: none, height: 1}
	t.size++

	if t.root == none {
		t.root, t.head = h, h
		return h
	}

	// Stage 1: descend to the attachment point.
	var (
		p      = t.root
		goLeft bool
	)
	for {
		goLeft = t.less(x, t.nodes[p].x)
		child := t.nodes[p].right
		if goLeft {
			child = t.nodes[p].left
		}
		if child == none {
			break
		}
		p = child
	}

	// Stage 2: attach and thread into the neighbor list.
	t.nodes[h].parent = p
	if goLeft {
		t.nodes[p].left = h
		t.link(t.nodes[p].prev, h, p)
	} else {
		t.nodes[p].right = h
		t.link(p, h, t.nodes[p].next)
	}

	// Stage 3: restore balance on the way up.
	t.rebalance(p)

	return h
}

// link threads h between a and b (either may be none).
func (t *tree) link(a, h, b int) {
	t.nodes[h].prev, t.nodes[h].next = a, b
	if a == none {
		t.head = h
	} else {
		t.nodes[a].next = h
	}
	if b != none {
		t.nodes[b].prev = h
	}
}

// remove deletes node h and returns it to the pool. Handles of other nodes stay valid.
// Complexity: O(log n).
func (t *tree) remove(h int) {
	var (
		z     = &t.nodes[h]
		start int
	)
	switch {
	case z.left == none:
		start = z.parent
		t.transplant(h, z.right)
	case z.right == none:
		start = z.parent
		t.transplant(h, z.left)
	default:
		// In-order successor is the next node; it has no left child.
		y := z.next
		if t.nodes[y].parent != h {
			start = t.nodes[y].parent
			t.transplant(y, t.nodes[y].right)
			t.nodes[y].right = z.right
			t.nodes[z.right].parent = y
		} else {
			start = y
		}
		t.transplant(h, y)
		t.nodes[y].left = z.left
		t.nodes[z.left].parent = y
		t.nodes[y].height = z.height
	}

	// Unthread.
	if z.prev == none {
		t.head = z.next
	} else {
		t.nodes[z.prev].next = z.next
	}
	if z.next != none {
		t.nodes[z.next].prev = z.prev
	}

	t.size--
	t.free = append(t.free, h)
	t.rebalance(start)
}

// transplant replaces the subtree rooted at u with the one rooted at v.
func (t *tree) transplant(u, v int) {
	p := t.nodes[u].parent
	t.replaceChild(p, u, v)
	if v != none {
		t.nodes[v].parent = p
	}
}

func (t *tree) replaceChild(p, old, nw int) {
	switch {
	case p == none:
		t.root = nw
	case t.nodes[p].left == old:
		t.nodes[p].left = nw
	default:
		t.nodes[p].right = nw
	}
}

func (t *tree) height(h int) int {
	if h == none {
		return 0
	}

	return t.nodes[h].height
}

func (t *tree) update(h int) {
	t.nodes[h].height = 1 + max(t.height(t.nodes[h].left), t.height(t.nodes[h].right))
}

func (t *tree) balance(h int) int {
	return t.height(t.nodes[h].left) - t.height(t.nodes[h].right)
}

// rotateLeft lifts x's right child and returns the new subtree root.
func (t *tree) rotateLeft(x int) int {
	y := t.nodes[x].right
	b := t.nodes[y].left
	p := t.nodes[x].parent

	t.nodes[y].left = x
	t.nodes[x].parent = y
	t.nodes[x].right = b
	if b != none {
		t.nodes[b].parent = x
	}
	t.nodes[y].parent = p
	t.replaceChild(p, x, y)

	t.update(x)
	t.update(y)

	return y
}

// rotateRight lifts x's left child and returns the new subtree root.
func (t *tree) rotateRight(x int) int {
	y := t.nodes[x].left
	b := t.nodes[y].right
	p := t.nodes[x].parent

	t.nodes[y].right = x
	t.nodes[x].parent = y
	t.nodes[x].left = b
	if b != none {
		t.nodes[b].parent = x
	}
	t.nodes[y].parent = p
	t.replaceChild(p, x, y)

	t.update(x)
	t.update(y)

	return y
}

// rebalance walks from h to the root fixing heights and AVL violations.
func (t *tree) rebalance(h int) {
	for h != none {
		t.update(h)
		switch bf := t.balance(h); {
		case bf > 1:
			if t.balance(t.nodes[h].left) < 0 {
				t.rotateLeft(t.nodes[h].left)
			}
			h = t.rotateRight(h)
		case bf < -1:
			if t.balance(t.nodes[h].right) > 0 {
				t.rotateRight(t.nodes[h].right)
			}
			h = t.rotateLeft(h)
		}
		h = t.nodes[h].parent
	}
}
