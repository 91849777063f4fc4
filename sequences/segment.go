package sequences

import (
	"fmt"
	"iter"
	"math/bits"
	"slices"

	"github.com/npillmayer/spella/algebra"
)

// Shape of a tree with base length 8 and the node number of each node:
//
//	+-------------------------------------------------------+
//	|                         0001                          |
//	+-------------------------------------------------------+
//	+---------------------------+ +-------------------------+
//	|            0010           | |           0011          |
//	+---------------------------+ +-------------------------+
//	+-------------+ +-----------+ +-----------+ +-----------+
//	|     0100    | |    0101   | |    0110   | |    0111   |
//	+-------------+ +-----------+ +-----------+ +-----------+
//	+-----+ +-----+ +----+ +----+ +----+ +----+ +----+ +----+
//	| 1000| | 1001| |1010| |1011| |1100| |1101| |1110| |1111|
//	+-----+ +-----+ +----+ +----+ +----+ +----+ +----+ +----+
//
// Node k has children 2k and 2k+1 and is stored at slot k-1. Leaf i is node
// base+i. Leaves beyond the logical length are not stored; they are implicit
// identities.

// SegmentTree is a sequence of monoid elements supporting point updates and
// range folds in O(log n).
//
// A segment tree requires only associativity and an identity. It works for
// non-commutative monoids: Fold combines elements strictly from left to right.
//
//	Operation     |   Time
//	--------------+-----------
//	At            |   O(1)
//	Update, Set   |   O(log n)
//	Fold          |   O(log n)
//	Summary       |   O(1)
//
// The zero value is an empty tree.
type SegmentTree[M algebra.Monoid[M]] struct {
	nodes []M
	base  int // number of leaf slots, a power of two (0 for an empty tree)
	n     int // logical length
}

// NewSegmentTree creates a tree of length n, filled with the identity.
//
// NewSegmentTree panics if n is negative or so large that the padded length
// overflows int.
func NewSegmentTree[M algebra.Monoid[M]](n int) *SegmentTree[M] {
	base, size := extendLen(n)
	nodes := make([]M, size)
	e := algebra.Identity[M]()
	for i := range nodes {
		nodes[i] = e
	}
	tracer().Debugf("segment tree: %d identity leaves, base length %d", n, base)
	return &SegmentTree[M]{nodes: nodes, base: base, n: n}
}

// SegmentTreeFrom creates a tree holding a copy of xs.
//
// All inner nodes are computed bottom-up in a single O(n) pass.
func SegmentTreeFrom[M algebra.Monoid[M]](xs []M) *SegmentTree[M] {
	n := len(xs)
	base, size := extendLen(n)
	t := &SegmentTree[M]{nodes: make([]M, size), base: base, n: n}
	e := algebra.Identity[M]()
	for i := 0; i < base-1; i++ {
		t.nodes[i] = e
	}
	copy(t.nodes[max(base-1, 0):], xs)
	for node := base - 1; node > 0; node-- {
		t.recalc(node)
	}
	tracer().Debugf("segment tree: built from %d elements, base length %d", n, base)
	return t
}

// CollectSegmentTree creates a tree from the elements of seq.
func CollectSegmentTree[M algebra.Monoid[M]](seq iter.Seq[M]) *SegmentTree[M] {
	return SegmentTreeFrom(slices.Collect(seq))
}

// Len returns the number of elements.
func (t *SegmentTree[M]) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// At returns the element at index.
//
// At panics if index is out of bounds.
func (t *SegmentTree[M]) At(index int) M {
	checkIndex(index, t.Len())
	return t.node(t.leaf(index))
}

// Update replaces the element at index by f(element) and restores every
// ancestor's aggregate in a single bottom-up pass.
//
// f receives the current element and must not access the tree. Update panics
// if index is out of bounds.
func (t *SegmentTree[M]) Update(index int, f func(M) M) {
	checkIndex(index, t.Len())
	leaf := t.leaf(index)
	t.nodes[leaf-1] = f(t.nodes[leaf-1])
	t.rebuild(leaf)
}

// Set replaces the element at index by value.
//
// Set panics if index is out of bounds.
func (t *SegmentTree[M]) Set(index int, value M) {
	t.Update(index, func(M) M { return value })
}

// Fold combines the elements in [start, end) from left to right. An empty
// range folds to the identity.
//
// Fold panics if the range is invalid.
func (t *SegmentTree[M]) Fold(start, end int) M {
	checkRange(start, end, t.Len())
	lacc := algebra.Identity[M]()
	racc := algebra.Identity[M]()
	if start == end {
		return lacc
	}
	l, r := t.leaf(start), t.leaf(end)
	for l < r {
		if l&1 == 1 {
			// l is a right child: its parent reaches left of the range
			lacc = lacc.Op(t.node(l))
			l++
		}
		if r&1 == 1 {
			// r-1 is a left child entirely inside the range
			r--
			racc = t.node(r).Op(racc)
		}
		l >>= 1
		r >>= 1
	}
	return lacc.Op(racc)
}

// Summary returns the fold of all elements.
func (t *SegmentTree[M]) Summary() M {
	if t.Len() == 0 {
		return algebra.Identity[M]()
	}
	return t.node(1)
}

// All iterates over index/element pairs in order.
func (t *SegmentTree[M]) All() iter.Seq2[int, M] {
	return func(yield func(int, M) bool) {
		for i := range t.Len() {
			if !yield(i, t.node(t.leaf(i))) {
				return
			}
		}
	}
}

// Values returns a copy of the elements.
func (t *SegmentTree[M]) Values() []M {
	if t.Len() == 0 {
		return nil
	}
	return slices.Clone(t.nodes[t.base-1:])
}

// Clone returns an independent copy of the tree. Elements are copied by
// value.
func (t *SegmentTree[M]) Clone() *SegmentTree[M] {
	if t == nil {
		return nil
	}
	return &SegmentTree[M]{nodes: slices.Clone(t.nodes), base: t.base, n: t.n}
}

// Levels returns the stored nodes level by level, root level first. The last
// level holds the elements; padding leaves beyond the length are not stored.
// Inner nodes covering padding only hold the identity.
func (t *SegmentTree[M]) Levels() [][]M {
	if t.Len() == 0 {
		return nil
	}
	var levels [][]M
	last := len(t.nodes)
	for first := 1; first <= last; first <<= 1 {
		upto := min(first<<1, last+1)
		levels = append(levels, slices.Clone(t.nodes[first-1:upto-1]))
	}
	return levels
}

// --- Internals -------------------------------------------------------------

// extendLen returns the base length (leaf slots) and the number of stored
// nodes for a tree of n elements.
func extendLen(n int) (base, size int) {
	checkLength(n)
	if n == 0 {
		return 0, 0
	}
	if n > 1<<(bits.UintSize-2) {
		violation(fmt.Errorf("%w: %d", ErrLengthOverflow, n))
	}
	base = 1 << bits.Len(uint(n-1))
	return base, base - 1 + n
}

func (t *SegmentTree[M]) leaf(index int) int {
	return t.base + index
}

func (t *SegmentTree[M]) node(k int) M {
	return t.nodes[k-1]
}

// recalc sets inner node k to the aggregate of its stored children.
func (t *SegmentTree[M]) recalc(k int) {
	last := len(t.nodes)
	l, r := k<<1, k<<1|1
	if l > last {
		return
	}
	if r <= last {
		t.nodes[k-1] = t.node(l).Op(t.node(r))
	} else {
		t.nodes[k-1] = t.node(l)
	}
}

// rebuild recalculates all ancestors of node k.
func (t *SegmentTree[M]) rebuild(k int) {
	assert(k >= t.base, "rebuild must start at a leaf")
	for k >>= 1; k > 0; k >>= 1 {
		t.recalc(k)
	}
}
