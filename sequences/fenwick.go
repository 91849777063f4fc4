package sequences

import (
	"iter"
	"slices"

	"github.com/npillmayer/spella/algebra"
)

// FenwickTree (binary indexed tree) is a sequence of commutative monoid
// elements supporting point appends and prefix folds, both in O(log n).
//
// Appending v at index i replaces element x by x.Op(v). Because nodes hold
// partial aggregates which are extended out of order, the operation has to
// commute; for a non-commutative monoid results are undefined.
//
// Arbitrary point replacement and range folds need inverses, see
// [FenwickGroup].
//
// The zero value is an empty tree.
type FenwickTree[M algebra.CommutativeMonoid[M]] struct {
	// Node k (1-based) holds the aggregate of the elements with 0-based
	// indices in [k-lowbit(k), k). The prefix [0, e) is the aggregate of
	// nodes e, e-lowbit(e), … down to 0. Node k is stored at slot k-1.
	//
	// For example, the prefix of 13 = 1101₂ elements is the aggregate of
	// nodes 1101₂, 1100₂ and 1000₂, holding [12, 13), [8, 12) and [0, 8).
	nodes []M
}

// NewFenwickTree creates a tree of length n, filled with the identity.
func NewFenwickTree[M algebra.CommutativeMonoid[M]](n int) *FenwickTree[M] {
	checkLength(n)
	nodes := make([]M, n)
	e := algebra.Identity[M]()
	for i := range nodes {
		nodes[i] = e
	}
	tracer().Debugf("fenwick tree: %d identity elements", n)
	return &FenwickTree[M]{nodes: nodes}
}

// FenwickTreeFrom creates a tree holding the elements of xs, in O(n).
func FenwickTreeFrom[M algebra.CommutativeMonoid[M]](xs []M) *FenwickTree[M] {
	t := &FenwickTree[M]{nodes: slices.Clone(xs)}
	t.build()
	tracer().Debugf("fenwick tree: built from %d elements", len(xs))
	return t
}

// CollectFenwickTree creates a tree from the elements of seq.
func CollectFenwickTree[M algebra.CommutativeMonoid[M]](seq iter.Seq[M]) *FenwickTree[M] {
	t := &FenwickTree[M]{nodes: slices.Collect(seq)}
	t.build()
	return t
}

// Len returns the number of elements.
func (t *FenwickTree[M]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Append combines the element at index with value: x becomes x.Op(value).
//
// Append panics if index is out of bounds.
func (t *FenwickTree[M]) Append(index int, value M) {
	checkIndex(index, t.Len())
	for k := index + 1; k <= len(t.nodes); k += lowbit(k) {
		t.nodes[k-1] = t.nodes[k-1].Op(value)
	}
}

// PrefixFold returns the aggregate of the elements in [0, end).
//
// PrefixFold panics if end is not in [0, Len()].
func (t *FenwickTree[M]) PrefixFold(end int) M {
	checkRange(0, end, t.Len())
	acc := algebra.Identity[M]()
	for k := end; k > 0; k -= lowbit(k) {
		acc = acc.Op(t.node(k))
	}
	return acc
}

// Summary returns the aggregate of all elements.
func (t *FenwickTree[M]) Summary() M {
	return t.PrefixFold(t.Len())
}

// build turns raw elements into node aggregates by pushing every node into
// its parent, in ascending order.
func (t *FenwickTree[M]) build() {
	n := len(t.nodes)
	for k := 1; k < n; k++ { // node n has no parent
		if parent := k + lowbit(k); parent <= n {
			t.nodes[parent-1] = t.nodes[parent-1].Op(t.node(k))
		}
	}
}

func (t *FenwickTree[M]) node(k int) M {
	return t.nodes[k-1]
}

// FenwickGroup is a Fenwick tree over an abelian group. Inverses allow reading
// and replacing single elements and folding arbitrary ranges, all in
// O(log n).
//
// The zero value is an empty tree.
type FenwickGroup[G algebra.AbelianGroup[G]] struct {
	FenwickTree[G]
}

// NewFenwickGroup creates a tree of length n, filled with the identity.
func NewFenwickGroup[G algebra.AbelianGroup[G]](n int) *FenwickGroup[G] {
	return &FenwickGroup[G]{*NewFenwickTree[G](n)}
}

// FenwickGroupFrom creates a tree holding the elements of xs, in O(n).
func FenwickGroupFrom[G algebra.AbelianGroup[G]](xs []G) *FenwickGroup[G] {
	return &FenwickGroup[G]{*FenwickTreeFrom(xs)}
}

// CollectFenwickGroup creates a tree from the elements of seq.
func CollectFenwickGroup[G algebra.AbelianGroup[G]](seq iter.Seq[G]) *FenwickGroup[G] {
	return &FenwickGroup[G]{*CollectFenwickTree(seq)}
}

// At returns the element at index.
//
// At panics if index is out of bounds.
func (t *FenwickGroup[G]) At(index int) G {
	checkIndex(index, t.Len())
	return t.Fold(index, index+1)
}

// Replace sets the element at index to value and returns the previous
// element.
//
// Replace panics if index is out of bounds.
func (t *FenwickGroup[G]) Replace(index int, value G) (old G) {
	old = t.At(index)
	t.Append(index, algebra.InverseOp(value, old))
	return old
}

// Fold returns the aggregate of the elements in [start, end).
//
// Both prefixes are walked down concurrently: the end pointer contributes
// nodes as long as it lies above the start pointer, then the start pointer
// removes nodes as long as it lies above the end pointer. Nodes shared by
// both prefixes are never visited.
//
// Fold panics if the range is invalid.
func (t *FenwickGroup[G]) Fold(start, end int) G {
	checkRange(start, end, t.Len())
	acc := algebra.Identity[G]()
	for end > start {
		acc = acc.Op(t.node(end))
		end -= lowbit(end)
	}
	for start > end {
		acc = algebra.InverseOp(acc, t.node(start))
		start -= lowbit(start)
	}
	return acc
}

// All iterates over index/element pairs in order.
func (t *FenwickGroup[G]) All() iter.Seq2[int, G] {
	return func(yield func(int, G) bool) {
		for i := range t.Len() {
			if !yield(i, t.At(i)) {
				return
			}
		}
	}
}

// lowbit returns the value of the lowest set bit of k.
func lowbit(k int) int {
	assert(k > 0, "lowbit of non-positive number")
	return k & -k
}
