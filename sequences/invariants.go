package sequences

import "fmt"

// Check validates that every inner node holds the aggregate of its children.
// Payloads need not be comparable, so the caller supplies eq.
//
// This checker is meant for tests; after any sequence of public operations it
// must return nil.
func (t *SegmentTree[M]) Check(eq func(a, b M) bool) error {
	if t == nil || t.n == 0 {
		if t != nil && (len(t.nodes) != 0 || t.base != 0) {
			return fmt.Errorf("%w: empty tree with %d nodes, base %d",
				ErrBrokenInvariant, len(t.nodes), t.base)
		}
		return nil
	}
	if t.base&(t.base-1) != 0 || t.base < t.n || t.base >= 2*t.n {
		return fmt.Errorf("%w: base %d for length %d", ErrBrokenInvariant, t.base, t.n)
	}
	last := len(t.nodes)
	if last != t.base-1+t.n {
		return fmt.Errorf("%w: %d nodes stored, expected %d",
			ErrBrokenInvariant, last, t.base-1+t.n)
	}
	for k := 1; k < t.base; k++ {
		l, r := k<<1, k<<1|1
		if l > last {
			continue
		}
		want := t.node(l)
		if r <= last {
			want = want.Op(t.node(r))
		}
		if !eq(t.node(k), want) {
			return fmt.Errorf("%w: node %d = %v, children aggregate to %v",
				ErrBrokenInvariant, k, t.node(k), want)
		}
	}
	return nil
}
