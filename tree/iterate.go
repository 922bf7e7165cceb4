package tree

import "iter"

// ForEachKey walks the nodes in ascending key order.
//
// Iteration stops early if callback returns false.
func (t *Tree[K]) ForEachKey(fn func(n Ref, key K) bool) {
	if t == nil || t.head.root == Nil || fn == nil {
		return
	}
	for p := t.Begin(); !p.IsEnd(); p = p.Next() {
		if !fn(p.n, t.nodes.Key(p.n)) {
			return
		}
	}
}

// All returns an iterator over node handles and keys in ascending key order.
func (t *Tree[K]) All() iter.Seq2[Ref, K] {
	return func(yield func(Ref, K) bool) {
		t.ForEachKey(yield)
	}
}

// Backward returns an iterator over node handles and keys in descending
// key order.
func (t *Tree[K]) Backward() iter.Seq2[Ref, K] {
	return func(yield func(Ref, K) bool) {
		if t == nil || t.head.root == Nil {
			return
		}
		for p := t.Last(); !p.IsEnd(); p = p.Prev() {
			if !yield(p.n, t.nodes.Key(p.n)) {
				return
			}
		}
	}
}
