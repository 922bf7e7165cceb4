package tree

// Position addresses a node of a tree, or the tree's end (its head).
//
// Positions are values. A position stays valid until the node it addresses
// is erased; insertions and other erasures do not invalidate it. The zero
// Position belongs to no tree and must not be used.
type Position[K any] struct {
	t *Tree[K]
	n Ref
}

// Begin returns the position of the smallest key, or End for an empty tree.
func (t *Tree[K]) Begin() Position[K] {
	if t.head.root == Nil {
		return t.End()
	}
	return Position[K]{t: t, n: t.leftmost(t.head.root)}
}

// Last returns the position of the largest key, or End for an empty tree.
func (t *Tree[K]) Last() Position[K] {
	if t.head.root == Nil {
		return t.End()
	}
	return Position[K]{t: t, n: t.rightmost(t.head.root)}
}

// End returns the position past the largest key. It is also the position
// before the smallest key: Prev of Begin is End.
func (t *Tree[K]) End() Position[K] {
	return Position[K]{t: t, n: Nil}
}

// At returns the position of node n, which must be linked into t.
func (t *Tree[K]) At(n Ref) Position[K] {
	return Position[K]{t: t, n: n}
}

// IsEnd reports whether p is the end position of its tree.
func (p Position[K]) IsEnd() bool {
	return p.n == Nil
}

// Ref returns the node at p, or Nil for the end position.
func (p Position[K]) Ref() Ref {
	return p.n
}

// Tree returns the tree p belongs to.
func (p Position[K]) Tree() *Tree[K] {
	return p.t
}

// Key returns the key of the node at p. p must not be the end position.
func (p Position[K]) Key() K {
	doAssert(p.t != nil, "position not initialized")
	doAssert(p.n != Nil, "cannot dereference end position")
	return p.t.nodes.Key(p.n)
}

// Equal reports whether p and q address the same node of the same tree.
func (p Position[K]) Equal(q Position[K]) bool {
	return p.t == q.t && p.n == q.n
}

// Next returns the in-order successor of p. The successor of the largest key
// is End. Calling Next on End panics.
func (p Position[K]) Next() Position[K] {
	doAssert(p.t != nil, "position not initialized")
	doAssert(p.n != Nil, "cannot advance past end position")
	t := p.t
	l := t.nodes.Links(p.n)
	if l.Right != Nil {
		return Position[K]{t: t, n: t.leftmost(l.Right)}
	}
	cur, parent := p.n, l.Parent
	for parent != Nil {
		pl := t.nodes.Links(parent)
		if pl.Right != cur {
			break
		}
		cur, parent = parent, pl.Parent
	}
	return Position[K]{t: t, n: parent}
}

// Prev returns the in-order predecessor of p. The predecessor of End is the
// largest key; the predecessor of the smallest key is End.
func (p Position[K]) Prev() Position[K] {
	doAssert(p.t != nil, "position not initialized")
	t := p.t
	if p.n == Nil {
		return t.Last()
	}
	l := t.nodes.Links(p.n)
	if l.Left != Nil {
		return Position[K]{t: t, n: t.rightmost(l.Left)}
	}
	cur, parent := p.n, l.Parent
	for parent != Nil {
		pl := t.nodes.Links(parent)
		if pl.Left != cur {
			break
		}
		cur, parent = parent, pl.Parent
	}
	return Position[K]{t: t, n: parent}
}

// Flip returns the position of the same node in the tree paired with p's
// tree. The end position flips to the paired tree's end position.
// Flipping a position of an unpaired tree panics.
func Flip[K, V any](p Position[K]) Position[V] {
	doAssert(p.t != nil, "position not initialized")
	other, ok := p.t.head.paired.(*Tree[V])
	doAssert(ok, ErrNotPaired.Error())
	return Position[V]{t: other, n: p.n}
}
