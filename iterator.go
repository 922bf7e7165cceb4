package bimap

import "github.com/npillmayer/bimap/tree"

// Iterator is a bidirectional position on one side of a bimap. K is the type
// of the values on this side, V the type of the values on the opposite side.
//
// Left side iterators are of type Iterator[L, R], right side iterators of type
// Iterator[R, L]. Flip converts between the two in O(1).
//
// An iterator stays valid until the pair it addresses is erased. End
// iterators stay valid for the lifetime of the bimap. The zero Iterator is
// not usable.
type Iterator[K, V any] struct {
	pos tree.Position[K]
}

// Key returns the value on this side of the pair. It panics for end
// iterators.
func (it Iterator[K, V]) Key() K {
	return it.pos.Key()
}

// Value returns the value on the opposite side of the pair. It panics for end
// iterators.
func (it Iterator[K, V]) Value() V {
	return it.Flip().Key()
}

// Flip returns the iterator addressing the same pair on the opposite side.
// The end iterator of one side flips to the end iterator of the other.
func (it Iterator[K, V]) Flip() Iterator[V, K] {
	return Iterator[V, K]{pos: tree.Flip[K, V](it.pos)}
}

// Next returns an iterator to the pair following it in this side's order.
// Advancing an end iterator panics.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	return Iterator[K, V]{pos: it.pos.Next()}
}

// Prev returns an iterator to the pair preceding it in this side's order.
// The predecessor of the end iterator is the last pair; the predecessor of
// the first pair is the end iterator.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	return Iterator[K, V]{pos: it.pos.Prev()}
}

// IsEnd reports whether it is an end iterator.
func (it Iterator[K, V]) IsEnd() bool {
	return it.pos.IsEnd()
}

// Equal reports whether it and other address the same position of the same
// bimap side.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.pos.Equal(other.pos)
}
