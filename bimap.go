package bimap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/bimap/arena"
	"github.com/npillmayer/bimap/tree"
)

// LessFunc orders values of type K. It must be a strict weak ordering; see
// tree.LessFunc.
type LessFunc[K any] = tree.LessFunc[K]

// Bimap is an ordered bidirectional map of (Left, Right) pairs.
//
// Neither two Left values nor two Right values of a bimap are equivalent under
// their respective comparators. Equivalence is judged by the comparators
// only, never by Go's == operator.
//
// The zero value is not usable; create bimaps with New or NewOrdered.
type Bimap[L, R any] struct {
	nodes *arena.Arena[L, R]
	left  *tree.Tree[L]
	right *tree.Tree[R]
	size  int
}

// New creates an empty bimap ordering Left values by lessLeft and Right values
// by lessRight. Both comparators are fixed for the lifetime of the bimap.
func New[L, R any](lessLeft LessFunc[L], lessRight LessFunc[R]) (*Bimap[L, R], error) {
	nodes := arena.New[L, R]()
	lt, err := tree.New[L](nodes.LeftView(), tree.Config[L]{Less: lessLeft})
	if err != nil {
		return nil, fmt.Errorf("%w: left comparator: %w", ErrIllegalArguments, err)
	}
	rt, err := tree.New[R](nodes.RightView(), tree.Config[R]{Less: lessRight})
	if err != nil {
		return nil, fmt.Errorf("%w: right comparator: %w", ErrIllegalArguments, err)
	}
	tree.Pair(lt, rt)
	return &Bimap[L, R]{
		nodes: nodes,
		left:  lt,
		right: rt,
	}, nil
}

// NewOrdered creates an empty bimap over ordered types, using the '<'
// operator on both sides.
func NewOrdered[L, R cmp.Ordered]() *Bimap[L, R] {
	bm, err := New(tree.Less[L](), tree.Less[R]())
	assert(err == nil, "NewOrdered: cannot create bimap")
	return bm
}

// empty creates an empty bimap with the comparators of bm.
func (bm *Bimap[L, R]) empty() *Bimap[L, R] {
	fresh, err := New(bm.left.Config().Less, bm.right.Config().Less)
	assert(err == nil, "bimap: cannot re-create bimap with existing comparators")
	return fresh
}

// Len returns the number of pairs. O(1).
func (bm *Bimap[L, R]) Len() int {
	return bm.size
}

// IsEmpty reports whether bm holds no pairs. O(1).
func (bm *Bimap[L, R]) IsEmpty() bool {
	return bm.size == 0
}

// Insert adds the pair (left, right) and returns a left side iterator to it.
//
// If a Left value equivalent to left, or a Right value equivalent to right,
// is already present, Insert does nothing and returns EndLeft. The two checks
// are independent of each other, even if L and R are the same type.
func (bm *Bimap[L, R]) Insert(left L, right R) Iterator[L, R] {
	if !bm.left.Find(left).IsEnd() {
		T().Debugf("bimap: insert rejected, left value %v present", left)
		return bm.EndLeft()
	}
	if !bm.right.Find(right).IsEnd() {
		T().Debugf("bimap: insert rejected, right value %v present", right)
		return bm.EndLeft()
	}
	n := bm.nodes.Alloc(left, right)
	pos := bm.left.Insert(n)
	bm.right.Insert(n)
	bm.size++
	return Iterator[L, R]{pos: pos}
}

// erase unlinks the pair at left side position pos from both trees and
// releases it.
func (bm *Bimap[L, R]) erase(pos tree.Position[L]) {
	assert(pos.Tree() == bm.left, "bimap: iterator belongs to another bimap")
	assert(!pos.IsEnd(), "bimap: cannot erase end iterator")
	flipped := tree.Flip[L, R](pos)
	n := bm.left.Erase(pos)
	m := bm.right.Erase(flipped)
	assert(n == m, "bimap: trees out of sync")
	bm.nodes.Free(n)
	bm.size--
}

// Clear removes all pairs.
func (bm *Bimap[L, R]) Clear() {
	bm.EraseLeftRange(bm.BeginLeft(), bm.EndLeft())
}

// Equal reports whether bm and other hold the same pairs. Pairs are compared
// in ascending Left order using bm's comparators: for each position, both the
// Left values and the Right values have to be equivalent.
func (bm *Bimap[L, R]) Equal(other *Bimap[L, R]) bool {
	if bm == other {
		return true
	}
	if bm.size != other.size {
		return false
	}
	a, b := bm.BeginLeft(), other.BeginLeft()
	for !a.IsEnd() && !b.IsEnd() {
		if !bm.left.Equiv(a.Key(), b.Key()) || !bm.right.Equiv(a.Value(), b.Value()) {
			return false
		}
		a, b = a.Next(), b.Next()
	}
	return a.IsEnd() && b.IsEnd()
}

// Clone returns a deep copy of bm, with the same comparators.
//
// The copy is built by inserting the pairs of bm in ascending Left order into
// a fresh bimap. If an insertion panics, e.g. because a comparator panics, the
// partial copy is discarded and Clone returns an empty bimap. It does not
// attempt to recover a complete copy.
func (bm *Bimap[L, R]) Clone() (c *Bimap[L, R]) {
	c = bm.empty()
	defer func() {
		if r := recover(); r != nil {
			T().Errorf("bimap: clone failed after %d pairs, returning empty bimap: %v", c.size, r)
			c = bm.empty()
		}
	}()
	for l, r := range bm.Lefts() {
		c.Insert(l, r)
	}
	return c
}

// Move transfers the contents of bm to a new bimap in O(1). bm is left empty
// and valid, with its comparators.
func (bm *Bimap[L, R]) Move() *Bimap[L, R] {
	m := bm.empty()
	m.Swap(bm)
	return m
}

// Swap exchanges the contents and comparators of bm and other in O(1).
//
// Trees move as a whole, together with their heads, so iterators stay
// attached to the pairs they address, which now belong to the other bimap.
// This holds for end iterators as well: EndLeft of bm taken before the swap
// equals EndLeft of other after it.
func (bm *Bimap[L, R]) Swap(other *Bimap[L, R]) {
	if bm == other {
		return
	}
	bm.left, other.left = other.left, bm.left
	bm.right, other.right = other.right, bm.right
	bm.nodes, other.nodes = other.nodes, bm.nodes
	bm.size, other.size = other.size, bm.size
}

// Assign replaces the contents of bm by a copy of the pairs of other.
// Comparators of bm are replaced by those of other. Assigning a bimap to
// itself does nothing. If copying fails, bm is left empty (see Clone).
func (bm *Bimap[L, R]) Assign(other *Bimap[L, R]) {
	if bm == other {
		return
	}
	c := other.Clone()
	bm.Clear()
	bm.Swap(c)
}

// Lefts returns an iterator over all pairs in ascending Left order.
func (bm *Bimap[L, R]) Lefts() iter.Seq2[L, R] {
	return func(yield func(L, R) bool) {
		for n, l := range bm.left.All() {
			if !yield(l, bm.nodes.Right(n)) {
				return
			}
		}
	}
}

// Rights returns an iterator over all pairs in ascending Right order, with
// Right values first.
func (bm *Bimap[L, R]) Rights() iter.Seq2[R, L] {
	return func(yield func(R, L) bool) {
		for n, r := range bm.right.All() {
			if !yield(r, bm.nodes.Left(n)) {
				return
			}
		}
	}
}

// Check validates the invariants of bm: both trees are valid search trees,
// both hold exactly Len pairs, and every pair is found by either of its
// values in the respective tree.
//
// Check walks all pairs and is meant for tests.
func (bm *Bimap[L, R]) Check() error {
	if err := bm.left.Check(); err != nil {
		return fmt.Errorf("left tree: %w", err)
	}
	if err := bm.right.Check(); err != nil {
		return fmt.Errorf("right tree: %w", err)
	}
	if n := bm.left.Len(); n != bm.size {
		return fmt.Errorf("%w: left tree holds %d pairs, size is %d", tree.ErrBrokenLinks, n, bm.size)
	}
	if n := bm.right.Len(); n != bm.size {
		return fmt.Errorf("%w: right tree holds %d pairs, size is %d", tree.ErrBrokenLinks, n, bm.size)
	}
	if n := bm.nodes.Used(); n != bm.size {
		return fmt.Errorf("%w: %d pair records live, size is %d", tree.ErrBrokenLinks, n, bm.size)
	}
	for n := range bm.left.All() {
		flipped := tree.Flip[L, R](bm.left.At(n))
		if found := bm.right.Find(bm.nodes.Right(n)); !found.Equal(flipped) {
			return fmt.Errorf("%w: pair %d not reachable from right tree", tree.ErrBrokenLinks, n)
		}
	}
	return nil
}
