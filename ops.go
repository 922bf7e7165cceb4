package bimap

import (
	"fmt"
)

// BeginLeft returns an iterator to the pair with the smallest Left value, or
// EndLeft for an empty bimap.
func (bm *Bimap[L, R]) BeginLeft() Iterator[L, R] {
	return Iterator[L, R]{pos: bm.left.Begin()}
}

// EndLeft returns the left side end iterator.
func (bm *Bimap[L, R]) EndLeft() Iterator[L, R] {
	return Iterator[L, R]{pos: bm.left.End()}
}

// BeginRight returns an iterator to the pair with the smallest Right value, or
// EndRight for an empty bimap.
func (bm *Bimap[L, R]) BeginRight() Iterator[R, L] {
	return Iterator[R, L]{pos: bm.right.Begin()}
}

// EndRight returns the right side end iterator.
func (bm *Bimap[L, R]) EndRight() Iterator[R, L] {
	return Iterator[R, L]{pos: bm.right.End()}
}

// FindLeft returns an iterator to the pair holding left, or EndLeft.
func (bm *Bimap[L, R]) FindLeft(left L) Iterator[L, R] {
	return Iterator[L, R]{pos: bm.left.Find(left)}
}

// FindRight returns an iterator to the pair holding right, or EndRight.
func (bm *Bimap[L, R]) FindRight(right R) Iterator[R, L] {
	return Iterator[R, L]{pos: bm.right.Find(right)}
}

// AtLeft returns the Right value paired with left. If there is no such pair,
// an error wrapping ErrKeyNotFound is returned.
func (bm *Bimap[L, R]) AtLeft(left L) (R, error) {
	it := bm.FindLeft(left)
	if it.IsEnd() {
		var zero R
		return zero, fmt.Errorf("%w: left value %v", ErrKeyNotFound, left)
	}
	return it.Value(), nil
}

// AtRight returns the Left value paired with right. If there is no such pair,
// an error wrapping ErrKeyNotFound is returned.
func (bm *Bimap[L, R]) AtRight(right R) (L, error) {
	it := bm.FindRight(right)
	if it.IsEnd() {
		var zero L
		return zero, fmt.Errorf("%w: right value %v", ErrKeyNotFound, right)
	}
	return it.Value(), nil
}

// AtLeftOrDefault returns the Right value paired with left. If left is not
// present, the pair (left, zero value of R) is inserted and the zero value is
// returned.
//
// Right values have to stay unique: a pair currently holding the zero value
// of R is erased before the insertion. The bimap keeps its size in this case.
func (bm *Bimap[L, R]) AtLeftOrDefault(left L) R {
	if it := bm.FindLeft(left); !it.IsEnd() {
		return it.Value()
	}
	var dflt R
	if it := bm.FindRight(dflt); !it.IsEnd() {
		T().Debugf("bimap: evicting pair (%v, %v) for default right value", it.Value(), dflt)
		bm.EraseRight(it)
	}
	it := bm.Insert(left, dflt)
	assert(!it.IsEnd(), "bimap: default insertion rejected")
	return it.Value()
}

// AtRightOrDefault returns the Left value paired with right. If right is not
// present, the pair (zero value of L, right) is inserted and the zero value is
// returned.
//
// A pair currently holding the zero value of L is erased before the
// insertion.
func (bm *Bimap[L, R]) AtRightOrDefault(right R) L {
	if it := bm.FindRight(right); !it.IsEnd() {
		return it.Value()
	}
	var dflt L
	if it := bm.FindLeft(dflt); !it.IsEnd() {
		T().Debugf("bimap: evicting pair (%v, %v) for default left value", dflt, it.Value())
		bm.EraseLeft(it)
	}
	it := bm.Insert(dflt, right)
	assert(!it.IsEnd(), "bimap: default insertion rejected")
	return it.Key()
}

// LowerBoundLeft returns an iterator to the first pair whose Left value is not
// less than left, or EndLeft.
func (bm *Bimap[L, R]) LowerBoundLeft(left L) Iterator[L, R] {
	return Iterator[L, R]{pos: bm.left.LowerBound(left)}
}

// UpperBoundLeft returns an iterator to the first pair whose Left value is
// greater than left, or EndLeft.
func (bm *Bimap[L, R]) UpperBoundLeft(left L) Iterator[L, R] {
	return Iterator[L, R]{pos: bm.left.UpperBound(left)}
}

// LowerBoundRight returns an iterator to the first pair whose Right value is
// not less than right, or EndRight.
func (bm *Bimap[L, R]) LowerBoundRight(right R) Iterator[R, L] {
	return Iterator[R, L]{pos: bm.right.LowerBound(right)}
}

// UpperBoundRight returns an iterator to the first pair whose Right value is
// greater than right, or EndRight.
func (bm *Bimap[L, R]) UpperBoundRight(right R) Iterator[R, L] {
	return Iterator[R, L]{pos: bm.right.UpperBound(right)}
}

// EraseLeft removes the pair at it and returns an iterator to the following
// pair in Left order.
//
// it must address a pair of bm. Erasing an end iterator, an iterator of
// another bimap, or an iterator to an already erased pair is a programming
// error; the first two are detected and panic, the last is not detected.
func (bm *Bimap[L, R]) EraseLeft(it Iterator[L, R]) Iterator[L, R] {
	next := it.Next()
	bm.erase(it.pos)
	return next
}

// EraseRight removes the pair at it and returns an iterator to the following
// pair in Right order. The preconditions of EraseLeft apply.
func (bm *Bimap[L, R]) EraseRight(it Iterator[R, L]) Iterator[R, L] {
	next := it.Next()
	bm.erase(it.Flip().pos)
	return next
}

// EraseLeftKey removes the pair holding left, if any, and reports whether a
// pair has been removed.
func (bm *Bimap[L, R]) EraseLeftKey(left L) bool {
	it := bm.FindLeft(left)
	if it.IsEnd() {
		return false
	}
	bm.EraseLeft(it)
	return true
}

// EraseRightKey removes the pair holding right, if any, and reports whether a
// pair has been removed.
func (bm *Bimap[L, R]) EraseRightKey(right R) bool {
	it := bm.FindRight(right)
	if it.IsEnd() {
		return false
	}
	bm.EraseRight(it)
	return true
}

// EraseLeftRange removes the pairs in [first, last) in Left order and returns
// last. last must be reachable from first.
func (bm *Bimap[L, R]) EraseLeftRange(first, last Iterator[L, R]) Iterator[L, R] {
	for !first.Equal(last) {
		first = bm.EraseLeft(first)
	}
	return last
}

// EraseRightRange removes the pairs in [first, last) in Right order and
// returns last. last must be reachable from first.
func (bm *Bimap[L, R]) EraseRightRange(first, last Iterator[R, L]) Iterator[R, L] {
	for !first.Equal(last) {
		first = bm.EraseRight(first)
	}
	return last
}
