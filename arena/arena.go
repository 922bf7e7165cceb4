package arena

import (
	"math"

	"github.com/npillmayer/bimap/tree"
)

// Role selects which of a record's link triples a tree threads.
type Role uint8

const (
	// LeftRole is the role of a record in the tree ordered by Left values.
	LeftRole Role = iota
	// RightRole is the role of a record in the tree ordered by Right values.
	RightRole
)

func (r Role) String() string {
	if r == LeftRole {
		return "left"
	}
	return "right"
}

type pair[L, R any] struct {
	left  L
	right R
	links [2]tree.Links
	used  bool
}

// Arena allocates pair records.
type Arena[L, R any] struct {
	storage []pair[L, R]
	gaps    []tree.Ref
}

// New creates an empty arena.
func New[L, R any]() *Arena[L, R] {
	return &Arena[L, R]{}
}

// Size returns the number of slots currently allocated, free ones included.
func (a *Arena[L, R]) Size() int {
	return max(len(a.storage)-1, 0)
}

// Used returns the number of live records.
func (a *Arena[L, R]) Used() int {
	return a.Size() - len(a.gaps)
}

// Alloc creates a record for the pair (l, r) and returns its handle.
// Both link triples of the new record are empty.
func (a *Arena[L, R]) Alloc(l L, r R) tree.Ref {
	if n := len(a.gaps); n > 0 {
		ref := a.gaps[n-1]
		a.gaps = a.gaps[:n-1]
		a.storage[ref] = pair[L, R]{left: l, right: r, used: true}
		return ref
	}
	if len(a.storage) == 0 {
		// Zero is reserved.
		a.storage = append(a.storage, pair[L, R]{})
	}
	doAssert(uint64(len(a.storage)) < math.MaxUint32, "arena: out of handles")
	a.storage = append(a.storage, pair[L, R]{left: l, right: r, used: true})
	return tree.Ref(len(a.storage) - 1)
}

// Free releases the record at ref. The record must not be linked into any
// tree anymore. Freeing tree.Nil or an already freed record panics.
func (a *Arena[L, R]) Free(ref tree.Ref) {
	doAssert(ref != tree.Nil, "arena: record #0 is reserved and cannot be freed")
	doAssert(a.Live(ref), "arena: double free")
	a.storage[ref] = pair[L, R]{}
	a.gaps = append(a.gaps, ref)
}

// Live reports whether ref addresses an allocated record.
func (a *Arena[L, R]) Live(ref tree.Ref) bool {
	return ref != tree.Nil && int(ref) < len(a.storage) && a.storage[ref].used
}

// Left returns the Left value of the record at ref.
func (a *Arena[L, R]) Left(ref tree.Ref) L {
	return a.storage[ref].left
}

// Right returns the Right value of the record at ref.
func (a *Arena[L, R]) Right(ref tree.Ref) R {
	return a.storage[ref].right
}

// Links returns the link triple of the record at ref for the given role.
func (a *Arena[L, R]) Links(ref tree.Ref, role Role) *tree.Links {
	return &a.storage[ref].links[role]
}

// LeftView returns the node view for the tree ordered by Left values.
func (a *Arena[L, R]) LeftView() LeftNodes[L, R] {
	return LeftNodes[L, R]{arena: a}
}

// RightView returns the node view for the tree ordered by Right values.
func (a *Arena[L, R]) RightView() RightNodes[L, R] {
	return RightNodes[L, R]{arena: a}
}

// LeftNodes presents records in their left-tree role. It implements
// tree.Nodes[L].
type LeftNodes[L, R any] struct {
	arena *Arena[L, R]
}

// Links returns the left-tree link triple of ref.
func (v LeftNodes[L, R]) Links(ref tree.Ref) *tree.Links {
	return &v.arena.storage[ref].links[LeftRole]
}

// Key returns the Left value of ref.
func (v LeftNodes[L, R]) Key(ref tree.Ref) L {
	return v.arena.storage[ref].left
}

// RightNodes presents records in their right-tree role. It implements
// tree.Nodes[R].
type RightNodes[L, R any] struct {
	arena *Arena[L, R]
}

// Links returns the right-tree link triple of ref.
func (v RightNodes[L, R]) Links(ref tree.Ref) *tree.Links {
	return &v.arena.storage[ref].links[RightRole]
}

// Key returns the Right value of ref.
func (v RightNodes[L, R]) Key(ref tree.Ref) R {
	return v.arena.storage[ref].right
}

var (
	_ tree.Nodes[int]    = LeftNodes[int, string]{}
	_ tree.Nodes[string] = RightNodes[int, string]{}
)
