package tree

// head is the per-tree sentinel. It is not a node of the tree: it carries no
// key and has no parent. A node whose parent link is Nil hangs off the head.
type head struct {
	root Ref
	// paired is the *Tree[V] threading the same nodes through their other
	// link triple, or nil. It is set by Pair.
	paired any
}

// Tree is an unbalanced binary search tree over externally owned nodes.
//
// Keys are expected to be unique with respect to the configured comparator.
// Inserting a node whose key is equivalent to a present key does not fail,
// but the tree will not find both; callers check with Find before inserting.
type Tree[K any] struct {
	head  head
	nodes Nodes[K]
	less  LessFunc[K]
}

// New creates an empty tree threading nodes through the link triples
// provided by nodes.
func New[K any](nodes Nodes[K], cfg Config[K]) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if nodes == nil {
		return nil, ErrInvalidConfig
	}
	cfg = cfg.normalized()
	return &Tree[K]{
		nodes: nodes,
		less:  cfg.Less,
	}, nil
}

// Config returns the tree configuration.
func (t *Tree[K]) Config() Config[K] {
	return Config[K]{Less: t.less}
}

// Less reports whether key a orders before key b under the tree's comparator.
func (t *Tree[K]) Less(a, b K) bool {
	return t.less(a, b)
}

// Equiv reports whether keys a and b are equivalent under the tree's comparator.
func (t *Tree[K]) Equiv(a, b K) bool {
	return !t.Less(a, b) && !t.Less(b, a)
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.head.root == Nil
}

// Root returns the root node, or Nil for an empty tree.
func (t *Tree[K]) Root() Ref {
	return t.head.root
}

// Len counts the nodes of the tree. This walks the whole tree; owners
// needing the size in O(1) have to keep count themselves.
func (t *Tree[K]) Len() int {
	cnt := 0
	t.ForEachKey(func(Ref, K) bool {
		cnt++
		return true
	})
	return cnt
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[K]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	return t.height(t.head.root)
}

func (t *Tree[K]) height(n Ref) int {
	if n == Nil {
		return 0
	}
	l := t.nodes.Links(n)
	return 1 + max(t.height(l.Left), t.height(l.Right))
}

// Insert links node n into the tree. n must not currently be linked into
// this tree; its link triple is overwritten.
//
// Descent goes left if n's key is less than the current node's key, and right
// otherwise. n is attached at the first empty child slot. The tree is not
// rebalanced.
func (t *Tree[K]) Insert(n Ref) Position[K] {
	doAssert(n != Nil, "tree.Insert called with nil node")
	ln := t.nodes.Links(n)
	ln.reset()
	if t.head.root == Nil {
		t.head.root = n
		return Position[K]{t: t, n: n}
	}
	key := t.nodes.Key(n)
	cur := t.head.root
	for {
		lc := t.nodes.Links(cur)
		if t.less(key, t.nodes.Key(cur)) {
			if lc.Left == Nil {
				lc.Left = n
				break
			}
			cur = lc.Left
		} else {
			if lc.Right == Nil {
				lc.Right = n
				break
			}
			cur = lc.Right
		}
	}
	ln.Parent = cur
	return Position[K]{t: t, n: n}
}

// Erase unlinks the node at position p and returns it. The node is not
// released: ownership passes back to the caller, whose node may still be
// linked into other trees. All of the node's links for this tree are cleared.
//
// A node with two children is replaced by its in-order successor. Erasing the
// end position, or a position of another tree, panics.
func (t *Tree[K]) Erase(p Position[K]) Ref {
	doAssert(p.t == t, "tree.Erase called with position of another tree")
	doAssert(p.n != Nil, "tree.Erase called with end position")
	old := p.n
	lo := t.nodes.Links(old)
	switch {
	case lo.Left != Nil && lo.Right != Nil:
		succ := t.leftmost(lo.Right)
		ls := t.nodes.Links(succ)
		// succ has no left child; lift its right subtree into its slot first.
		t.replace(succ, ls.Right)
		ls.Left, ls.Right = lo.Left, lo.Right
		t.nodes.Links(ls.Left).Parent = succ
		if ls.Right != Nil {
			t.nodes.Links(ls.Right).Parent = succ
		}
		t.replace(old, succ)
	case lo.Left != Nil:
		t.replace(old, lo.Left)
	case lo.Right != Nil:
		t.replace(old, lo.Right)
	default:
		t.replace(old, Nil)
	}
	lo.reset()
	return old
}

// replace puts n into the slot old occupies in its parent (or the head).
func (t *Tree[K]) replace(old, n Ref) {
	parent := t.nodes.Links(old).Parent
	if parent == Nil {
		t.head.root = n
	} else if pl := t.nodes.Links(parent); pl.Left == old {
		pl.Left = n
	} else {
		pl.Right = n
	}
	if n != Nil {
		t.nodes.Links(n).Parent = parent
	}
}

// Swap exchanges contents, comparators and node views of two trees in O(1).
//
// Only unpaired trees may be swapped: a pairing ties a tree to the node
// storage of its sibling, which does not travel with the contents. Owners
// of paired trees exchange the tree objects instead. Swapping a paired tree
// panics.
//
// Roots hang off the head through a Nil parent link, so they need no
// re-parenting.
func (t *Tree[K]) Swap(other *Tree[K]) {
	if t == other {
		return
	}
	doAssert(t.head.paired == nil && other.head.paired == nil, "tree.Swap called with paired tree")
	t.head.root, other.head.root = other.head.root, t.head.root
	t.nodes, other.nodes = other.nodes, t.nodes
	t.less, other.less = other.less, t.less
}

// Pair links the heads of two trees sharing node storage, enabling Flip
// between them.
func Pair[K, V any](a *Tree[K], b *Tree[V]) {
	doAssert(a != nil && b != nil, "tree.Pair called with nil tree")
	a.head.paired = b
	b.head.paired = a
}

func (t *Tree[K]) leftmost(n Ref) Ref {
	for l := t.nodes.Links(n); l.Left != Nil; l = t.nodes.Links(n) {
		n = l.Left
	}
	return n
}

func (t *Tree[K]) rightmost(n Ref) Ref {
	for l := t.nodes.Links(n); l.Right != Nil; l = t.nodes.Links(n) {
		n = l.Right
	}
	return n
}
