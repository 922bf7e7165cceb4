package tree

// Ref is a handle to a node held in external storage.
//
// Nil is never a valid node. As a parent link it denotes the tree's head.
type Ref uint32

// Nil is the null handle.
const Nil Ref = 0

// Links is the structural link triple a node carries for one tree.
type Links struct {
	Left, Right, Parent Ref
}

func (l *Links) reset() {
	l.Left, l.Right, l.Parent = Nil, Nil, Nil
}

// Nodes gives a tree access to externally owned nodes.
//
// Links must return a pointer to the link triple reserved for this tree;
// the tree writes through it. Key returns the key the node is ordered by.
// Both are expected to be O(1).
type Nodes[K any] interface {
	Links(n Ref) *Links
	Key(n Ref) K
}
