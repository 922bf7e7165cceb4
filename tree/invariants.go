package tree

import "fmt"

// Check validates structural tree invariants: parent/child links agree, no
// node is reachable twice, and in-order keys are strictly ascending.
//
// It walks the whole tree and is meant for tests.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.nodes == nil || t.less == nil {
		return fmt.Errorf("%w: tree not initialized", ErrInvalidConfig)
	}
	if t.head.root == Nil {
		return nil
	}
	if p := t.nodes.Links(t.head.root).Parent; p != Nil {
		return fmt.Errorf("%w: root %d has parent %d", ErrBrokenLinks, t.head.root, p)
	}
	seen := make(map[Ref]struct{})
	if _, err := t.checkNode(t.head.root, seen); err != nil {
		return err
	}
	var prev Ref
	for p := t.Begin(); !p.IsEnd(); p = p.Next() {
		if prev != Nil && !t.Less(t.nodes.Key(prev), t.nodes.Key(p.n)) {
			return fmt.Errorf("%w: node %d does not order before node %d", ErrBrokenOrder, prev, p.n)
		}
		prev = p.n
	}
	return nil
}

func (t *Tree[K]) checkNode(n Ref, seen map[Ref]struct{}) (count int, err error) {
	if _, dup := seen[n]; dup {
		return 0, fmt.Errorf("%w: node %d reachable twice", ErrBrokenLinks, n)
	}
	seen[n] = struct{}{}
	l := t.nodes.Links(n)
	count = 1
	for _, child := range [2]Ref{l.Left, l.Right} {
		if child == Nil {
			continue
		}
		if p := t.nodes.Links(child).Parent; p != n {
			return 0, fmt.Errorf("%w: child %d of node %d has parent %d", ErrBrokenLinks, child, n, p)
		}
		c, err := t.checkNode(child, seen)
		if err != nil {
			return 0, err
		}
		count += c
	}
	return count, nil
}
