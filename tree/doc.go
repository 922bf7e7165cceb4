/*
Package tree provides the ordered-tree engine used by bimap.

A Tree is a plain, unbalanced binary search tree. It does not own its nodes:
nodes live in external storage and are addressed by handles (Ref). The tree
reaches a node's key and its link triple (left child, right child, parent)
through a Nodes view. Two trees may therefore thread the same node objects,
each through its own link triple, which is how bimap keeps one pair record
in a tree ordered by Left values and in a tree ordered by Right values at
the same time.

Every tree has a head record. The head holds the root and stands in for the
end position in both directions of iteration. It additionally holds a
reference to a paired tree (see Pair), so that positions, end positions
included, can be flipped to the paired tree in constant time.

The tree is never rebalanced. The shape depends on insertion order, and
depth is O(n) in the worst case.

Trees are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package tree

func doAssert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
