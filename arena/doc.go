/*
Package arena stores the pair records of a bimap.

A pair record holds one Left value, one Right value and two link triples,
one for the tree ordered by Left values and one for the tree ordered by
Right values. Records are addressed by stable handles (tree.Ref); handle 0
is reserved as tree.Nil. A handle stays valid from Alloc until Free, and
freed slots are reused by later allocations.

LeftView and RightView expose the records to the two trees. Both views
resolve the same handle to the same record, so moving from a node's
left-tree role to its right-tree role is a matter of using the handle with
the other tree.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package arena

func doAssert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
