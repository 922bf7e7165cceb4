package tree

// Find returns the position of the node with a key equivalent to key, or
// End if there is none.
func (t *Tree[K]) Find(key K) Position[K] {
	cur := t.head.root
	for cur != Nil {
		k := t.nodes.Key(cur)
		if t.less(key, k) {
			cur = t.nodes.Links(cur).Left
		} else if t.less(k, key) {
			cur = t.nodes.Links(cur).Right
		} else {
			return Position[K]{t: t, n: cur}
		}
	}
	return t.End()
}

// LowerBound returns the position of the first node whose key is not less
// than key, or End if there is none.
func (t *Tree[K]) LowerBound(key K) Position[K] {
	cur, candidate := t.head.root, Nil
	for cur != Nil {
		k := t.nodes.Key(cur)
		if t.less(key, k) {
			candidate = cur
			cur = t.nodes.Links(cur).Left
		} else if t.less(k, key) {
			cur = t.nodes.Links(cur).Right
		} else {
			return Position[K]{t: t, n: cur}
		}
	}
	return Position[K]{t: t, n: candidate}
}

// UpperBound returns the position of the first node whose key is greater
// than key, or End if there is none.
func (t *Tree[K]) UpperBound(key K) Position[K] {
	lower := t.LowerBound(key)
	if lower.IsEnd() || t.less(key, lower.Key()) {
		return lower
	}
	return lower.Next()
}
