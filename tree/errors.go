package tree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("tree: invalid configuration")
	// ErrBrokenOrder signals that in-order traversal is not strictly ascending.
	ErrBrokenOrder = errors.New("tree: order violated")
	// ErrBrokenLinks signals inconsistent parent/child links.
	ErrBrokenLinks = errors.New("tree: inconsistent links")
	// ErrNotPaired signals a flip between trees which have not been paired.
	ErrNotPaired = errors.New("tree: trees are not paired")
)
