package tree

import (
	"cmp"
	"fmt"
)

// LessFunc determines how to order keys of type K. It must implement a strict
// weak ordering: irreflexive and transitive, with transitive equivalence
// (neither less(a, b) nor less(b, a)).
//
// A comparator violating these rules corrupts a tree silently.
type LessFunc[K any] func(a, b K) bool

// Less returns a LessFunc using the '<' operator of an ordered type.
func Less[K cmp.Ordered]() LessFunc[K] {
	return func(a, b K) bool { return a < b }
}

// Config configures a tree.
type Config[K any] struct {
	// Less orders the keys of the tree.
	Less LessFunc[K]
}

func (cfg Config[K]) normalized() Config[K] {
	return cfg
}

func (cfg Config[K]) validate() error {
	cfg = cfg.normalized()
	if cfg.Less == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return nil
}
