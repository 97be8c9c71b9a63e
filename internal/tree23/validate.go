// Package tree23 provides an in-memory 2-3 tree ordered map.
package tree23

import "fmt"

// Validate checks the structural invariants of the tree: every node holds
// one or two ordered entries and two or three children (none for leaves),
// every subtree stays within the key range given by its parent, all leaves
// are at the same depth and the entry count matches Len.
func (t *Tree[K, V]) Validate() error {
	if t.root == nil {
		if t.length != 0 {
			return fmt.Errorf("%w: empty root with length %d", ErrCountMismatch, t.length)
		}
		return nil
	}

	v := validator[K, V]{compare: t.compare, leafDepth: -1}
	if err := v.check(t.root, nil, nil, 0); err != nil {
		return err
	}
	if v.count != t.length {
		return fmt.Errorf("%w: counted %d entries, length %d", ErrCountMismatch, v.count, t.length)
	}
	return nil
}

type validator[K any, V any] struct {
	compare   func(a, b K) int
	leafDepth int
	count     int
}

// check validates the subtree at n whose keys must lie strictly between lo
// and hi (nil bounds are open).
func (v *validator[K, V]) check(n *Node[K, V], lo, hi *K, depth int) error {
	if n.count != 1 && n.count != 2 {
		return fmt.Errorf("%w: node %v holds %d entries", ErrBadShape, n, n.count)
	}
	v.count += n.count

	for i := 0; i < n.count; i++ {
		k := n.entries[i].Key
		if lo != nil && v.compare(k, *lo) <= 0 {
			return fmt.Errorf("%w: key %v not above %v in node %v", ErrUnordered, k, *lo, n)
		}
		if hi != nil && v.compare(k, *hi) >= 0 {
			return fmt.Errorf("%w: key %v not below %v in node %v", ErrUnordered, k, *hi, n)
		}
	}
	if n.count == 2 && v.compare(n.entries[0].Key, n.entries[1].Key) >= 0 {
		return fmt.Errorf("%w: entries of node %v", ErrUnordered, n)
	}

	if n.IsLeaf() {
		for _, c := range n.children {
			if c != nil {
				return fmt.Errorf("%w: leaf %v has children", ErrBadShape, n)
			}
		}
		if v.leafDepth < 0 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return fmt.Errorf("%w: leaf %v at depth %d, expected %d", ErrUnbalanced, n, depth, v.leafDepth)
		}
		return nil
	}

	for i, c := range n.children {
		if i > n.count {
			if c != nil {
				return fmt.Errorf("%w: 2-node %v has a right child", ErrBadShape, n)
			}
			continue
		}
		if c == nil {
			return fmt.Errorf("%w: node %v missing child %d", ErrBadShape, n, i)
		}
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.entries[i-1].Key
		}
		if i < n.count {
			chi = &n.entries[i].Key
		}
		if err := v.check(c, clo, chi, depth+1); err != nil {
			return err
		}
	}
	return nil
}
