// Package tree23 provides an in-memory 2-3 tree ordered map.
package tree23

// Find returns the node holding key, or nil if the key is not in the tree.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	n, _ := t.find(key)
	return n
}

// find returns the node holding key and the index of the key within it.
func (t *Tree[K, V]) find(key K) (*Node[K, V], int) {
	if isNilKey(key) {
		return nil, -1
	}
	n := t.root
	for n != nil {
		if i := n.indexOf(key, t.compare); i >= 0 {
			return n, i
		}
		if n.IsLeaf() {
			return nil, -1
		}
		n = n.children[n.childIndex(key, t.compare)]
	}
	return nil, -1
}

// findPath returns every node from the root down to the node holding key,
// together with the index of key in that last node. The path is nil if
// the key is absent.
func (t *Tree[K, V]) findPath(key K) ([]*Node[K, V], int) {
	if isNilKey(key) {
		return nil, -1
	}
	var path []*Node[K, V]
	n := t.root
	for n != nil {
		path = append(path, n)
		if i := n.indexOf(key, t.compare); i >= 0 {
			return path, i
		}
		if n.IsLeaf() {
			return nil, -1
		}
		n = n.children[n.childIndex(key, t.compare)]
	}
	return nil, -1
}

// Get returns the value stored under key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	n, i := t.find(key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.entries[i].Value, true
}

// Has reports whether key is in the tree.
func (t *Tree[K, V]) Has(key K) bool {
	n, _ := t.find(key)
	return n != nil
}

// MinNode returns the leaf holding the smallest entry of the subtree rooted
// at n, or nil if n is nil.
func MinNode[K any, V any](n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	for !n.IsLeaf() {
		n = n.children[0]
	}
	return n
}

// MaxNode returns the leaf holding the largest entry of the subtree rooted
// at n, or nil if n is nil.
func MaxNode[K any, V any](n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	for !n.IsLeaf() {
		n = n.children[n.count]
	}
	return n
}

// Min returns the entry with the smallest key.
func (t *Tree[K, V]) Min() (Entry[K, V], bool) {
	n := MinNode(t.root)
	if n == nil {
		return Entry[K, V]{}, false
	}
	return n.entries[0], true
}

// Max returns the entry with the largest key.
func (t *Tree[K, V]) Max() (Entry[K, V], bool) {
	n := MaxNode(t.root)
	if n == nil {
		return Entry[K, V]{}, false
	}
	return n.entries[n.count-1], true
}

// Precursor returns the in-order predecessor of key. The second result is
// false if key is not in the tree or is the smallest key.
//
// For a key held by an internal node the predecessor is the largest entry
// of the subtree immediately left of the key. For a key held by a leaf it
// is the smaller entry of the same leaf when there is one, otherwise the
// closest entry below the key on the path from the root.
func (t *Tree[K, V]) Precursor(key K) (Entry[K, V], bool) {
	path, idx := t.findPath(key)
	if path == nil {
		return Entry[K, V]{}, false
	}
	n := path[len(path)-1]

	if !n.IsLeaf() {
		m := MaxNode(n.children[idx])
		return m.entries[m.count-1], true
	}
	if idx == 1 {
		return n.entries[0], true
	}

	var (
		pred  Entry[K, V]
		found bool
	)
	for _, ancestor := range path[:len(path)-1] {
		// every step that does not enter the leftmost child passes an
		// entry smaller than key; the deepest such entry is the closest
		if i := ancestor.childIndex(key, t.compare); i > 0 {
			pred, found = ancestor.entries[i-1], true
		}
	}
	return pred, found
}

// Successor returns the in-order successor of key. The second result is
// false if key is not in the tree or is the largest key.
//
// For a key held by an internal node the successor is the smallest entry
// of the subtree immediately right of the key. For a key held by a leaf it
// is the larger entry of the same leaf when there is one, otherwise the
// closest entry above the key on the path from the root.
func (t *Tree[K, V]) Successor(key K) (Entry[K, V], bool) {
	path, idx := t.findPath(key)
	if path == nil {
		return Entry[K, V]{}, false
	}
	n := path[len(path)-1]

	if !n.IsLeaf() {
		m := MinNode(n.children[idx+1])
		return m.entries[0], true
	}
	if idx+1 < n.count {
		return n.entries[idx+1], true
	}

	var (
		succ  Entry[K, V]
		found bool
	)
	for _, ancestor := range path[:len(path)-1] {
		if i := ancestor.childIndex(key, t.compare); i < ancestor.count {
			succ, found = ancestor.entries[i], true
		}
	}
	return succ, found
}
