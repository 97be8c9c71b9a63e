// Package tree23 provides an in-memory 2-3 tree ordered map.
package tree23

// Insert adds the key/value pair to the tree. If the key already exists its
// value is replaced and the shape of the tree is left unchanged. Nil keys
// are ignored.
//
// Algorithm:
// 1. Find the path from the root to the leaf whose range contains the key
// 2. Merge a new 2-node holding the entry into that leaf
// 3. If the leaf was a 3-node, split it and merge the promoted 2-node into
// the parent, repeating up the path
// 4. If the root splits, the promoted 2-node becomes the new root
func (t *Tree[K, V]) Insert(key K, value V) {
	t.ReplaceOrInsert(key, value)
}

// ReplaceOrInsert inserts the key/value pair and returns the value it
// displaced, if any. Nil keys are ignored and report no replacement.
func (t *Tree[K, V]) ReplaceOrInsert(key K, value V) (old V, replaced bool) {
	if isNilKey(key) {
		return old, false
	}

	e := Entry[K, V]{Key: key, Value: value}
	if t.root == nil {
		t.root = newTwoNode[K, V](e, nil, nil)
		t.length = 1
		return old, false
	}

	path, owner, idx := t.findLeafWithPath(key)
	if owner != nil {
		old = owner.entries[idx].Value
		owner.entries[idx].Value = value
		t.logger.Debug("value replaced", "key", key)
		return old, true
	}

	t.merge(path, newTwoNode[K, V](e, nil, nil))
	t.length++
	return old, false
}

// findLeafWithPath descends from the root towards the leaf that should hold
// key, returning every node visited. If a node on the way already holds the
// key, the descent stops and that node and the entry index are returned
// instead of a path.
func (t *Tree[K, V]) findLeafWithPath(key K) (path []*Node[K, V], owner *Node[K, V], idx int) {
	path = make([]*Node[K, V], 0, 8)
	n := t.root
	for n != nil {
		if i := n.indexOf(key, t.compare); i >= 0 {
			return nil, n, i
		}
		path = append(path, n)
		if n.IsLeaf() {
			break
		}
		n = n.children[n.childIndex(key, t.compare)]
	}
	return path, nil, -1
}

// merge folds the 2-node in into the last node of path. in carries either a
// fresh leaf entry (no children) or an entry promoted by a split together
// with the two halves it separates.
func (t *Tree[K, V]) merge(path []*Node[K, V], in *Node[K, V]) {
	if len(path) == 0 {
		t.root = in
		t.logger.Debug("root grown", "key", in.entries[0].Key, "height", t.Height())
		return
	}

	target := path[len(path)-1]
	if target.count == 1 {
		target.absorb(in, t.compare)
		return
	}

	promoted := target.split(in, t.compare)
	t.logger.Debug("node split", "promoted", promoted.entries[0].Key, "depth", len(path)-1)
	t.merge(path[:len(path)-1], promoted)
}

// absorb upgrades the 2-node n into a 3-node holding in's entry. When n is
// internal, in's children replace the child slot they were split from.
func (n *Node[K, V]) absorb(in *Node[K, V], compare func(a, b K) int) {
	a := n.entries[0]
	x, y := n.children[0], n.children[1]
	e := in.entries[0]
	l, c := in.children[0], in.children[1]

	if compare(e.Key, a.Key) > 0 {
		// in came from the center subtree
		n.setThree(a, e, x, l, c)
		return
	}
	// in came from the left subtree
	n.setThree(e, a, l, c, y)
}

// split resolves the overflow of the 3-node n receiving in. Of the three
// entries the middle one is promoted; the smaller and larger become two
// 2-nodes sharing n's three children and in's two children in key order.
// The returned 2-node holds the promoted entry with both halves as its
// children. n and in are reused as the halves.
func (n *Node[K, V]) split(in *Node[K, V], compare func(a, b K) int) *Node[K, V] {
	a, b := n.entries[0], n.entries[1]
	x, y, z := n.children[0], n.children[1], n.children[2]
	e := in.entries[0]
	l, c := in.children[0], in.children[1]

	switch {
	case compare(e.Key, a.Key) < 0:
		// in is already (e; l, c)
		n.setTwo(b, y, z)
		return newTwoNode(a, in, n)
	case compare(e.Key, b.Key) > 0:
		// in is already (e; l, c)
		n.setTwo(a, x, y)
		return newTwoNode(b, n, in)
	default:
		n.setTwo(a, x, l)
		in.setTwo(b, c, z)
		return newTwoNode(e, n, in)
	}
}
