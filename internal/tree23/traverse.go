// Package tree23 provides an in-memory 2-3 tree ordered map.
package tree23

// EntryIterator is called for each entry visited by Ascend. Returning false
// stops the iteration.
type EntryIterator[K any, V any] func(e Entry[K, V]) bool

// PreOrder returns the entries in pre-order: a node's smaller entry, its
// left and center subtrees, its larger entry, then its right subtree.
func (t *Tree[K, V]) PreOrder() []Entry[K, V] {
	out := make([]Entry[K, V], 0, t.length)
	return preOrder(t.root, out)
}

// InOrder returns the entries in ascending key order.
func (t *Tree[K, V]) InOrder() []Entry[K, V] {
	out := make([]Entry[K, V], 0, t.length)
	t.Ascend(func(e Entry[K, V]) bool {
		out = append(out, e)
		return true
	})
	return out
}

// PostOrder returns the entries in post-order: all subtrees of a node from
// left to right, then the node's entries.
func (t *Tree[K, V]) PostOrder() []Entry[K, V] {
	out := make([]Entry[K, V], 0, t.length)
	return postOrder(t.root, out)
}

// Ascend calls iter for every entry in ascending key order until iter
// returns false.
func (t *Tree[K, V]) Ascend(iter EntryIterator[K, V]) {
	if t.root == nil {
		return
	}
	t.root.ascend(iter)
}

func preOrder[K any, V any](n *Node[K, V], out []Entry[K, V]) []Entry[K, V] {
	if n == nil {
		return out
	}
	out = append(out, n.entries[0])
	out = preOrder(n.children[0], out)
	out = preOrder(n.children[1], out)
	if n.count == 2 {
		out = append(out, n.entries[1])
		out = preOrder(n.children[2], out)
	}
	return out
}

func postOrder[K any, V any](n *Node[K, V], out []Entry[K, V]) []Entry[K, V] {
	if n == nil {
		return out
	}
	for _, c := range n.children {
		out = postOrder(c, out)
	}
	return append(out, n.entries[:n.count]...)
}

func (n *Node[K, V]) ascend(iter EntryIterator[K, V]) bool {
	leaf := n.IsLeaf()
	for i := 0; i < n.count; i++ {
		if !leaf && !n.children[i].ascend(iter) {
			return false
		}
		if !iter(n.entries[i]) {
			return false
		}
	}
	if !leaf {
		return n.children[n.count].ascend(iter)
	}
	return true
}
