// Package tree23 provides an in-memory 2-3 tree ordered map.
package tree23

import (
	"fmt"
	"strings"
)

// Entry is a single key/value pair stored in the tree.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// String returns the entry rendered as {key=value}.
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("{%v=%v}", e.Key, e.Value)
}

// Node is a node of a 2-3 tree.
//
// A node holds either one entry (a 2-node) or two ordered entries (a
// 3-node). Internal 2-nodes have exactly two children, internal 3-nodes
// exactly three. Leaves have none.
//
// Nodes returned by the tree are views into the live structure and must
// not be retained across insertions.
type Node[K any, V any] struct {
	entries  [2]Entry[K, V]
	count    int
	children [3]*Node[K, V]
}

// newTwoNode creates a 2-node holding e with the given left and center
// children. Both children are nil for a leaf.
func newTwoNode[K any, V any](e Entry[K, V], left, center *Node[K, V]) *Node[K, V] {
	n := &Node[K, V]{}
	n.setTwo(e, left, center)
	return n
}

// setTwo reshapes n into a 2-node in place.
func (n *Node[K, V]) setTwo(e Entry[K, V], left, center *Node[K, V]) {
	n.entries[0] = e
	n.entries[1] = Entry[K, V]{}
	n.count = 1
	n.children[0] = left
	n.children[1] = center
	n.children[2] = nil
}

// setThree reshapes n into a 3-node in place.
func (n *Node[K, V]) setThree(less, greater Entry[K, V], left, center, right *Node[K, V]) {
	n.entries[0] = less
	n.entries[1] = greater
	n.count = 2
	n.children[0] = left
	n.children[1] = center
	n.children[2] = right
}

// Less returns the smaller (or only) entry of the node.
func (n *Node[K, V]) Less() Entry[K, V] {
	return n.entries[0]
}

// Greater returns the larger entry of a 3-node. The second result is false
// for a 2-node.
func (n *Node[K, V]) Greater() (Entry[K, V], bool) {
	if n.count < 2 {
		return Entry[K, V]{}, false
	}
	return n.entries[1], true
}

// IsLeaf reports whether the node has no children.
func (n *Node[K, V]) IsLeaf() bool {
	return n.children[0] == nil
}

// IsTwoNode reports whether the node holds exactly one entry.
func (n *Node[K, V]) IsTwoNode() bool {
	return n.count == 1
}

// IsThreeNode reports whether the node holds exactly two entries.
func (n *Node[K, V]) IsThreeNode() bool {
	return n.count == 2
}

// Entries returns a copy of the node's entries in key order.
func (n *Node[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], n.count)
	copy(out, n.entries[:n.count])
	return out
}

// Children returns the node's children from left to right. It is empty for
// a leaf.
func (n *Node[K, V]) Children() []*Node[K, V] {
	if n.IsLeaf() {
		return nil
	}
	out := make([]*Node[K, V], n.count+1)
	copy(out, n.children[:n.count+1])
	return out
}

// String renders the node as ({k=v}) or ({k=v}, {k=v}).
func (n *Node[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < n.count; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(n.entries[i].String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// indexOf returns the position of key among the node's entries, or -1.
func (n *Node[K, V]) indexOf(key K, compare func(a, b K) int) int {
	for i := 0; i < n.count; i++ {
		if compare(key, n.entries[i].Key) == 0 {
			return i
		}
	}
	return -1
}

// childIndex returns the child slot whose key range contains key. The key
// must not be equal to one of the node's entries.
func (n *Node[K, V]) childIndex(key K, compare func(a, b K) int) int {
	if compare(key, n.entries[0].Key) < 0 {
		return 0
	}
	if n.count == 1 || compare(key, n.entries[1].Key) < 0 {
		return 1
	}
	return 2
}
