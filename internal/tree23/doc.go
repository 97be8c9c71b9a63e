// Package tree23 implements an in-memory 2-3 tree, a balanced search tree
// used as an ordered map.
//
// # Overview
//
// Every node of a 2-3 tree holds one or two ordered entries:
//
//   - A 2-node holds one entry and, if internal, two children
//   - A 3-node holds two entries and, if internal, three children
//   - All leaves sit at the same depth
//
// Lookups, insertions, minimum/maximum and predecessor/successor queries
// run in O(log n). Traversals run in O(n).
//
// # Insertion
//
// New entries always enter at a leaf. A 2-node leaf grows into a 3-node.
// A 3-node that receives a third entry splits: the middle entry moves up
// into the parent and the two outer entries become separate 2-nodes. The
// split repeats up the path from the root and, when the root itself
// splits, the tree grows one level.
//
//	          (4)                         (4, 8)
//	         /   \      insert 9         /   |   \
//	      (2)    (6, 8)    ──►        (2)   (6)   (9)
//
// # Usage
//
// Create and use a tree:
//
//	tree := tree23.New[int, string]()
//
//	// Insert or replace
//	tree.Insert(8, "eight")
//
//	// Lookup
//	value, found := tree.Get(8)
//
//	// Neighbours
//	prev, ok := tree.Precursor(8)
//	next, ok := tree.Successor(8)
//
//	// Ordered iteration
//	tree.Ascend(func(e tree23.Entry[int, string]) bool {
//	    fmt.Println(e.Key, e.Value)
//	    return true
//	})
//
// Keys without a natural order use a comparator:
//
//	tree := tree23.NewWithCompare[[]byte, int](bytes.Compare)
//
// # Debugging
//
// Print writes one line per level; Render returns an indented diagram:
//
//	tree.Print(os.Stdout)
//	fmt.Println(tree.Render())
//
// Validate reports the first broken invariant, if any.
package tree23
