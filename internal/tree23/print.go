// Package tree23 provides an in-memory 2-3 tree ordered map.
package tree23

import (
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"
)

// levelSeparator separates nodes of the same depth in Print output.
const levelSeparator = "    "

// Print writes a level-order rendering of the tree to w, one line per depth
// with the nodes of that depth from left to right. Used for debugging; the
// output is not meant to be parsed. An empty tree writes nothing.
func (t *Tree[K, V]) Print(w io.Writer) error {
	if t.root == nil {
		return nil
	}

	level := []*Node[K, V]{t.root}
	for len(level) > 0 {
		var next []*Node[K, V]
		parts := make([]string, 0, len(level))
		for _, n := range level {
			parts = append(parts, n.String())
			next = append(next, n.Children()...)
		}
		if _, err := fmt.Fprintln(w, strings.Join(parts, levelSeparator)); err != nil {
			return err
		}
		level = next
	}
	return nil
}

// Render returns an indented diagram of the tree structure.
func (t *Tree[K, V]) Render() string {
	if t.root == nil {
		return treeprint.NewWithRoot("(empty)").String()
	}
	tree := treeprint.NewWithRoot(t.root.String())
	addBranches(tree, t.root)
	return tree.String()
}

func addBranches[K any, V any](tree treeprint.Tree, n *Node[K, V]) {
	for _, c := range n.Children() {
		if c.IsLeaf() {
			tree.AddNode(c.String())
			continue
		}
		addBranches(tree.AddBranch(c.String()), c)
	}
}
