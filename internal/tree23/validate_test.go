package tree23

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func leaf(keys ...int) *Node[int, int] {
	n := &Node[int, int]{count: len(keys)}
	for i, k := range keys {
		n.entries[i] = Entry[int, int]{Key: k, Value: k}
	}
	return n
}

func inner(keys []int, children ...*Node[int, int]) *Node[int, int] {
	n := leaf(keys...)
	copy(n.children[:], children)
	return n
}

func treeWithRoot(root *Node[int, int], length int) *Tree[int, int] {
	tree := New[int, int]()
	tree.root = root
	tree.length = length
	return tree
}

func TestValidateAcceptsWellFormedTrees(t *testing.T) {
	assert.NoError(t, New[int, int]().Validate())
	assert.NoError(t, treeWithRoot(inner([]int{5}, leaf(1, 3), leaf(7)), 4).Validate())
	assert.NoError(t, treeWithRoot(inner([]int{3, 6}, leaf(1), leaf(4, 5), leaf(9)), 6).Validate())
}

func TestValidateDetectsBrokenInvariants(t *testing.T) {
	tests := []struct {
		name     string
		tree     *Tree[int, int]
		expected error
	}{
		{
			name:     "unequal leaf depth",
			tree:     treeWithRoot(inner([]int{5}, inner([]int{2}, leaf(1), leaf(3)), leaf(7)), 5),
			expected: ErrUnbalanced,
		},
		{
			name:     "left subtree too large",
			tree:     treeWithRoot(inner([]int{5}, leaf(6), leaf(7)), 3),
			expected: ErrUnordered,
		},
		{
			name:     "center subtree out of range",
			tree:     treeWithRoot(inner([]int{3, 6}, leaf(1), leaf(7), leaf(9)), 5),
			expected: ErrUnordered,
		},
		{
			name:     "entries not ascending",
			tree:     treeWithRoot(leaf(4, 2), 2),
			expected: ErrUnordered,
		},
		{
			name:     "duplicate entries",
			tree:     treeWithRoot(leaf(4, 4), 2),
			expected: ErrUnordered,
		},
		{
			name:     "empty node",
			tree:     treeWithRoot(leaf(), 0),
			expected: ErrBadShape,
		},
		{
			name:     "missing child",
			tree:     treeWithRoot(inner([]int{3, 6}, leaf(1), leaf(4)), 4),
			expected: ErrBadShape,
		},
		{
			name:     "2-node with right child",
			tree:     treeWithRoot(inner([]int{3}, leaf(1), leaf(4), leaf(9)), 4),
			expected: ErrBadShape,
		},
		{
			name:     "length mismatch",
			tree:     treeWithRoot(leaf(1, 2), 5),
			expected: ErrCountMismatch,
		},
		{
			name:     "empty root with length",
			tree:     treeWithRoot(nil, 1),
			expected: ErrCountMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.tree.Validate(), tt.expected)
		})
	}
}
