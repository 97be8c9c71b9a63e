package tree23

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// perm returns a random permutation of the integers in [0, n).
func perm(n int) []int {
	return rand.Perm(n)
}

// rang returns the integers in [0, n) in increasing order.
func rang(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// buildTree inserts every key with itself as the value.
func buildTree(t testing.TB, keys ...int) *Tree[int, int] {
	t.Helper()
	tree := New[int, int]()
	for _, k := range keys {
		tree.Insert(k, k)
	}
	return tree
}

// keysOf extracts the keys of entries in order.
func keysOf(entries []Entry[int, int]) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Key
	}
	return out
}

// requireValid fails the test if the tree breaks an invariant.
func requireValid[K any, V any](t *testing.T, tree *Tree[K, V]) {
	t.Helper()
	require.NoError(t, tree.Validate())
}
