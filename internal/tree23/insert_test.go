package tree23

import (
	"bytes"
	"strings"
	"testing"

	"github.com/KilimcininKorOglu/twothree/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Insertion Tests
// =============================================================================

func TestInsertIntoEmptyTree(t *testing.T) {
	tree := New[int, string]()
	require.Nil(t, tree.Root())
	assert.Equal(t, 0, tree.Height())

	tree.Insert(5, "five")

	root := tree.Root()
	require.NotNil(t, root)
	assert.True(t, root.IsTwoNode())
	assert.True(t, root.IsLeaf())
	assert.Equal(t, Entry[int, string]{Key: 5, Value: "five"}, root.Less())
	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, 1, tree.Height())
}

func TestInsertUpgradesTwoNode(t *testing.T) {
	tests := []struct {
		name     string
		keys     []int
		expected []int
	}{
		{"larger key", []int{1, 2}, []int{1, 2}},
		{"smaller key", []int{2, 1}, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := buildTree(t, tt.keys...)

			root := tree.Root()
			assert.True(t, root.IsThreeNode())
			assert.True(t, root.IsLeaf())
			assert.Equal(t, tt.expected, keysOf(root.Entries()))
			requireValid(t, tree)
		})
	}
}

func TestInsertSplitsLeafRoot(t *testing.T) {
	tests := []struct {
		name     string
		keys     []int
		promoted int
	}{
		{"incoming smallest", []int{2, 3, 1}, 2},
		{"incoming middle", []int{1, 3, 2}, 2},
		{"incoming largest", []int{1, 2, 3}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := buildTree(t, tt.keys...)

			root := tree.Root()
			require.True(t, root.IsTwoNode())
			assert.Equal(t, tt.promoted, root.Less().Key)
			children := root.Children()
			require.Len(t, children, 2)
			assert.Equal(t, []int{1}, keysOf(children[0].Entries()))
			assert.Equal(t, []int{3}, keysOf(children[1].Entries()))
			assert.Equal(t, 2, tree.Height())
			requireValid(t, tree)
		})
	}
}

func TestInsertSplitPropagatesThroughInternalNodes(t *testing.T) {
	// each ordering overflows the internal root from a different child slot
	tests := []struct {
		name string
		keys []int
	}{
		{"from left", []int{50, 60, 70, 80, 90, 10, 20, 30}},
		{"from center", []int{10, 20, 80, 90, 30, 40, 50}},
		{"from right", []int{10, 20, 30, 40, 50, 60, 70}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := New[int, int]()
			for _, k := range tt.keys {
				tree.Insert(k, k)
				requireValid(t, tree)
			}
			assert.Equal(t, len(tt.keys), tree.Len())
			assert.Equal(t, 3, tree.Height())
		})
	}
}

func TestInsertReplacesExistingValue(t *testing.T) {
	tree := buildTree(t, rang(20)...)

	var before bytes.Buffer
	require.NoError(t, tree.Print(&before))

	for _, k := range []int{0, 7, 13, 19} {
		old, replaced := tree.ReplaceOrInsert(k, k*100)
		assert.True(t, replaced)
		assert.Equal(t, k, old)
	}
	tree.Insert(3, -3)

	var after bytes.Buffer
	require.NoError(t, tree.Print(&after))

	assert.Equal(t, 20, tree.Len())
	assert.Equal(t, strings.Count(before.String(), "{"), strings.Count(after.String(), "{"))
	assert.Equal(t, keysOf(buildTree(t, rang(20)...).InOrder()), keysOf(tree.InOrder()))

	v, ok := tree.Get(13)
	assert.True(t, ok)
	assert.Equal(t, 1300, v)
	v, _ = tree.Get(3)
	assert.Equal(t, -3, v)
	requireValid(t, tree)
}

func TestReplaceOrInsertNewKey(t *testing.T) {
	tree := buildTree(t, 1, 2)

	old, replaced := tree.ReplaceOrInsert(3, 3)
	assert.False(t, replaced)
	assert.Zero(t, old)
	assert.Equal(t, 3, tree.Len())
}

func TestInsertNilKeyIsIgnored(t *testing.T) {
	compare := func(a, b *int) int { return *a - *b }
	tree := NewWithCompare[*int, string](compare)

	tree.Insert(nil, "nothing")
	assert.Equal(t, 0, tree.Len())
	assert.Nil(t, tree.Root())

	one, two := 1, 2
	tree.Insert(&two, "two")
	tree.Insert(nil, "nothing")
	tree.Insert(&one, "one")

	assert.Equal(t, 2, tree.Len())
	assert.Nil(t, tree.Find(nil))
	_, ok := tree.Precursor(nil)
	assert.False(t, ok)
	requireValid(t, tree)
}

func TestInsertNilInterfaceKeyIsIgnored(t *testing.T) {
	compare := func(a, b interface{}) int { return a.(int) - b.(int) }
	tree := NewWithCompare[interface{}, int](compare)

	tree.Insert(nil, 0)
	tree.Insert(4, 4)

	assert.Equal(t, 1, tree.Len())
	assert.True(t, tree.Has(4))
}

func TestNewWithCompareNilPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewWithCompare[int, int](nil)
	})
}

func TestInsertWithCustomOrder(t *testing.T) {
	descending := func(a, b string) int { return strings.Compare(b, a) }
	tree := NewWithCompare[string, int](descending)

	for i, k := range []string{"m", "c", "x", "a", "q", "z", "f"} {
		tree.Insert(k, i)
	}

	var keys []string
	for _, e := range tree.InOrder() {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"z", "x", "q", "m", "f", "c", "a"}, keys)

	first, _ := tree.Min()
	assert.Equal(t, "z", first.Key)
	requireValid(t, tree)
}

func TestInsertLogsStructuralEvents(t *testing.T) {
	var buf bytes.Buffer
	tree := New[int, int]()
	tree.SetLogger(logging.NewWithWriter(&buf, logging.LevelDebug, logging.FormatText))

	for _, k := range []int{1, 2, 3} {
		tree.Insert(k, k)
	}
	tree.Insert(2, 20)

	output := buf.String()
	assert.Contains(t, output, "node split depth=0 promoted=2")
	assert.Contains(t, output, "root grown height=2 key=2")
	assert.Contains(t, output, "value replaced key=2")

	tree.SetLogger(nil)
	buf.Reset()
	tree.Insert(4, 4)
	assert.Empty(t, buf.String())
}

// =============================================================================
// Invariant Properties
// =============================================================================

func TestScenarioSequentialKeys(t *testing.T) {
	tree := buildTree(t, rang(10)...)

	assert.Equal(t, rang(10), keysOf(tree.InOrder()))
	assert.Equal(t, 10, tree.Len())
	assert.Equal(t, 3, tree.Height())
	requireValid(t, tree)

	root := tree.Root()
	assert.Equal(t, []int{3}, keysOf(root.Entries()))
	children := root.Children()
	require.Len(t, children, 2)
	assert.Equal(t, []int{1}, keysOf(children[0].Entries()))
	assert.Equal(t, []int{5, 7}, keysOf(children[1].Entries()))
}

func TestScenarioBalancedAfterEveryInsert(t *testing.T) {
	tree := New[int, int]()
	for k := 1; k <= 7; k++ {
		tree.Insert(k, k)
		requireValid(t, tree)
		assert.Equal(t, k, tree.Len())
	}
}

func TestRandomInsertionsStayValid(t *testing.T) {
	const treeSize = 1000
	for i := 0; i < 10; i++ {
		tree := New[int, int]()
		for j, k := range perm(treeSize) {
			tree.Insert(k, k)
			if j%97 == 0 {
				requireValid(t, tree)
			}
		}
		requireValid(t, tree)
		assert.Equal(t, rang(treeSize), keysOf(tree.InOrder()))

		// a 2-3 tree of n entries has height between log3(n+1) and log2(n+1)
		h := tree.Height()
		assert.GreaterOrEqual(t, h, 7)
		assert.LessOrEqual(t, h, 10)
	}
}

func TestRoundTripFindsEveryKey(t *testing.T) {
	keys := perm(500)
	tree := New[int, int]()
	for _, k := range keys {
		// only even keys are inserted
		if k%2 == 0 {
			tree.Insert(k, k*3)
		}
	}

	for _, k := range keys {
		v, ok := tree.Get(k)
		if k%2 == 0 {
			assert.True(t, ok, "key %d", k)
			assert.Equal(t, k*3, v)
			require.NotNil(t, tree.Find(k))
		} else {
			assert.False(t, ok, "key %d", k)
			assert.Nil(t, tree.Find(k))
		}
	}
	assert.Equal(t, 250, tree.Len())
}

// =============================================================================
// Benchmarks
// =============================================================================

const benchmarkTreeSize = 10000

func BenchmarkInsert(b *testing.B) {
	b.StopTimer()
	insertP := perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		tree := New[int, int]()
		for _, k := range insertP {
			tree.Insert(k, k)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkGet(b *testing.B) {
	b.StopTimer()
	tree := buildTree(b, perm(benchmarkTreeSize)...)
	lookups := perm(benchmarkTreeSize)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tree.Get(lookups[i%benchmarkTreeSize])
	}
}
