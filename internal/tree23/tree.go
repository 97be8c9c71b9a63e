// Package tree23 provides an in-memory 2-3 tree ordered map.
package tree23

import (
	"cmp"
	"errors"
	"reflect"

	"github.com/KilimcininKorOglu/twothree/internal/logging"
)

// Tree errors.
var (
	ErrUnbalanced    = errors.New("leaves at different depths")
	ErrUnordered     = errors.New("keys out of order")
	ErrBadShape      = errors.New("malformed node")
	ErrCountMismatch = errors.New("entry count mismatch")
)

// Tree is a 2-3 tree mapping ordered keys to values.
//
// Keys are unique. Inserting an existing key replaces its value. The zero
// value is not usable; create trees with New or NewWithCompare.
//
// A Tree is not safe for concurrent use. Callers sharing a tree between
// goroutines must serialize access themselves.
type Tree[K any, V any] struct {
	root    *Node[K, V]
	length  int
	compare func(a, b K) int
	logger  logging.Logger
}

// New creates an empty tree ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewWithCompare[K, V](cmp.Compare[K])
}

// NewWithCompare creates an empty tree ordered by compare, which must
// return a negative number, zero or a positive number when a is less than,
// equal to or greater than b. It must define a total order.
func NewWithCompare[K any, V any](compare func(a, b K) int) *Tree[K, V] {
	if compare == nil {
		panic("tree23: nil compare function")
	}
	return &Tree[K, V]{
		compare: compare,
		logger:  logging.NewNop(),
	}
}

// SetLogger sets the logger used for structural debug events. A nil logger
// disables logging.
func (t *Tree[K, V]) SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.NewNop()
	}
	t.logger = l
}

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	return t.length
}

// Height returns the number of levels in the tree. An empty tree has
// height 0 and a tree holding a single leaf has height 1.
func (t *Tree[K, V]) Height() int {
	h := 0
	for n := t.root; n != nil; n = n.children[0] {
		h++
	}
	return h
}

// isNilKey reports whether key is a nil pointer, interface, map, slice,
// channel or function. Such keys cannot be ordered and are ignored.
func isNilKey[K any](key K) bool {
	v := reflect.ValueOf(any(key))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}
