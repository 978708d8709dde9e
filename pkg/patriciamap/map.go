// Package patriciamap specializes github.com/flier/patricia/pkg/patricia
// to an associative map from bit-string keys to a caller-chosen payload
// type V.
package patriciamap

import (
	"github.com/flier/patricia/pkg/arena"
	"github.com/flier/patricia/pkg/patricia"
)

// Map is a PATRICIA-tree-backed associative container keyed by bit
// strings, carrying a payload of type V per key.
type Map[V any] struct {
	tree *patricia.Tree[V]
}

// New returns an empty Map backed by the package's default allocator
// policy.
func New[V any]() *Map[V] {
	return &Map[V]{tree: patricia.New[V]()}
}

// NewWithPolicy returns an empty Map backed by the given allocator
// policy.
func NewWithPolicy[V any](a arena.Allocator) *Map[V] {
	return &Map[V]{tree: patricia.NewWithPolicy[V](a)}
}

// Len returns the number of keys in the map.
func (m *Map[V]) Len() int { return m.tree.Len() }

// Get returns the payload stored under key, if any.
func (m *Map[V]) Get(key []byte, nbit int) (value V, ok bool) {
	n, ok := m.tree.Lookup(key, nbit)
	if !ok {
		var zero V

		return zero, false
	}

	return n.Payload, true
}

// LongestPrefix returns the payload of the longest stored key that is a
// bit-exact prefix of key.
func (m *Map[V]) LongestPrefix(key []byte, nbit int) (matchedNBit int, value V, ok bool) {
	n, ok := m.tree.Prefix(key, nbit)
	if !ok {
		var zero V

		return 0, zero, false
	}

	return n.NBit(), n.Payload, true
}

// Insert adds key/value to the map, reporting whether it was newly
// created. Per the package's duplicate policy, an existing key's value is
// never overwritten by Insert; use [Map.InsertOrReplace] for that.
func (m *Map[V]) Insert(key []byte, nbit int, value V) (inserted bool) {
	_, inserted = m.tree.Insert(key, nbit, value)

	return inserted
}

// InsertOrReplace adds key/value to the map, overwriting any existing
// value for an equal key. It reports whether the key was newly created.
//
// This is not part of the core tree's contract (see package
// documentation's note on the non-overwriting duplicate policy); it is
// implemented here as evict-then-insert, the caller-side workaround the
// core's design notes call out explicitly.
func (m *Map[V]) InsertOrReplace(key []byte, nbit int, value V) (inserted bool) {
	n, existed := m.tree.Lookup(key, nbit)
	if existed {
		m.tree.Evict(n)
	}

	_, inserted = m.tree.Insert(key, nbit, value)

	return inserted && !existed
}

// Remove deletes key from the map, returning its value if present.
func (m *Map[V]) Remove(key []byte, nbit int) (value V, ok bool) {
	return m.tree.Remove(key, nbit)
}

// Clear empties the map. deleter, if non-nil, is invoked with each
// remaining value before its node is freed.
func (m *Map[V]) Clear(deleter func(value *V)) {
	if deleter == nil {
		m.tree.FinalizeDefault()

		return
	}

	m.tree.Finalize(func(payload *V, _ any) {
		deleter(payload)
	}, nil)
}

// Each calls visit for every key/value pair, in left-to-right in-order.
// Iteration stops early if visit returns false.
func (m *Map[V]) Each(visit func(key []byte, nbit int, value V) bool) {
	it := patricia.NewIterator[V](m.tree, nil, patricia.LeftToRight, patricia.InOrder)

	for {
		n, ok := it.Next()
		if !ok {
			return
		}

		if !visit(n.Key(), n.NBit(), n.Payload) {
			return
		}
	}
}
