// Package patriciaset specializes github.com/flier/patricia/pkg/patricia
// to a set of bit-string keys, carrying no payload.
package patriciaset

import (
	"github.com/flier/patricia/pkg/arena"
	"github.com/flier/patricia/pkg/patricia"
)

// Set is a PATRICIA-tree-backed set of bit-string keys.
type Set struct {
	tree *patricia.Tree[struct{}]
}

// New returns an empty Set backed by the package's default allocator
// policy.
func New() *Set {
	return &Set{tree: patricia.New[struct{}]()}
}

// NewWithPolicy returns an empty Set backed by the given allocator
// policy.
func NewWithPolicy(a arena.Allocator) *Set {
	return &Set{tree: patricia.NewWithPolicy[struct{}](a)}
}

// Len returns the number of keys in the set.
func (s *Set) Len() int { return s.tree.Len() }

// Tree returns the set's underlying tree, for use by external
// collaborators such as github.com/flier/patricia/pkg/patriciadump that
// need direct access to the node structure.
func (s *Set) Tree() *patricia.Tree[struct{}] { return s.tree }

// Contains reports whether key is a member of the set.
func (s *Set) Contains(key []byte, nbit int) bool {
	_, ok := s.tree.Lookup(key, nbit)

	return ok
}

// LongestPrefix returns the longest member key that is a bit-exact prefix
// of key, as the (key bytes, bit length) of the matching member.
func (s *Set) LongestPrefix(key []byte, nbit int) (matchedKey []byte, matchedNBit int, ok bool) {
	n, ok := s.tree.Prefix(key, nbit)
	if !ok {
		return nil, 0, false
	}

	return n.Key(), n.NBit(), true
}

// Add inserts key into the set, reporting whether it was newly added.
func (s *Set) Add(key []byte, nbit int) bool {
	_, inserted := s.tree.Insert(key, nbit, struct{}{})

	return inserted
}

// Remove deletes key from the set, reporting whether it was present.
func (s *Set) Remove(key []byte, nbit int) bool {
	_, ok := s.tree.Remove(key, nbit)

	return ok
}

// Clear empties the set, discarding all keys.
func (s *Set) Clear() {
	s.tree.FinalizeDefault()
}

// Each calls visit for every member key, in left-to-right in-order.
// Iteration stops early if visit returns false.
func (s *Set) Each(visit func(key []byte, nbit int) bool) {
	it := patricia.NewIterator[struct{}](s.tree, nil, patricia.LeftToRight, patricia.InOrder)

	for {
		n, ok := it.Next()
		if !ok {
			return
		}

		if !visit(n.Key(), n.NBit()) {
			return
		}
	}
}
