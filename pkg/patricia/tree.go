package patricia

import "github.com/flier/patricia/pkg/arena"

// Resettable is implemented by allocator policies that can tear down
// everything they ever handed out in one step, such as
// [github.com/flier/patricia/pkg/arena.Arena] and
// [github.com/flier/patricia/pkg/arena.Recycled]. [Tree.Finalize] calls
// Reset on the configured policy when it implements this interface.
type Resettable interface {
	Reset()
}

// Tree is a PATRICIA tree over keys of type []byte/nbit, carrying a
// payload of type T per key.
//
// The zero value is not usable; construct a Tree with [New] or
// [NewWithPolicy]. A Tree is not safe for concurrent mutation; concurrent
// read-only use is safe only while no writer is active (see package
// documentation).
type Tree[T any] struct {
	sentinel Node[T]
	alloc    arena.Allocator
	size     int
}

// New returns an empty Tree backed by a fresh
// [github.com/flier/patricia/pkg/arena.Recycled] allocator.
func New[T any]() *Tree[T] {
	return NewWithPolicy[T](&arena.Recycled{})
}

// NewWithPolicy returns an empty Tree backed by the given allocator
// policy. a must satisfy [arena.Allocator]; if it also implements
// [Resettable], [Tree.Finalize] will reset it after teardown.
func NewWithPolicy[T any](a arena.Allocator) *Tree[T] {
	t := &Tree[T]{alloc: a}

	t.sentinel.child[0] = &t.sentinel
	t.sentinel.child[1] = &t.sentinel
	t.sentinel.bpos = 0

	return t
}

// Len returns the number of keys currently stored in the tree.
func (t *Tree[T]) Len() int { return t.size }

// root returns the top of the real tree, or the sentinel itself when the
// tree is empty. Comparing the result against &t.sentinel is the
// canonical emptiness test used throughout this package.
func (t *Tree[T]) root() *Node[T] { return t.sentinel.child[0] }

// Finalize tears the tree down via the funnel algorithm (see teardown.go),
// invoking deleter with each surviving node's payload and ctx before its
// storage is released. deleter may be nil, in which case payloads are
// dropped without a callback.
//
// After Finalize the tree is empty and may be reused for further
// insertions; if the configured allocator policy implements [Resettable],
// it is reset as well, invalidating any pointer obtained from the
// allocator directly.
func (t *Tree[T]) Finalize(deleter func(payload *T, ctx any), ctx any) {
	funnel(t, deleter, ctx)

	t.sentinel.child[0] = &t.sentinel
	t.sentinel.child[1] = &t.sentinel
	t.size = 0

	if r, ok := t.alloc.(Resettable); ok {
		r.Reset()
	}
}

// FinalizeDefault tears the tree down with a no-op payload deleter.
func (t *Tree[T]) FinalizeDefault() {
	t.Finalize(nil, nil)
}
