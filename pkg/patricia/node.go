package patricia

import (
	"github.com/flier/patricia/pkg/arena"
	"github.com/flier/patricia/pkg/xunsafe"
	"github.com/flier/patricia/pkg/xunsafe/layout"
)

// Node is a dual-use PATRICIA node: a branch point and a terminal key
// holder at once.
//
// A Node has exactly two child slots. One of the two edges leaving a node
// is always a downlink (to a child with a strictly larger branch position,
// bpos); the other is an uplink (to the node itself, or to an ancestor with
// bpos no larger than this node's), per the two-reference invariant in the
// package documentation. No parent pointers are stored anywhere; topology
// is recovered purely from comparing bpos values.
//
// The key bytes are not a Go slice field, but inline storage immediately
// following the header, reached through [Node.Key]. This mirrors the
// source representation's flexible array member and, incidentally, keeps
// Node arena-allocatable: the header holds no pointer into a separately
// heap-allocated backing array that the allocator's chunk-level liveness
// would not otherwise protect.
type Node[T any] struct {
	child [2]*Node[T]
	bpos  uint16
	nbit  uint16

	// Payload is the caller's value associated with this node's key.
	//
	// For set-like trees (see [github.com/flier/patricia/pkg/patriciaset])
	// T is instantiated as struct{}, so Payload costs no storage.
	Payload T

	// key bytes, plus one trailing NUL, follow here inline.
}

// Bpos returns the node's branch-bit position.
func (n *Node[T]) Bpos() int { return int(n.bpos) }

// NBit returns the bit length of the node's key.
func (n *Node[T]) NBit() int { return int(n.nbit) }

// Key returns the node's key bytes. The returned slice has
// ceil(NBit()/8) bytes and aliases the node's inline storage: it must not
// be retained past the node's lifetime (see package documentation on node
// address stability across deletion).
func (n *Node[T]) Key() []byte {
	return xunsafe.Beyond[byte](n).Slice(keyBytes(int(n.nbit)))
}

// Child returns the node reachable by following bit b (0 or 1) out of n.
// The caller must use n.Bpos() to tell a downlink from an uplink; Child
// itself does not distinguish them.
func (n *Node[T]) Child(b int) *Node[T] { return n.child[b] }

// isDownlink reports whether the edge n -> to is a downlink, i.e. whether
// to.bpos > n.bpos. Per the package invariants this is exactly the
// condition that distinguishes a structural tree edge from a threaded
// uplink (including self-links, where to == n).
func isDownlink[T any](n, to *Node[T]) bool {
	return to.bpos > n.bpos
}

func keyBytes(nbit int) int {
	return (nbit + 7) / 8
}

// nodeSize returns the number of bytes to allocate for a node carrying a
// key of the given bit length: the fixed header, the inline key bytes, and
// one trailing NUL byte (not part of the key, present only as a text
// rendering convenience, matching the source representation).
func nodeSize[T any](nbit int) int {
	return layout.Of[Node[T]]().Size + keyBytes(nbit) + 1
}

// newNode allocates a node for the given key from a, with the given
// payload. bpos is left zero; callers set it once the branch bit has been
// computed.
func newNode[T any](a arena.Allocator, key []byte, nbit int, payload T) *Node[T] {
	raw := a.Alloc(nodeSize[T](nbit))
	if raw == nil {
		return nil
	}

	n := xunsafe.Cast[Node[T]](raw)
	n.nbit = uint16(nbit)
	n.Payload = payload

	nb := keyBytes(nbit)
	// The trailing NUL byte needs no explicit write: freshly allocated memory
	// is always zeroed.
	copy(xunsafe.Beyond[byte](n).Slice(nb), key[:nb])

	return n
}

// freeNode releases a node's storage back to a, if a supports releasing
// memory (see [arena.Allocator.Release]).
func freeNode[T any](a arena.Allocator, n *Node[T]) {
	a.Release(xunsafe.Cast[byte](n), nodeSize[T](int(n.nbit)))
}
