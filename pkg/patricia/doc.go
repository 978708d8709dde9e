// Package patricia implements a mutable, in-memory associative container
// keyed by arbitrary bit strings, as a compressed binary radix tree
// (PATRICIA).
//
// Every node in the tree is dual-use: it is simultaneously a branch point
// and a terminal key holder. Each node has exactly two child slots, but one
// of the two edges leaving a node is always an "uplink" — a thread back to
// the node itself or to one of its ancestors — rather than a downward edge
// to a child with a larger branch position. No parent pointers are stored;
// the topology is entirely recovered from comparing branch positions
// (see [Node]).
//
// Keys are arbitrary bit strings, not byte strings: Insert, Lookup, Prefix,
// and Remove all take an explicit bit length alongside the key bytes. See
// [GetBit] for the exact extension rule used past the end of a key.
//
// The tree is single-threaded and not safe for concurrent mutation;
// concurrent read-only access is safe only while no writer is active. Nodes
// are obtained from an injected [github.com/flier/patricia/pkg/arena]
// allocator policy, allowing the tree to run over a bump allocator, a
// recycling allocator, or any caller-supplied [arena.Allocator].
package patricia
