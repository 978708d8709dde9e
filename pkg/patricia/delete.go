package patricia

import "github.com/flier/patricia/internal/debug"

// trackedWalk descends the tree by x's own key, exactly as [descend] would,
// recording three landmarks needed by [Tree.Evict]:
//
//   - over: the node visited immediately before last.
//   - last: the node visited immediately before x, i.e. the node at which
//     the descent terminates (the edge last -> x is an uplink, including
//     the self-linked leaf case where last == x).
//   - npar: the node whose downlink points directly at x, discovered in
//     passing; unset (nil) when last == x, since then x is never reached
//     by a downlink at all.
func trackedWalk[T any](t *Tree[T], x *Node[T]) (over, last, npar *Node[T]) {
	key, nbit := x.Key(), x.NBit()

	var prev *Node[T]

	cur := &t.sentinel

	for {
		bit := GetBit(key, nbit, cur.Bpos())
		next := cur.child[bit]

		if next == x && isDownlink(cur, next) {
			npar = cur
		}

		if !isDownlink(cur, next) {
			last = cur
			over = prev

			return over, last, npar
		}

		prev = cur
		cur = next
	}
}

// Evict removes x from the tree by node identity. It reports false,
// leaving the tree unchanged, if x is nil, the root sentinel, or not a
// member of this tree.
//
// Evict performs at most two pointer rewires (see package documentation
// on the tracked-walk deletion algorithm) and never inspects key bits.
// Per the package's node-lifetime contract, a successful Evict may
// relocate the logical identity of x into a different surviving node's
// storage; any node reference held by the caller other than x itself must
// be treated as invalidated too.
func (t *Tree[T]) Evict(x *Node[T]) bool {
	if x == nil || x == &t.sentinel {
		return false
	}

	over, last, npar := trackedWalk(t, x)
	if over == nil {
		return false
	}

	if last != x && npar == nil {
		// x's own key walked the tree to some other node entirely: x is not
		// a member of this tree (a foreign or already-evicted node).
		return false
	}

	var otherChild *Node[T]
	if last.child[0] == x {
		otherChild = last.child[1]
	} else {
		otherChild = last.child[0]
	}

	if over.child[0] == last {
		over.child[0] = otherChild
	} else {
		over.child[1] = otherChild
	}

	if last != x {
		if npar.child[0] == x {
			npar.child[0] = last
		} else {
			npar.child[1] = last
		}

		last.child[0] = x.child[0]
		last.child[1] = x.child[1]
		last.bpos = x.bpos
	}

	freeNode(t.alloc, x)
	t.size--

	debug.Log(nil, "Evict", "rewired over bpos=%d past last bpos=%d, size=%d", over.Bpos(), last.Bpos(), t.size)

	return true
}

// Remove looks up key and, if found, evicts the holding node, returning
// its payload. It reports false if no such key is present.
func (t *Tree[T]) Remove(key []byte, nbit int) (payload T, ok bool) {
	n, found := t.Lookup(key, nbit)
	if !found {
		var zero T

		return zero, false
	}

	payload = n.Payload

	t.Evict(n)

	return payload, true
}
