package patricia

import "github.com/flier/patricia/internal/debug"

// Insert adds key/payload to the tree. If an equal key is already present,
// Insert returns the existing node unchanged and false: the duplicate
// policy never overwrites the stored payload (see package documentation;
// evict-then-insert is the way to replace a value).
//
// On allocator exhaustion Insert returns (nil, false) and leaves the tree
// unchanged.
func (t *Tree[T]) Insert(key []byte, nbit int, payload T) (*Node[T], bool) {
	terminal := descend(t, key, nbit)

	if terminal == &t.sentinel {
		return t.insertFirst(key, nbit, payload)
	}

	if EquKey(key, nbit, terminal.Key(), terminal.NBit()) {
		return terminal, false
	}

	b := BitDiff(key, nbit, terminal.Key(), terminal.NBit())

	n := newNode[T](t.alloc, key, nbit, payload)
	if n == nil {
		return nil, false
	}

	n.bpos = uint16(b)

	parent, dir, pending := t.spliceTarget(key, nbit, b)

	d := GetBit(key, nbit, b)
	n.child[d] = n
	n.child[1-d] = pending
	parent.child[dir] = n

	t.size++

	debug.Log(nil, "Insert", "spliced bpos=%d under parent bpos=%d, size=%d", n.bpos, parent.Bpos(), t.size)

	return n, true
}

// insertFirst creates the sole node of an empty tree. Its branch bit is
// the first bit at which key's infinite extension differs from the
// all-ones extension of the (virtual) empty key held by the root
// sentinel; its own-side child slot self-links, and the other slot
// threads back to the root sentinel, per the one-node-tree boundary
// behavior.
func (t *Tree[T]) insertFirst(key []byte, nbit int, payload T) (*Node[T], bool) {
	n := newNode[T](t.alloc, key, nbit, payload)
	if n == nil {
		return nil, false
	}

	b := BitDiff(key, nbit, nil, 0)
	if nbit == 0 {
		// key is itself the empty key: its infinite extension is
		// indistinguishable from the sentinel's own virtual empty key, so
		// BitDiff reports no difference (b == 0), which would collide with
		// the sentinel's own bpos. Any bpos > 0 keeps the node reachable as
		// a downlink from the sentinel; 1 is the minimal legal choice.
		b = 1
	}
	n.bpos = uint16(b)

	d := GetBit(key, nbit, b)
	n.child[d] = n
	n.child[1-d] = &t.sentinel

	t.sentinel.child[0] = n
	t.size++

	return n, true
}

// spliceTarget re-descends from the root sentinel, following downlinks
// whose bpos stays below b, and stops at the point where the new node
// carrying branch bit b must be spliced in: the edge parent.child[dir]
// currently reaches pending, and must instead reach the new node, which
// in turn takes over pending on its non-own side.
func (t *Tree[T]) spliceTarget(key []byte, nbit, b int) (parent *Node[T], dir int, pending *Node[T]) {
	parent = &t.sentinel

	for {
		bit := GetBit(key, nbit, parent.Bpos())
		child := parent.child[bit]

		if !isDownlink(parent, child) || child.Bpos() >= b {
			return parent, bit, child
		}

		parent = child
	}
}
