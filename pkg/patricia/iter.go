package patricia

// Direction selects which child side an iterator treats as "first" when
// descending: LeftToRight visits child[0] before child[1]; RightToLeft
// visits child[1] before child[0]. See the package documentation on
// direction duality.
type Direction bool

const (
	LeftToRight Direction = false
	RightToLeft Direction = true
)

// Order selects the traversal order an iterator yields nodes in.
type Order int

const (
	PreOrder Order = iota
	InOrder
	PostOrder
)

// arrival is the iterator's FSM label: the circumstance under which the
// cursor is currently sitting at its node.
type arrival uint8

const (
	head arrival = iota // before the first reachable node
	down                // just entered the cursor from its parent
	upC1                // returned to the cursor from its first subtree
	upC2                // returned to the cursor from its second subtree
	tail                // past the last reachable node
)

const fifoSize = 8

// Iterator walks the downlink tree rooted at a node (or the whole tree)
// in a configured order and direction, without recursion and without
// stored parent pointers. Uplinks are never followed.
//
// An Iterator is a single cursor plus one arrival label; every saved
// (cursor, label) pair is a safe resume point. Parent lookups during
// ascent are served from a bounded round-robin FIFO of the 8 most
// recently descended-through ancestors; on a FIFO miss or eviction, a
// root-to-cursor recovery walk reconstructs the path (see
// [Iterator.parentOf]), so correctness never depends on the FIFO, only
// its amortised cost does.
//
// An Iterator is invalidated by tree mutation in general. The one
// supported pattern is evicting the just-yielded node during a
// post-order, left-to-right traversal; see [Tree.Drain].
type Iterator[T any] struct {
	tree *Tree[T]
	root *Node[T]

	cur   *Node[T]
	state arrival
	order Order
	dir   Direction

	parents [fifoSize]*Node[T]
	stkLen  int
	stkTop  int
}

// NewIterator returns an iterator over root's downlink subtree, or over
// the whole tree if root is nil.
func NewIterator[T any](t *Tree[T], root *Node[T], dir Direction, order Order) *Iterator[T] {
	if root == nil {
		root = t.root()
	}

	it := &Iterator[T]{tree: t, root: root, dir: dir, order: order}
	it.Reset()

	return it
}

// Reset repositions the iterator before the first reachable node, as if
// freshly constructed.
func (it *Iterator[T]) Reset() {
	it.cur = nil
	it.state = head
	it.clearFIFO()
}

// Next advances to and returns the next node in the configured order and
// direction, or (nil, false) once the sequence is exhausted.
func (it *Iterator[T]) Next() (*Node[T], bool) {
	yield := yieldLabel(it.order)
	first, second := dirSides(it.dir)

	for {
		switch it.state {
		case tail:
			return nil, false
		case head:
			it.enterHead()

			continue
		}

		node, label := it.microStep(first, second)
		if label == yield {
			return node, true
		}
	}
}

// Prev moves to and returns the node immediately preceding the current
// position in the configured order and direction, or (nil, false) if
// already at or before the first node.
//
// Prev is the exact functional inverse of the transition [Iterator.Next]
// performs; by construction, a full backward walk from the end produces
// precisely the reverse of a full forward walk (see package
// documentation's reverse-iteration law).
func (it *Iterator[T]) Prev() (*Node[T], bool) {
	yield := yieldLabel(it.order)
	first, second := dirSides(it.dir)

	for {
		switch it.state {
		case head:
			return nil, false
		case tail:
			it.enterTail()

			// (root, upC2) is the last pair a forward walk passes through,
			// so it is tested before stepping back from it.
			if it.state == yield {
				return it.cur, true
			}

			continue
		}

		node, label := it.microStepBack(first, second)
		if label == yield {
			return node, true
		}
	}
}

func (it *Iterator[T]) enterHead() {
	if it.root == nil || it.root == &it.tree.sentinel {
		it.state = tail

		return
	}

	it.cur = it.root
	it.state = down

	it.clearFIFO()
}

func (it *Iterator[T]) enterTail() {
	if it.root == nil || it.root == &it.tree.sentinel {
		it.state = head

		return
	}

	it.cur = it.root
	it.state = upC2

	it.clearFIFO()
}

// microStep performs exactly one forward FSM transition and returns the
// (node, label) pair that was current just before the move -- the pair a
// caller tests its configured yield label against.
func (it *Iterator[T]) microStep(first, second int) (*Node[T], arrival) {
	node, label := it.cur, it.state

	switch it.state {
	case down:
		if c := it.childAt(it.cur, first); c != nil {
			it.pushFIFO(it.cur)
			it.cur, it.state = c, down
		} else {
			it.state = upC1
		}
	case upC1:
		if c := it.childAt(it.cur, second); c != nil {
			it.pushFIFO(it.cur)
			it.cur, it.state = c, down
		} else {
			it.state = upC2
		}
	case upC2:
		if it.cur == it.root {
			it.cur, it.state = nil, tail
		} else {
			n := it.cur
			p := it.parentOf(n)
			side, _ := it.sideOf(p, n)
			it.cur = p

			if side == first {
				it.state = upC1
			} else {
				it.state = upC2
			}
		}
	}

	return node, label
}

// microStepBack performs exactly one backward FSM transition -- the
// unique inverse of [Iterator.microStep] -- and returns the (node, label)
// pair it moved to.
func (it *Iterator[T]) microStepBack(first, second int) (*Node[T], arrival) {
	switch it.state {
	case down:
		n := it.cur

		if n == it.root {
			it.cur, it.state = nil, head

			break
		}

		p := it.parentOf(n)
		side, _ := it.sideOf(p, n)
		it.cur = p

		if side == first {
			it.state = down
		} else {
			it.state = upC1
		}
	case upC1:
		n := it.cur

		if c := it.childAt(n, first); c != nil {
			it.pushFIFO(n)
			it.cur, it.state = c, upC2
		} else {
			it.state = down
		}
	case upC2:
		n := it.cur

		if c := it.childAt(n, second); c != nil {
			it.pushFIFO(n)
			it.cur, it.state = c, upC2
		} else {
			it.state = upC1
		}
	}

	return it.cur, it.state
}

// childAt returns n's downlink child on the given raw side (0 or 1), or
// nil if that side is an uplink.
func (it *Iterator[T]) childAt(n *Node[T], side int) *Node[T] {
	c := n.child[side]
	if isDownlink(n, c) {
		return c
	}

	return nil
}

// sideOf reports which raw child slot of p holds n as a downlink.
func (it *Iterator[T]) sideOf(p, n *Node[T]) (side int, ok bool) {
	if it.childAt(p, 0) == n {
		return 0, true
	}

	if it.childAt(p, 1) == n {
		return 1, true
	}

	return 0, false
}

// parentOf returns n's parent within the iterator's subtree, or nil if n
// is the subtree root. It first tries the bounded FIFO; on a miss, or if
// the popped candidate turns out not to actually be n's parent (evicted
// and overwritten by an unrelated ancestor), it falls back to a
// root-to-n recovery walk.
func (it *Iterator[T]) parentOf(n *Node[T]) *Node[T] {
	if n == it.root {
		return nil
	}

	if p, ok := it.popFIFO(); ok {
		if _, ok := it.sideOf(p, n); ok {
			return p
		}
	}

	return it.recover(n)
}

// recover reconstructs the downlink path from the subtree root to n by
// descending on n's own key -- the same technique [descend] and the
// deletion tracked walk use -- repopulating the FIFO along the way, and
// returns n's parent.
func (it *Iterator[T]) recover(n *Node[T]) *Node[T] {
	key, nbit := n.Key(), n.NBit()

	it.clearFIFO()

	cur := it.root

	var parent *Node[T]

	for cur != n {
		it.pushFIFO(cur)

		parent = cur

		bit := GetBit(key, nbit, cur.Bpos())
		cur = cur.child[bit]
	}

	return parent
}

func (it *Iterator[T]) pushFIFO(n *Node[T]) {
	it.parents[it.stkTop] = n
	it.stkTop = (it.stkTop + 1) % fifoSize

	if it.stkLen < fifoSize {
		it.stkLen++
	}
}

func (it *Iterator[T]) popFIFO() (*Node[T], bool) {
	if it.stkLen == 0 {
		return nil, false
	}

	it.stkTop = (it.stkTop - 1 + fifoSize) % fifoSize
	it.stkLen--

	return it.parents[it.stkTop], true
}

func (it *Iterator[T]) clearFIFO() {
	it.stkLen = 0
	it.stkTop = 0
}

func yieldLabel(o Order) arrival {
	switch o {
	case PreOrder:
		return down
	case InOrder:
		return upC1
	default:
		return upC2
	}
}

func dirSides(d Direction) (first, second int) {
	if d == RightToLeft {
		return 1, 0
	}

	return 0, 1
}

// Drain iterates the tree in left-to-right post-order, invoking visit for
// every node. If visit returns true, the node is evicted immediately
// after being visited.
//
// This is the one mutation pattern the package guarantees safe during
// iteration: post-order never revisits a node's subtree, so evicting the
// just-yielded node cannot disturb nodes still to be visited.
func (t *Tree[T]) Drain(visit func(n *Node[T]) bool) {
	it := NewIterator[T](t, nil, LeftToRight, PostOrder)

	for {
		n, ok := it.Next()
		if !ok {
			return
		}

		if visit(n) {
			t.Evict(n)
		}
	}
}
