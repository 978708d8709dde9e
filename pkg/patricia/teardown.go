package patricia

// funnel tears down the tree rooted at t.sentinel.child[0] in O(N) time,
// without recursion and without parent pointers.
//
// It first threads the tree's right spine's tip to the root sentinel as a
// termination marker, then repeatedly folds the current node's second
// subtree onto the rightmost tip of its first subtree (or, if it has no
// first subtree, simply follows the second), marking each node dead (its
// bpos zeroed, so any remaining reference to it reads as an uplink) and
// pushing it onto a singly linked dead list threaded through child[0].
// Finally it walks the dead list once, invoking deleter on each payload
// before freeing the node.
//
// Every node is visited at most twice, so the whole operation is O(N).
func funnel[T any](t *Tree[T], deleter func(payload *T, ctx any), ctx any) {
	root := t.sentinel.child[0]
	if root == &t.sentinel {
		return
	}

	tip := root
	for isDownlink(tip, tip.child[1]) {
		tip = tip.child[1]
	}

	tip.child[1] = &t.sentinel

	var dead *Node[T]

	h := root
	for h != &t.sentinel {
		var next *Node[T]

		if !isDownlink(h, h.child[0]) {
			next = h.child[1]
		} else {
			graftTip := h.child[0]
			for isDownlink(graftTip, graftTip.child[1]) {
				graftTip = graftTip.child[1]
			}

			graftTip.child[1] = h.child[1]
			next = h.child[0]
		}

		h.bpos = 0
		h.child[0] = dead
		dead = h
		h = next
	}

	for dead != nil {
		next := dead.child[0]

		if deleter != nil {
			deleter(&dead.Payload, ctx)
		}

		freeNode(t.alloc, dead)

		dead = next
	}
}
