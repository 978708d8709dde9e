// Package patriciadump renders a
// github.com/flier/patricia/pkg/patricia.Tree as an indented text dump or
// as a DOT graph, for debugging and visualization. It is an external
// collaborator of the core tree: the core never imports it.
package patriciadump

import (
	"fmt"
	"io"
	"strings"

	"github.com/dolthub/maphash"

	"github.com/flier/patricia/pkg/patricia"
)

// LabelFunc optionally renders a node's own label (its key/payload,
// formatted however the caller likes). A nil LabelFunc, or one returning
// "", falls back to a default "%x" hex dump of the node's key.
type LabelFunc[T any] func(n *patricia.Node[T]) string

// Dump writes an indented, one-node-per-line dump of tree's downlink
// tree to w, deepest nodes indented furthest. Uplinks are rendered
// inline as "-> <bpos>" back-references rather than descended into.
func Dump[T any](w io.Writer, tree *patricia.Tree[T], label LabelFunc[T]) error {
	root := treeRoot(tree)
	if root == nil {
		_, err := io.WriteString(w, "(empty)\n")

		return err
	}

	return writeNode(w, root, root, 0, label)
}

func writeNode[T any](w io.Writer, root, n *patricia.Node[T], depth int, label LabelFunc[T]) error {
	indent := strings.Repeat("  ", depth)

	if _, err := fmt.Fprintf(w, "%sbpos=%d %s\n", indent, n.Bpos(), renderLabel(n, label)); err != nil {
		return err
	}

	for side := 0; side < 2; side++ {
		c := n.Child(side)

		switch {
		case c.Bpos() > n.Bpos():
			if err := writeNode(w, root, c, depth+1, label); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, "%s  [%d] -> bpos=%d (uplink)\n", indent, side, c.Bpos()); err != nil {
				return err
			}
		}
	}

	return nil
}

func renderLabel[T any](n *patricia.Node[T], label LabelFunc[T]) string {
	if label != nil {
		if s := label(n); s != "" {
			return s
		}
	}

	return fmt.Sprintf("key=%x/%d", n.Key(), n.NBit())
}

// DOT writes tree's downlink tree to w as a Graphviz DOT graph. Each
// node's identifier is a [maphash.Hasher] hash of its key, bit length and
// branch position. A new hasher is created for every call, so identifiers
// are consistent within one rendering but not guaranteed to match across
// renderings. Uplinks are not drawn.
func DOT[T any](w io.Writer, tree *patricia.Tree[T], label LabelFunc[T]) error {
	if _, err := io.WriteString(w, "digraph patricia {\n  node [shape=box];\n"); err != nil {
		return err
	}

	root := treeRoot(tree)
	if root != nil {
		hasher := maphash.NewHasher[string]()

		if err := writeDotNode(w, root, label, hasher); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "}\n")

	return err
}

func writeDotNode[T any](w io.Writer, n *patricia.Node[T], label LabelFunc[T], hasher maphash.Hasher[string]) error {
	id := nodeID(n, hasher)

	if _, err := fmt.Fprintf(w, "  n%x [label=%q];\n", id, renderLabel(n, label)); err != nil {
		return err
	}

	for side := 0; side < 2; side++ {
		c := n.Child(side)

		if c.Bpos() <= n.Bpos() {
			continue // uplink: not part of the downlink tree DOT renders
		}

		childID := nodeID(c, hasher)

		if _, err := fmt.Fprintf(w, "  n%x -> n%x;\n", id, childID); err != nil {
			return err
		}

		if err := writeDotNode(w, c, label, hasher); err != nil {
			return err
		}
	}

	return nil
}

func nodeID[T any](n *patricia.Node[T], hasher maphash.Hasher[string]) uint64 {
	return hasher.Hash(fmt.Sprintf("%x/%d@%d", n.Key(), n.NBit(), n.Bpos()))
}

// treeRoot recovers the real root of tree's downlink tree, or nil if the
// tree is empty, by taking the first node a left-to-right pre-order
// iterator visits.
func treeRoot[T any](tree *patricia.Tree[T]) *patricia.Node[T] {
	it := patricia.NewIterator[T](tree, nil, patricia.LeftToRight, patricia.PreOrder)

	n, ok := it.Next()
	if !ok {
		return nil
	}

	return n
}
