package patricia_test

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/patricia/pkg/patricia"
)

// refWalk is the textbook recursive traversal of the downlink tree,
// independent of the FSM under test, used as an oracle.
func refWalk(n *patricia.Node[int], dir patricia.Direction, order patricia.Order, out *[][]byte) {
	if n == nil {
		return
	}

	first, second := byte(0), byte(1)
	if dir == patricia.RightToLeft {
		first, second = 1, 0
	}

	downOf := func(side byte) *patricia.Node[int] {
		c := n.Child(int(side))
		if c.Bpos() > n.Bpos() {
			return c
		}

		return nil
	}

	if order == patricia.PreOrder {
		*out = append(*out, n.Key())
	}

	refWalk(downOf(first), dir, order, out)

	if order == patricia.InOrder {
		*out = append(*out, n.Key())
	}

	refWalk(downOf(second), dir, order, out)

	if order == patricia.PostOrder {
		*out = append(*out, n.Key())
	}
}

func buildTreeAndRoot(words []string) (*patricia.Tree[int], *patricia.Node[int]) {
	tree := patricia.New[int]()

	var root *patricia.Node[int]

	for i, w := range words {
		key := []byte(w)

		n, _ := tree.Insert(key, len(key)*8, i)
		if root == nil {
			root = n
		}
	}

	// The first-inserted node is not necessarily the topology root after
	// further insertions splice ahead of it; recover the true root via
	// the first node a pre-order iterator yields instead.
	it := patricia.NewIterator[int](tree, nil, patricia.LeftToRight, patricia.PreOrder)
	if n, ok := it.Next(); ok {
		root = n
	}

	return tree, root
}

func collect(tree *patricia.Tree[int], root *patricia.Node[int], dir patricia.Direction, order patricia.Order) [][]byte {
	it := patricia.NewIterator[int](tree, root, dir, order)

	var got [][]byte

	for {
		n, ok := it.Next()
		if !ok {
			break
		}

		got = append(got, n.Key())
	}

	return got
}

var scenarioEWords = []string{"alpha", "alpine", "al", "beta", "bet", "z", "zero"}

func TestScenarioE(t *testing.T) {
	Convey("Given a tree built from the scenario E words", t, func() {
		tree, _ := buildTreeAndRoot(scenarioEWords)

		orders := []patricia.Order{patricia.PreOrder, patricia.InOrder, patricia.PostOrder}

		for _, order := range orders {
			order := order

			Convey("Forward traversal matches the reference recursive traversal", func() {
				var want [][]byte

				refRootNode := refRootOf(tree)
				refWalk(refRootNode, patricia.LeftToRight, order, &want)

				got := collect(tree, nil, patricia.LeftToRight, order)

				So(len(got), ShouldEqual, len(scenarioEWords))
				So(keysToStrings(got), ShouldResemble, keysToStrings(want))
			})

			Convey("Reverse traversal produces the reverse of forward traversal", func() {
				forward := collect(tree, nil, patricia.LeftToRight, order)

				it := patricia.NewIterator[int](tree, nil, patricia.LeftToRight, order)
				// drain forward to position the cursor at tail
				for {
					if _, ok := it.Next(); !ok {
						break
					}
				}

				var backward [][]byte

				for {
					n, ok := it.Prev()
					if !ok {
						break
					}

					backward = append(backward, n.Key())
				}

				So(len(backward), ShouldEqual, len(forward))

				for i := range forward {
					So(string(backward[i]), ShouldEqual, string(forward[len(forward)-1-i]))
				}
			})
		}
	})
}

func refRootOf(tree *patricia.Tree[int]) *patricia.Node[int] {
	it := patricia.NewIterator[int](tree, nil, patricia.LeftToRight, patricia.PreOrder)
	n, _ := it.Next()

	return n
}

func keysToStrings(keys [][]byte) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}

	return out
}

// TestScenarioF builds a tree of 150 random keys (well past the 8-entry
// parent FIFO) and checks that every order/direction combination matches
// the reference recursive traversal, validating the recovery walk.
func TestScenarioF(t *testing.T) {
	Convey("Given a random tree of 150 keys up to 32 bytes", t, func() {
		rng := rand.New(rand.NewSource(1))

		seen := map[string]bool{}

		var words []string

		for len(words) < 150 {
			n := 1 + rng.Intn(32)
			buf := make([]byte, n)
			rng.Read(buf)

			s := string(buf)
			if seen[s] {
				continue
			}

			seen[s] = true
			words = append(words, s)
		}

		tree := patricia.New[int]()
		for i, w := range words {
			key := []byte(w)
			tree.Insert(key, len(key)*8, i)
		}

		root := refRootOf(tree)

		for _, dir := range []patricia.Direction{patricia.LeftToRight, patricia.RightToLeft} {
			dir := dir

			for _, order := range []patricia.Order{patricia.PreOrder, patricia.InOrder, patricia.PostOrder} {
				order := order

				Convey("Traversal matches the reference walk", func() {
					var want [][]byte
					refWalk(root, dir, order, &want)

					got := collect(tree, nil, dir, order)

					So(len(got), ShouldEqual, len(words))
					So(keysToStrings(got), ShouldResemble, keysToStrings(want))
				})
			}
		}
	})
}
