package voronoi

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// verifyTree checks the red-black properties, the parent links and that the
// prev/next threading agrees with the in-order walk and with want.
func verifyTree(t *testing.T, tr *rbTree, want []int) {
	t.Helper()

	var inorder []int
	var walk func(node int) int
	walk = func(node int) int {
		if node == none {
			return 1
		}
		n := tr.n(node)
		if n.left != none {
			require.Equal(t, node, tr.n(n.left).parent)
		}
		if n.right != none {
			require.Equal(t, node, tr.n(n.right).parent)
		}
		if n.red {
			require.False(t, tr.isRed(n.left), "red node %d has a red child", node)
			require.False(t, tr.isRed(n.right), "red node %d has a red child", node)
		}
		lh := walk(n.left)
		inorder = append(inorder, node)
		rh := walk(n.right)
		require.Equal(t, lh, rh, "black height differs under %d", node)
		if n.red {
			return lh
		}
		return lh + 1
	}

	if tr.root != none {
		require.False(t, tr.n(tr.root).red, "red root")
		require.Equal(t, none, tr.n(tr.root).parent)
	}
	walk(tr.root)
	require.Equal(t, want, inorderOrEmpty(inorder))

	var threaded []int
	if tr.root != none {
		for i := tr.first(tr.root); i != none; i = tr.n(i).next {
			if len(threaded) > 0 {
				require.Equal(t, threaded[len(threaded)-1], tr.n(i).prev)
			}
			threaded = append(threaded, i)
		}
	}
	require.Equal(t, want, inorderOrEmpty(threaded))
}

func inorderOrEmpty(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}

func insertAt(s []int, pos, v int) []int {
	s = append(s, 0)
	copy(s[pos+1:], s[pos:])
	s[pos] = v
	return s
}

func TestRBTree_InsertRemove(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tr := newRBTree(0)
	order := []int{}

	for i := 0; i < 500; i++ {
		if len(order) == 0 || rng.Intn(3) > 0 {
			// Insert after a random node, or first.
			pos := rng.Intn(len(order) + 1)
			after := none
			if pos > 0 {
				after = order[pos-1]
			}
			node := tr.insertSuccessor(after)
			order = insertAt(order, pos, node)
		} else {
			pos := rng.Intn(len(order))
			tr.removeNode(order[pos])
			order = append(order[:pos], order[pos+1:]...)
		}
		verifyTree(t, &tr, order)
	}

	for len(order) > 0 {
		tr.removeNode(order[0])
		order = order[1:]
		verifyTree(t, &tr, order)
	}
	require.Equal(t, none, tr.root)
}

func TestRBTree_IndicesAreStable(t *testing.T) {
	tr := newRBTree(4)
	a := tr.insertSuccessor(none)
	b := tr.insertSuccessor(a)
	c := tr.insertSuccessor(b)
	require.Equal(t, []int{0, 1, 2}, []int{a, b, c})

	tr.removeNode(b)
	d := tr.insertSuccessor(none)
	require.Equal(t, 3, d, "removed slots are not reused")
	verifyTree(t, &tr, []int{d, a, c})
}
