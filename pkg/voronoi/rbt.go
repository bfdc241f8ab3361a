package voronoi

// none is the nil index of the arenas.
const none = -1

// rbNode is a red-black tree node addressed by its index in rbTree.nodes.
// prev and next thread the nodes in order so that neighbour lookup is O(1).
type rbNode struct {
	left, right, parent int
	prev, next          int
	red                 bool
}

// rbTree is a red-black tree without keys: callers position new nodes
// relative to existing ones. Removed nodes keep their slot, so an index
// stays valid for the lifetime of the tree.
type rbTree struct {
	nodes []rbNode
	root  int
}

func newRBTree(capacity int) rbTree {
	return rbTree{nodes: make([]rbNode, 0, capacity), root: none}
}

func (t *rbTree) n(i int) *rbNode { return &t.nodes[i] }

func (t *rbTree) isRed(i int) bool { return i != none && t.nodes[i].red }

// insertSuccessor inserts a new node right after node, or as the first node
// when node is none, and returns its index.
func (t *rbTree) insertSuccessor(node int) int {
	successor := len(t.nodes)
	t.nodes = append(t.nodes, rbNode{left: none, right: none, parent: none, prev: none, next: none})

	var parent int
	if node != none {
		t.n(successor).prev = node
		t.n(successor).next = t.n(node).next
		if t.n(node).next != none {
			t.n(t.n(node).next).prev = successor
		}
		t.n(node).next = successor
		if t.n(node).right != none {
			node = t.first(t.n(node).right)
			t.n(node).left = successor
		} else {
			t.n(node).right = successor
		}
		parent = node
	} else if t.root != none {
		node = t.first(t.root)
		t.n(successor).next = node
		t.n(node).prev = successor
		t.n(node).left = successor
		parent = node
	} else {
		t.root = successor
		parent = none
	}
	t.n(successor).parent = parent
	t.n(successor).red = true

	node = successor
	for parent != none && t.n(parent).red {
		grandpa := t.n(parent).parent
		if parent == t.n(grandpa).left {
			uncle := t.n(grandpa).right
			if t.isRed(uncle) {
				t.n(parent).red = false
				t.n(uncle).red = false
				t.n(grandpa).red = true
				node = grandpa
			} else {
				if node == t.n(parent).right {
					t.rotateLeft(parent)
					node = parent
					parent = t.n(node).parent
				}
				t.n(parent).red = false
				t.n(grandpa).red = true
				t.rotateRight(grandpa)
			}
		} else {
			uncle := t.n(grandpa).left
			if t.isRed(uncle) {
				t.n(parent).red = false
				t.n(uncle).red = false
				t.n(grandpa).red = true
				node = grandpa
			} else {
				if node == t.n(parent).left {
					t.rotateRight(parent)
					node = parent
					parent = t.n(node).parent
				}
				t.n(parent).red = false
				t.n(grandpa).red = true
				t.rotateLeft(grandpa)
			}
		}
		parent = t.n(node).parent
	}
	t.n(t.root).red = false
	return successor
}

func (t *rbTree) removeNode(node int) {
	if next := t.n(node).next; next != none {
		t.n(next).prev = t.n(node).prev
	}
	if prev := t.n(node).prev; prev != none {
		t.n(prev).next = t.n(node).next
	}
	t.n(node).next = none
	t.n(node).prev = none

	parent := t.n(node).parent
	left := t.n(node).left
	right := t.n(node).right
	var next int
	if left == none {
		next = right
	} else if right == none {
		next = left
	} else {
		next = t.first(right)
	}
	if parent != none {
		if t.n(parent).left == node {
			t.n(parent).left = next
		} else {
			t.n(parent).right = next
		}
	} else {
		t.root = next
	}

	var isRed bool
	if left != none && right != none {
		isRed = t.n(next).red
		t.n(next).red = t.n(node).red
		t.n(next).left = left
		t.n(left).parent = next
		if next != right {
			parent = t.n(next).parent
			t.n(next).parent = t.n(node).parent
			node = t.n(next).right
			t.n(parent).left = node
			t.n(next).right = right
			t.n(right).parent = next
		} else {
			t.n(next).parent = parent
			parent = next
			node = t.n(next).right
		}
	} else {
		isRed = t.n(node).red
		node = next
	}
	if node != none {
		t.n(node).parent = parent
	}
	if isRed {
		return
	}
	if t.isRed(node) {
		t.n(node).red = false
		return
	}

	var sibling int
	for node != t.root {
		if node == t.n(parent).left {
			sibling = t.n(parent).right
			if t.n(sibling).red {
				t.n(sibling).red = false
				t.n(parent).red = true
				t.rotateLeft(parent)
				sibling = t.n(parent).right
			}
			if t.isRed(t.n(sibling).left) || t.isRed(t.n(sibling).right) {
				if !t.isRed(t.n(sibling).right) {
					t.n(t.n(sibling).left).red = false
					t.n(sibling).red = true
					t.rotateRight(sibling)
					sibling = t.n(parent).right
				}
				t.n(sibling).red = t.n(parent).red
				t.n(parent).red = false
				t.n(t.n(sibling).right).red = false
				t.rotateLeft(parent)
				node = t.root
				break
			}
		} else {
			sibling = t.n(parent).left
			if t.n(sibling).red {
				t.n(sibling).red = false
				t.n(parent).red = true
				t.rotateRight(parent)
				sibling = t.n(parent).left
			}
			if t.isRed(t.n(sibling).left) || t.isRed(t.n(sibling).right) {
				if !t.isRed(t.n(sibling).left) {
					t.n(t.n(sibling).right).red = false
					t.n(sibling).red = true
					t.rotateLeft(sibling)
					sibling = t.n(parent).left
				}
				t.n(sibling).red = t.n(parent).red
				t.n(parent).red = false
				t.n(t.n(sibling).left).red = false
				t.rotateRight(parent)
				node = t.root
				break
			}
		}
		t.n(sibling).red = true
		node = parent
		parent = t.n(parent).parent
		if t.n(node).red {
			break
		}
	}
	if node != none {
		t.n(node).red = false
	}
}

func (t *rbTree) rotateLeft(p int) {
	q := t.n(p).right
	parent := t.n(p).parent
	if parent != none {
		if t.n(parent).left == p {
			t.n(parent).left = q
		} else {
			t.n(parent).right = q
		}
	} else {
		t.root = q
	}
	t.n(q).parent = parent
	t.n(p).parent = q
	t.n(p).right = t.n(q).left
	if t.n(p).right != none {
		t.n(t.n(p).right).parent = p
	}
	t.n(q).left = p
}

func (t *rbTree) rotateRight(p int) {
	q := t.n(p).left
	parent := t.n(p).parent
	if parent != none {
		if t.n(parent).left == p {
			t.n(parent).left = q
		} else {
			t.n(parent).right = q
		}
	} else {
		t.root = q
	}
	t.n(q).parent = parent
	t.n(p).parent = q
	t.n(p).left = t.n(q).right
	if t.n(p).left != none {
		t.n(t.n(p).left).parent = p
	}
	t.n(q).right = p
}

func (t *rbTree) first(node int) int {
	for t.n(node).left != none {
		node = t.n(node).left
	}
	return node
}
