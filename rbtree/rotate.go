package rbtree

// rotateLeft turns x's right child y into x's parent.
//
//	    P              P
//	    |              |
//	    x              y
//	   / \            / \
//	  A   y    →     x   C
//	     / \        / \
//	    B   C      A   B
//
// The sentinel's parent link is never written here: delete-fixup relies on
// it staying put while it works at the sentinel.
func (t *Tree[K]) rotateLeft(x Handle) {
	n := t.nodes
	y := n[x].right

	n[x].right = n[y].left
	if n[y].left != Nil {
		n[n[y].left].parent = x
	}

	p := n[x].parent
	n[y].parent = p
	switch {
	case p == Nil:
		t.root = y
	case x == n[p].left:
		n[p].left = y
	default:
		n[p].right = y
	}

	n[y].left = x
	n[x].parent = y
}

// rotateRight turns y's left child x into y's parent.
//
//	      P            P
//	      |            |
//	      y            x
//	     / \          / \
//	    x   C   →    A   y
//	   / \              / \
//	  A   B            B   C
func (t *Tree[K]) rotateRight(y Handle) {
	n := t.nodes
	x := n[y].left

	n[y].left = n[x].right
	if n[x].right != Nil {
		n[n[x].right].parent = y
	}

	p := n[y].parent
	n[x].parent = p
	switch {
	case p == Nil:
		t.root = x
	case y == n[p].right:
		n[p].right = x
	default:
		n[p].left = x
	}

	n[x].right = y
	n[y].parent = x
}
