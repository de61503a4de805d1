package rbtree

// Delete removes one node holding key. When duplicates are present any one
// of them is removed. Deleting an absent key is a no-op that reports false.
//
// Complexity: O(log n).
func (t *Tree[K]) Delete(key K) bool {
	h := t.find(key)
	if h == Nil {
		return false
	}
	t.deleteNode(h)
	t.size--
	t.verify()

	return true
}

// DeleteHandle removes the node addressed by h.
//
// If h has two real children, the key of h's in-order successor is copied
// into h and the successor's slot is released instead. After such a delete h
// still names a live node (now holding the successor's key) while the
// successor's handle is stale. Callers holding handles by identity must
// account for this.
//
// Errors:
//   - ErrEmptyTree if h == Nil.
//   - ErrInvalidHandle if h is outside the arena or already released.
//
// Complexity: O(log n).
func (t *Tree[K]) DeleteHandle(h Handle) error {
	if err := t.checkHandle(h); err != nil {
		return err
	}
	t.deleteNode(h)
	t.size--
	t.verify()

	return nil
}

// deleteNode splices z out of the tree.
//
//   - No left child: the right child (maybe the sentinel) takes z's place.
//   - No right child: the left child takes z's place.
//   - Two children: copy the successor's key into z and delete the successor,
//     which has no left child, so the recursion stops after one step.
//
// Removing a Black node leaves a black deficiency on the promoted child,
// which delete-fixup repairs.
func (t *Tree[K]) deleteNode(z Handle) {
	n := t.nodes
	switch {
	case n[z].left == Nil:
		x, c := n[z].right, n[z].color
		t.replace(z, x)
		if c == Black {
			t.deleteFixup(x)
		}
		t.release(z)
	case n[z].right == Nil:
		x, c := n[z].left, n[z].color
		t.replace(z, x)
		if c == Black {
			t.deleteFixup(x)
		}
		t.release(z)
	default:
		s := t.subtreeMin(n[z].right)
		n[z].key = n[s].key
		t.deleteNode(s)

		return
	}
	n[Nil].parent = Nil
}

// replace puts v in u's slot under u's parent. v may be the sentinel, in
// which case the sentinel's parent is set so delete-fixup can climb from it.
func (t *Tree[K]) replace(u, v Handle) {
	n := t.nodes
	p := n[u].parent
	switch {
	case p == Nil:
		t.root = v
	case u == n[p].left:
		n[p].left = v
	default:
		n[p].right = v
	}
	n[v].parent = p
}

// deleteFixup moves the extra black carried by x up the tree, or absorbs it
// with at most three rotations.
//
//   - Sibling Red: recolour, rotate at the parent toward x, refresh sibling.
//   - Both nephews Black: recolour the sibling Red and move x to the parent.
//   - Near nephew Red, far Black: rotate at the sibling to make the far one Red.
//   - Far nephew Red: recolour, rotate at the parent toward x and stop.
func (t *Tree[K]) deleteFixup(x Handle) {
	n := t.nodes
	for x != t.root && n[x].color == Black {
		p := n[x].parent
		if x == n[p].left {
			s := n[p].right
			if n[s].color == Red {
				n[s].color = Black
				n[p].color = Red
				t.rotateLeft(p)
				s = n[p].right
			}
			if n[n[s].left].color == Black && n[n[s].right].color == Black {
				n[s].color = Red
				x = p
				continue
			}
			if n[n[s].right].color == Black {
				n[n[s].left].color = Black
				n[s].color = Red
				t.rotateRight(s)
				s = n[p].right
			}
			n[s].color = n[p].color
			n[p].color = Black
			n[n[s].right].color = Black
			t.rotateLeft(p)
			x = t.root
		} else {
			s := n[p].left
			if n[s].color == Red {
				n[s].color = Black
				n[p].color = Red
				t.rotateRight(p)
				s = n[p].left
			}
			if n[n[s].right].color == Black && n[n[s].left].color == Black {
				n[s].color = Red
				x = p
				continue
			}
			if n[n[s].left].color == Black {
				n[n[s].right].color = Black
				n[s].color = Red
				t.rotateLeft(s)
				s = n[p].left
			}
			n[s].color = n[p].color
			n[p].color = Black
			n[n[s].left].color = Black
			t.rotateRight(p)
			x = t.root
		}
	}
	n[x].color = Black
}
