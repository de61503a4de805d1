package rbtree

import "fmt"

// Len returns the number of keys stored in the tree.
func (t *Tree[K]) Len() int { return t.size }

// Root returns the root handle, or Nil when the tree is empty.
func (t *Tree[K]) Root() Handle { return t.root }

// Search returns the handle of a node holding key.
// When duplicates are present any one of them may be returned.
// Reports (Nil, false) if key is absent.
//
// Complexity: O(log n).
func (t *Tree[K]) Search(key K) (Handle, bool) {
	h := t.find(key)

	return h, h != Nil
}

// Contains reports whether at least one node holds key.
func (t *Tree[K]) Contains(key K) bool {
	return t.find(key) != Nil
}

// Insert adds key to the tree and returns the handle of the new node.
// Equal keys are kept: the new node descends to the right of any equal key.
//
// Implementation:
//   - Stage 1: Allocate a Red node with sentinel children.
//   - Stage 2: Descend from the root to the last real node (the parent).
//   - Stage 3: Attach as the parent's left or right child and run insert-fixup.
//
// Complexity: O(log n) time, O(1) amortized space.
func (t *Tree[K]) Insert(key K) Handle {
	z := t.alloc(key)

	parent := Nil
	for cur := t.root; cur != Nil; {
		parent = cur
		if t.cmp(key, t.nodes[cur].key) < 0 {
			cur = t.nodes[cur].left
		} else {
			cur = t.nodes[cur].right
		}
	}

	t.attach(z, parent)
	t.insertFixup(z)
	t.size++
	t.verify()

	return z
}

// InsertUnique adds key unless an equal key is already present.
// It returns the handle holding key and whether a new node was created.
//
// Complexity: O(log n).
func (t *Tree[K]) InsertUnique(key K) (Handle, bool) {
	parent := Nil
	for cur := t.root; cur != Nil; {
		parent = cur
		c := t.cmp(key, t.nodes[cur].key)
		switch {
		case c < 0:
			cur = t.nodes[cur].left
		case c > 0:
			cur = t.nodes[cur].right
		default:
			return cur, false
		}
	}

	z := t.alloc(key)
	t.attach(z, parent)
	t.insertFixup(z)
	t.size++
	t.verify()

	return z, true
}

// Key returns the key stored at h.
func (t *Tree[K]) Key(h Handle) (K, error) {
	if err := t.checkHandle(h); err != nil {
		var zero K
		return zero, err
	}

	return t.nodes[h].key, nil
}

// ColorOf returns the colour of h. Nil and unknown handles are Black.
func (t *Tree[K]) ColorOf(h Handle) Color {
	if !t.live(h) {
		return Black
	}

	return t.nodes[h].color
}

// Left returns the left child of h, or Nil.
func (t *Tree[K]) Left(h Handle) Handle {
	if !t.live(h) {
		return Nil
	}

	return t.nodes[h].left
}

// Right returns the right child of h, or Nil.
func (t *Tree[K]) Right(h Handle) Handle {
	if !t.live(h) {
		return Nil
	}

	return t.nodes[h].right
}

// Parent returns the parent of h, or Nil for the root.
func (t *Tree[K]) Parent(h Handle) Handle {
	if !t.live(h) {
		return Nil
	}

	return t.nodes[h].parent
}

// Clear removes every key. The comparator and options are kept and the
// arena's capacity is retained.
func (t *Tree[K]) Clear() {
	clear(t.nodes[1:])
	t.nodes = t.nodes[:1]
	t.nodes[Nil] = node[K]{color: Black, parent: Nil, left: Nil, right: Nil}
	t.free = t.free[:0]
	t.root = Nil
	t.size = 0
}

// find descends from the root; equal keys stop the descent.
func (t *Tree[K]) find(key K) Handle {
	cur := t.root
	for cur != Nil {
		c := t.cmp(key, t.nodes[cur].key)
		switch {
		case c < 0:
			cur = t.nodes[cur].left
		case c > 0:
			cur = t.nodes[cur].right
		default:
			return cur
		}
	}

	return Nil
}

// alloc takes a slot from the free list or grows the arena.
// It may reallocate t.nodes, so callers must not hold node pointers across it.
func (t *Tree[K]) alloc(key K) Handle {
	n := node[K]{key: key, color: Red, parent: Nil, left: Nil, right: Nil, live: true}
	if k := len(t.free); k > 0 {
		h := t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[h] = n

		return h
	}
	t.nodes = append(t.nodes, n)

	return Handle(len(t.nodes) - 1)
}

// release returns h's slot to the free list and drops its key.
func (t *Tree[K]) release(h Handle) {
	t.nodes[h] = node[K]{color: Black, parent: Nil, left: Nil, right: Nil}
	t.free = append(t.free, h)
}

// attach links the fresh node z below parent (or as root).
func (t *Tree[K]) attach(z, parent Handle) {
	n := t.nodes
	n[z].parent = parent
	switch {
	case parent == Nil:
		t.root = z
	case t.cmp(n[z].key, n[parent].key) < 0:
		n[parent].left = z
	default:
		n[parent].right = z
	}
}

// insertFixup restores the red-black rules after z was attached Red.
//
//   - Uncle Red: recolour parent and uncle Black, grandparent Red, move up.
//   - Uncle Black, z inner child: rotate at the parent to make z outer.
//   - Uncle Black, z outer child: recolour and rotate at the grandparent.
func (t *Tree[K]) insertFixup(z Handle) {
	n := t.nodes
	for n[n[z].parent].color == Red {
		p := n[z].parent
		g := n[p].parent
		if p == n[g].left {
			u := n[g].right
			if n[u].color == Red {
				n[p].color = Black
				n[u].color = Black
				n[g].color = Red
				z = g
				continue
			}
			if z == n[p].right {
				z = p
				t.rotateLeft(z)
				p = n[z].parent
			}
			n[p].color = Black
			n[g].color = Red
			t.rotateRight(g)
		} else {
			u := n[g].left
			if n[u].color == Red {
				n[p].color = Black
				n[u].color = Black
				n[g].color = Red
				z = g
				continue
			}
			if z == n[p].left {
				z = p
				t.rotateRight(z)
				p = n[z].parent
			}
			n[p].color = Black
			n[g].color = Red
			t.rotateLeft(g)
		}
	}
	n[t.root].color = Black
}

func (t *Tree[K]) live(h Handle) bool {
	return h != Nil && int(h) < len(t.nodes) && t.nodes[h].live
}

// checkHandle maps Nil to ErrEmptyTree and dead or out-of-range handles to
// ErrInvalidHandle.
func (t *Tree[K]) checkHandle(h Handle) error {
	if h == Nil {
		return ErrEmptyTree
	}
	if !t.live(h) {
		return fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}

	return nil
}

// verify panics if invariant checks are enabled and the tree is broken.
func (t *Tree[K]) verify() {
	if !t.checks {
		return
	}
	if err := t.Validate(); err != nil {
		panic(err)
	}
}
