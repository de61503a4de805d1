package rbtree

// Min returns the smallest key. Returns ErrEmptyTree on an empty tree.
func (t *Tree[K]) Min() (K, error) {
	h, err := t.MinHandle()
	if err != nil {
		var zero K
		return zero, err
	}

	return t.nodes[h].key, nil
}

// Max returns the largest key. Returns ErrEmptyTree on an empty tree.
func (t *Tree[K]) Max() (K, error) {
	h, err := t.MaxHandle()
	if err != nil {
		var zero K
		return zero, err
	}

	return t.nodes[h].key, nil
}

// MinHandle returns the leftmost node of the whole tree.
func (t *Tree[K]) MinHandle() (Handle, error) {
	if t.root == Nil {
		return Nil, ErrEmptyTree
	}

	return t.subtreeMin(t.root), nil
}

// MaxHandle returns the rightmost node of the whole tree.
func (t *Tree[K]) MaxHandle() (Handle, error) {
	if t.root == Nil {
		return Nil, ErrEmptyTree
	}

	return t.subtreeMax(t.root), nil
}

// SubtreeMin returns the leftmost node of the subtree rooted at h.
//
// Errors:
//   - ErrEmptyTree if h == Nil.
//   - ErrInvalidHandle if h is not a live node.
func (t *Tree[K]) SubtreeMin(h Handle) (Handle, error) {
	if err := t.checkHandle(h); err != nil {
		return Nil, err
	}

	return t.subtreeMin(h), nil
}

// SubtreeMax returns the rightmost node of the subtree rooted at h.
// Errors as for SubtreeMin.
func (t *Tree[K]) SubtreeMax(h Handle) (Handle, error) {
	if err := t.checkHandle(h); err != nil {
		return Nil, err
	}

	return t.subtreeMax(h), nil
}

// Successor returns the node that follows h in key order, or Nil when h holds
// the largest key.
//
// Implementation:
//   - Stage 1: If h has a right subtree, return its leftmost node.
//   - Stage 2: Otherwise climb while h is a right child; the first parent
//     reached from a left child is the answer (Nil if the climb leaves the root).
//
// Errors:
//   - ErrEmptyTree if h == Nil.
//   - ErrInvalidHandle if h is not a live node.
//
// Complexity: O(log n).
func (t *Tree[K]) Successor(h Handle) (Handle, error) {
	if err := t.checkHandle(h); err != nil {
		return Nil, err
	}

	return t.next(h), nil
}

// Predecessor returns the node that precedes h in key order, or Nil when h
// holds the smallest key. Errors as for Successor.
func (t *Tree[K]) Predecessor(h Handle) (Handle, error) {
	if err := t.checkHandle(h); err != nil {
		return Nil, err
	}

	return t.prev(h), nil
}

func (t *Tree[K]) subtreeMin(h Handle) Handle {
	for t.nodes[h].left != Nil {
		h = t.nodes[h].left
	}

	return h
}

func (t *Tree[K]) subtreeMax(h Handle) Handle {
	for t.nodes[h].right != Nil {
		h = t.nodes[h].right
	}

	return h
}

func (t *Tree[K]) next(h Handle) Handle {
	n := t.nodes
	if n[h].right != Nil {
		return t.subtreeMin(n[h].right)
	}
	p := n[h].parent
	for p != Nil && h == n[p].right {
		h = p
		p = n[p].parent
	}

	return p
}

func (t *Tree[K]) prev(h Handle) Handle {
	n := t.nodes
	if n[h].left != Nil {
		return t.subtreeMax(n[h].left)
	}
	p := n[h].parent
	for p != Nil && h == n[p].left {
		h = p
		p = n[p].parent
	}

	return p
}
