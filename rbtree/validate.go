package rbtree

import "fmt"

// Validate checks every red-black rule, the key ordering, the parent links
// and the node count. It returns nil for a consistent tree and an error
// wrapping ErrInvariantViolation naming the first broken rule otherwise.
//
// Complexity: O(n) time, O(height) stack.
func (t *Tree[K]) Validate() error {
	n := t.nodes
	if n[Nil].color != Black {
		return fmt.Errorf("%w: sentinel is %s", ErrInvariantViolation, n[Nil].color)
	}
	if t.root == Nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty root with size %d", ErrInvariantViolation, t.size)
		}

		return nil
	}
	if n[t.root].color != Black {
		return fmt.Errorf("%w: root %v is %s", ErrInvariantViolation, n[t.root].key, n[t.root].color)
	}
	if n[t.root].parent != Nil {
		return fmt.Errorf("%w: root %v has a parent", ErrInvariantViolation, n[t.root].key)
	}

	count := 0
	if _, err := t.checkSubtree(t.root, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d nodes, size is %d", ErrInvariantViolation, count, t.size)
	}

	first := true
	var prev K
	for k := range t.InOrder() {
		if !first && t.cmp(prev, k) > 0 {
			return fmt.Errorf("%w: key %v follows %v in order", ErrInvariantViolation, k, prev)
		}
		prev, first = k, false
	}

	return nil
}

// checkSubtree returns the number of Black nodes on every path from h down
// to the sentinel, both ends included.
func (t *Tree[K]) checkSubtree(h Handle, count *int) (int, error) {
	if h == Nil {
		return 1, nil
	}
	n := t.nodes
	*count++

	if !n[h].live {
		return 0, fmt.Errorf("%w: released slot %d is linked", ErrInvariantViolation, h)
	}
	c := n[h].color
	if c != Red && c != Black {
		return 0, fmt.Errorf("%w: node %v has colour %s", ErrInvariantViolation, n[h].key, c)
	}
	l, r := n[h].left, n[h].right
	if c == Red && (n[l].color == Red || n[r].color == Red) {
		return 0, fmt.Errorf("%w: red node %v has a red child", ErrInvariantViolation, n[h].key)
	}
	if (l != Nil && n[l].parent != h) || (r != Nil && n[r].parent != h) {
		return 0, fmt.Errorf("%w: child of %v does not point back to it", ErrInvariantViolation, n[h].key)
	}

	lh, err := t.checkSubtree(l, count)
	if err != nil {
		return 0, err
	}
	rh, err := t.checkSubtree(r, count)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: black-height %d left of %v, %d right", ErrInvariantViolation, lh, n[h].key, rh)
	}
	if c == Black {
		lh++
	}

	return lh, nil
}

// BlackHeight returns the number of Black nodes on any path from the root to
// a sentinel, excluding the root and including the sentinel. An empty tree
// has black-height 0. Assumes a valid tree.
func (t *Tree[K]) BlackHeight() int {
	if t.root == Nil {
		return 0
	}
	bh := 0
	for h := t.nodes[t.root].left; ; h = t.nodes[h].left {
		if t.nodes[h].color == Black {
			bh++
		}
		if h == Nil {
			return bh
		}
	}
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0.
func (t *Tree[K]) Height() int {
	return t.height(t.root)
}

func (t *Tree[K]) height(h Handle) int {
	if h == Nil {
		return 0
	}

	return 1 + max(t.height(t.nodes[h].left), t.height(t.nodes[h].right))
}
