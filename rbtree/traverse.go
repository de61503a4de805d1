package rbtree

import "iter"

// InOrder yields every key in non-decreasing order.
// The tree must not be mutated while the sequence is being consumed.
func (t *Tree[K]) InOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		stack := make([]Handle, 0, 32)
		cur := t.root
		for cur != Nil || len(stack) > 0 {
			for cur != Nil {
				stack = append(stack, cur)
				cur = t.nodes[cur].left
			}

			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(t.nodes[cur].key) {
				return
			}

			cur = t.nodes[cur].right
		}
	}
}

// PreOrder yields keys node-left-right. Debugging aid only.
func (t *Tree[K]) PreOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t.root == Nil {
			return
		}
		stack := []Handle{t.root}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(t.nodes[cur].key) {
				return
			}
			// right first so left pops first
			if r := t.nodes[cur].right; r != Nil {
				stack = append(stack, r)
			}
			if l := t.nodes[cur].left; l != Nil {
				stack = append(stack, l)
			}
		}
	}
}

// PostOrder yields keys left-right-node. Debugging aid only.
func (t *Tree[K]) PostOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		last := Nil
		stack := make([]Handle, 0, 32)
		cur := t.root
		for cur != Nil || len(stack) > 0 {
			if cur != Nil {
				stack = append(stack, cur)
				cur = t.nodes[cur].left
				continue
			}

			top := stack[len(stack)-1]
			if r := t.nodes[top].right; r != Nil && r != last {
				cur = r
				continue
			}

			stack = stack[:len(stack)-1]
			if !yield(t.nodes[top].key) {
				return
			}
			last = top
		}
	}
}

// Ascend calls fn for every key in ascending order until fn returns false.
func (t *Tree[K]) Ascend(fn func(K) bool) {
	if t.root == Nil {
		return
	}
	for h := t.subtreeMin(t.root); h != Nil; h = t.next(h) {
		if !fn(t.nodes[h].key) {
			return
		}
	}
}

// Descend calls fn for every key in descending order until fn returns false.
func (t *Tree[K]) Descend(fn func(K) bool) {
	if t.root == Nil {
		return
	}
	for h := t.subtreeMax(t.root); h != Nil; h = t.prev(h) {
		if !fn(t.nodes[h].key) {
			return
		}
	}
}

// Keys returns a sorted snapshot of every key.
func (t *Tree[K]) Keys() []K {
	out := make([]K, 0, t.size)
	for k := range t.InOrder() {
		out = append(out, k)
	}

	return out
}
