// Package rbtree provides a generic, arena-backed red-black tree: a
// self-balancing binary search tree keyed by any totally ordered type.
//
// Overview:
//
//   - Tree[K] keeps its nodes in a single slice (the arena). Slot 0 is the
//     shared sentinel: it is always Black and stands for every "no child" and
//     "no parent" relation, so the fixup code can follow links unconditionally.
//   - Callers address nodes through Handle values (arena indices). The tree is
//     the sole owner of every node; parent links are plain handles, not
//     ownership edges.
//   - Duplicate keys are accepted (multiset). Ties descend to the right on
//     insert. InsertUnique offers set semantics when callers need them.
//
// Red-black invariants, restored after every mutation:
//
//  1. Every node is Red or Black.
//  2. The root is Black.
//  3. The sentinel is Black.
//  4. A Red node never has a Red child.
//  5. Every path from a node to a descendant sentinel holds the same number
//     of Black nodes (black-height).
//  6. In-order traversal yields keys in non-decreasing order.
//
// Complexity:
//
//   - Insert, Delete, Search, Min, Max: O(log n).
//   - Successor, Predecessor: O(log n) worst case, O(1) amortized over a walk.
//   - InOrder, PreOrder, PostOrder, Ascend, Descend, Keys, Validate: O(n).
//   - Space: O(n); released slots are recycled by later inserts.
//
// Handles and deletes:
//
// Deleting a node with two real children does not move nodes around: the
// in-order successor's key is copied into the deleted node's slot and the
// successor's slot is the one released. A caller holding the handle of the
// deleted node therefore observes the successor's key at that handle, and the
// successor's handle becomes stale. Released handles may be reused by later
// inserts.
//
// Errors (sentinel):
//
//   - ErrEmptyTree          min/max on an empty tree, or an operation given Nil.
//   - ErrInvalidHandle      handle outside the arena or pointing to a released slot.
//   - ErrInvariantViolation Validate found a broken red-black or ordering rule.
//   - ErrNilComparator      NewFunc was given a nil comparator (panics).
//   - ErrBadCapacity        WithCapacity was given a negative value (panics).
//
// Searching for or deleting an absent key is not an error: Search reports
// (Nil, false) and Delete reports false.
//
// Thread safety:
//
// A Tree is not safe for concurrent use. Rotations rewrite several links at
// once, so readers and writers must be serialised by the caller (for example
// one sync.RWMutex per tree, as core.Graph does).
//
// Example:
//
//	t := rbtree.New[int]()
//	for _, k := range []int{10, 20, 30} {
//	    t.Insert(k)
//	}
//	lo, _ := t.Min()   // 10
//	t.Delete(20)
//	for k := range t.InOrder() {
//	    fmt.Println(k) // 10, 30
//	}
package rbtree
