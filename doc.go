// Package ordtree is an in-memory ordered-collection toolkit built around a
// generic red-black tree.
//
// Subpackages:
//
//	rbtree/     — arena-backed red-black tree: insert, delete, search,
//	              min/max, successor/predecessor, traversals, validation
//	core/       — thread-safe weighted graph whose vertex and edge
//	              indexes are kept in rbtree trees
//	dijkstra/   — single-source shortest paths with an rbtree frontier
//	cmd/rbdemo/ — command-line driver for both
//
// Quick start:
//
//	t := rbtree.New[int]()
//	for _, k := range []int{50, 30, 70} {
//		t.Insert(k)
//	}
//	for k := range t.InOrder() {
//		fmt.Println(k)
//	}
//
// Every mutation keeps the five red-black properties, so searches and
// updates are O(log n). Tree.Validate re-checks them on demand, and
// rbtree.WithInvariantChecks checks them after every mutation.
package ordtree
