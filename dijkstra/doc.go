// Package dijkstra provides single-source shortest paths on weighted graphs
// with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from one source vertex to every
//     reachable vertex of a core.Graph in O((V + E) log V).
//   - The frontier is a red-black tree (rbtree.Tree) keyed by
//     (distance, vertex ID): the minimum is the leftmost node, and improving a
//     vertex's distance deletes its old entry and inserts the new one.
//   - Optional predecessor map, distance cap and "impassable" edge threshold.
//
// Key features:
//
//   - Functional options keep the call signature stable.
//   - WithReturnPath: returns a predecessor map; PathTo rebuilds a route from it.
//   - WithMaxDistance: vertices farther than the cap stay unreached.
//   - WithInfEdgeThreshold: edges with weight ≥ threshold are skipped.
//   - Ties in distance are settled in vertex ID order, so results and
//     predecessor choices are deterministic.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound,
//     ErrNegativeWeight: returned by Dijkstra, checked in that order.
//   - ErrBadMaxDistance, ErrBadInfThreshold: panics from the option
//     constructors on invalid arguments.
//   - ErrNoPath: returned by PathTo.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]int64, prev map[string]string, err error)
//	func PathTo(prev map[string]string, source, target string) ([]string, error)
//
// Thread safety:
//
//   - Dijkstra reads the graph through its locked accessors but does not hold
//     a lock for the whole run; do not mutate the graph concurrently.
package dijkstra
