// Package core provides a small, thread-safe, in-memory Graph used as the
// input surface for the shortest-path code in this module.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Adjacency via nested maps: adj[from][to][edgeID] = struct{}{}
//   - Sequential Edge IDs ("e1", "e2", …)
//
// Ordered catalogues:
//
// Vertex IDs and edges are kept in rbtree.Tree instances, so Vertices() and
// Edges() come out sorted without a sort pass: vertex IDs lexicographically,
// edges by creation order. Membership checks still go through maps.
//
// Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(log V), idempotent
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(E + log V)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) (edgeID string, err error) // O(log E + log V)
//	RemoveEdge(edgeID string) error    // O(log E)
//	HasEdge(from, to string) bool      // O(1)
//	GetEdge(edgeID string) (*Edge, error)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // O(d·log d), by edge creation order
//	NeighborIDs(id string) ([]string, error) // O(d·log d), unique, sorted
//	Vertices() []string                      // O(V)
//	Edges() []*Edge                          // O(E)
//	VertexCount() int; EdgeCount() int       // O(1)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// Concurrency:
//
// One sync.RWMutex guards the whole graph, including both trees, which are
// not safe for concurrent use on their own.
package core
