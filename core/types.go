// Package core defines the Graph and Edge types, graph options, sentinel
// errors and the NewGraph constructor.
package core

import (
	"cmp"
	"errors"
	"sync"

	"github.com/katalvlaran/ordtree/rbtree"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents a connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of the edge. Always zero in unweighted graphs.
	Weight int64

	// Directed reports whether the edge is one-way.
	Directed bool

	seq uint64 // creation order, orders the edge catalogue
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory graph data structure.
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool

	nextSeq  uint64
	ids      *rbtree.Tree[string] // sorted vertex IDs
	vertices map[string]struct{}
	order    *rbtree.Tree[*Edge] // edges by seq
	edges    map[string]*Edge

	// adj[from][to][edgeID] = struct{}{}
	adj map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected, unweighted, without loops or multi-edges.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		ids:      rbtree.New[string](),
		vertices: make(map[string]struct{}),
		order:    rbtree.NewFunc(bySeq),
		edges:    make(map[string]*Edge),
		adj:      make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

func bySeq(a, b *Edge) int { return cmp.Compare(a.seq, b.seq) }

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
