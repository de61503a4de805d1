// File: methods_adjacent.go
// Role: Adjacency queries.
//
// Policy:
//   - Directed edges are reported only from their source.
//   - Undirected edges are reported from both endpoints; loops appear once.
package core

import (
	"cmp"
	"slices"
)

// Neighbors returns the edges leaving id, ordered by edge creation.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(d log d), d = number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, set := range g.adj[id] {
		for eid := range set {
			out = append(out, g.edges[eid])
		}
	}
	slices.SortFunc(out, bySeq)

	return out, nil
}

// NeighborIDs returns the unique IDs adjacent to id, sorted ascending.
// Errors as for Neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adj[id]))
	for to := range g.adj[id] {
		out = append(out, to)
	}
	slices.SortFunc(out, cmp.Compare[string])

	return out, nil
}
