// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns edges in creation order, read from the edge tree.
package core

import "strconv"

// AddEdge creates an edge from→to with the given weight and returns its ID.
// Missing endpoints are created.
//
// Steps:
//  1. Validate IDs, weight policy and loop policy.
//  2. Lock, ensure both vertices exist.
//  3. Reject parallel edges unless WithMultiEdges.
//  4. Store the edge in the map and the ordered catalogue, link adjacency.
//  5. Mirror adjacency for undirected, non-loop edges.
//
// Complexity: O(log V + log E).
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.nextSeq++
	e := &Edge{
		ID:       "e" + strconv.FormatUint(g.nextSeq, 10),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
		seq:      g.nextSeq,
	}
	g.edges[e.ID] = e
	g.order.Insert(e)

	g.link(from, to, e.ID)
	if !e.Directed && from != to {
		g.link(to, from, e.ID)
	}

	return e.ID, nil
}

// RemoveEdge deletes one edge and its mirror.
// Returns ErrEdgeNotFound if the ID is unknown.
func (g *Graph) RemoveEdge(edgeID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return ErrEdgeNotFound
	}
	g.removeEdgeLocked(e)

	return nil
}

// HasEdge reports whether at least one edge connects from→to.
// For undirected edges the mirror direction also counts.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// GetEdge returns the edge with the given ID.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns every edge in creation order.
// Treat the returned edges as read-only.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.order.Keys()
}

// EdgeCount returns the number of edges (an undirected edge counts once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.order.Len()
}

func (g *Graph) hasEdgeLocked(from, to string) bool {
	return len(g.adj[from][to]) > 0
}

func (g *Graph) link(from, to, eid string) {
	inner, ok := g.adj[from]
	if !ok {
		inner = make(map[string]map[string]struct{})
		g.adj[from] = inner
	}
	set, ok := inner[to]
	if !ok {
		set = make(map[string]struct{})
		inner[to] = set
	}
	set[eid] = struct{}{}
}

func (g *Graph) unlink(from, to, eid string) {
	set := g.adj[from][to]
	delete(set, eid)
	if len(set) == 0 {
		delete(g.adj[from], to)
	}
	if len(g.adj[from]) == 0 {
		delete(g.adj, from)
	}
}

func (g *Graph) removeEdgeLocked(e *Edge) {
	g.unlink(e.From, e.To, e.ID)
	if !e.Directed && e.From != e.To {
		g.unlink(e.To, e.From, e.ID)
	}
	delete(g.edges, e.ID)
	g.order.Delete(e)
}
