// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// The frontier of tentative distances is an rbtree.Tree ordered by
// (distance, vertex ID). Every unsettled vertex has at most one entry: when a
// shorter path is found its entry is deleted and re-inserted with the new
// distance (decrease-key), so the frontier never holds stale duplicates.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is settled once: V min-extractions.
//   - Each relaxation costs at most one delete and one insert: O(log V).
//   - Space: O(V) for distances, predecessors and the frontier.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ordtree/core"
	"github.com/katalvlaran/ordtree/rbtree"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of the weighted graph g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (math.MaxInt64 if unreachable).
//   - prev: vertex ID → predecessor on one shortest path if ReturnPath is set,
//     "" for the source and unreachable vertices; nil otherwise.
//   - err:  a sentinel error if the inputs are invalid.
//
// Validation order:
//  1. Source non-empty (ErrEmptySource).
//  2. g non-nil (ErrNilGraph).
//  3. g weighted (ErrUnweightedGraph).
//  4. Source present (ErrVertexNotFound).
//  5. No negative edge weight (ErrNegativeWeight).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	vertices := g.Vertices()
	r := &runner{
		g:        g,
		options:  cfg,
		dist:     make(map[string]int64, len(vertices)),
		done:     make(map[string]bool, len(vertices)),
		frontier: rbtree.NewFunc(byDistance, rbtree.WithCapacity(len(vertices))),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}

	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state of one Dijkstra execution.
type runner struct {
	g        *core.Graph
	options  Options
	dist     map[string]int64
	prev     map[string]string
	done     map[string]bool // settled vertices
	frontier *rbtree.Tree[frontierItem]
}

func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.MaxInt64
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0
	r.frontier.Insert(frontierItem{dist: 0, id: r.options.Source})
}

// process settles the closest frontier vertex until the frontier is empty.
func (r *runner) process() error {
	for r.frontier.Len() > 0 {
		h, err := r.frontier.MinHandle()
		if err != nil {
			return err
		}
		item, err := r.frontier.Key(h)
		if err != nil {
			return err
		}
		if err = r.frontier.DeleteHandle(h); err != nil {
			return err
		}

		r.done[item.id] = true
		if err = r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to shorten the path to every unsettled neighbor of u.
func (r *runner) relax(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.dist[u]
	for _, e := range edges {
		v := e.To
		if !e.Directed && v == u {
			v = e.From
		}
		if r.done[v] {
			continue
		}

		w := e.Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, v, w)
		}
		if w > math.MaxInt64-du {
			continue
		}

		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}

		if old := r.dist[v]; old != math.MaxInt64 {
			r.frontier.Delete(frontierItem{dist: old, id: v})
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		r.frontier.Insert(frontierItem{dist: nd, id: v})
	}

	return nil
}

// PathTo rebuilds the vertex sequence source → … → target from a predecessor
// map returned by Dijkstra with WithReturnPath.
// Returns ErrNoPath if target is unreachable or prev does not lead to source.
func PathTo(prev map[string]string, source, target string) ([]string, error) {
	if target == source {
		return []string{source}, nil
	}

	path := []string{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok || p == "" || len(path) > len(prev) {
			return nil, fmt.Errorf("%w: %s→%s", ErrNoPath, source, target)
		}
		path = append(path, p)
		cur = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
