package main

import (
	"math"
	"strings"

	"github.com/golang/glog"

	"github.com/katalvlaran/ordtree/core"
	"github.com/katalvlaran/ordtree/dijkstra"
)

// demoEdges is the six-vertex directed demo graph; vertex 5 only has an
// outgoing edge, so it is unreachable from the others.
var demoEdges = []struct {
	from, to string
	w        int64
}{
	{"0", "1", 15},
	{"0", "3", 35},
	{"1", "0", 15},
	{"1", "2", 5},
	{"1", "3", 10},
	{"3", "4", 5},
	{"5", "4", 5},
}

func demoGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range demoEdges {
		if _, err := g.AddEdge(e.from, e.to, e.w); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// routeLine is one vertex of the result: its distance and the path to it.
type routeLine struct {
	vertex string
	dist   int64
	path   []string
}

func routes(source string) ([]routeLine, error) {
	g, err := demoGraph()
	if err != nil {
		return nil, err
	}
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(source), dijkstra.WithReturnPath())
	if err != nil {
		return nil, err
	}

	out := make([]routeLine, 0, len(dist))
	for _, v := range g.Vertices() {
		line := routeLine{vertex: v, dist: dist[v]}
		if dist[v] != math.MaxInt64 {
			if line.path, err = dijkstra.PathTo(prev, source, v); err != nil {
				return nil, err
			}
		}
		out = append(out, line)
	}

	return out, nil
}

func runRoute(source string) error {
	lines, err := routes(source)
	if err != nil {
		return err
	}
	for _, l := range lines {
		if l.path == nil {
			glog.Infof("%s: unreachable", l.vertex)
			continue
		}
		glog.Infof("%s: %d via %s", l.vertex, l.dist, strings.Join(l.path, "→"))
	}

	return nil
}
