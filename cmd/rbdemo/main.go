// Package main implements rbdemo, a small driver for the ordtree packages.
//
// In tree mode it builds a red-black tree from -keys, deletes -delete, runs
// -random mixed insert/delete operations with validation after each one and
// logs the resulting shape. In dijkstra mode it runs shortest paths over the
// six-vertex demo graph from -source.
//
//	rbdemo -logtostderr -keys=50,30,70,20,40,60,80 -delete=30
//	rbdemo -logtostderr -mode=dijkstra -source=0
package main

import (
	"flag"

	"github.com/golang/glog"
)

func main() {
	mode := flag.String("mode", "tree", "tree or dijkstra")
	keys := flag.String("keys", "10,20,30", "comma-separated integer keys to insert")
	del := flag.String("delete", "", "comma-separated integer keys to delete")
	random := flag.Int("random", 0, "number of random insert/delete operations to run")
	seed := flag.Int64("seed", 42, "seed for -random")
	source := flag.String("source", "0", "source vertex for -mode=dijkstra")
	flag.Parse()
	defer glog.Flush()

	var err error
	switch *mode {
	case "tree":
		err = runTree(treeConfig{keys: *keys, del: *del, random: *random, seed: *seed})
	case "dijkstra":
		err = runRoute(*source)
	default:
		glog.Fatalf("unknown mode %q", *mode)
	}
	if err != nil {
		glog.Fatalf("rbdemo: %v", err)
	}
}
