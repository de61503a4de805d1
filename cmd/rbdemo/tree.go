package main

import (
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/katalvlaran/ordtree/rbtree"
)

type treeConfig struct {
	keys   string
	del    string
	random int
	seed   int64
}

// treeReport summarises the final tree.
type treeReport struct {
	keys        []int
	height      int
	blackHeight int
	inserted    int
	deleted     int
	missing     int
}

func runTree(cfg treeConfig) error {
	rep, err := buildTree(cfg)
	if err != nil {
		return err
	}
	glog.Infof("inserted=%d deleted=%d missing=%d", rep.inserted, rep.deleted, rep.missing)
	glog.Infof("in-order: %v", rep.keys)
	glog.Infof("size=%d height=%d black-height=%d", len(rep.keys), rep.height, rep.blackHeight)

	return nil
}

func buildTree(cfg treeConfig) (treeReport, error) {
	var rep treeReport

	ins, err := parseKeys(cfg.keys)
	if err != nil {
		return rep, fmt.Errorf("parse -keys: %w", err)
	}
	dels, err := parseKeys(cfg.del)
	if err != nil {
		return rep, fmt.Errorf("parse -delete: %w", err)
	}

	t := rbtree.New[int](rbtree.WithCapacity(len(ins) + cfg.random))
	for _, k := range ins {
		t.Insert(k)
		rep.inserted++
	}
	for _, k := range dels {
		if t.Delete(k) {
			rep.deleted++
		} else {
			rep.missing++
			glog.V(1).Infof("delete %d: not present", k)
		}
	}
	if err := t.Validate(); err != nil {
		return rep, err
	}

	if cfg.random > 0 {
		r := rand.New(rand.NewSource(cfg.seed))
		span := max(cfg.random/2, 1)
		for i := 0; i < cfg.random; i++ {
			k := r.Intn(span)
			if r.Intn(3) == 0 {
				if t.Delete(k) {
					rep.deleted++
				} else {
					rep.missing++
				}
			} else {
				t.Insert(k)
				rep.inserted++
			}
			if err := t.Validate(); err != nil {
				return rep, fmt.Errorf("random op %d on key %d: %w", i, k, err)
			}
		}
		glog.V(1).Infof("random: %d operations validated", cfg.random)
	}

	rep.keys = t.Keys()
	rep.height = t.Height()
	rep.blackHeight = t.BlackHeight()

	return rep, nil
}

// parseKeys reads a comma-separated list of integers. Blank input is empty.
func parseKeys(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		k, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}

	return slices.Clip(out), nil
}
