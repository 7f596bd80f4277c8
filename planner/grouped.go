package planner

import (
	"fmt"

	"github.com/yangwei-lim/device-router/gridgraph"
	"github.com/yangwei-lim/device-router/maze"
)

// RouteGrouped is the router driver's entry point (route_multi_pins_group
// in the original). clusters is one slice of candidate grid nodes per
// interacting pin cluster (pingroup.Net.Cluster, endpoints extracted
// and flattened). A singleton cluster needs no internal routing; a
// larger cluster is connected internally with RouteManhattanNearest.
// The resulting per-cluster node sets are then stitched together
// pairwise: each subsequent cluster is connected to the running tree
// via whichever (tree node, cluster node) pair is Manhattan-nearest,
// one maze search per cluster.
func RouteGrouped(g *gridgraph.Graph, clusters [][]*gridgraph.Node) ([][]*gridgraph.Node, error) {
	if len(clusters) == 0 {
		return nil, fmt.Errorf("%w: no clusters to route", ErrUnrouted)
	}

	var paths [][]*gridgraph.Node
	groups := make([][]*gridgraph.Node, 0, len(clusters))

	for _, cluster := range clusters {
		if len(cluster) == 1 {
			groups = append(groups, cluster)
			continue
		}

		clusterPaths, err := RouteManhattanNearest(g, cluster)
		if err != nil {
			return nil, err
		}
		paths = append(paths, clusterPaths...)

		var merged []*gridgraph.Node
		for _, p := range clusterPaths {
			merged = append(merged, p...)
		}
		groups = append(groups, dedupNodes(merged))
	}

	tree := groups[0]
	for _, target := range groups[1:] {
		bestLen := -1
		bestI, bestJ := 0, 0
		for i, s := range tree {
			for j, t := range target {
				d := manhattan(s, t)
				if bestLen < 0 || d < bestLen {
					bestLen = d
					bestI, bestJ = i, j
				}
			}
		}

		if tree[bestI] == target[bestJ] {
			continue
		}

		path, err := maze.RouteTwoPins(g, tree[bestI], []*gridgraph.Node{target[bestJ]})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnrouted, err)
		}
		paths = append(paths, path)
		tree = append(tree, path...)
	}

	return paths, nil
}
