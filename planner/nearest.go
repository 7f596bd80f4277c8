package planner

import (
	"fmt"

	"github.com/yangwei-lim/device-router/gridgraph"
	"github.com/yangwei-lim/device-router/maze"
)

// RouteManhattanNearest connects pins into a single tree by repeatedly
// picking whichever (tree node, remaining pin) pair has the smallest
// Manhattan distance and routing that pair, then folding the new path
// into the tree (route_multi_pins_2 in the original). Ties keep the
// first pair found, matching the original's strict-less-than update.
func RouteManhattanNearest(g *gridgraph.Graph, pins []*gridgraph.Node) ([][]*gridgraph.Node, error) {
	if len(pins) < 2 {
		return nil, fmt.Errorf("%w: fewer than two pins to route", ErrUnrouted)
	}

	targets := append([]*gridgraph.Node(nil), pins[1:]...)
	source := pins[0]

	first, err := maze.RouteTwoPins(g, source, []*gridgraph.Node{targets[0]})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrouted, err)
	}
	paths := [][]*gridgraph.Node{first}
	targets = removeNode(targets, first[len(first)-1])
	tree := append([]*gridgraph.Node(nil), first...)

	for len(targets) > 0 {
		bestLen := -1
		bestI, bestJ := 0, 0
		for i, s := range tree {
			for j, t := range targets {
				d := manhattan(s, t)
				if bestLen < 0 || d < bestLen {
					bestLen = d
					bestI, bestJ = i, j
				}
			}
		}

		if tree[bestI] == targets[bestJ] {
			targets = removeNode(targets, tree[bestI])
			continue
		}

		path, err := maze.RouteTwoPins(g, tree[bestI], []*gridgraph.Node{targets[bestJ]})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnrouted, err)
		}
		paths = append(paths, path)
		targets = removeNode(targets, path[len(path)-1])
		tree = append(tree, path...)
	}

	return paths, nil
}
