package planner

import (
	"fmt"

	"github.com/yangwei-lim/device-router/gridgraph"
	"github.com/yangwei-lim/device-router/maze"
)

// RouteLinear connects pins into a single tree by routing each pin in
// list order toward the union of everything routed so far
// (route_multi_pins in the original). Returns the per-step path
// segments in routing order, or ErrUnrouted if any step fails.
func RouteLinear(g *gridgraph.Graph, pins []*gridgraph.Node) ([][]*gridgraph.Node, error) {
	if len(pins) < 2 {
		return nil, fmt.Errorf("%w: fewer than two pins to route", ErrUnrouted)
	}

	sources := append([]*gridgraph.Node(nil), pins[1:]...)
	source := pins[0]

	first, err := maze.RouteTwoPins(g, source, sources)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrouted, err)
	}

	paths := [][]*gridgraph.Node{first}
	tree := append([]*gridgraph.Node(nil), first...)
	sources = removeNode(sources, first[len(first)-1])

	for len(sources) > 0 {
		next := sources[0]
		sources = sources[1:]

		path, err := maze.RouteTwoPins(g, next, tree)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnrouted, err)
		}
		paths = append(paths, path)
		tree = append(tree, path...)
	}

	return paths, nil
}
