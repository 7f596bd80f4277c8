package maze

import "github.com/yangwei-lim/device-router/gridgraph"

// RouteTwoPins finds a shortest path from source to the nearest node
// in targets, by running BFSWave then DFSBacktrack (route_two_pins in
// the original).
func RouteTwoPins(g *gridgraph.Graph, source *gridgraph.Node, targets []*gridgraph.Node) ([]*gridgraph.Node, error) {
	targetSet := make(map[*gridgraph.Node]bool, len(targets))
	for _, t := range targets {
		targetSet[t] = true
	}

	reached, err := BFSWave(g, source, targetSet)
	if err != nil {
		return nil, err
	}

	return DFSBacktrack(g, source, reached)
}
