package maze

import "github.com/yangwei-lim/device-router/gridgraph"

// DFSBacktrack walks from target back to source, at each step
// descending only into a neighbor whose Step is exactly one less than
// the current node's, which reconstructs a shortest path from the Step
// distances BFSWave recorded (dfs_backtrack in the original). It
// resets Visited on every node in g before running; Step values set by
// a prior BFSWave must still be present.
//
// Returns the path in source-to-target order, or nil and ErrNoPath if
// target's Step chain never reaches source.
func DFSBacktrack(g *gridgraph.Graph, source, target *gridgraph.Node) ([]*gridgraph.Node, error) {
	for _, n := range g.AllNodes() {
		n.Visited = false
	}

	target.Visited = true
	stack := []*gridgraph.Node{target}
	var path []*gridgraph.Node

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		curr.Visited = true
		path = append(path, curr)

		for _, neighbor := range curr.Neighbors() {
			if neighbor.Visited || neighbor.Step == nil {
				continue
			}

			if neighbor == source {
				path = append(path, neighbor)
				reverseNodes(path)
				return path, nil
			}

			if *neighbor.Step == *curr.Step-1 {
				stack = append(stack, neighbor)
			}
		}
	}

	return nil, ErrNoPath
}

func reverseNodes(nodes []*gridgraph.Node) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}
