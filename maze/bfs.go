package maze

import "github.com/yangwei-lim/device-router/gridgraph"

// BFSWave floods outward from source across g, visiting non-obstacle
// neighbors in breadth-first order, until it first reaches any node in
// targets. It resets Visited and Step on every node in g before
// running (bfs_multi_target in the original).
//
// Returns the target node reached (with Step set to its distance from
// source) and nil, or nil and ErrNoPath if no target is reachable.
func BFSWave(g *gridgraph.Graph, source *gridgraph.Node, targets map[*gridgraph.Node]bool) (*gridgraph.Node, error) {
	for _, n := range g.AllNodes() {
		n.Visited = false
		n.Step = nil
	}

	zero := 0
	source.Visited = true
	source.Step = &zero

	queue := []*gridgraph.Node{source}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, neighbor := range curr.Neighbors() {
			if neighbor.Visited {
				continue
			}

			step := *curr.Step + 1
			if targets[neighbor] {
				neighbor.Visited = true
				neighbor.Step = &step
				return neighbor, nil
			}

			neighbor.Visited = true
			neighbor.Step = &step
			queue = append(queue, neighbor)
		}
	}

	return nil, ErrNoPath
}
