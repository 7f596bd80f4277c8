package planner

import "github.com/yangwei-lim/device-router/gridgraph"

func manhattan(a, b *gridgraph.Node) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y) + absInt(a.Z-b.Z)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func removeNode(nodes []*gridgraph.Node, target *gridgraph.Node) []*gridgraph.Node {
	out := nodes[:0:0]
	removed := false
	for _, n := range nodes {
		if !removed && n == target {
			removed = true
			continue
		}
		out = append(out, n)
	}
	return out
}

// dedupNodes returns nodes with duplicates removed, preserving first
// occurrence order.
func dedupNodes(nodes []*gridgraph.Node) []*gridgraph.Node {
	seen := make(map[*gridgraph.Node]bool, len(nodes))
	out := make([]*gridgraph.Node, 0, len(nodes))
	for _, n := range nodes {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
