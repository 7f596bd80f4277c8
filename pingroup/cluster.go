package pingroup

import "github.com/yangwei-lim/device-router/circuit"

// Cluster splits n's pins into maximal sets of mutually-interacting
// pins (SPEC_FULL.md §4.3.2, find_groups in the original), using a
// disjoint-set with path compression and union by rank — the same
// shape prim_kruskal.Kruskal uses to merge MST components, adapted
// from vertex union to pin-index union.
//
// Two pins interact when they share a layer and their rectangles
// overlap or touch on both axes (checkInteraction). Clustering is
// transitive: if pin A interacts with B and B interacts with C, A, B,
// and C land in the same group even if A and C don't touch directly.
//
// Each returned group preserves the original pin order within n.Pins.
func (n *Net) Cluster() [][]circuit.Pin {
	count := len(n.Pins)
	if count == 0 {
		return nil
	}

	parent := make([]int, count)
	rank := make([]int, count)
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(x, y int) {
		rootX, rootY := find(x), find(y)
		if rootX == rootY {
			return
		}
		if rank[rootX] < rank[rootY] {
			parent[rootX] = rootY
		} else {
			parent[rootY] = rootX
			if rank[rootX] == rank[rootY] {
				rank[rootX]++
			}
		}
	}

	for i := 0; i < count; i++ {
		for j := i + 1; j < count; j++ {
			if checkInteraction(n.Pins[i], n.Pins[j]) {
				union(i, j)
			}
		}
	}

	order := make([]int, 0, count)
	groups := make(map[int][]int)
	for i := 0; i < count; i++ {
		root := find(i)
		if _, seen := groups[root]; !seen {
			order = append(order, root)
		}
		groups[root] = append(groups[root], i)
	}

	result := make([][]circuit.Pin, 0, len(order))
	for _, root := range order {
		members := groups[root]
		pins := make([]circuit.Pin, len(members))
		for k, idx := range members {
			pins[k] = n.Pins[idx]
		}
		result = append(result, pins)
	}
	return result
}

// checkInteraction reports whether two pins on the same layer overlap
// or touch on both axes (check_interaction in the original).
func checkInteraction(a, b circuit.Pin) bool {
	if a.Layer != b.Layer {
		return false
	}
	return a.Pt1[0] <= b.Pt2[0] && a.Pt2[0] >= b.Pt1[0] &&
		a.Pt1[1] <= b.Pt2[1] && a.Pt2[1] >= b.Pt1[1]
}
