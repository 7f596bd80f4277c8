package gridgraph

// Point is an endpoint coordinate in user units: (x, y) position on
// routing-layer index z.
type Point struct {
	X, Y, Z int
}

// Node is a single lattice position. Its (X, Y, Z) are immutable once
// created; the remaining fields are scratch/blockage state mutated by
// BlockageMapper (Obstacle, VerticalBlock) and by maze's BFS/DFS
// (Visited, Step).
type Node struct {
	X, Y, Z int

	Obstacle      bool
	VerticalBlock bool

	Visited bool
	Step    *int

	Up, Down, Left, Right *Node
	Top, Bottom           *Node
}

// Neighbors returns this node's traversable neighbors in the
// deterministic order up, down, left, right, top, bottom
// (SPEC_FULL.md §4.2.4). Up/down/left/right are included whenever
// present and non-obstacle; top/bottom are additionally gated on this
// node not being VerticalBlock'd.
func (n *Node) Neighbors() []*Node {
	neighbors := make([]*Node, 0, 6)
	if n.Up != nil && !n.Up.Obstacle {
		neighbors = append(neighbors, n.Up)
	}
	if n.Down != nil && !n.Down.Obstacle {
		neighbors = append(neighbors, n.Down)
	}
	if n.Left != nil && !n.Left.Obstacle {
		neighbors = append(neighbors, n.Left)
	}
	if n.Right != nil && !n.Right.Obstacle {
		neighbors = append(neighbors, n.Right)
	}
	if !n.VerticalBlock {
		if n.Top != nil && !n.Top.Obstacle {
			neighbors = append(neighbors, n.Top)
		}
		if n.Bottom != nil && !n.Bottom.Obstacle {
			neighbors = append(neighbors, n.Bottom)
		}
	}
	return neighbors
}

// Graph owns the full 3D lattice for one net: Layers[z][row] is an
// ordered-by-X slice of Nodes sharing a Y; Layers[z] is ordered by
// increasing Y across rows. The invariant that every layer has the
// same row/column shape is maintained by ExtendGridNode (SPEC_FULL.md
// §9 "Irregular 2D per layer").
type Graph struct {
	Layers [][][]*Node
}

// NumLayers returns the number of layers in the graph.
func (g *Graph) NumLayers() int { return len(g.Layers) }

// NodeAt returns the node at (x, y) on layer z, or nil if none exists.
// Linear in row/column count; used only by setup code (endpoint
// lookup, blockage stamping), never inside the maze's hot loop.
func (g *Graph) NodeAt(z, x, y int) *Node {
	for _, row := range g.Layers[z] {
		if len(row) == 0 || row[0].Y != y {
			continue
		}
		for _, n := range row {
			if n.X == x {
				return n
			}
		}
		return nil
	}
	return nil
}

// AllNodes returns every node in the graph, layer-major then
// row-major then column-major. Used by BFS/DFS to reset scratch state
// and by property tests.
func (g *Graph) AllNodes() []*Node {
	var total int
	for _, layer := range g.Layers {
		for _, row := range layer {
			total += len(row)
		}
	}
	nodes := make([]*Node, 0, total)
	for _, layer := range g.Layers {
		for _, row := range layer {
			nodes = append(nodes, row...)
		}
	}
	return nodes
}
