package gridgraph

// ExtendGridNode inserts a new column and/or row across every layer
// for each endpoint whose (x, y) does not already align with the
// native pitch grid on its own layer, so every endpoint coincides
// exactly with a node on every layer (SPEC_FULL.md §4.2.2). Inserted
// nodes start with VerticalBlock true, since they sit off the native
// via pitch.
//
// Endpoints are processed in order; an endpoint aligned by an earlier
// insertion (same x or y as a prior endpoint) is left alone, matching
// the original's per-endpoint re-check.
func (g *Graph) ExtendGridNode(points []Point) {
	for _, pt := range points {
		g.alignColumn(pt)
		g.alignRow(pt)
	}
}

// alignColumn inserts a new column at pt.X across every layer if no
// node on layer pt.Z already has that X.
func (g *Graph) alignColumn(pt Point) {
	layer := g.Layers[pt.Z]
	if len(layer) == 0 {
		return
	}
	firstRow := layer[0]
	for _, n := range firstRow {
		if n.X == pt.X {
			return // already aligned
		}
	}

	prevIdx, nextIdx := -1, -1
	for i, n := range firstRow {
		if n.X < pt.X {
			prevIdx = i
		}
		if n.X > pt.X {
			nextIdx = i
			break
		}
	}
	if prevIdx < 0 || nextIdx < 0 {
		return // endpoint outside the built margin; nothing to align against
	}

	for z := range g.Layers {
		for ri, row := range g.Layers[z] {
			prevNode := row[prevIdx]
			newNode := &Node{X: pt.X, Y: prevNode.Y, Z: z, VerticalBlock: true}
			g.Layers[z][ri] = insertAt(row, nextIdx, newNode)
		}
	}
}

// alignRow inserts a new row at pt.Y across every layer if no row on
// layer pt.Z already has that Y.
func (g *Graph) alignRow(pt Point) {
	layer := g.Layers[pt.Z]
	for _, row := range layer {
		if len(row) > 0 && row[0].Y == pt.Y {
			return // already aligned
		}
	}

	prevIdx, nextIdx := -1, -1
	for i, row := range layer {
		if len(row) == 0 {
			continue
		}
		if row[0].Y < pt.Y {
			prevIdx = i
		}
		if row[0].Y > pt.Y {
			nextIdx = i
			break
		}
	}
	if prevIdx < 0 || nextIdx < 0 {
		return
	}

	for z := range g.Layers {
		prevRow := g.Layers[z][prevIdx]
		newRow := make([]*Node, len(prevRow))
		for i, n := range prevRow {
			newRow[i] = &Node{X: n.X, Y: pt.Y, Z: z, VerticalBlock: true}
		}
		g.Layers[z] = insertRowAt(g.Layers[z], nextIdx, newRow)
	}
}

func insertAt(row []*Node, idx int, n *Node) []*Node {
	row = append(row, nil)
	copy(row[idx+1:], row[idx:])
	row[idx] = n
	return row
}

func insertRowAt(layer [][]*Node, idx int, row []*Node) [][]*Node {
	layer = append(layer, nil)
	copy(layer[idx+1:], layer[idx:])
	layer[idx] = row
	return layer
}
