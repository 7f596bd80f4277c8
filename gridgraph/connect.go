package gridgraph

// Connect wires every non-obstacle node's up/down/left/right/top/bottom
// neighbor pointers (SPEC_FULL.md §4.2.3). It must be called after
// BlockageMapper has finished stamping Obstacle/VerticalBlock, and
// before any maze search runs.
//
// In-plane neighbors are set whenever present and non-obstacle.
// Top/bottom are additionally set only when both ends are non-obstacle,
// neither end is VerticalBlock'd, and the two nodes share (x, y) —
// the last condition only fails immediately after alignment inserted a
// column into one layer but not (yet, on this call) the other, which
// ExtendGridNode rules out by construction (it always inserts across
// every layer).
func (g *Graph) Connect() {
	for z, layer := range g.Layers {
		for ri, row := range layer {
			for ci, curr := range row {
				if curr.Obstacle {
					continue
				}

				if ri > 0 {
					up := layer[ri-1][ci]
					if !up.Obstacle {
						curr.Up = up
					}
				}
				if ri < len(layer)-1 {
					down := layer[ri+1][ci]
					if !down.Obstacle {
						curr.Down = down
					}
				}
				if ci > 0 {
					left := row[ci-1]
					if !left.Obstacle {
						curr.Left = left
					}
				}
				if ci < len(row)-1 {
					right := row[ci+1]
					if !right.Obstacle {
						curr.Right = right
					}
				}

				if z > 0 {
					bottom := g.Layers[z-1][ri][ci]
					if !bottom.Obstacle && !curr.VerticalBlock && !bottom.VerticalBlock && curr.X == bottom.X && curr.Y == bottom.Y {
						curr.Bottom = bottom
					}
				}
				if z < len(g.Layers)-1 {
					top := g.Layers[z+1][ri][ci]
					if !top.Obstacle && !curr.VerticalBlock && !top.VerticalBlock && curr.X == top.X && curr.Y == top.Y {
						curr.Top = top
					}
				}
			}
		}
	}
}
