package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yangwei-lim/device-router/gridgraph"
)

// TestConnect_EdgeWellFormedness verifies the universal Edge
// well-formedness invariant (SPEC_FULL.md §8): neighbor relations are
// symmetric, no neighbor is an obstacle, and every top/bottom pair
// shares (x, y) and differs by exactly one in z.
func TestConnect_EdgeWellFormedness(t *testing.T) {
	endpoints := []gridgraph.Point{{X: 0, Y: 0, Z: 0}, {X: 100, Y: 100, Z: 2}}
	g, err := gridgraph.Build(constPitch(20), 3, endpoints, 1)
	require.NoError(t, err)
	g.ExtendGridNode(endpoints)

	// Stamp a few obstacles to exercise the obstacle-skipping rules.
	for z, layer := range g.Layers {
		for ri, row := range layer {
			if (z+ri)%7 == 0 && len(row) > 0 {
				row[0].Obstacle = true
			}
		}
	}

	g.Connect()

	for _, n := range g.AllNodes() {
		if n.Up != nil {
			assert.False(t, n.Up.Obstacle)
			assert.Same(t, n, n.Up.Down, "a.up == b must imply b.down == a")
		}
		if n.Down != nil {
			assert.False(t, n.Down.Obstacle)
			assert.Same(t, n, n.Down.Up)
		}
		if n.Left != nil {
			assert.False(t, n.Left.Obstacle)
			assert.Same(t, n, n.Left.Right)
		}
		if n.Right != nil {
			assert.False(t, n.Right.Obstacle)
			assert.Same(t, n, n.Right.Left)
		}
		if n.Top != nil {
			assert.False(t, n.Top.Obstacle)
			assert.Equal(t, n.X, n.Top.X)
			assert.Equal(t, n.Y, n.Top.Y)
			assert.Equal(t, n.Z+1, n.Top.Z)
			assert.Same(t, n, n.Top.Bottom)
		}
		if n.Bottom != nil {
			assert.False(t, n.Bottom.Obstacle)
			assert.Equal(t, n.X, n.Bottom.X)
			assert.Equal(t, n.Y, n.Bottom.Y)
			assert.Equal(t, n.Z-1, n.Bottom.Z)
			assert.Same(t, n, n.Bottom.Top)
		}
	}
}

func TestNode_Neighbors_Order(t *testing.T) {
	center := &gridgraph.Node{X: 1, Y: 1, Z: 1}
	up := &gridgraph.Node{X: 1, Y: 2, Z: 1}
	down := &gridgraph.Node{X: 1, Y: 0, Z: 1}
	left := &gridgraph.Node{X: 0, Y: 1, Z: 1}
	right := &gridgraph.Node{X: 2, Y: 1, Z: 1}
	top := &gridgraph.Node{X: 1, Y: 1, Z: 2}
	bottom := &gridgraph.Node{X: 1, Y: 1, Z: 0}
	center.Up, center.Down, center.Left, center.Right = up, down, left, right
	center.Top, center.Bottom = top, bottom

	got := center.Neighbors()
	require.Len(t, got, 6)
	assert.Same(t, up, got[0])
	assert.Same(t, down, got[1])
	assert.Same(t, left, got[2])
	assert.Same(t, right, got[3])
	assert.Same(t, top, got[4])
	assert.Same(t, bottom, got[5])
}

func TestNode_Neighbors_VerticalBlockSuppressesTopBottom(t *testing.T) {
	center := &gridgraph.Node{X: 1, Y: 1, Z: 1, VerticalBlock: true}
	center.Top = &gridgraph.Node{X: 1, Y: 1, Z: 2}
	center.Bottom = &gridgraph.Node{X: 1, Y: 1, Z: 0}
	got := center.Neighbors()
	assert.Empty(t, got)
}
