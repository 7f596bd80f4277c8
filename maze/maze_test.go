package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yangwei-lim/device-router/gridgraph"
	"github.com/yangwei-lim/device-router/maze"
)

func buildLineGraph(t *testing.T, width int) *gridgraph.Graph {
	t.Helper()
	endpoints := []gridgraph.Point{{X: 0, Y: 0, Z: 0}, {X: (width - 1) * 10, Y: 0, Z: 0}}
	g, err := gridgraph.Build(func(int) float64 { return 10 }, 1, endpoints, 1)
	require.NoError(t, err)
	g.Connect()
	return g
}

func TestRouteTwoPins_FindsShortestPath(t *testing.T) {
	g := buildLineGraph(t, 5)
	source := g.NodeAt(0, 0, 0)
	target := g.NodeAt(0, 40, 0)
	require.NotNil(t, source)
	require.NotNil(t, target)

	path, err := maze.RouteTwoPins(g, source, []*gridgraph.Node{target})
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Same(t, source, path[0], "path must start at source")
	assert.Same(t, target, path[len(path)-1], "path must end at target")

	for i := 1; i < len(path); i++ {
		found := false
		for _, n := range path[i-1].Neighbors() {
			if n == path[i] {
				found = true
				break
			}
		}
		assert.True(t, found, "consecutive path nodes must be graph neighbors")
	}
}

func TestRouteTwoPins_NearestOfMultipleTargets(t *testing.T) {
	g := buildLineGraph(t, 5)
	source := g.NodeAt(0, 0, 0)
	near := g.NodeAt(0, 10, 0)
	far := g.NodeAt(0, 40, 0)

	path, err := maze.RouteTwoPins(g, source, []*gridgraph.Node{far, near})
	require.NoError(t, err)
	assert.Same(t, near, path[len(path)-1], "BFS must stop at the nearer target")
}

func TestRouteTwoPins_ObstacleBlocksOnlyPath(t *testing.T) {
	g := buildLineGraph(t, 3)
	source := g.NodeAt(0, 0, 0)
	target := g.NodeAt(0, 20, 0)
	mid := g.NodeAt(0, 10, 0)
	require.NotNil(t, mid)
	// The lattice carries margin rows above and below y=0, so the whole
	// x=10 column is walled off, not just the node between the pins.
	for _, row := range g.Layers[0] {
		for _, n := range row {
			if n.X == mid.X {
				n.Obstacle = true
			}
		}
	}
	g.Connect()

	_, err := maze.RouteTwoPins(g, source, []*gridgraph.Node{target})
	require.ErrorIs(t, err, maze.ErrNoPath)
}

func TestRouteTwoPins_PathStepsAreContiguous(t *testing.T) {
	g := buildLineGraph(t, 5)
	source := g.NodeAt(0, 0, 0)
	target := g.NodeAt(0, 40, 0)
	require.NotNil(t, source)
	require.NotNil(t, target)

	path, err := maze.RouteTwoPins(g, source, []*gridgraph.Node{target})
	require.NoError(t, err)
	require.NotEmpty(t, path)
	require.NotNil(t, target.Step, "BFS must stamp the reached target with its wave distance")

	assert.Len(t, path, *target.Step+1, "backtracked path length must match the target's BFS step")

	for i := 1; i < len(path); i++ {
		require.NotNil(t, path[i-1].Step)
		require.NotNil(t, path[i].Step)
		assert.Equal(t, 1, *path[i].Step-*path[i-1].Step, "backtrack must walk one BFS layer at a time")
	}
}

func TestBFSWave_ResetsPriorState(t *testing.T) {
	g := buildLineGraph(t, 3)
	source := g.NodeAt(0, 0, 0)
	target := g.NodeAt(0, 20, 0)

	stale := true
	target.Visited = stale
	step := 99
	target.Step = &step

	reached, err := maze.BFSWave(g, source, map[*gridgraph.Node]bool{target: true})
	require.NoError(t, err)
	assert.Same(t, target, reached)
	assert.Equal(t, 2, *reached.Step)
}
