package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yangwei-lim/device-router/gridgraph"
	"github.com/yangwei-lim/device-router/simplify"
)

func TestRDP3D_CollapsesCollinearPoints(t *testing.T) {
	points := []gridgraph.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 3, Y: 0, Z: 0},
	}
	out := simplify.RDP3D(points, simplify.DefaultEpsilon)
	require.Len(t, out, 2)
	assert.Equal(t, points[0], out[0])
	assert.Equal(t, points[len(points)-1], out[len(out)-1])
}

func TestRDP3D_KeepsCorner(t *testing.T) {
	points := []gridgraph.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 5, Y: 0, Z: 0},
		{X: 5, Y: 5, Z: 0},
	}
	out := simplify.RDP3D(points, simplify.DefaultEpsilon)
	require.Len(t, out, 3, "corner must be preserved")
	assert.Equal(t, points[1], out[1])
}

func TestRDP3D_KeepsLayerChange(t *testing.T) {
	points := []gridgraph.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 5, Z: 1},
	}
	out := simplify.RDP3D(points, simplify.DefaultEpsilon)
	require.Len(t, out, 3)
	assert.Equal(t, 1, out[1].Z)
}

func TestRDP3D_EndpointsAlwaysKept(t *testing.T) {
	points := []gridgraph.Point{{X: 0, Y: 0, Z: 0}}
	out := simplify.RDP3D(points, simplify.DefaultEpsilon)
	assert.Equal(t, points, out)
}

func TestRDP3D_IsIdempotent(t *testing.T) {
	points := []gridgraph.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 5, Y: 0, Z: 0},
		{X: 5, Y: 3, Z: 0},
		{X: 5, Y: 5, Z: 0},
		{X: 5, Y: 5, Z: 1},
		{X: 5, Y: 9, Z: 1},
	}
	once := simplify.RDP3D(points, simplify.DefaultEpsilon)
	twice := simplify.RDP3D(once, simplify.DefaultEpsilon)
	assert.Equal(t, once, twice, "a second pass over an already-simplified path must be a no-op")
}

func TestSimplify_FromNodePath(t *testing.T) {
	path := []*gridgraph.Node{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
	}
	out := simplify.Simplify(path, simplify.DefaultEpsilon)
	require.Len(t, out, 2)
}
