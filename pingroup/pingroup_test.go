package pingroup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yangwei-lim/device-router/circuit"
	"github.com/yangwei-lim/device-router/pingroup"
	"github.com/yangwei-lim/device-router/techrule"
)

func TestAssembleNets_PortAndPinsCombine(t *testing.T) {
	c := circuit.NewCircuit()
	c.Port["VDD"] = &circuit.Port{
		Name: "VDD",
		Shape: map[string][]circuit.Shape{
			"metal1": {circuit.Box{Layer: "metal1", X: [2]int{0, 100}, Y: [2]int{0, 100}}},
		},
	}
	group := &circuit.Group{Pin: []circuit.Pin{
		{Net: "VDD", Layer: "metal1", Pt1: [2]int{90, 0}, Pt2: [2]int{190, 100}},
		{Net: "net_1", Layer: "metal2", Pt1: [2]int{0, 0}, Pt2: [2]int{10, 10}},
	}}
	c.Group["INST0"] = group

	nets := pingroup.AssembleNets(c)
	require.Contains(t, nets, "VDD")
	require.Contains(t, nets, "net_1")
	assert.Len(t, nets["VDD"].Pins, 2, "port metal1 box plus one group pin")
	assert.Len(t, nets["net_1"].Pins, 1)
}

func TestNet_Cluster_SplitsNonInteractingPins(t *testing.T) {
	n := &pingroup.Net{Name: "VDD", Pins: []circuit.Pin{
		{Net: "VDD", Layer: "metal1", Pt1: [2]int{0, 0}, Pt2: [2]int{10, 10}},
		{Net: "VDD", Layer: "metal1", Pt1: [2]int{5, 5}, Pt2: [2]int{20, 20}},   // overlaps pin 0
		{Net: "VDD", Layer: "metal1", Pt1: [2]int{1000, 1000}, Pt2: [2]int{1010, 1010}}, // isolated
	}}

	groups := n.Cluster()
	require.Len(t, groups, 2)

	sizes := map[int]bool{}
	for _, g := range groups {
		sizes[len(g)] = true
	}
	assert.True(t, sizes[2] && sizes[1], "expected one pair and one singleton group")
}

func TestNet_Cluster_DifferentLayersNeverMerge(t *testing.T) {
	n := &pingroup.Net{Name: "net_2", Pins: []circuit.Pin{
		{Net: "net_2", Layer: "metal1", Pt1: [2]int{0, 0}, Pt2: [2]int{10, 10}},
		{Net: "net_2", Layer: "metal2", Pt1: [2]int{0, 0}, Pt2: [2]int{10, 10}},
	}}
	groups := n.Cluster()
	assert.Len(t, groups, 2)
}

func fixtureView(t *testing.T) *techrule.View {
	t.Helper()
	tech := &techrule.Tech{
		Unit:       techrule.Unit{User: 0.001, Grid: 0.001},
		MinWidth:   map[string]float64{},
		MinSpacing: map[techrule.LayerPair]float64{},
	}
	for _, l := range []string{"poly", "metal1", "metal2", "metal3", "metal4", "metal5", "metal6"} {
		tech.MinWidth[l] = 0.1
		tech.MinSpacing[techrule.LayerPair{A: l, B: l}] = 0.1
	}
	view, err := techrule.NewView(tech, techrule.DefaultLayers)
	require.NoError(t, err)
	return view
}

func TestExtractEndpoints_HorizontalSlot(t *testing.T) {
	view := fixtureView(t)
	pin := circuit.Pin{Layer: "metal1", Pt1: [2]int{0, 0}, Pt2: [2]int{100, 0}}
	pts, err := pingroup.ExtractEndpoints(view, pin)
	require.NoError(t, err)
	require.Len(t, pts, 2, "horizontal pin yields two endpoints")
	assert.Equal(t, pts[0].Y, pts[1].Y)
}

func TestExtractEndpoints_FourCorners(t *testing.T) {
	view := fixtureView(t)
	pin := circuit.Pin{Layer: "metal1", Pt1: [2]int{0, 0}, Pt2: [2]int{1000, 1000}}
	pts, err := pingroup.ExtractEndpoints(view, pin)
	require.NoError(t, err)
	assert.Len(t, pts, 4)
}

func TestExtractEndpoints_UnknownLayer(t *testing.T) {
	view := fixtureView(t)
	pin := circuit.Pin{Layer: "diffusion", Pt1: [2]int{0, 0}, Pt2: [2]int{100, 100}}
	_, err := pingroup.ExtractEndpoints(view, pin)
	require.ErrorIs(t, err, pingroup.ErrUnknownRouteLayer)
}
