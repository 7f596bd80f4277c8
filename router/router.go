package router

import (
	"fmt"
	"sort"

	"github.com/yangwei-lim/device-router/blockage"
	"github.com/yangwei-lim/device-router/circuit"
	"github.com/yangwei-lim/device-router/geometry"
	"github.com/yangwei-lim/device-router/gridgraph"
	"github.com/yangwei-lim/device-router/pingroup"
	"github.com/yangwei-lim/device-router/planner"
	"github.com/yangwei-lim/device-router/simplify"
	"github.com/yangwei-lim/device-router/techrule"
)

// maxPitchAdjust is the largest grid divisor (the finest grid) MazeRouting retries a net
// at before giving up (maze_routing's pitch_adjust loop in the
// original: 1, 2, 3).
const maxPitchAdjust = 3

// MazeRouting is the driver entry point: it assembles every net in c,
// routes each in deterministic (sorted-by-name) order, and emits
// successfully-routed geometry into circuit.Group["routing"] before the
// next net starts, so later nets see earlier ones' wires as blockage
// (SPEC_FULL.md §6, maze_routing in the original).
//
// tech is the resolved rule table; the type actually used here is
// *techrule.Tech rather than the "*circuit.Tech" name SPEC_FULL.md's
// interface sketch uses, since Tech was deliberately placed in techrule
// to keep circuit free of rule-table knowledge (see DESIGN.md).
func MazeRouting(tech *techrule.Tech, c *circuit.Circuit, routingLayers int) []NetResult {
	view, err := techrule.NewView(tech, routingLayers)
	if err != nil {
		return []NetResult{{Err: err}}
	}

	c.Group["routing"] = circuit.NewRoutingGroup()

	for _, group := range c.Group {
		for gi := range group.Pin {
			pin := &group.Pin[gi]
			pts, err := pingroup.ExtractEndpoints(view, *pin)
			if err != nil {
				continue
			}
			pin.Grid = pts
		}
	}

	nets := pingroup.AssembleNets(c)
	names := make([]string, 0, len(nets))
	for name := range nets {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]NetResult, 0, len(names))
	for _, name := range names {
		results = append(results, routeNet(view, c, nets[name]))
	}
	return results
}

// routeNet routes one net, retrying at a progressively finer pitch
// until planner.RouteGrouped succeeds or maxPitchAdjust is exhausted.
func routeNet(view *techrule.View, c *circuit.Circuit, net *pingroup.Net) NetResult {
	clusters := net.Cluster()

	pinPoints := make([][]circuit.GridPoint, len(clusters))
	var endpoints []gridgraph.Point
	for ci, cluster := range clusters {
		for _, pin := range cluster {
			pts := pin.Grid
			if pts == nil {
				var err error
				pts, err = pingroup.ExtractEndpoints(view, pin)
				if err != nil {
					continue
				}
			}
			pinPoints[ci] = append(pinPoints[ci], pts...)
			for _, p := range pts {
				endpoints = append(endpoints, gridgraph.Point{X: p.X, Y: p.Y, Z: p.Z})
			}
		}
	}
	if len(endpoints) == 0 {
		return NetResult{Name: net.Name, Err: fmt.Errorf("%w: %s has no routable endpoints", ErrUnroutedNet, net.Name)}
	}

	var lastErr error
	for pitchAdjust := 1; pitchAdjust <= maxPitchAdjust; pitchAdjust++ {
		g, err := gridgraph.Build(view.Pitch, view.Layers(), endpoints, pitchAdjust)
		if err != nil {
			lastErr = err
			continue
		}
		g.ExtendGridNode(endpoints)

		blockage.Stamp(view, c, g, net.Name)
		g.Connect()

		clusterNodes := make([][]*gridgraph.Node, 0, len(clusters))
		for ci := range clusters {
			var nodes []*gridgraph.Node
			for _, p := range pinPoints[ci] {
				n := g.NodeAt(p.Z, p.X, p.Y)
				if n == nil {
					continue
				}
				n.VerticalBlock = true
				nodes = append(nodes, n)
			}
			if len(nodes) > 0 {
				clusterNodes = append(clusterNodes, nodes)
			}
		}

		paths, err := planner.RouteGrouped(g, clusterNodes)
		if err != nil {
			lastErr = err
			continue
		}

		trimmed := make([][]gridgraph.Point, len(paths))
		for i, p := range paths {
			trimmed[i] = simplify.Simplify(p, simplify.DefaultEpsilon)
		}
		geometry.Emit(view, c.Group["routing"], trimmed)

		return NetResult{Name: net.Name, Routed: true}
	}

	return NetResult{Name: net.Name, Err: fmt.Errorf("%w: %s: %v", ErrUnroutedNet, net.Name, lastErr)}
}

// PortPlacement drops a metal-layer text label on every port that
// doesn't already carry one, taken from the centroid of whichever group
// pin shares the port's net name (port_placement in the original).
// Poly pins never carry a label, since ports only ever land on a metal
// layer.
func PortPlacement(tech *techrule.Tech, c *circuit.Circuit, routingLayers int) {
	view, err := techrule.NewView(tech, routingLayers)
	if err != nil {
		return
	}

	for name, port := range c.Port {
		if portHasLabel(view, port) {
			continue
		}

		for _, group := range c.Group {
			for _, pin := range group.Pin {
				if pin.Net != name || pin.Layer == "poly" {
					continue
				}
				textLayer := pin.Layer + "_text"
				x := float64(pin.Pt1[0]+pin.Pt2[0]) / 2
				y := float64(pin.Pt1[1]+pin.Pt2[1]) / 2
				port.Shape[textLayer] = []circuit.Shape{circuit.Text{Layer: textLayer, Pt: [2]float64{x, y}, Label: name}}
			}
		}
	}
}

func portHasLabel(view *techrule.View, port *circuit.Port) bool {
	for z := 0; z < view.Layers(); z++ {
		if shapes, ok := port.Shape[view.LayerName(z)+"_text"]; ok && len(shapes) > 0 {
			return true
		}
	}
	return false
}
