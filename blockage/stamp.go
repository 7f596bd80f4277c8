package blockage

import (
	"math"

	"github.com/yangwei-lim/device-router/circuit"
	"github.com/yangwei-lim/device-router/gridgraph"
	"github.com/yangwei-lim/device-router/techrule"
)

// metalLayers lists every metal routing layer name, in route-index
// order (metal1 is index 1; poly is index 0 and has no metal-pin
// blockage pass of its own).
var metalLayers = []string{"metal1", "metal2", "metal3", "metal4", "metal5", "metal6"}

// Stamp runs every blockage pass against g for the net currently being
// routed, in the original's order: diffusion, route path, poly pin,
// then metal pin (SPEC_FULL.md §4.4). g must not yet have Connect
// called on it.
func Stamp(view *techrule.View, c *circuit.Circuit, g *gridgraph.Graph, currentNet string) {
	diffusionBlockage(view, c, g)
	routePathBlockage(view, c, g)
	polyPinBlockage(view, c, g, currentNet)
	metalPinBlockage(view, c, g, currentNet)
}

func toGrid(v, unit float64) int { return int(math.Round(v / unit)) }

// rect is a user-unit, grid-space box: stampLayer walks every poly (or
// metal-layer) node once and applies obstacle/vertical-block halos in
// a single pass, matching the original's per-rectangle double loop.
type rect struct{ x0, x1, y0, y1 int }

func (r rect) contains(x, y int) bool {
	return x >= r.x0 && x <= r.x1 && y >= r.y0 && y <= r.y1
}

// stampLayer sets Obstacle for every node in obstacleBox and
// VerticalBlock for every node in blockBox, on routing-layer index z.
func stampLayer(g *gridgraph.Graph, z int, obstacleBox, blockBox rect) {
	for _, row := range g.Layers[z] {
		for _, n := range row {
			if obstacleBox.contains(n.X, n.Y) {
				n.Obstacle = true
			}
			if blockBox.contains(n.X, n.Y) {
				n.VerticalBlock = true
			}
		}
	}
}

// diffusionBlockage keeps poly routing (and the contacts it might
// carry) clear of every ndiffusion/pdiffusion shape in the circuit,
// widened by poly-to-diffusion spacing plus a poly-cut half width
// (diffusion_blockage in the original).
func diffusionBlockage(view *techrule.View, c *circuit.Circuit, g *gridgraph.Graph) {
	tech := view.Tech()
	unit := tech.Unit.User

	for _, diffLayer := range []string{"ndiffusion", "pdiffusion"} {
		spacing, ok := tech.Spacing(diffLayer, "poly")
		if !ok {
			continue
		}
		dfSpcPo := toGrid(spacing, unit)

		contactSize, okSize := tech.MinSize["contact"]
		enclosure, okEnc := tech.Enclosure("poly", "contact")
		if !okSize || !okEnc {
			continue
		}
		poHw := toGrid((contactSize+enclosure)/2, unit)

		for _, group := range c.Group {
			for _, box := range group.Boxes(diffLayer) {
				x0 := toGrid(float64(box.X[0]), unit) - dfSpcPo - poHw
				x1 := toGrid(float64(box.X[1]), unit) + dfSpcPo + poHw
				y0 := toGrid(float64(box.Y[0]), unit) - dfSpcPo - poHw
				y1 := toGrid(float64(box.Y[1]), unit) + dfSpcPo + poHw

				halo := rect{x0, x1, y0, y1}
				stampLayer(g, 0, halo, halo)
			}
		}
	}
}

// routePathBlockage blocks every layer's own already-emitted routing
// geometry (circuit.Group["routing"]) so a later net cannot cut
// through an earlier one's wires or vias (route_path_blockage in the
// original).
func routePathBlockage(view *techrule.View, c *circuit.Circuit, g *gridgraph.Graph) {
	routing, ok := c.Group["routing"]
	if !ok {
		return
	}
	tech := view.Tech()
	unit := tech.Unit.User

	for z := 0; z < view.Layers(); z++ {
		layer := view.LayerName(z)
		via := view.ViaName(z)

		spacing, _ := tech.Spacing(layer, layer)
		rtSpcRt := toGrid(spacing, unit)
		rtHw := toGrid(tech.MinWidth[layer]/2, unit)
		enclosure, _ := tech.Enclosure(layer, via)
		rtEncVx := toGrid(enclosure, unit)
		vxHs := toGrid(tech.MinSize[via]/2, unit)

		for _, box := range routing.Boxes(layer) {
			x0 := toGrid(float64(box.X[0]), unit)
			x1 := toGrid(float64(box.X[1]), unit)
			y0 := toGrid(float64(box.Y[0]), unit)
			y1 := toGrid(float64(box.Y[1]), unit)

			obstacleBox := rect{x0 - rtSpcRt - rtHw, x1 + rtSpcRt + rtHw, y0 - rtSpcRt - rtHw, y1 + rtSpcRt + rtHw}
			blockBox := rect{x0 - rtSpcRt - rtEncVx - vxHs, x1 + rtSpcRt + rtEncVx + vxHs, y0 - rtSpcRt - rtEncVx - vxHs, y1 + rtSpcRt + rtEncVx + vxHs}
			stampLayer(g, z, obstacleBox, blockBox)
		}
	}
}

// polyPinBlockage blocks every poly pin in the circuit with its own
// spacing/enclosure halo, then — if currentNet matches a pin's net —
// un-blocks the nodes inside the pin's rectangle that coincide in x or
// y with that pin's own extracted grid points. Halo nodes outside the
// pin's rectangle stay blocked (poly_pin_blockage2 in the original).
func polyPinBlockage(view *techrule.View, c *circuit.Circuit, g *gridgraph.Graph, currentNet string) {
	tech := view.Tech()
	unit := tech.Unit.User

	spacing, okSpc := tech.Spacing("poly", "poly")
	enclosure, okEnc := tech.Enclosure("poly", "contact")
	contactSize, okSize := tech.MinSize["contact"]
	poHw := toGrid(tech.MinWidth["poly"]/2, unit)
	if !okSpc || !okEnc || !okSize {
		return
	}
	poSpcPo := toGrid(spacing, unit)
	poEncCo := toGrid(enclosure, unit)
	coHs := toGrid(contactSize/2, unit)

	for _, group := range c.Group {
		for _, pin := range group.Pin {
			if pin.Layer != "poly" {
				continue
			}

			x0 := toGrid(float64(pin.Pt1[0]), unit)
			x1 := toGrid(float64(pin.Pt2[0]), unit)
			y0 := toGrid(float64(pin.Pt1[1]), unit)
			y1 := toGrid(float64(pin.Pt2[1]), unit)

			obstacleBox := rect{x0 - poSpcPo - poHw, x1 + poSpcPo + poHw, y0 - poSpcPo - poHw, y1 + poSpcPo + poHw}
			blockBox := rect{x0 - poSpcPo - poEncCo - coHs, x1 + poSpcPo + poEncCo + coHs, y0 - poSpcPo - poEncCo - coHs, y1 + poSpcPo + poEncCo + coHs}
			stampLayer(g, 0, obstacleBox, blockBox)

			if currentNet != pin.Net {
				continue
			}
			for _, row := range g.Layers[0] {
				for _, n := range row {
					if !(n.X >= x0 && n.X <= x1 && n.Y >= y0 && n.Y <= y1) {
						continue
					}
					for _, pt := range pin.Grid {
						if n.X == pt.X || n.Y == pt.Y {
							n.Obstacle = false
						}
					}
				}
			}
		}
	}
}

// metalPinBlockage blocks every metal pin and port metal1 box with its
// own spacing/enclosure halo, except the current net's own geometry,
// which is left entirely unblocked (its raw rectangle's Obstacle flag
// is cleared instead) so routing can originate and land there
// (metal_pin_blockage in the original).
func metalPinBlockage(view *techrule.View, c *circuit.Circuit, g *gridgraph.Graph, currentNet string) {
	tech := view.Tech()
	unit := tech.Unit.User

	blockPin := func(layer string, pt1, pt2 [2]int, net string) {
		z, ok := view.RouteIndex(layer)
		if !ok {
			return
		}
		x0 := toGrid(float64(pt1[0]), unit)
		x1 := toGrid(float64(pt2[0]), unit)
		y0 := toGrid(float64(pt1[1]), unit)
		y1 := toGrid(float64(pt2[1]), unit)

		if currentNet == net {
			for _, row := range g.Layers[z] {
				for _, n := range row {
					if n.X >= x0 && n.X <= x1 && n.Y >= y0 && n.Y <= y1 {
						n.Obstacle = false
					}
				}
			}
			return
		}

		via := view.ViaName(z)
		spacing, _ := tech.Spacing(layer, layer)
		mxSpcMx := toGrid(spacing, unit)
		mxHw := toGrid(tech.MinWidth[layer]/2, unit)
		enclosure, _ := tech.Enclosure(layer, via)
		mxEncVx := toGrid(enclosure, unit)
		vxHs := toGrid(tech.MinSize[via]/2, unit)

		obstacleBox := rect{x0 - mxSpcMx - mxHw, x1 + mxSpcMx + mxHw, y0 - mxSpcMx - mxHw, y1 + mxSpcMx + mxHw}
		blockBox := rect{x0 - mxSpcMx - mxEncVx - vxHs, x1 + mxSpcMx + mxEncVx + vxHs, y0 - mxSpcMx - mxEncVx - vxHs, y1 + mxSpcMx + mxEncVx + vxHs}
		stampLayer(g, z, obstacleBox, blockBox)
	}

	for _, group := range c.Group {
		for _, pin := range group.Pin {
			isMetal := false
			for _, l := range metalLayers {
				if pin.Layer == l {
					isMetal = true
					break
				}
			}
			if !isMetal {
				continue
			}
			blockPin(pin.Layer, pin.Pt1, pin.Pt2, pin.Net)
		}
	}

	for name, port := range c.Port {
		box, ok := port.Metal1Box()
		if !ok {
			continue
		}
		blockPin("metal1", [2]int{box.X[0], box.Y[0]}, [2]int{box.X[1], box.Y[1]}, name)
	}
}
