package geometry

import (
	"math"

	"github.com/yangwei-lim/device-router/circuit"
	"github.com/yangwei-lim/device-router/gridgraph"
	"github.com/yangwei-lim/device-router/techrule"
)

// Emit writes the wire and via geometry for every path into routing,
// which must already be primed with every layer key Emit writes to
// (circuit.NewRoutingGroup). Each path should already be RDP-trimmed
// (simplify.Simplify).
func Emit(view *techrule.View, routing *circuit.Group, paths [][]gridgraph.Point) {
	for _, path := range paths {
		emitWires(view, routing, path)
		emitVias(view, routing, path)
	}
}

func roundInt(v float64) int { return int(math.Round(v)) }

func makeBox(layer string, x0, x1, y0, y1 float64) circuit.Box {
	return circuit.Box{Layer: layer, X: [2]int{roundInt(x0), roundInt(x1)}, Y: [2]int{roundInt(y0), roundInt(y1)}}
}

// spanAxis returns the [lo, hi] extent of a wire segment on one axis,
// in database units: centered on p0 (== p1) widened by half the route
// width, or spanning the two endpoints widened outward by half the
// route width when the axis actually moves.
func spanAxis(p0, p1 int, unit, width float64) (float64, float64) {
	if p0 == p1 {
		c := float64(p0) * unit
		return c - width/2, c + width/2
	}
	lo, hi := p0, p1
	if lo > hi {
		lo, hi = hi, lo
	}
	return float64(lo)*unit - width/2, float64(hi)*unit + width/2
}

// emitWires appends one Box per same-layer segment of path (the
// "Poly or Metal Route Layout" pass of path_layout).
func emitWires(view *techrule.View, routing *circuit.Group, path []gridgraph.Point) {
	tech := view.Tech()
	unit := tech.Unit.User

	for i := 0; i < len(path)-1; i++ {
		a, b := path[i], path[i+1]
		if a.Z != b.Z {
			continue
		}
		layer := view.LayerName(a.Z)
		width := tech.MinWidth[layer]

		x0, x1 := spanAxis(a.X, b.X, unit, width)
		y0, y1 := spanAxis(a.Y, b.Y, unit, width)
		routing.Shape[layer] = append(routing.Shape[layer], makeBox(layer, x0, x1, y0, y1))
	}
}
