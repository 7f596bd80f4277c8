package geometry

import (
	"math"

	"github.com/yangwei-lim/device-router/circuit"
	"github.com/yangwei-lim/device-router/gridgraph"
	"github.com/yangwei-lim/device-router/techrule"
)

// direction names a travel direction between two consecutive in-plane
// path points, matching the original's left_to_right/right_to_left/
// down_to_up/up_to_down strings.
type direction int

const (
	leftToRight direction = iota
	rightToLeft
	downToUp
	upToDown
)

// dirBetween classifies the move from "from" to "to". It only looks at
// X first, then Y, matching the original's if/elif chain; a
// zero-length move defaults to leftToRight with distance 0.
func dirBetween(from, to gridgraph.Point) (direction, int) {
	switch {
	case to.X > from.X:
		return leftToRight, to.X - from.X
	case to.X < from.X:
		return rightToLeft, from.X - to.X
	case to.Y > from.Y:
		return downToUp, to.Y - from.Y
	case to.Y < from.Y:
		return upToDown, from.Y - to.Y
	default:
		return leftToRight, 0
	}
}

// viaWidths holds the two route widths path_layout derives for a
// layer/via pair: the ordinary enclosure width (used across the
// via-perpendicular axis) and the wider end-of-line enclosure width
// (used along the travel axis; on the side facing the neighboring wire
// segment only when that segment is long enough to clear spacing).
type viaWidths struct {
	route    float64
	routeEOL float64
}

func widthsFor(tech *techrule.Tech, layer, via string) viaWidths {
	size := tech.MinSize[via]
	enc, _ := tech.Enclosure(layer, via)
	encEnd, _ := tech.EnclosureEnd(layer, via)
	return viaWidths{route: size + 2*enc, routeEOL: size + 2*encEnd}
}

// emitVias appends the landing-pad and via-cut geometry for every
// layer change in path (the "Via Layout" pass of path_layout).
func emitVias(view *techrule.View, routing *circuit.Group, path []gridgraph.Point) {
	tech := view.Tech()
	unit := tech.Unit.User

	for i := 0; i < len(path)-1; i++ {
		if path[i].Z == path[i+1].Z {
			continue
		}

		prevDir, prevDist := leftToRight, 0
		if i > 0 {
			prevDir, prevDist = dirBetween(path[i-1], path[i])
		}

		step := 1
		if path[i+1].Z < path[i].Z {
			step = -1
		}

		prevLayer := view.LayerName(path[i].Z)
		prevVia := view.ViaBetween(path[i].Z, path[i].Z+step)
		prevW := widthsFor(tech, prevLayer, prevVia)
		prevSpacing, _ := tech.Spacing(prevLayer, prevLayer)

		emitLandingPad(routing, prevLayer, path[i], path[i-min(i, 1)], prevDir, prevDist, unit, tech.MinWidth[prevLayer], prevW, prevSpacing, true)
		emitViaCut(routing, prevVia, path[i], unit, tech.MinSize[prevVia])

		for mid := path[i].Z + step; mid != path[i+1].Z; mid += step {
			midLayer := view.LayerName(mid)
			midVia := view.ViaBetween(mid, mid+step)
			midW := widthsFor(tech, midLayer, midVia)
			wide := wideBarWidth(tech, midLayer, midW.routeEOL)

			emitWideBar(routing, midLayer, path[i], prevDir, unit, midW.route, wide)
			emitViaCut(routing, midVia, path[i], unit, tech.MinSize[midVia])
		}

		nextDir, nextDist := leftToRight, 0
		if i < len(path)-2 {
			nextDir, nextDist = dirBetween(path[i+1], path[i+2])
		}

		nextLayer := view.LayerName(path[i+1].Z)
		nextVia := view.ViaBetween(path[i+1].Z, path[i+1].Z-step)
		nextW := widthsFor(tech, nextLayer, nextVia)
		nextSpacing, _ := tech.Spacing(nextLayer, nextLayer)

		var fallback gridgraph.Point
		if i < len(path)-2 {
			fallback = path[i+2]
		} else {
			fallback = path[i+1]
		}
		emitLandingPad(routing, nextLayer, path[i+1], fallback, nextDir, nextDist, unit, tech.MinWidth[nextLayer], nextW, nextSpacing, false)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// emitLandingPad appends the widened pad a via needs on the layer it
// lands on. along is the point the via sits at; fallback is the
// neighboring path point used when the adjoining segment is too short
// to clear spacing (the original falls back to that segment's own
// min_width instead of the via's EOL enclosure). forward selects
// whether the EOL side extends away from fallback (prev pad, which
// extends toward where the wire is coming from) or is fixed at "along"
// with the far edge following fallback (next pad).
func emitLandingPad(routing *circuit.Group, layer string, along, fallback gridgraph.Point, dir direction, dist int, unit, plainWidth float64, w viaWidths, spacing float64, forward bool) {
	spacingClear := float64(dist)*unit > w.routeEOL+spacing

	u := func(v int) float64 { return float64(v) * unit }

	var x0, x1, y0, y1 float64
	switch dir {
	case leftToRight:
		y0, y1 = u(along.Y)-w.route/2, u(along.Y)+w.route/2
		if forward {
			x1 = u(along.X) + w.routeEOL/2
			if spacingClear {
				x0 = u(along.X) - w.routeEOL/2
			} else {
				x0 = u(fallback.X) - plainWidth/2
			}
		} else {
			x0 = u(along.X) - w.routeEOL/2
			if spacingClear {
				x1 = u(along.X) + w.routeEOL/2
			} else {
				x1 = u(fallback.X) + plainWidth/2
			}
		}
	case rightToLeft:
		y0, y1 = u(along.Y)-w.route/2, u(along.Y)+w.route/2
		if forward {
			x0 = u(along.X) - w.routeEOL/2
			if spacingClear {
				x1 = u(along.X) + w.routeEOL/2
			} else {
				x1 = u(fallback.X) + plainWidth/2
			}
		} else {
			x1 = u(along.X) + w.routeEOL/2
			if spacingClear {
				x0 = u(along.X) - w.routeEOL/2
			} else {
				x0 = u(fallback.X) - plainWidth/2
			}
		}
	case downToUp:
		x0, x1 = u(along.X)-w.route/2, u(along.X)+w.route/2
		if forward {
			y1 = u(along.Y) + w.routeEOL/2
			if spacingClear {
				y0 = u(along.Y) - w.routeEOL/2
			} else {
				y0 = u(fallback.Y) - plainWidth/2
			}
		} else {
			y0 = u(along.Y) - w.routeEOL/2
			if spacingClear {
				y1 = u(along.Y) + w.routeEOL/2
			} else {
				y1 = u(fallback.Y) + plainWidth/2
			}
		}
	case upToDown:
		x0, x1 = u(along.X)-w.route/2, u(along.X)+w.route/2
		if forward {
			y0 = u(along.Y) - w.routeEOL/2
			if spacingClear {
				y1 = u(along.Y) + w.routeEOL/2
			} else {
				y1 = u(fallback.Y) + plainWidth/2
			}
		} else {
			y1 = u(along.Y) + w.routeEOL/2
			if spacingClear {
				y0 = u(along.Y) - w.routeEOL/2
			} else {
				y0 = u(fallback.Y) - plainWidth/2
			}
		}
	}

	routing.Shape[layer] = append(routing.Shape[layer], makeBox(layer, x0, x1, y0, y1))
}

// emitViaCut appends the cut-sized via Box centered on pt.
func emitViaCut(routing *circuit.Group, via string, pt gridgraph.Point, unit, size float64) {
	cx, cy := float64(pt.X)*unit, float64(pt.Y)*unit
	routing.Shape[via] = append(routing.Shape[via], makeBox(via, cx-size/2, cx+size/2, cy-size/2, cy+size/2))
}

// wideBarWidth computes the widened along-axis dimension an
// intermediate via landing needs to satisfy its layer's minimum area
// rule, rounded up to the nearest even grid quantum.
func wideBarWidth(tech *techrule.Tech, layer string, routeWidthEOL float64) float64 {
	area := tech.MinArea[layer]
	if routeWidthEOL == 0 {
		return 0
	}
	wide := area / routeWidthEOL
	grid := tech.Unit.Grid
	return math.Ceil(wide/2/grid) * 2 * grid
}

// emitWideBar appends an intermediate via landing's Box: wide along
// the travel axis (clearing the layer's area rule) and route-width
// across it.
func emitWideBar(routing *circuit.Group, layer string, at gridgraph.Point, dir direction, unit, crossWidth, alongWidth float64) {
	cx, cy := float64(at.X)*unit, float64(at.Y)*unit
	var x0, x1, y0, y1 float64
	switch dir {
	case leftToRight, rightToLeft:
		x0, x1 = cx-alongWidth/2, cx+alongWidth/2
		y0, y1 = cy-crossWidth/2, cy+crossWidth/2
	default:
		x0, x1 = cx-crossWidth/2, cx+crossWidth/2
		y0, y1 = cy-alongWidth/2, cy+alongWidth/2
	}
	routing.Shape[layer] = append(routing.Shape[layer], makeBox(layer, x0, x1, y0, y1))
}
