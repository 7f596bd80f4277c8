package pingroup

import (
	"fmt"
	"math"

	"github.com/yangwei-lim/device-router/circuit"
	"github.com/yangwei-lim/device-router/techrule"
)

// ExtractEndpoints converts pin's rectangle into the routing-grid
// endpoints a maze search should target (SPEC_FULL.md §4.3.3,
// get_pin_points in the original). The rectangle is shrunk inward on
// each axis by half the route width for pin's layer, then converted
// from database units to user-unit grid coordinates.
//
//   - If the shrunk rectangle degenerates to a point, one endpoint is
//     returned.
//   - If it degenerates to a line (vertical or horizontal), its two
//     ends are returned.
//   - Otherwise all four corners are returned, so a maze search may
//     target whichever corner is cheapest to reach.
func ExtractEndpoints(view *techrule.View, pin circuit.Pin) ([]circuit.GridPoint, error) {
	z, ok := view.RouteIndex(pin.Layer)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRouteLayer, pin.Layer)
	}

	unit := view.Tech().Unit.User
	minWidth, ok := view.Tech().MinWidth[pin.Layer]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRouteLayer, pin.Layer)
	}
	routeHalf := minWidth / 2

	x0 := roundDiv(math.Round(float64(pin.Pt1[0])+routeHalf), unit)
	x1 := roundDiv(math.Round(float64(pin.Pt2[0])-routeHalf), unit)
	y0 := roundDiv(math.Round(float64(pin.Pt1[1])+routeHalf), unit)
	y1 := roundDiv(math.Round(float64(pin.Pt2[1])-routeHalf), unit)

	switch {
	case x0 == x1 && y0 == y1:
		return []circuit.GridPoint{{X: x0, Y: y0, Z: z}}, nil
	case x0 == x1:
		return []circuit.GridPoint{{X: x0, Y: y0, Z: z}, {X: x0, Y: y1, Z: z}}, nil
	case y0 == y1:
		return []circuit.GridPoint{{X: x0, Y: y0, Z: z}, {X: x1, Y: y0, Z: z}}, nil
	default:
		return []circuit.GridPoint{
			{X: x0, Y: y0, Z: z},
			{X: x1, Y: y1, Z: z},
			{X: x0, Y: y1, Z: z},
			{X: x1, Y: y0, Z: z},
		}, nil
	}
}

func roundDiv(v, unit float64) int { return int(math.Round(v / unit)) }
