package simplify

import (
	"math"

	"github.com/yangwei-lim/device-router/gridgraph"
)

// DefaultEpsilon is the RDP distance tolerance used by the router
// driver, matching the original's epsilon=0.2.
const DefaultEpsilon = 0.2

// RDP3D simplifies a polyline of 3D points, keeping only points that
// lie more than epsilon away from the line connecting the points on
// either side of them once their neighbors have themselves been kept.
// Endpoints are always kept.
func RDP3D(points []gridgraph.Point, epsilon float64) []gridgraph.Point {
	if len(points) < 3 {
		out := make([]gridgraph.Point, len(points))
		copy(out, points)
		return out
	}

	start, end := points[0], points[len(points)-1]
	maxDist := -1.0
	maxIdx := 0
	for i := 1; i < len(points)-1; i++ {
		d := perpendicularDistance(points[i], start, end)
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist <= epsilon {
		return []gridgraph.Point{start, end}
	}

	left := RDP3D(points[:maxIdx+1], epsilon)
	right := RDP3D(points[maxIdx:], epsilon)

	result := make([]gridgraph.Point, 0, len(left)+len(right)-1)
	result = append(result, left...)
	result = append(result, right[1:]...)
	return result
}

// Simplify converts a maze-search node path to its point sequence and
// applies RDP3D with epsilon.
func Simplify(path []*gridgraph.Node, epsilon float64) []gridgraph.Point {
	points := make([]gridgraph.Point, len(path))
	for i, n := range path {
		points[i] = gridgraph.Point{X: n.X, Y: n.Y, Z: n.Z}
	}
	return RDP3D(points, epsilon)
}

func perpendicularDistance(p, a, b gridgraph.Point) float64 {
	dx, dy, dz := float64(b.X-a.X), float64(b.Y-a.Y), float64(b.Z-a.Z)
	lineLen := math.Sqrt(dx*dx + dy*dy + dz*dz)

	px, py, pz := float64(p.X-a.X), float64(p.Y-a.Y), float64(p.Z-a.Z)
	if lineLen == 0 {
		return math.Sqrt(px*px + py*py + pz*pz)
	}

	// |pointVec x lineVec| / |lineVec| is the perpendicular distance
	// from p to the infinite line through a and b.
	cx := py*dz - pz*dy
	cy := pz*dx - px*dz
	cz := px*dy - py*dx
	crossLen := math.Sqrt(cx*cx + cy*cy + cz*cz)

	return crossLen / lineLen
}
