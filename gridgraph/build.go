package gridgraph

import "math"

// numGridExtend is the fixed number of extra pitch-steps added on each
// side of a net's endpoint bounding box, matching the original
// create_grid_graph's hard-coded margin.
const numGridExtend = 5

// Build lays out the initial lattice for one net: the bounding box of
// endpoints is expanded by 5 pitch-steps per layer (pitch itself
// divided by pitchAdjust, refining the grid on retry), and each
// layer gets its own row-major node set at that layer's pitch
// (SPEC_FULL.md §4.2.1). Returns ErrNoEndpoints if endpoints is empty.
//
// Node coordinates are rounded to the nearest integer user unit at
// creation time (SPEC_FULL.md §3: "all grid nodes carry user-unit
// integer coordinates"), collapsing the original's floating-point grid
// steps onto the integer lattice the rest of the pipeline assumes.
func Build(pitch func(z int) float64, layers int, endpoints []Point, pitchAdjust int) (*Graph, error) {
	if len(endpoints) == 0 {
		return nil, ErrNoEndpoints
	}
	if pitchAdjust < 1 {
		pitchAdjust = 1
	}

	x0, x1 := endpoints[0].X, endpoints[0].X
	y0, y1 := endpoints[0].Y, endpoints[0].Y
	for _, p := range endpoints[1:] {
		if p.X < x0 {
			x0 = p.X
		}
		if p.X > x1 {
			x1 = p.X
		}
		if p.Y < y0 {
			y0 = p.Y
		}
		if p.Y > y1 {
			y1 = p.Y
		}
	}

	g := &Graph{Layers: make([][][]*Node, layers)}
	for z := 0; z < layers; z++ {
		gridPitch := pitch(z) / float64(pitchAdjust)
		brX0 := float64(x0) - numGridExtend*gridPitch
		brX1 := float64(x1) + numGridExtend*gridPitch
		brY0 := float64(y0) - numGridExtend*gridPitch
		brY1 := float64(y1) + numGridExtend*gridPitch

		xs := arangeRounded(brX0, brX1, gridPitch)
		ys := arangeRounded(brY0, brY1, gridPitch)

		rows := make([][]*Node, len(ys))
		for ri, y := range ys {
			row := make([]*Node, len(xs))
			for ci, x := range xs {
				row[ci] = &Node{X: x, Y: y, Z: z}
			}
			rows[ri] = row
		}
		g.Layers[z] = rows
	}

	return g, nil
}

// arangeRounded mirrors numpy.arange(start, stop, step) (stop
// exclusive) but rounds each sample to the nearest integer, producing
// a strictly increasing slice (duplicate roundings, which would only
// occur for a sub-unit step, are collapsed away).
func arangeRounded(start, stop, step float64) []int {
	if step <= 0 {
		return nil
	}
	var out []int
	for v := start; v < stop; v += step {
		r := int(math.Round(v))
		if len(out) == 0 || out[len(out)-1] != r {
			out = append(out, r)
		}
	}
	return out
}
