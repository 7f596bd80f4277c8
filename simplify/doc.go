// Package simplify reduces a routed path down to its geometrically
// significant vertices using the Ramer-Douglas-Peucker algorithm in
// three dimensions (SPEC_FULL.md §4.7 "PathSimplifier", trim_path /
// rdp.rdp(path, epsilon=0.2) in the original).
//
// A path is a polyline of collinear grid steps; RDP keeps only the
// points where the polyline actually bends — an endpoint, a corner, or
// a layer change — and drops every point that lies within epsilon of
// the straight segment connecting its neighbors. DefaultEpsilon (0.2
// user-grid units) matches the original's constant exactly.
//
// No ecosystem RDP implementation appears anywhere in the corpus (the
// original reaches for the external `rdp` PyPI package, which has no
// Go equivalent among the example repos); this is the one component of
// the router core built directly on the standard library, recorded as
// such in DESIGN.md.
package simplify
