// Package devicerouter is an IC detailed-routing engine: it builds a
// per-net 3D grid graph over a fixed technology's metal stack, maps
// diffusion/pin/routed-shape blockage onto it, solves two-pin and
// multi-pin routes with a BFS-wave/DFS-backtrack maze search, simplifies
// the resulting paths, and emits wire and via-stack geometry back into
// the circuit database.
//
// What & Why
//
//   - circuit holds the technology-independent geometry database
//     (groups, pins, ports, boxes/text) the rest of the engine reads
//     and writes.
//   - techrule resolves a flat rule table into a per-layer pitch/name
//     view, built once per routing-layer count and shared read-only
//     across every net.
//   - gridgraph is the 3D lattice itself: construction, endpoint
//     alignment, and neighbor connection.
//   - pingroup assembles a circuit's named nets, clusters
//     mutually-interacting pins, and extracts routing-grid endpoints
//     from a pin's rectangle.
//   - blockage stamps obstacle and vertical-block halos from
//     diffusion shapes, already-routed geometry, and pin/port
//     rectangles, exempting the net currently being routed.
//   - maze finds a shortest path between two grid nodes via BFS wave
//     propagation and DFS backtracking.
//   - planner connects a net's clusters into a single route using one
//     of three multi-pin strategies.
//   - simplify applies 3D Ramer-Douglas-Peucker to a raw node path.
//   - geometry turns a simplified path into wire and via-stack boxes.
//   - router is the end-to-end driver tying every package above
//     together, plus port label placement.
//
// See DESIGN.md for the grounding of each package and SPEC_FULL.md for
// the full specification this module implements.
package devicerouter
