// Package router is the end-to-end driver: it assembles nets, retries
// each with a progressively finer grid until a route is found or the
// retry budget is exhausted, and emits the resulting geometry back
// into the circuit (SPEC_FULL.md §6, maze_routing/port_placement in
// the original).
//
// What & Why
//
//   - MazeRouting is the core entry point. For every net (in
//     deterministic, sorted-by-name order), it clusters the net's
//     pins, builds a fresh gridgraph at increasing pitchAdjust (1, 2,
//     3), stamps blockage, connects the grid, marks every candidate
//     pin node VerticalBlock (so no via is stacked directly on a pin
//     node), and calls planner.RouteGrouped.
//     If no path is found the grid is rebuilt one notch finer and
//     retried, up to pitchAdjust 3; if that also fails the net is
//     recorded as unrouted and routing continues with the next net.
//   - Each successfully routed net's paths are RDP-trimmed
//     (simplify.Simplify) and emitted (geometry.Emit) into
//     circuit.Group["routing"] before the next net starts, so later
//     nets are blocked by earlier ones' wires (route_path_blockage).
//   - PortPlacement is a thin post-core step: for any port lacking a
//     metal-layer text label already, it drops one at the centroid of
//     whichever group pin shares the port's net name.
//
// NetResult surfaces success/failure per net directly, rather than
// only through printed progress as the original does — nothing it
// reports is routing behavior, only its observability (SPEC_FULL.md
// §6/§7).
package router
