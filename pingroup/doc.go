// Package pingroup assembles a circuit's ports and per-group pins into
// per-net pin lists, clusters each net's pins into spatially interacting
// sub-groups, and extracts routing-grid endpoints from each pin
// (SPEC_FULL.md §4.3 "PinGrouper").
//
// What & Why
//
//   - A net name (e.g. "VDD", "net_23") can appear on many disjoint
//     pieces of geometry: a port's metal1 box plus one pin per group
//     instance that connects to it. Two pieces belonging to the same
//     net but far apart in the layout are unrelated for routing
//     purposes — only pieces whose shapes actually overlap or touch
//     on the same layer need to connect to the same sub-net.
//   - Cluster splits a net's pins into maximal sets where every pin is
//     reachable from every other pin in its set through a chain of
//     same-layer overlaps (check_interaction in the original), using
//     a union-find with path compression and union by rank, the same
//     disjoint-set shape katalvlaran/lvlath's prim_kruskal.Kruskal
//     uses to merge MST components.
//   - ExtractEndpoints converts one pin's rectangle into one, two, or
//     four routing-grid endpoints depending on whether the pin
//     degenerates to a point, runs along one axis, or spans both axes
//     (get_pin_points in the original), shrinking the rectangle inward
//     by the route's own half-width so the endpoint sits inside the
//     pin, not on its boundary.
//
// Errors
//
//   - ErrUnknownRouteLayer is returned by ExtractEndpoints when a
//     pin's layer has no entry in the technology view.
package pingroup
