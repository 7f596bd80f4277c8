// Package planner connects a net's candidate grid endpoints into a
// single routed tree, built out of repeated two-pin maze searches
// (SPEC_FULL.md §4.6 "MultiPinPlanner").
//
// Three strategies are provided, corresponding to the original's three
// multi-pin routines:
//
//   - RouteLinear (route_multi_pins): grow a single tree by always
//     routing the next pin in list order toward everything routed so
//     far. Simple, order-sensitive, and never used by the router
//     driver — kept because it is a real strategy a caller could pick,
//     and because route_multi_pins_2/route_multi_pins_group both
//     degrade to it when only two pins are involved.
//   - RouteManhattanNearest (route_multi_pins_2): grow a tree by
//     repeatedly picking whichever (tree node, remaining pin) pair has
//     the smallest Manhattan distance, breaking ties by insertion
//     order. Used to route the pins within one interacting cluster.
//   - RouteGrouped (route_multi_pins_group): the entry point. Clusters
//     that are already a single candidate node are left as-is;
//     clusters with more than one candidate are internally connected
//     with RouteManhattanNearest; then the resulting per-cluster trees
//     are stitched together pairwise, again by nearest Manhattan
//     distance, one maze search per cluster pair.
//
// All three strategies operate directly on *gridgraph.Node — the
// caller is responsible for having already extracted and deduplicated
// candidate nodes per physical pin (pingroup) and for having run
// blockage mapping and gridgraph.Connect on g beforehand.
package planner
