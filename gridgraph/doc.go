// Package gridgraph builds and owns the 3D routing-grid lattice: a
// list of layers, each a list of rows, each row an ordered list of
// Nodes sharing Y, with strictly increasing X within a row and
// strictly increasing Y across rows (SPEC_FULL.md §3, §4.2).
//
// What:
//
//   - Build lays out the initial pitch-spaced lattice around a net's
//     endpoint bounding box, per layer.
//   - ExtendGridNode inserts a full column/row across every layer so
//     every endpoint coincides exactly with some node (§4.2.2).
//   - Connect wires up/down/left/right/top/bottom neighbor pointers
//     once obstacles have been stamped (§4.2.3).
//   - Node.Neighbors yields the deterministic traversal order
//     up, down, left, right, top, bottom (§4.2.4), honoring
//     VerticalBlock.
//
// Ownership: a Graph exclusively owns its Nodes; neighbor pointers are
// back-references into the same Graph and never outlive it. A Graph is
// built fresh per net (SPEC_FULL.md §3 "Lifecycle").
package gridgraph
