// Package blockage stamps Obstacle and VerticalBlock onto a gridgraph
// built for one net, from the technology's spacing/enclosure rules and
// the circuit's existing geometry (SPEC_FULL.md §4.4 "BlockageMapper").
//
// What & Why
//
//   - A maze search only knows to avoid a node if that node has been
//     marked Obstacle (cannot route through in-plane) or VerticalBlock
//     (cannot route through vertically, via a stacked via). Stamp
//     derives both from design rules: a shape on a layer blocks
//     same-layer routing out to its spacing-plus-half-width halo, and
//     blocks vertical routing out to a wider halo that also clears the
//     via's enclosure and half-size.
//   - Four passes run in the original's order: diffusion (keeps poly
//     contacts clear of active area), route path (earlier nets' own
//     emitted wires), poly pin, and metal pin — each widening the
//     obstacle/vertical-block footprint of one kind of existing shape.
//   - The current net's own pins are exempted. metal_pin_blockage skips
//     stamping them and clears Obstacle on every node inside their raw
//     rectangles. poly_pin_blockage2 stamps them like any other poly
//     pin, then clears Obstacle on the nodes inside the pin rectangle
//     that share an x or y with one of the pin's grid points; halo
//     nodes outside that rectangle stay blocked.
package blockage
