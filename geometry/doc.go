// Package geometry turns a simplified routed path into the wire
// rectangles and via stacks that get written back into a circuit's
// "routing" group (SPEC_FULL.md §4.8 "GeometryEmitter", path_layout in
// the original).
//
// What & Why
//
//   - In-plane segments. Consecutive path points that stay on the same
//     routing layer become one Box, centered on the segment's
//     coordinates and widened to that layer's min_width (poly uses its
//     own width regardless of which metal layers border it).
//   - Via stacks. Consecutive path points that change layer become a
//     via-centered stack: a widened landing pad on the layer being
//     left, a cut-sized via Box, one widened pad plus cut per
//     intermediate layer the stack passes through (for a jump of more
//     than one layer), and a widened landing pad on the layer being
//     entered. Landing pads use the end-of-line enclosure when the
//     neighboring segment is long enough to clear spacing to the next
//     wire on that layer, and fall back to matching the neighboring
//     segment's own width otherwise, exactly as path_layout does.
//   - The pad on each intermediate layer is a "wide bar", sized along
//     the travel axis to that
//     layer's minimum area divided by its end-of-line route width,
//     rounded up to the nearest even grid quantum, so a via landing
//     that only touches a layer in passing still satisfies that
//     layer's area rule.
package geometry
