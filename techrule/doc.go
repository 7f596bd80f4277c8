// Package techrule resolves per-layer routing rules (pitch, half-width,
// spacing, enclosure, via size, area) out of a technology rule table.
//
// What:
//
//   - Tech holds the raw design-rule tables keyed by layer name (and by
//     layer pair, for spacing/enclosure).
//   - View derives, for each routing-layer index 0..L-1, the grid pitch
//     used by gridgraph, plus the layer/via name mappings every other
//     package needs to turn an index back into a rule-table key.
//
// Why:
//
//   - Every downstream package (gridgraph, blockage, geometry) needs the
//     same index<->name mapping; computing it once in View avoids
//     repeating the poly/metal special-casing seen throughout the
//     original router.
//
// Errors:
//
//   - ErrMissingRule: a metal layer lacks a min_width or min_spacing
//     entry. Fatal; callers should abort the whole routing run.
package techrule
