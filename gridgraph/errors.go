package gridgraph

import "errors"

// ErrNoEndpoints indicates Build was called with an empty endpoint set,
// so no bounding box (and therefore no lattice) can be derived.
var ErrNoEndpoints = errors.New("gridgraph: no endpoints to build a grid from")

// ErrNodeNotFound indicates a requested (x, y) coordinate on a layer
// has no corresponding node; callers should have aligned the point via
// ExtendGridNode first.
var ErrNodeNotFound = errors.New("gridgraph: node not found at coordinate")
