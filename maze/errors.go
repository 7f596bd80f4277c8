package maze

import "errors"

// ErrNoPath is returned when no route exists between a source and any
// of its targets, by both the wave-propagation and backtracking
// phases.
var ErrNoPath = errors.New("maze: no path found")
