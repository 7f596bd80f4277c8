package planner

import "errors"

// ErrUnrouted is returned when a net's pins (or a cluster's candidate
// nodes) cannot all be connected into a single tree on the given grid.
var ErrUnrouted = errors.New("planner: net could not be fully routed")
