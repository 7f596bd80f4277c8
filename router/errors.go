package router

import "errors"

// ErrUnroutedNet wraps a net name that could not be routed even at the
// finest retry pitch.
var ErrUnroutedNet = errors.New("router: net could not be routed")
