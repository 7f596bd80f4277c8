package techrule

import "errors"

// ErrMissingRule indicates a metal layer lacks a required min_width or
// min_spacing rule. Wrapped with the offending layer name via %w-style
// context in NewView.
var ErrMissingRule = errors.New("techrule: missing min_width or min_spacing rule")

// ErrUnknownLayer indicates a requested layer index or name has no
// entry in the View's mappings.
var ErrUnknownLayer = errors.New("techrule: unknown layer")
