package pingroup

import "errors"

// ErrUnknownRouteLayer is returned by ExtractEndpoints when a pin names
// a layer the technology view has no routing index for.
var ErrUnknownRouteLayer = errors.New("pingroup: unknown route layer")
