package techrule

import "fmt"

// DefaultLayers is the default number of routing layers (poly plus six
// metals), matching the original router's hard-coded layer count.
const DefaultLayers = 7

// View resolves per-layer pitch and layer/via name mappings for a
// fixed technology and layer count. It is built once and shared by all
// nets; per-net state never mutates it.
type View struct {
	tech   *Tech
	layers int

	pitch      []float64 // pitch[z], user units
	layerName  []string  // layerName[z]
	viaName    []string  // viaName[z]: the via above layer z (below it for the topmost layer)
	layerIndex map[string]int
}

// NewView builds a View for tech over the given number of routing
// layers (index 0 = poly, 1..layers-1 = metal1..metal{layers-1}).
// Returns ErrMissingRule, wrapping the offending layer name, if any
// metal layer lacks a min_width or min_spacing rule.
func NewView(tech *Tech, layers int) (*View, error) {
	v := &View{
		tech:       tech,
		layers:     layers,
		pitch:      make([]float64, layers),
		layerName:  make([]string, layers),
		viaName:    make([]string, layers),
		layerIndex: make(map[string]int, layers),
	}

	for z := 0; z < layers; z++ {
		var layer string
		if z == 0 {
			layer = "poly"
		} else {
			layer = fmt.Sprintf("metal%d", z)
		}
		v.layerName[z] = layer
		v.layerIndex[layer] = z

		minWidth, ok := tech.MinWidth[layer]
		if !ok {
			return nil, fmt.Errorf("%w: %s min_width", ErrMissingRule, layer)
		}
		minSpacing, ok := tech.Spacing(layer, layer)
		if !ok {
			return nil, fmt.Errorf("%w: %s min_spacing", ErrMissingRule, layer)
		}
		v.pitch[z] = (minWidth + minSpacing) / tech.Unit.User

		switch {
		case z == 0:
			v.viaName[z] = "contact"
		case z < layers-1:
			v.viaName[z] = fmt.Sprintf("via%d%d", z, z+1)
		default:
			// Topmost metal has no via above it; reuse the via below,
			// matching the original's via_layer[L-1] = via_layer[L-2] clamp.
			v.viaName[z] = fmt.Sprintf("via%d%d", z-1, z)
		}
	}

	return v, nil
}

// Layers returns the number of routing layers this View was built for.
func (v *View) Layers() int { return v.layers }

// Tech returns the underlying rule table.
func (v *View) Tech() *Tech { return v.tech }

// Pitch returns the grid pitch (user units) for layer index z.
func (v *View) Pitch(z int) float64 { return v.pitch[z] }

// LayerName returns the routing-layer name for index z ("poly",
// "metal1", ...).
func (v *View) LayerName(z int) string { return v.layerName[z] }

// ViaName returns the via (or contact) layer name associated with
// routing-layer index z: the cut between z and z+1, or — for the
// topmost metal — the cut below it (see the mid_via_layer Open
// Question in SPEC_FULL.md §9: this clamp reproduces the original's
// observable via naming rather than inventing an unmanufacturable
// via-above-the-top-metal).
func (v *View) ViaName(z int) string { return v.viaName[z] }

// RouteIndex returns the routing-layer index for a layer name such as
// "poly" or "metal3".
func (v *View) RouteIndex(layer string) (int, bool) {
	z, ok := v.layerIndex[layer]
	return z, ok
}

// ViaBetween returns the via/contact layer name connecting layer
// indices a and b, where |a-b| == 1. It mirrors the original's `via`
// dict keyed by both (a,b) and (b,a) ordered pairs.
func (v *View) ViaBetween(a, b int) string {
	lo := a
	if b < a {
		lo = b
	}
	if lo == 0 {
		return "contact"
	}
	return fmt.Sprintf("via%d%d", lo, lo+1)
}
