package techrule

// Unit holds the two scale factors that convert between database units
// (integer, technology-raw) and user units (grid-scaled), plus the grid
// snap quantum used when emitting geometry.
type Unit struct {
	// User converts database units to user units by division:
	// user = database / User.
	User float64
	// Grid is the snap quantum for emitted geometry (user units).
	Grid float64
}

// LayerPair keys a symmetric-or-directed rule between two layer (or
// layer/via) names, e.g. spacing between "metal1" and "metal1", or
// enclosure of "via12" by "metal1".
type LayerPair struct {
	A, B string
}

// Tech is the technology rule table consumed by the routing core. It is
// a pure data holder populated by the (out-of-scope) technology file
// parser; the core only reads it through View.
type Tech struct {
	Unit Unit

	// MinWidth maps a layer name to its minimum wire width (database
	// units).
	MinWidth map[string]float64

	// MinSpacing maps an unordered layer pair to minimum spacing
	// (database units). Same-layer spacing uses LayerPair{L, L}.
	MinSpacing map[LayerPair]float64

	// MinEnclosure maps {layer, via} to the minimum enclosure of the
	// via by the layer (database units).
	MinEnclosure map[LayerPair]float64

	// MinEnclosureEnd maps {layer, via} to the end-of-line enclosure
	// (database units), stricter than MinEnclosure along the wire
	// direction at a line end.
	MinEnclosureEnd map[LayerPair]float64

	// MinSize maps a layer (typically a via/contact layer) to its
	// minimum cut size (database units).
	MinSize map[string]float64

	// MinArea maps a layer name to its minimum shape area (database
	// units squared).
	MinArea map[string]float64
}

// Spacing returns the spacing rule between layers a and b, checking
// both orderings since the original rule table is effectively
// symmetric for same-kind layers.
func (t *Tech) Spacing(a, b string) (float64, bool) {
	if v, ok := t.MinSpacing[LayerPair{a, b}]; ok {
		return v, true
	}
	v, ok := t.MinSpacing[LayerPair{b, a}]
	return v, ok
}

// Enclosure returns the (non-EOL) enclosure of via by layer.
func (t *Tech) Enclosure(layer, via string) (float64, bool) {
	v, ok := t.MinEnclosure[LayerPair{layer, via}]
	return v, ok
}

// EnclosureEnd returns the end-of-line enclosure of via by layer.
func (t *Tech) EnclosureEnd(layer, via string) (float64, bool) {
	v, ok := t.MinEnclosureEnd[LayerPair{layer, via}]
	return v, ok
}
