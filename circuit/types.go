package circuit

// GridPoint is a routing endpoint in user-unit grid coordinates:
// (x, y) position plus z, the routing-layer index it lives on.
type GridPoint struct {
	X, Y, Z int
}

// Shape is implemented by the two kinds of geometry a Group or Port
// can carry: Box (a rectangle) and Text (a port label). It exists so
// Port.Shape and Group.Shape can hold either, matching the dynamically
// typed shape lists of the original circuit database.
type Shape interface {
	isShape()
}

// Box is an axis-aligned rectangle on a single layer, in database
// units. X and Y each hold the (lo, hi) extent on that axis.
type Box struct {
	Layer string
	X     [2]int
	Y     [2]int
}

func (Box) isShape() {}

// Text is a point-placed label, emitted only by port placement (see
// SPEC_FULL.md §6 "PortPlacement"). Pt is in database units.
type Text struct {
	Layer string
	Pt    [2]float64
	Label string
}

func (Text) isShape() {}

// Pin is a named connection point belonging to a Group: a rectangle on
// one layer, tagged with the net it belongs to. Grid holds the
// routing-grid endpoints extracted from this pin by pingroup
// (SPEC_FULL.md §4.3.3); it is nil until extraction has run.
type Pin struct {
	Net   string
	Layer string
	Pt1   [2]int
	Pt2   [2]int
	Grid  []GridPoint
}

// Port is an external connection point of the circuit, named and
// carrying per-layer shapes (a metal1 Box contributes a routing
// endpoint; other layers/labels are written by port placement).
type Port struct {
	Name  string
	Shape map[string][]Shape
}

// Metal1Box returns the port's first metal1 Box shape and true, or the
// zero Box and false if the port has no metal1 shape.
func (p *Port) Metal1Box() (Box, bool) {
	shapes, ok := p.Shape["metal1"]
	if !ok || len(shapes) == 0 {
		return Box{}, false
	}
	b, ok := shapes[0].(Box)
	return b, ok
}

// Group is a component group: an instance's own shapes (diffusion,
// poly, metal) plus the pins it exposes. The router additionally
// creates a synthetic Group named "routing" to accumulate emitted
// wire and via geometry (SPEC_FULL.md §5).
type Group struct {
	Shape map[string][]Shape
	Pin   []Pin
}

// NewRoutingGroup returns an empty Group pre-seeded with the routing
// and via layer keys the emitter writes into, for the default 7-layer
// stack (poly, metal1..metal6, contact, via12..via56).
func NewRoutingGroup() *Group {
	g := &Group{Shape: map[string][]Shape{}}
	for _, l := range []string{
		"poly", "metal1", "metal2", "metal3", "metal4", "metal5", "metal6",
		"contact", "via12", "via23", "via34", "via45", "via56",
	} {
		g.Shape[l] = nil
	}
	return g
}

// Circuit is the top-level container: named groups and ports, plus the
// technology-independent geometry they carry. The router creates and
// mutates Circuit.Group["routing"]; all other groups/ports are
// read-only inputs to a routing run.
type Circuit struct {
	Group map[string]*Group
	Port  map[string]*Port
}

// NewCircuit returns an empty Circuit ready to accept groups and ports.
func NewCircuit() *Circuit {
	return &Circuit{
		Group: map[string]*Group{},
		Port:  map[string]*Port{},
	}
}

// Boxes returns the Box shapes on the given layer for group g, skipping
// any Text entries (ports only ever mix Box and Text; groups carry
// Box only).
func (g *Group) Boxes(layer string) []Box {
	shapes := g.Shape[layer]
	boxes := make([]Box, 0, len(shapes))
	for _, s := range shapes {
		if b, ok := s.(Box); ok {
			boxes = append(boxes, b)
		}
	}
	return boxes
}
