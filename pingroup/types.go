package pingroup

import "github.com/yangwei-lim/device-router/circuit"

// Net is every pin that carries a given net name, gathered from both
// the circuit's ports (as a synthetic metal1 pin) and every group's
// pin list, before clustering.
type Net struct {
	Name string
	Pins []circuit.Pin
}

// AssembleNets builds one Net per distinct net name in c, combining a
// port's metal1 box (if it has one) with every pin of every group that
// names that net (SPEC_FULL.md §4.3.1, pin_port_grouping2 in the
// original). Ports without a metal1 shape contribute nothing directly;
// they still participate if a group pin names them.
func AssembleNets(c *circuit.Circuit) map[string]*Net {
	nets := make(map[string]*Net)

	netFor := func(name string) *Net {
		n, ok := nets[name]
		if !ok {
			n = &Net{Name: name}
			nets[name] = n
		}
		return n
	}

	for name, port := range c.Port {
		box, ok := port.Metal1Box()
		if !ok {
			continue
		}
		netFor(name).Pins = append(netFor(name).Pins, circuit.Pin{
			Net:   name,
			Layer: "metal1",
			Pt1:   [2]int{box.X[0], box.Y[0]},
			Pt2:   [2]int{box.X[1], box.Y[1]},
		})
	}

	for _, group := range c.Group {
		for _, pin := range group.Pin {
			netFor(pin.Net).Pins = append(netFor(pin.Net).Pins, pin)
		}
	}

	return nets
}
