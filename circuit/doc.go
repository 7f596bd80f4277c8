// Package circuit defines the device/geometry data model consumed and
// mutated by the routing core: Circuit, Group, Port, Pin, and the Box
// and Text shape kinds. It corresponds to the out-of-scope "circuit
// database" collaborator of SPEC_FULL.md §1/§6 — this package only
// carries the data the router reads and writes, not placement,
// extraction, or persistence.
package circuit
