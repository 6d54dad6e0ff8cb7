// Package pcb parses KiCad board files (.kicad_pcb) into a read-only board
// model: layers, nets, footprints with pads, edge/graphic primitives, tracks
// and vias. Coordinates are millimeters in the board's native frame.
package pcb

import "strings"

// Position is a 2D coordinate in mm.
type Position struct {
	X float64
	Y float64
}

// Angle is a rotation in degrees.
type Angle float64

// PositionAngle combines a position with a rotation.
type PositionAngle struct {
	Position
	Angle Angle
}

// Size holds width/height in mm.
type Size struct {
	Width  float64
	Height float64
}

// Layer is a board layer definition from the (layers ...) section.
type Layer struct {
	Number int    // ordinal
	Name   string // e.g. "F.Cu", "Edge.Cuts"
	Type   string // "signal", "user", ...
}

// Well-known layer names used throughout the fixture pipeline.
const (
	LayerFrontCopper = "F.Cu"
	LayerBackCopper  = "B.Cu"
	LayerFrontPaste  = "F.Paste"
	LayerBackPaste   = "B.Paste"
	LayerEdgeCuts    = "Edge.Cuts"
	LayerEco1        = "Eco1.User"
	LayerEco2        = "Eco2.User"
)

// Net is an electrical net.
type Net struct {
	Number int
	Name   string
}

// LayerSet is the set of layers an element occupies. Entries may be
// wildcards as written by KiCad: "*.Cu" (all copper layers), "*.Mask",
// "F&B.Cu" (both outer copper layers).
type LayerSet []string

// Contains reports whether the set covers the named layer, resolving
// wildcard entries.
func (ls LayerSet) Contains(name string) bool {
	for _, entry := range ls {
		if matchLayer(entry, name) {
			return true
		}
	}
	return false
}

// matchLayer matches a single (possibly wildcard) set entry against a
// concrete layer name. Layer names are "<side>.<class>"; only the side
// part may be wildcarded.
func matchLayer(pattern, name string) bool {
	if pattern == name {
		return true
	}
	pdot := strings.IndexByte(pattern, '.')
	ndot := strings.IndexByte(name, '.')
	if pdot < 0 || ndot < 0 || pattern[pdot:] != name[ndot:] {
		return false
	}
	switch pattern[:pdot] {
	case "*":
		return true
	case "F&B":
		side := name[:ndot]
		return side == "F" || side == "B"
	}
	return false
}

// NetMap provides lookup of nets by number or name.
type NetMap struct {
	byNumber map[int]*Net
	byName   map[string]*Net
}

// NewNetMap builds a NetMap from parsed nets.
func NewNetMap(nets []Net) *NetMap {
	nm := &NetMap{
		byNumber: make(map[int]*Net),
		byName:   make(map[string]*Net),
	}
	for i := range nets {
		net := &nets[i]
		nm.byNumber[net.Number] = net
		if net.Name != "" {
			nm.byName[net.Name] = net
		}
	}
	return nm
}

// ByNumber retrieves a net by its ordinal.
func (nm *NetMap) ByNumber(num int) (*Net, bool) {
	net, ok := nm.byNumber[num]
	return net, ok
}

// ByName retrieves a net by name.
func (nm *NetMap) ByName(name string) (*Net, bool) {
	net, ok := nm.byName[name]
	return net, ok
}
