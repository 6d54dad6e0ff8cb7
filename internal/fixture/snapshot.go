// Package fixture derives test-fixture jig geometry from a PCB design:
// board origin and bounding dimensions, probe-accessible test points in
// fixture-local coordinates, and the parameter set handed to the OpenSCAD
// geometry model.
package fixture

// Side identifies a board face.
type Side int

const (
	SideFront Side = iota
	SideBack
)

func (s Side) String() string {
	if s == SideBack {
		return "back"
	}
	return "front"
}

// Opposite returns the other board face.
func (s Side) Opposite() Side {
	if s == SideFront {
		return SideBack
	}
	return SideFront
}

// CopperLayer returns the copper layer name scanned for this side.
func (s Side) CopperLayer() string {
	if s == SideBack {
		return "B.Cu"
	}
	return "F.Cu"
}

// PasteLayer returns the solder-paste layer name for this side.
func (s Side) PasteLayer() string {
	if s == SideBack {
		return "B.Paste"
	}
	return "F.Paste"
}

// Mirror reports whether coordinates on this side are flipped about the
// board width. Back-side probing views the board through from the opposite
// face, so the back always mirrors.
func (s Side) Mirror() bool { return s == SideBack }

// Mode selects which board faces are probed.
type Mode int

const (
	ModeFront Mode = iota
	ModeBack
	ModeBoth
)

func (m Mode) String() string {
	switch m {
	case ModeBack:
		return "back"
	case ModeBoth:
		return "both"
	default:
		return "front"
	}
}

// Sides returns the faces to scan, in scan order. In dual-sided mode the
// front is always processed first.
func (m Mode) Sides() []Side {
	switch m {
	case ModeBack:
		return []Side{SideBack}
	case ModeBoth:
		return []Side{SideFront, SideBack}
	default:
		return []Side{SideFront}
	}
}

// PadKind classifies a physical contact pad.
type PadKind int

const (
	PadSurfaceMount PadKind = iota
	PadThroughHole
	PadOther // edge connectors, unplated holes, ...
)

// Rect is an axis-aligned bounding box in board coordinates (mm).
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Pad is the read-only view of one contact pad that the selector needs.
type Pad interface {
	// Position returns the pad's absolute board position in mm.
	Position() (x, y float64)

	// OnLayer reports whether the pad occupies the named layer.
	OnLayer(layer string) bool

	// Kind returns the pad classification.
	Kind() PadKind

	// Net returns the attached net name, for diagnostics only.
	Net() string
}

// Footprint is the read-only view of one placed component.
type Footprint interface {
	// Side returns the face the component is placed on.
	Side() Side

	// Bounds returns the footprint's bounding box in board coordinates.
	Bounds() Rect

	// Pads returns the footprint's pads in file order.
	Pads() []Pad
}

// Snapshot is the narrow query surface over one immutable board design.
// The core never branches on which CAD format or version produced it; an
// adapter absorbs those differences.
type Snapshot interface {
	// OutlineBounds returns the bounding box of every drawing primitive
	// on the board-outline layer, in file order.
	OutlineBounds() []Rect

	// Footprints returns all placed components in file order.
	Footprints() []Footprint
}
