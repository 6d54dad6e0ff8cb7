package pcb

// Board is a parsed KiCad PCB.
type Board struct {
	Version    int    // file format version date
	Generator  string // writing tool
	General    General
	Layers     []Layer
	Nets       []Net
	Footprints []Footprint
	Graphics   []Graphic // board-level drawing primitives
	Tracks     []Track
	Vias       []Via
}

// General holds title-block properties.
type General struct {
	Thickness float64 // board thickness in mm
	Title     string
	Date      string
	Revision  string
	Company   string
}

// Footprint is a placed component.
type Footprint struct {
	Library   string
	Name      string
	Layer     string // placement layer, F.Cu or B.Cu
	Position  PositionAngle
	Reference string
	Value     string
	Pads      []Pad
}

// Pad types as written in board files.
const (
	PadTypeSMD      = "smd"
	PadTypeThruHole = "thru_hole"
	PadTypeConnect  = "connect"
	PadTypeNPTH     = "np_thru_hole"
)

// Pad is a footprint pad. Position is relative to the owning footprint.
type Pad struct {
	Number   string
	Type     string // smd, thru_hole, connect, np_thru_hole
	Shape    string // circle, rect, oval, roundrect, ...
	Position PositionAngle
	Size     Size
	Drill    float64 // 0 for SMD
	Layers   LayerSet
	Net      *Net
}

// NetName returns the pad's net name, or "" when unconnected.
func (p *Pad) NetName() string {
	if p.Net == nil {
		return ""
	}
	return p.Net.Name
}

// Graphic kinds.
const (
	GraphicLine    = "line"
	GraphicCircle  = "circle"
	GraphicArc     = "arc"
	GraphicRect    = "rect"
	GraphicPolygon = "polygon"
)

// Graphic is a board-level drawing primitive. Which coordinate fields are
// meaningful depends on Type: lines and rects use Start/End, circles use
// Center/End (a point on the circumference), arcs use Start/Mid/End,
// polygons use Points.
type Graphic struct {
	Type   string
	Layer  string
	Start  Position
	End    Position
	Center Position
	Mid    Position
	Points []Position
	Width  float64 // stroke width in mm
}

// Track is a copper segment.
type Track struct {
	Start Position
	End   Position
	Width float64
	Layer string
	Net   *Net
}

// Via is a plated through-hole connecting copper layers.
type Via struct {
	Position Position
	Size     float64
	Drill    float64
	Layers   LayerSet
	Net      *Net
}

// OutlineGraphics returns the drawing primitives on the Edge.Cuts layer,
// in file order.
func (b *Board) OutlineGraphics() []Graphic {
	var out []Graphic
	for _, g := range b.Graphics {
		if g.Layer == LayerEdgeCuts {
			out = append(out, g)
		}
	}
	return out
}

// LayerTracks returns the track segments on the named copper layer.
func (b *Board) LayerTracks(layer string) []Track {
	var out []Track
	for _, t := range b.Tracks {
		if t.Layer == layer {
			out = append(out, t)
		}
	}
	return out
}

// LayerByName returns the layer definition with the given name.
func (b *Board) LayerByName(name string) (*Layer, bool) {
	for i := range b.Layers {
		if b.Layers[i].Name == name {
			return &b.Layers[i], true
		}
	}
	return nil, false
}
