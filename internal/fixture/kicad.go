package fixture

import (
	"github.com/tinylabs/openfixture/pkg/kicad/pcb"
)

// NewSnapshot adapts a parsed KiCad board to the Snapshot query surface.
func NewSnapshot(b *pcb.Board) Snapshot {
	return &boardSnapshot{board: b}
}

type boardSnapshot struct {
	board *pcb.Board
}

func (s *boardSnapshot) OutlineBounds() []Rect {
	var rects []Rect
	for _, g := range s.board.OutlineGraphics() {
		bb := g.Bounds()
		if bb.IsEmpty() {
			continue
		}
		rects = append(rects, rectFromBox(bb))
	}
	return rects
}

func (s *boardSnapshot) Footprints() []Footprint {
	out := make([]Footprint, len(s.board.Footprints))
	for i := range s.board.Footprints {
		out[i] = &footprintView{fp: &s.board.Footprints[i]}
	}
	return out
}

type footprintView struct {
	fp *pcb.Footprint
}

func (v *footprintView) Side() Side {
	if v.fp.Layer == pcb.LayerBackCopper {
		return SideBack
	}
	return SideFront
}

func (v *footprintView) Bounds() Rect {
	return rectFromBox(v.fp.Bounds())
}

func (v *footprintView) Pads() []Pad {
	out := make([]Pad, len(v.fp.Pads))
	for i := range v.fp.Pads {
		out[i] = &padView{fp: v.fp, pad: &v.fp.Pads[i]}
	}
	return out
}

type padView struct {
	fp  *pcb.Footprint
	pad *pcb.Pad
}

func (v *padView) Position() (float64, float64) {
	pos := v.fp.PadPosition(v.pad)
	return pos.X, pos.Y
}

func (v *padView) OnLayer(layer string) bool {
	return v.pad.Layers.Contains(layer)
}

func (v *padView) Kind() PadKind {
	switch v.pad.Type {
	case pcb.PadTypeSMD:
		return PadSurfaceMount
	case pcb.PadTypeThruHole:
		return PadThroughHole
	default:
		return PadOther
	}
}

func (v *padView) Net() string {
	return v.pad.NetName()
}

func rectFromBox(bb pcb.BoundingBox) Rect {
	return Rect{MinX: bb.Min.X, MinY: bb.Min.Y, MaxX: bb.Max.X, MaxY: bb.Max.Y}
}
