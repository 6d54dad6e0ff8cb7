package pcb

import "math"

// BoundingBox is an axis-aligned rectangle in board coordinates.
type BoundingBox struct {
	Min Position
	Max Position
}

// NewBoundingBox returns an empty box ready for Expand.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Position{X: math.Inf(1), Y: math.Inf(1)},
		Max: Position{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// IsEmpty reports whether the box has never been expanded.
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand grows the box to include pos.
func (bb *BoundingBox) Expand(pos Position) {
	if pos.X < bb.Min.X {
		bb.Min.X = pos.X
	}
	if pos.Y < bb.Min.Y {
		bb.Min.Y = pos.Y
	}
	if pos.X > bb.Max.X {
		bb.Max.X = pos.X
	}
	if pos.Y > bb.Max.Y {
		bb.Max.Y = pos.Y
	}
}

// ExpandBox grows the box to include another box.
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Width returns Max.X - Min.X.
func (bb BoundingBox) Width() float64 { return bb.Max.X - bb.Min.X }

// Height returns Max.Y - Min.Y.
func (bb BoundingBox) Height() float64 { return bb.Max.Y - bb.Min.Y }

// Bounds returns the bounding box of a drawing primitive. Arc bounds use
// the three defining points, which is approximate but sufficient for board
// extents.
func (g *Graphic) Bounds() BoundingBox {
	bb := NewBoundingBox()
	switch g.Type {
	case GraphicCircle:
		dx := g.End.X - g.Center.X
		dy := g.End.Y - g.Center.Y
		r := math.Hypot(dx, dy)
		bb.Expand(Position{X: g.Center.X - r, Y: g.Center.Y - r})
		bb.Expand(Position{X: g.Center.X + r, Y: g.Center.Y + r})
	case GraphicArc:
		bb.Expand(g.Start)
		bb.Expand(g.Mid)
		bb.Expand(g.End)
	case GraphicPolygon:
		for _, p := range g.Points {
			bb.Expand(p)
		}
	default: // line, rect
		bb.Expand(g.Start)
		bb.Expand(g.End)
	}
	return bb
}

// Bounds returns the footprint's courtyard approximated by its pads. A
// footprint without pads contributes only its anchor position.
func (fp *Footprint) Bounds() BoundingBox {
	bb := NewBoundingBox()
	for i := range fp.Pads {
		pad := &fp.Pads[i]
		abs := fp.PadPosition(pad)
		hw := pad.Size.Width / 2
		hh := pad.Size.Height / 2
		bb.Expand(Position{X: abs.X - hw, Y: abs.Y - hh})
		bb.Expand(Position{X: abs.X + hw, Y: abs.Y + hh})
	}
	if len(fp.Pads) == 0 {
		bb.Expand(fp.Position.Position)
	}
	return bb
}

// PadPosition returns a pad's absolute board position, applying the
// footprint's rotation and translation. Rotation is negated to match
// KiCad's y-down coordinate convention.
func (fp *Footprint) PadPosition(pad *Pad) Position {
	x, y := pad.Position.X, pad.Position.Y
	if fp.Position.Angle != 0 {
		rad := -float64(fp.Position.Angle) * math.Pi / 180
		sin, cos := math.Sincos(rad)
		x, y = x*cos-y*sin, x*sin+y*cos
	}
	return Position{X: x + fp.Position.X, Y: y + fp.Position.Y}
}
