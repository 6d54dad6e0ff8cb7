package pcb

import (
	"math"
	"testing"
)

func TestGraphicBounds(t *testing.T) {
	tests := []struct {
		name string
		g    Graphic
		want BoundingBox
	}{
		{
			name: "line",
			g:    Graphic{Type: GraphicLine, Start: Position{X: 10, Y: 20}, End: Position{X: 40, Y: 5}},
			want: BoundingBox{Min: Position{X: 10, Y: 5}, Max: Position{X: 40, Y: 20}},
		},
		{
			name: "rect",
			g:    Graphic{Type: GraphicRect, Start: Position{X: 0, Y: 0}, End: Position{X: 30, Y: 30}},
			want: BoundingBox{Min: Position{X: 0, Y: 0}, Max: Position{X: 30, Y: 30}},
		},
		{
			name: "circle radius from circumference point",
			g:    Graphic{Type: GraphicCircle, Center: Position{X: 25, Y: 35}, End: Position{X: 30, Y: 35}},
			want: BoundingBox{Min: Position{X: 20, Y: 30}, Max: Position{X: 30, Y: 40}},
		},
		{
			name: "polygon",
			g: Graphic{Type: GraphicPolygon, Points: []Position{
				{X: 0, Y: 0}, {X: 10, Y: 2}, {X: 5, Y: 8},
			}},
			want: BoundingBox{Min: Position{X: 0, Y: 0}, Max: Position{X: 10, Y: 8}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFootprintBounds(t *testing.T) {
	fp := Footprint{
		Position: PositionAngle{Position: Position{X: 15, Y: 30}},
		Pads: []Pad{
			{Position: PositionAngle{Position: Position{X: -0.8, Y: 0}}, Size: Size{Width: 0.8, Height: 0.9}},
			{Position: PositionAngle{Position: Position{X: 0.8, Y: 0}}, Size: Size{Width: 0.8, Height: 0.9}},
		},
	}
	bb := fp.Bounds()
	want := BoundingBox{
		Min: Position{X: 15 - 0.8 - 0.4, Y: 30 - 0.45},
		Max: Position{X: 15 + 0.8 + 0.4, Y: 30 + 0.45},
	}
	const eps = 1e-9
	if math.Abs(bb.Min.X-want.Min.X) > eps || math.Abs(bb.Max.X-want.Max.X) > eps ||
		math.Abs(bb.Min.Y-want.Min.Y) > eps || math.Abs(bb.Max.Y-want.Max.Y) > eps {
		t.Errorf("Bounds() = %+v, want %+v", bb, want)
	}
}

func TestFootprintBoundsNoPads(t *testing.T) {
	fp := Footprint{Position: PositionAngle{Position: Position{X: 5, Y: 7}}}
	bb := fp.Bounds()
	if bb.IsEmpty() {
		t.Fatal("padless footprint must still contribute its anchor")
	}
	if bb.Min != (Position{X: 5, Y: 7}) || bb.Max != (Position{X: 5, Y: 7}) {
		t.Errorf("Bounds() = %+v, want degenerate box at (5, 7)", bb)
	}
}

func TestPadPosition(t *testing.T) {
	tests := []struct {
		name  string
		angle Angle
		pad   Position
		want  Position
	}{
		{"unrotated", 0, Position{X: 1, Y: 0}, Position{X: 11, Y: 20}},
		{"rotated 90", 90, Position{X: 1, Y: 0}, Position{X: 10, Y: 19}},
		{"rotated 180", 180, Position{X: 1, Y: 0}, Position{X: 9, Y: 20}},
		{"rotated 270", 270, Position{X: 1, Y: 0}, Position{X: 10, Y: 21}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := Footprint{Position: PositionAngle{Position: Position{X: 10, Y: 20}, Angle: tt.angle}}
			pad := Pad{Position: PositionAngle{Position: tt.pad}}
			got := fp.PadPosition(&pad)
			const eps = 1e-9
			if math.Abs(got.X-tt.want.X) > eps || math.Abs(got.Y-tt.want.Y) > eps {
				t.Errorf("PadPosition = (%v, %v), want (%v, %v)", got.X, got.Y, tt.want.X, tt.want.Y)
			}
		})
	}
}

func TestBoundingBoxExpand(t *testing.T) {
	bb := NewBoundingBox()
	if !bb.IsEmpty() {
		t.Error("fresh box must be empty")
	}
	bb.Expand(Position{X: 3, Y: 4})
	if bb.IsEmpty() {
		t.Error("expanded box must not be empty")
	}
	bb.Expand(Position{X: -1, Y: 10})
	if bb.Width() != 4 || bb.Height() != 6 {
		t.Errorf("dims = %v x %v, want 4 x 6", bb.Width(), bb.Height())
	}

	other := NewBoundingBox()
	bb.ExpandBox(other)
	if bb.Width() != 4 {
		t.Error("expanding by an empty box must be a no-op")
	}
}
