package dxf

import (
	"math"

	"github.com/tinylabs/openfixture/pkg/kicad/pcb"
)

// Frame maps board coordinates into drawing coordinates. The drawing
// origin sits at the board's top-left corner, and Y is flipped because
// board files grow Y downward while DXF grows Y upward. Mirror flips X
// about the board width for back-side drawings, consistent with the
// test-point normalization.
type Frame struct {
	OriginX float64
	OriginY float64
	Width   float64
	Height  float64
	Mirror  bool
}

func (f Frame) point(x, y float64) (float64, float64) {
	rx := x - f.OriginX
	if f.Mirror {
		rx = f.Width - rx
	}
	return rx, f.Height - (y - f.OriginY)
}

// Drawing layer names in the emitted files.
const (
	layerOutline = "OUTLINE"
	layerTrack   = "TRACK"
)

// PlotOutline writes the board's outline-layer primitives to path.
func PlotOutline(board *pcb.Board, frame Frame, path string) error {
	w := NewWriter()
	for _, g := range board.OutlineGraphics() {
		plotGraphic(w, layerOutline, frame, g)
	}
	return w.Save(path)
}

// PlotTracks writes a check drawing of one copper layer: track segments,
// vias, and pad envelopes, so the generated fixture can be verified
// against the copper it probes.
func PlotTracks(board *pcb.Board, layer string, frame Frame, path string) error {
	w := NewWriter()

	for _, t := range board.LayerTracks(layer) {
		x1, y1 := frame.point(t.Start.X, t.Start.Y)
		x2, y2 := frame.point(t.End.X, t.End.Y)
		w.Line(layerTrack, x1, y1, x2, y2)
	}

	for _, v := range board.Vias {
		if !v.Layers.Contains(layer) {
			continue
		}
		cx, cy := frame.point(v.Position.X, v.Position.Y)
		w.Circle(layerTrack, cx, cy, v.Size/2)
	}

	for fi := range board.Footprints {
		fp := &board.Footprints[fi]
		for pi := range fp.Pads {
			pad := &fp.Pads[pi]
			if !pad.Layers.Contains(layer) {
				continue
			}
			pos := fp.PadPosition(pad)
			cx, cy := frame.point(pos.X, pos.Y)
			r := math.Min(pad.Size.Width, pad.Size.Height) / 2
			w.Circle(layerTrack, cx, cy, r)
		}
	}

	return w.Save(path)
}

func plotGraphic(w *Writer, layer string, frame Frame, g pcb.Graphic) {
	switch g.Type {
	case pcb.GraphicLine:
		x1, y1 := frame.point(g.Start.X, g.Start.Y)
		x2, y2 := frame.point(g.End.X, g.End.Y)
		w.Line(layer, x1, y1, x2, y2)

	case pcb.GraphicRect:
		x1, y1 := frame.point(g.Start.X, g.Start.Y)
		x2, y2 := frame.point(g.End.X, g.End.Y)
		w.Polyline(layer, [][2]float64{{x1, y1}, {x2, y1}, {x2, y2}, {x1, y2}}, true)

	case pcb.GraphicCircle:
		cx, cy := frame.point(g.Center.X, g.Center.Y)
		r := math.Hypot(g.End.X-g.Center.X, g.End.Y-g.Center.Y)
		w.Circle(layer, cx, cy, r)

	case pcb.GraphicArc:
		plotArc(w, layer, frame, g)

	case pcb.GraphicPolygon:
		pts := make([][2]float64, len(g.Points))
		for i, p := range g.Points {
			x, y := frame.point(p.X, p.Y)
			pts[i] = [2]float64{x, y}
		}
		w.Polyline(layer, pts, true)
	}
}

// plotArc converts a three-point arc into a DXF center/angle arc. A
// degenerate (collinear) arc falls back to a line.
func plotArc(w *Writer, layer string, frame Frame, g pcb.Graphic) {
	sx, sy := frame.point(g.Start.X, g.Start.Y)
	mx, my := frame.point(g.Mid.X, g.Mid.Y)
	ex, ey := frame.point(g.End.X, g.End.Y)

	cx, cy, ok := circumcenter(sx, sy, mx, my, ex, ey)
	if !ok {
		w.Line(layer, sx, sy, ex, ey)
		return
	}

	r := math.Hypot(sx-cx, sy-cy)
	a0 := angleDeg(cy, cx, sy, sx)
	am := angleDeg(cy, cx, my, mx)
	a1 := angleDeg(cy, cx, ey, ex)

	// DXF arcs sweep counterclockwise; swap endpoints if the mid point
	// is not on the CCW path from start to end.
	if !ccwBetween(a0, a1, am) {
		a0, a1 = a1, a0
	}
	w.Arc(layer, cx, cy, r, a0, a1)
}

func angleDeg(cy, cx, y, x float64) float64 {
	a := math.Atan2(y-cy, x-cx) * 180 / math.Pi
	if a < 0 {
		a += 360
	}
	return a
}

// ccwBetween reports whether mid lies on the counterclockwise sweep from
// a0 to a1 (degrees in [0,360)).
func ccwBetween(a0, a1, mid float64) bool {
	sweep := math.Mod(a1-a0+360, 360)
	toMid := math.Mod(mid-a0+360, 360)
	return toMid <= sweep
}

// circumcenter returns the center of the circle through three points, or
// ok=false when they are (nearly) collinear.
func circumcenter(x1, y1, x2, y2, x3, y3 float64) (cx, cy float64, ok bool) {
	d := 2 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(d) < 1e-9 {
		return 0, 0, false
	}
	s1 := x1*x1 + y1*y1
	s2 := x2*x2 + y2*y2
	s3 := x3*x3 + y3*y3
	cx = (s1*(y2-y3) + s2*(y3-y1) + s3*(y1-y2)) / d
	cy = (s1*(x3-x2) + s2*(x1-x3) + s3*(x2-x1)) / d
	return cx, cy, true
}
