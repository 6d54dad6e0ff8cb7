package pcb

import (
	"fmt"

	"github.com/tinylabs/openfixture/pkg/kicad/sexp"
)

// Board-level graphic node names to the Graphic kind they produce.
var graphicKinds = map[string]string{
	"gr_line":   GraphicLine,
	"gr_circle": GraphicCircle,
	"gr_arc":    GraphicArc,
	"gr_rect":   GraphicRect,
	"gr_poly":   GraphicPolygon,
}

// parseGraphics extracts board-level drawing primitives. Malformed
// primitives are skipped; a bad silkscreen doodle should not fail the
// whole board.
func parseGraphics(root *sexp.List) []Graphic {
	var graphics []Graphic
	for _, item := range root.Items {
		node, ok := item.(*sexp.List)
		if !ok {
			continue
		}
		kind, ok := graphicKinds[node.Name()]
		if !ok {
			continue
		}
		if g, err := parseGraphic(node, kind); err == nil {
			graphics = append(graphics, *g)
		}
	}
	return graphics
}

func parseGraphic(node *sexp.List, kind string) (*Graphic, error) {
	g := &Graphic{Type: kind}

	layerNode, found := sexp.Find(node, "layer")
	if found {
		if layer, err := sexp.Str(layerNode, 1); err == nil {
			g.Layer = layer
		}
	}

	if strokeNode, found := sexp.Find(node, "stroke"); found {
		if widthNode, found := sexp.Find(strokeNode, "width"); found {
			if w, err := sexp.Float(widthNode, 1); err == nil {
				g.Width = w
			}
		}
	} else if widthNode, found := sexp.Find(node, "width"); found {
		// KiCad 6 wrote a bare (width ...) instead of (stroke ...)
		if w, err := sexp.Float(widthNode, 1); err == nil {
			g.Width = w
		}
	}

	var err error
	switch kind {
	case GraphicLine, GraphicRect:
		if g.Start, err = parseXY(node, "start"); err != nil {
			return nil, err
		}
		if g.End, err = parseXY(node, "end"); err != nil {
			return nil, err
		}
	case GraphicCircle:
		if g.Center, err = parseXY(node, "center"); err != nil {
			return nil, err
		}
		if g.End, err = parseXY(node, "end"); err != nil {
			return nil, err
		}
	case GraphicArc:
		if g.Start, err = parseXY(node, "start"); err != nil {
			return nil, err
		}
		if g.Mid, err = parseXY(node, "mid"); err != nil {
			return nil, err
		}
		if g.End, err = parseXY(node, "end"); err != nil {
			return nil, err
		}
	case GraphicPolygon:
		pts, err := parsePoints(node)
		if err != nil {
			return nil, err
		}
		g.Points = pts
	}

	return g, nil
}

// parsePoints extracts (pts (xy X Y) (xy X Y) ...) from a polygon node.
func parsePoints(node *sexp.List) ([]Position, error) {
	ptsNode, found := sexp.Find(node, "pts")
	if !found {
		return nil, fmt.Errorf("missing pts")
	}
	var points []Position
	for _, xy := range sexp.FindAll(ptsNode, "xy") {
		x, err := sexp.Float(xy, 1)
		if err != nil {
			return nil, err
		}
		y, err := sexp.Float(xy, 2)
		if err != nil {
			return nil, err
		}
		points = append(points, Position{X: x, Y: y})
	}
	return points, nil
}
