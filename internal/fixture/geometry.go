package fixture

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Plausibility bounds for a probed board, in mm.
const (
	minPlausibleDim = 10.0
	maxPlausibleDim = 500.0

	// Components legitimately overhang the board edge (connectors,
	// mounting hardware); beyond this the extents disagree enough to
	// warn about.
	overhangTolerance = 0.5
)

// Geometry is the board's derived origin and bounding dimensions.
type Geometry struct {
	// Origin is the top-left corner of the board: the minimum X and
	// minimum Y observed independently across outline primitives.
	Origin Point

	// Width and Height are the board extents relative to Origin, rounded
	// to the coordinate grid.
	Width  float64
	Height float64
}

// Point is a 2D coordinate in mm.
type Point struct {
	X float64
	Y float64
}

// ExtractGeometry computes the board origin and dimensions from the
// outline layer, falling back to component bounding boxes when the board
// has no drawn outline. It never fails: absent geometry yields zero
// dimensions, which makes the downstream test-point scan come up empty and
// lets the caller abort there.
func ExtractGeometry(snap Snapshot) (Geometry, []Diagnostic) {
	var diags []Diagnostic

	outline := snap.OutlineBounds()
	var fpRects []Rect
	for _, fp := range snap.Footprints() {
		r := fp.Bounds()
		if r.MaxX >= r.MinX && r.MaxY >= r.MinY {
			fpRects = append(fpRects, r)
		}
	}

	source := outline
	if len(outline) == 0 {
		source = fpRects
		diags = append(diags, Diagnostic{
			Kind:     DiagDegradedGeometry,
			Severity: SeverityWarning,
			Message:  "board has no outline primitives; extents derived from component bounding boxes",
		})
	}
	if len(source) == 0 {
		return Geometry{}, diags
	}

	minX, minY, maxX, maxY := reduceRects(source)

	geom := Geometry{
		Origin: Point{X: RoundTo(CoordGrid, minX), Y: RoundTo(CoordGrid, minY)},
	}
	geom.Width = RoundTo(CoordGrid, maxX-geom.Origin.X)
	geom.Height = RoundTo(CoordGrid, maxY-geom.Origin.Y)

	// Compare against component extents measured from the same origin.
	if len(outline) > 0 && len(fpRects) > 0 {
		_, _, fpMaxX, fpMaxY := reduceRects(fpRects)
		fpW := RoundTo(CoordGrid, fpMaxX-geom.Origin.X)
		fpH := RoundTo(CoordGrid, fpMaxY-geom.Origin.Y)
		if fpW > geom.Width+overhangTolerance || fpH > geom.Height+overhangTolerance {
			diags = append(diags, Diagnostic{
				Kind:     DiagDimensionMismatch,
				Severity: SeverityWarning,
				Message: fmt.Sprintf(
					"components extend past the board outline: outline %.2fx%.2f mm, components %.2fx%.2f mm",
					geom.Width, geom.Height, fpW, fpH),
			})
		}
	}

	if geom.Width < minPlausibleDim || geom.Height < minPlausibleDim {
		diags = append(diags, Diagnostic{
			Kind:     DiagDimensionMismatch,
			Severity: SeverityError,
			Message: fmt.Sprintf("board %.2fx%.2f mm is implausibly small (minimum %.0f mm)",
				geom.Width, geom.Height, minPlausibleDim),
		})
	} else if geom.Width > maxPlausibleDim || geom.Height > maxPlausibleDim {
		diags = append(diags, Diagnostic{
			Kind:     DiagDimensionMismatch,
			Severity: SeverityWarning,
			Message: fmt.Sprintf("board %.2fx%.2f mm is implausibly large (maximum %.0f mm)",
				geom.Width, geom.Height, maxPlausibleDim),
		})
	}

	return geom, diags
}

// reduceRects folds a candidate set down to its componentwise extremes.
// A pure reduction over the collected values keeps the result independent
// of scan order.
func reduceRects(rects []Rect) (minX, minY, maxX, maxY float64) {
	n := len(rects)
	minXs := make([]float64, n)
	minYs := make([]float64, n)
	maxXs := make([]float64, n)
	maxYs := make([]float64, n)
	for i, r := range rects {
		minXs[i] = r.MinX
		minYs[i] = r.MinY
		maxXs[i] = r.MaxX
		maxYs[i] = r.MaxY
	}
	return floats.Min(minXs), floats.Min(minYs), floats.Max(maxXs), floats.Max(maxYs)
}
