package fixture

import (
	"fmt"
	"math"
)

// TestPoint is a probe landing location in fixture-local coordinates.
type TestPoint struct {
	Point
	Side Side
	Net  string // diagnostic only
}

// Fixture is the derived jig geometry for one board snapshot. It is built
// once per generation run and never mutated afterwards.
type Fixture struct {
	Geometry

	// MinY is the smallest normalized Y among all test points, used to
	// size the jig's support structures. +Inf when no points were found.
	MinY float64

	// TestPoints holds every accepted point in scan order: all front
	// points before all back points in dual-sided mode.
	TestPoints []TestPoint

	// Top and Bottom partition TestPoints per side in dual-sided mode;
	// both are nil otherwise.
	Top    []TestPoint
	Bottom []TestPoint

	// Diagnostics collects non-fatal geometry issues from the run.
	Diagnostics []Diagnostic
}

// Build runs the full derivation pipeline over one board snapshot:
// geometry extraction, then per-side pad selection and coordinate
// normalization. It fails with NoTestPointsError when nothing qualifies;
// the caller must not invoke the geometry tool in that case.
func Build(snap Snapshot, sel Selection) (*Fixture, error) {
	geom, diags := ExtractGeometry(snap)

	fix := &Fixture{
		Geometry:    geom,
		MinY:        math.Inf(1),
		Diagnostics: diags,
	}

	dual := sel.Mode == ModeBoth
	for _, side := range sel.Mode.Sides() {
		for _, c := range selectPads(snap, side, sel) {
			pt := normalize(c.x, c.y, geom, side.Mirror())
			tp := TestPoint{Point: pt, Side: side, Net: c.net}
			fix.TestPoints = append(fix.TestPoints, tp)
			if dual {
				if side == SideFront {
					fix.Top = append(fix.Top, tp)
				} else {
					fix.Bottom = append(fix.Bottom, tp)
				}
			}
			if pt.Y < fix.MinY {
				fix.MinY = pt.Y
			}
		}
	}

	if len(fix.TestPoints) == 0 {
		return nil, &NoTestPointsError{Mode: sel.Mode}
	}
	return fix, nil
}

func (f *Fixture) String() string {
	return fmt.Sprintf("Fixture: origin=(%.2f,%.2f) dims=(%.2f,%.2f) min_y=%.2f points=%d",
		f.Origin.X, f.Origin.Y, f.Width, f.Height, f.MinY, len(f.TestPoints))
}
