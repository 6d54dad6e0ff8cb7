package fixture

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	geom := Geometry{Origin: Point{X: 10, Y: 5}, Width: 30, Height: 20}

	tests := []struct {
		name   string
		x, y   float64
		mirror bool
		want   Point
	}{
		{"front", 12.34, 6.78, false, Point{X: 2.34, Y: 1.78}},
		{"front at origin", 10, 5, false, Point{X: 0, Y: 0}},
		{"front rounding", 12.344, 6.776, false, Point{X: 2.34, Y: 1.78}},
		{"back mirrors x", 12.34, 6.78, true, Point{X: 27.66, Y: 1.78}},
		{"back at origin", 10, 5, true, Point{X: 30, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize(tt.x, tt.y, geom, tt.mirror)
			if got != tt.want {
				t.Errorf("normalize(%v, %v, mirror=%v) = %+v, want %+v", tt.x, tt.y, tt.mirror, got, tt.want)
			}
		})
	}
}

// Mirroring about the width is an involution for on-grid coordinates.
func TestNormalizeMirrorInvolution(t *testing.T) {
	geom := Geometry{Origin: Point{}, Width: 50, Height: 50}
	for i := 0; i <= 500; i++ {
		x := float64(i) * 0.1
		once := normalize(x, 0, geom, true).X
		back := geom.Width - once
		want := normalize(x, 0, geom, false).X
		if math.Abs(back-want) > 1e-9 {
			t.Fatalf("mirror not involutive at x=%v: %v vs %v", x, back, want)
		}
	}
}

func TestBuildSingleSide(t *testing.T) {
	outline := Rect{MinX: 0, MinY: 0, MaxX: 30, MaxY: 30}
	snap := onePadBoard(outline, &fakeFootprint{
		side: SideFront,
		box:  Rect{MinX: 8, MinY: 18, MaxX: 12, MaxY: 22},
		pads: []Pad{
			smdPad(SideFront, 10, 20, "GND"),
			smdPad(SideFront, 25, 5, "SIG"),
		},
	})

	fix, err := Build(snap, DefaultSelection())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(fix.TestPoints) != 2 {
		t.Fatalf("got %d test points, want 2", len(fix.TestPoints))
	}
	if fix.TestPoints[0].Point != (Point{X: 10, Y: 20}) {
		t.Errorf("first point = %+v, want (10, 20)", fix.TestPoints[0].Point)
	}
	if fix.MinY != 5 {
		t.Errorf("MinY = %v, want 5", fix.MinY)
	}
	if fix.Top != nil || fix.Bottom != nil {
		t.Error("single-side build must not partition points")
	}
}

func TestBuildDualSide(t *testing.T) {
	outline := Rect{MinX: 0, MinY: 0, MaxX: 40, MaxY: 40}
	snap := &fakeSnapshot{
		outline: []Rect{outline},
		footprints: []Footprint{
			&fakeFootprint{side: SideFront, pads: []Pad{smdPad(SideFront, 10, 10, "A")}},
			&fakeFootprint{side: SideBack, pads: []Pad{smdPad(SideBack, 10, 10, "B")}},
		},
	}

	sel := DefaultSelection()
	sel.Mode = ModeBoth
	fix, err := Build(snap, sel)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(fix.TestPoints) != 2 {
		t.Fatalf("got %d test points, want 2", len(fix.TestPoints))
	}

	// Front points always precede back points, and the merged list is
	// exactly the concatenation of the two partitions.
	if fix.TestPoints[0].Side != SideFront || fix.TestPoints[1].Side != SideBack {
		t.Errorf("scan order wrong: %v then %v", fix.TestPoints[0].Side, fix.TestPoints[1].Side)
	}
	if len(fix.Top) != 1 || len(fix.Bottom) != 1 {
		t.Fatalf("partitions = %d/%d, want 1/1", len(fix.Top), len(fix.Bottom))
	}
	if fix.Top[0] != fix.TestPoints[0] || fix.Bottom[0] != fix.TestPoints[1] {
		t.Error("partitions do not concatenate to the merged list")
	}

	// The back point mirrors about the board width.
	if fix.Bottom[0].X != 30 || fix.Bottom[0].Y != 10 {
		t.Errorf("back point = (%v, %v), want (30, 10)", fix.Bottom[0].X, fix.Bottom[0].Y)
	}
}

func TestBuildNoTestPoints(t *testing.T) {
	outline := Rect{MinX: 0, MinY: 0, MaxX: 30, MaxY: 30}
	snap := &fakeSnapshot{outline: []Rect{outline}}

	for _, mode := range []Mode{ModeFront, ModeBack, ModeBoth} {
		sel := DefaultSelection()
		sel.Mode = mode
		fix, err := Build(snap, sel)
		if fix != nil {
			t.Errorf("mode %v: got fixture despite empty selection", mode)
		}
		var noPoints *NoTestPointsError
		if !errors.As(err, &noPoints) {
			t.Fatalf("mode %v: err = %v, want NoTestPointsError", mode, err)
		}
		if noPoints.Mode != mode {
			t.Errorf("error mode = %v, want %v", noPoints.Mode, mode)
		}
		if mode == ModeBoth && !strings.Contains(err.Error(), "either side") {
			t.Errorf("dual-mode message should name both sides: %q", err.Error())
		}
	}
}

func TestBuildMinYAcrossSides(t *testing.T) {
	outline := Rect{MinX: 0, MinY: 0, MaxX: 40, MaxY: 40}
	snap := &fakeSnapshot{
		outline: []Rect{outline},
		footprints: []Footprint{
			&fakeFootprint{side: SideFront, pads: []Pad{smdPad(SideFront, 10, 30, "A")}},
			&fakeFootprint{side: SideBack, pads: []Pad{smdPad(SideBack, 10, 7, "B")}},
		},
	}

	sel := DefaultSelection()
	sel.Mode = ModeBoth
	fix, err := Build(snap, sel)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if fix.MinY != 7 {
		t.Errorf("MinY = %v, want 7", fix.MinY)
	}
}

func TestBuildCarriesDiagnostics(t *testing.T) {
	// No outline: extents come from the footprint, and the degraded
	// geometry warning must survive into the fixture.
	snap := &fakeSnapshot{
		footprints: []Footprint{&fakeFootprint{
			side: SideFront,
			box:  Rect{MinX: 0, MinY: 0, MaxX: 30, MaxY: 30},
			pads: []Pad{smdPad(SideFront, 10, 20, "GND")},
		}},
	}
	fix, err := Build(snap, DefaultSelection())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !hasDiag(fix.Diagnostics, DiagDegradedGeometry, SeverityWarning) {
		t.Errorf("diagnostics lost: %v", fix.Diagnostics)
	}
}
