package fixture

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func testFixture() *Fixture {
	return &Fixture{
		Geometry: Geometry{Origin: Point{X: 10, Y: 5}, Width: 30, Height: 20},
		MinY:     2.5,
		TestPoints: []TestPoint{
			{Point: Point{X: 10, Y: 20}, Side: SideFront, Net: "GND"},
			{Point: Point{X: 2.34, Y: 2.5}, Side: SideFront, Net: "SIG"},
		},
	}
}

func TestAssemble(t *testing.T) {
	hw := DefaultHardware()
	hw.MatTh = 3.0
	hw.Rev = "rev.A"

	ps, err := Assemble(testFixture(), hw, OutputPaths{
		Outline: "out/board-outline.dxf",
		Track:   "out/board-track.dxf",
	})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	wantNames := []string{
		"test_points", "tp_min_y", "mat_th", "pcb_th", "pcb_x", "pcb_y",
		"pcb_outline", "screw_thr_len", "screw_d", "pcb_track", "rev",
	}
	if got := ps.Names(); !reflect.DeepEqual(got, wantNames) {
		t.Errorf("names = %v, want %v", got, wantNames)
	}

	want := map[string]string{
		"test_points":   "[[10.00,20.00],[2.34,2.50]]",
		"tp_min_y":      "2.50",
		"mat_th":        "3.00",
		"pcb_th":        "1.60",
		"pcb_x":         "30.00",
		"pcb_y":         "20.00",
		"pcb_outline":   `"out/board-outline.dxf"`,
		"screw_thr_len": "14.00",
		"screw_d":       "3.00",
		"pcb_track":     `"out/board-track.dxf"`,
		"rev":           `"rev.A"`,
	}
	for name, value := range want {
		got, ok := ps.Lookup(name)
		if !ok {
			t.Errorf("missing parameter %s", name)
			continue
		}
		if got != value {
			t.Errorf("%s = %s, want %s", name, got, value)
		}
	}
}

func TestAssembleOptionalHardware(t *testing.T) {
	hw := DefaultHardware()
	hw.MatTh = 2.5
	washer := 0.5
	pogo := 16.54
	hw.WasherTh = &washer
	hw.PogoLen = &pogo

	ps, err := Assemble(testFixture(), hw, OutputPaths{Outline: "o.dxf"})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if got, _ := ps.Lookup("washer_th"); got != "0.50" {
		t.Errorf("washer_th = %q, want 0.50", got)
	}
	if got, _ := ps.Lookup("pogo_uncompressed_length"); got != "16.54" {
		t.Errorf("pogo_uncompressed_length = %q, want 16.54", got)
	}
	if _, ok := ps.Lookup("nut_th"); ok {
		t.Error("nut_th emitted despite being unset")
	}
}

func TestAssembleDualSide(t *testing.T) {
	fix := testFixture()
	fix.Top = fix.TestPoints[:1]
	fix.Bottom = fix.TestPoints[1:]

	hw := DefaultHardware()
	hw.MatTh = 3.0

	ps, err := Assemble(fix, hw, OutputPaths{
		Outline:     "o.dxf",
		TrackTop:    "top.dxf",
		TrackBottom: "bottom.dxf",
	})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if got, _ := ps.Lookup("test_points_top"); got != "[[10.00,20.00]]" {
		t.Errorf("test_points_top = %q", got)
	}
	if got, _ := ps.Lookup("test_points_bottom"); got != "[[2.34,2.50]]" {
		t.Errorf("test_points_bottom = %q", got)
	}
	if _, ok := ps.Lookup("pcb_track"); ok {
		t.Error("single-side track path emitted in dual mode")
	}
}

func TestAssembleInvalidConfig(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*Hardware)
		field string
	}{
		{"missing mat_th", func(hw *Hardware) { hw.MatTh = 0 }, "mat_th"},
		{"negative mat_th", func(hw *Hardware) { hw.MatTh = -1 }, "mat_th"},
		{"zero pcb_th", func(hw *Hardware) { hw.PCBTh = 0 }, "pcb_th"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hw := DefaultHardware()
			hw.MatTh = 3.0
			tt.mut(&hw)

			_, err := Assemble(testFixture(), hw, OutputPaths{Outline: "o.dxf"})
			var invalid *InvalidConfigError
			if !errors.As(err, &invalid) {
				t.Fatalf("err = %v, want InvalidConfigError", err)
			}
			if invalid.Field != tt.field {
				t.Errorf("field = %q, want %q", invalid.Field, tt.field)
			}
		})
	}
}

func TestAssembleEmptyFixture(t *testing.T) {
	hw := DefaultHardware()
	hw.MatTh = 3.0
	fix := &Fixture{MinY: math.Inf(1)}

	_, err := Assemble(fix, hw, OutputPaths{Outline: "o.dxf"})
	var noPoints *NoTestPointsError
	if !errors.As(err, &noPoints) {
		t.Fatalf("err = %v, want NoTestPointsError", err)
	}
}

// AllParamNames must agree exactly with what Assemble emits per mode:
// a coverage audit that demands a parameter the assembler never sets
// would fail every valid geometry model.
func TestAllParamNamesMatchesAssemble(t *testing.T) {
	opt := func(v float64) *float64 { return &v }
	hw := DefaultHardware()
	hw.MatTh = 3.0
	hw.Rev = "rev.A"
	hw.WasherTh = opt(0.5)
	hw.NutF2F = opt(5.5)
	hw.NutC2C = opt(6.4)
	hw.NutTh = opt(2.4)
	hw.PivotD = opt(3.0)
	hw.Border = opt(2.0)
	hw.PogoLen = opt(16.54)

	for _, dual := range []bool{false, true} {
		fix := testFixture()
		paths := OutputPaths{Outline: "o.dxf", Track: "t.dxf"}
		if dual {
			fix.Top = fix.TestPoints[:1]
			fix.Bottom = fix.TestPoints[1:]
			paths = OutputPaths{Outline: "o.dxf", TrackTop: "top.dxf", TrackBottom: "bottom.dxf"}
		}

		ps, err := Assemble(fix, hw, paths)
		if err != nil {
			t.Fatalf("dual=%v: Assemble failed: %v", dual, err)
		}
		if got, want := ps.Names(), AllParamNames(dual); !reflect.DeepEqual(got, want) {
			t.Errorf("dual=%v: Assemble emits %v,\nAllParamNames returns %v", dual, got, want)
		}
	}
}
