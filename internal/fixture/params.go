package fixture

import (
	"fmt"
	"strings"
)

// Hardware holds the fixture-hardware dimensions passed through to the
// geometry model. Required fields are plain values with defaults; optional
// fields are pointers and omitted from the parameter set when nil.
type Hardware struct {
	MatTh    float64 // laser-cut material thickness, required
	PCBTh    float64 // board thickness
	ScrewLen float64 // assembly screw thread length
	ScrewD   float64 // assembly screw diameter
	Rev      string  // revision label stamped on the fixture

	WasherTh *float64 // hinge washer thickness
	NutF2F   *float64 // hex nut flat-to-flat
	NutC2C   *float64 // hex nut corner-to-corner
	NutTh    *float64 // hex nut thickness
	PivotD   *float64 // hinge pivot diameter
	Border   *float64 // support ledge under the board edge
	PogoLen  *float64 // pogo pin uncompressed length
}

// Standard hardware dimensions for the common jig build.
const (
	DefaultPCBTh    = 1.6
	DefaultScrewLen = 14.0
	DefaultScrewD   = 3.0
)

// DefaultHardware returns a Hardware with the standard dimensions filled
// in. MatTh has no sane default and must be set by the caller.
func DefaultHardware() Hardware {
	return Hardware{
		PCBTh:    DefaultPCBTh,
		ScrewLen: DefaultScrewLen,
		ScrewD:   DefaultScrewD,
	}
}

// OutputPaths names the drawing files the geometry model imports. Track
// is used in single-side mode; TrackTop/TrackBottom in dual-sided mode.
type OutputPaths struct {
	Outline     string
	Track       string
	TrackTop    string
	TrackBottom string
}

// Param is one named value for the geometry tool. Value is the final
// literal: numbers are bare with exactly two decimals, strings carry their
// quotes, point arrays are bracketed pair lists.
type Param struct {
	Name  string
	Value string
}

// ParamSet is the ordered parameter mapping handed to the geometry tool.
type ParamSet struct {
	params []Param
}

// Params returns the parameters in emission order.
func (ps *ParamSet) Params() []Param { return ps.params }

// Names returns the parameter names in emission order.
func (ps *ParamSet) Names() []string {
	names := make([]string, len(ps.params))
	for i, p := range ps.params {
		names[i] = p.Name
	}
	return names
}

// Lookup returns the literal for a named parameter.
func (ps *ParamSet) Lookup(name string) (string, bool) {
	for _, p := range ps.params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

func (ps *ParamSet) addNum(name string, v float64) {
	ps.params = append(ps.params, Param{Name: name, Value: fmt.Sprintf("%.2f", v)})
}

func (ps *ParamSet) addStr(name, s string) {
	ps.params = append(ps.params, Param{Name: name, Value: fmt.Sprintf("%q", s)})
}

func (ps *ParamSet) addPoints(name string, pts []TestPoint) {
	pairs := make([]string, len(pts))
	for i, tp := range pts {
		pairs[i] = fmt.Sprintf("[%.2f,%.2f]", tp.X, tp.Y)
	}
	ps.params = append(ps.params, Param{
		Name:  name,
		Value: "[" + strings.Join(pairs, ",") + "]",
	})
}

func (ps *ParamSet) addOptNum(name string, v *float64) {
	if v != nil {
		ps.addNum(name, *v)
	}
}

// AllParamNames lists every parameter name Assemble can emit for the
// given mode, including the optional ones, in emission order. Dual mode
// carries per-side point partitions and track drawings in place of the
// single-side track drawing. Used to audit a geometry model for coverage.
func AllParamNames(dual bool) []string {
	names := []string{"test_points"}
	if dual {
		names = append(names, "test_points_top", "test_points_bottom")
	}
	names = append(names,
		"tp_min_y", "mat_th", "pcb_th", "pcb_x", "pcb_y",
		"pcb_outline", "screw_thr_len", "screw_d",
	)
	if dual {
		names = append(names, "pcb_track_top", "pcb_track_bottom")
	} else {
		names = append(names, "pcb_track")
	}
	return append(names,
		"rev", "washer_th", "nut_od_f2f", "nut_od_c2c", "nut_th",
		"pivot_d", "pcb_support_border", "pogo_uncompressed_length",
	)
}

// Assemble packages the derived geometry and hardware configuration into
// the parameter set consumed by the geometry tool. It has no side effects
// beyond constructing the mapping.
func Assemble(fix *Fixture, hw Hardware, paths OutputPaths) (*ParamSet, error) {
	if hw.MatTh <= 0 {
		return nil, &InvalidConfigError{Field: "mat_th", Reason: "material thickness must be a positive dimension"}
	}
	if hw.PCBTh <= 0 {
		return nil, &InvalidConfigError{Field: "pcb_th", Reason: "board thickness must be a positive dimension"}
	}
	if len(fix.TestPoints) == 0 {
		return nil, &NoTestPointsError{}
	}

	ps := &ParamSet{}
	ps.addPoints("test_points", fix.TestPoints)
	if fix.Top != nil || fix.Bottom != nil {
		ps.addPoints("test_points_top", fix.Top)
		ps.addPoints("test_points_bottom", fix.Bottom)
	}
	ps.addNum("tp_min_y", fix.MinY)
	ps.addNum("mat_th", hw.MatTh)
	ps.addNum("pcb_th", hw.PCBTh)
	ps.addNum("pcb_x", fix.Width)
	ps.addNum("pcb_y", fix.Height)
	ps.addStr("pcb_outline", paths.Outline)
	ps.addNum("screw_thr_len", hw.ScrewLen)
	ps.addNum("screw_d", hw.ScrewD)
	if paths.Track != "" {
		ps.addStr("pcb_track", paths.Track)
	}
	if paths.TrackTop != "" {
		ps.addStr("pcb_track_top", paths.TrackTop)
	}
	if paths.TrackBottom != "" {
		ps.addStr("pcb_track_bottom", paths.TrackBottom)
	}
	if hw.Rev != "" {
		ps.addStr("rev", hw.Rev)
	}
	ps.addOptNum("washer_th", hw.WasherTh)
	ps.addOptNum("nut_od_f2f", hw.NutF2F)
	ps.addOptNum("nut_od_c2c", hw.NutC2C)
	ps.addOptNum("nut_th", hw.NutTh)
	ps.addOptNum("pivot_d", hw.PivotD)
	ps.addOptNum("pcb_support_border", hw.Border)
	ps.addOptNum("pogo_uncompressed_length", hw.PogoLen)

	return ps, nil
}
