// Package config loads fixture hardware profiles. A profile is a small
// YAML file describing the physical hardware the jig is built from
// (material and board thickness, screws, nuts, pivot, pogo pins), so a
// shop's standard stock only has to be spelled out once. Environment
// variables override profile values; CLI flags override both.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tinylabs/openfixture/internal/fixture"
)

// Profile holds hardware dimensions. Every field is optional; nil fields
// leave the corresponding default untouched.
type Profile struct {
	MatTh    *float64 `yaml:"mat_th"`
	PCBTh    *float64 `yaml:"pcb_th"`
	ScrewLen *float64 `yaml:"screw_len"`
	ScrewD   *float64 `yaml:"screw_d"`
	Rev      string   `yaml:"rev"`
	WasherTh *float64 `yaml:"washer_th"`
	NutF2F   *float64 `yaml:"nut_f2f"`
	NutC2C   *float64 `yaml:"nut_c2c"`
	NutTh    *float64 `yaml:"nut_th"`
	PivotD   *float64 `yaml:"pivot_d"`
	Border   *float64 `yaml:"border"`
	PogoLen  *float64 `yaml:"pogo_len"`
}

// Load reads a profile file. Unknown keys and non-numeric dimensions are
// configuration errors, reported immediately rather than at render time.
func Load(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening profile: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		return nil, &fixture.InvalidConfigError{Field: path, Reason: err.Error()}
	}
	return &p, nil
}

// Environment override variables. Values must parse as numbers (except
// the revision); anything else is an InvalidConfigError.
const (
	EnvMatTh    = "OPENFIXTURE_MAT_TH"
	EnvPCBTh    = "OPENFIXTURE_PCB_TH"
	EnvScrewLen = "OPENFIXTURE_SCREW_LEN"
	EnvScrewD   = "OPENFIXTURE_SCREW_D"
	EnvRev      = "OPENFIXTURE_REV"
	EnvWasherTh = "OPENFIXTURE_WASHER_TH"
	EnvNutF2F   = "OPENFIXTURE_NUT_F2F"
	EnvNutC2C   = "OPENFIXTURE_NUT_C2C"
	EnvNutTh    = "OPENFIXTURE_NUT_TH"
	EnvPivotD   = "OPENFIXTURE_PIVOT_D"
	EnvBorder   = "OPENFIXTURE_BORDER"
	EnvPogoLen  = "OPENFIXTURE_POGO_LEN"
)

// FromEnv builds a profile from environment overrides. Unset variables
// leave the corresponding field nil.
func FromEnv() (*Profile, error) {
	p := &Profile{Rev: os.Getenv(EnvRev)}

	fields := []struct {
		env string
		dst **float64
	}{
		{EnvMatTh, &p.MatTh},
		{EnvPCBTh, &p.PCBTh},
		{EnvScrewLen, &p.ScrewLen},
		{EnvScrewD, &p.ScrewD},
		{EnvWasherTh, &p.WasherTh},
		{EnvNutF2F, &p.NutF2F},
		{EnvNutC2C, &p.NutC2C},
		{EnvNutTh, &p.NutTh},
		{EnvPivotD, &p.PivotD},
		{EnvBorder, &p.Border},
		{EnvPogoLen, &p.PogoLen},
	}
	for _, f := range fields {
		raw, ok := os.LookupEnv(f.env)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &fixture.InvalidConfigError{Field: f.env, Reason: fmt.Sprintf("not a number: %q", raw)}
		}
		*f.dst = &v
	}
	return p, nil
}

// Apply copies the profile's set fields onto a hardware record.
func (p *Profile) Apply(hw *fixture.Hardware) {
	if p.MatTh != nil {
		hw.MatTh = *p.MatTh
	}
	if p.PCBTh != nil {
		hw.PCBTh = *p.PCBTh
	}
	if p.ScrewLen != nil {
		hw.ScrewLen = *p.ScrewLen
	}
	if p.ScrewD != nil {
		hw.ScrewD = *p.ScrewD
	}
	if p.Rev != "" {
		hw.Rev = p.Rev
	}
	if p.WasherTh != nil {
		hw.WasherTh = p.WasherTh
	}
	if p.NutF2F != nil {
		hw.NutF2F = p.NutF2F
	}
	if p.NutC2C != nil {
		hw.NutC2C = p.NutC2C
	}
	if p.NutTh != nil {
		hw.NutTh = p.NutTh
	}
	if p.PivotD != nil {
		hw.PivotD = p.PivotD
	}
	if p.Border != nil {
		hw.Border = p.Border
	}
	if p.PogoLen != nil {
		hw.PogoLen = p.PogoLen
	}
}
