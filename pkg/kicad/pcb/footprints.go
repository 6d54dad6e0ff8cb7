package pcb

import (
	"fmt"
	"strings"

	"github.com/tinylabs/openfixture/pkg/kicad/sexp"
)

// parseFootprints extracts all (footprint ...) nodes. KiCad 6 wrote
// (module ...); accept both. Footprints that fail to parse are skipped.
func parseFootprints(root *sexp.List, netMap *NetMap) ([]Footprint, error) {
	nodes := sexp.FindAll(root, "footprint")
	nodes = append(nodes, sexp.FindAll(root, "module")...)

	var footprints []Footprint
	for _, fpNode := range nodes {
		fp, err := parseFootprint(fpNode, netMap)
		if err != nil {
			continue
		}
		footprints = append(footprints, *fp)
	}
	return footprints, nil
}

// parseFootprint extracts one component placement.
// Format: (footprint "Library:Name" (layer "F.Cu") (at x y [angle]) ... (pad ...) ...)
func parseFootprint(node *sexp.List, netMap *NetMap) (*Footprint, error) {
	fp := &Footprint{}

	fullName, err := sexp.Str(node, 1)
	if err != nil {
		return nil, fmt.Errorf("footprint name: %w", err)
	}
	if lib, name, ok := strings.Cut(fullName, ":"); ok {
		fp.Library = lib
		fp.Name = name
	} else {
		fp.Name = fullName
	}

	layerNode, found := sexp.Find(node, "layer")
	if !found {
		return nil, fmt.Errorf("footprint %s: missing layer", fullName)
	}
	layer, err := sexp.Str(layerNode, 1)
	if err != nil {
		return nil, fmt.Errorf("footprint %s: layer: %w", fullName, err)
	}
	fp.Layer = layer

	atNode, found := sexp.Find(node, "at")
	if !found {
		return nil, fmt.Errorf("footprint %s: missing position", fullName)
	}
	x, err := sexp.Float(atNode, 1)
	if err != nil {
		return nil, fmt.Errorf("footprint %s: X: %w", fullName, err)
	}
	y, err := sexp.Float(atNode, 2)
	if err != nil {
		return nil, fmt.Errorf("footprint %s: Y: %w", fullName, err)
	}
	fp.Position.X = x
	fp.Position.Y = y
	if angle, err := sexp.Float(atNode, 3); err == nil {
		fp.Position.Angle = Angle(angle)
	}

	// Reference/Value: KiCad 7+ uses (property "Reference" "R1"),
	// KiCad 6 uses (fp_text reference "R1" ...).
	for _, propNode := range sexp.FindAll(node, "property") {
		key, err := sexp.Str(propNode, 1)
		if err != nil {
			continue
		}
		value, err := sexp.Str(propNode, 2)
		if err != nil {
			continue
		}
		switch key {
		case "Reference":
			fp.Reference = value
		case "Value":
			fp.Value = value
		}
	}
	for _, textNode := range sexp.FindAll(node, "fp_text") {
		kind, err := sexp.Str(textNode, 1)
		if err != nil {
			continue
		}
		value, err := sexp.Str(textNode, 2)
		if err != nil {
			continue
		}
		switch kind {
		case "reference":
			if fp.Reference == "" {
				fp.Reference = value
			}
		case "value":
			if fp.Value == "" {
				fp.Value = value
			}
		}
	}

	for _, padNode := range sexp.FindAll(node, "pad") {
		pad, err := parsePad(padNode, netMap)
		if err != nil {
			continue
		}
		fp.Pads = append(fp.Pads, *pad)
	}

	return fp, nil
}

// parsePad extracts one pad.
// Format: (pad "1" smd roundrect (at x y [angle]) (size w h) (layers ...) (net n "name") ...)
func parsePad(node *sexp.List, netMap *NetMap) (*Pad, error) {
	pad := &Pad{}

	number, err := sexp.Str(node, 1)
	if err != nil {
		return nil, fmt.Errorf("pad number: %w", err)
	}
	pad.Number = number

	padType, err := sexp.Str(node, 2)
	if err != nil {
		return nil, fmt.Errorf("pad %s: type: %w", number, err)
	}
	pad.Type = padType

	shape, err := sexp.Str(node, 3)
	if err != nil {
		return nil, fmt.Errorf("pad %s: shape: %w", number, err)
	}
	pad.Shape = shape

	atNode, found := sexp.Find(node, "at")
	if !found {
		return nil, fmt.Errorf("pad %s: missing position", number)
	}
	x, err := sexp.Float(atNode, 1)
	if err != nil {
		return nil, fmt.Errorf("pad %s: X: %w", number, err)
	}
	y, err := sexp.Float(atNode, 2)
	if err != nil {
		return nil, fmt.Errorf("pad %s: Y: %w", number, err)
	}
	pad.Position.X = x
	pad.Position.Y = y
	if angle, err := sexp.Float(atNode, 3); err == nil {
		pad.Position.Angle = Angle(angle)
	}

	sizeNode, found := sexp.Find(node, "size")
	if !found {
		return nil, fmt.Errorf("pad %s: missing size", number)
	}
	w, err := sexp.Float(sizeNode, 1)
	if err != nil {
		return nil, fmt.Errorf("pad %s: width: %w", number, err)
	}
	h, err := sexp.Float(sizeNode, 2)
	if err != nil {
		return nil, fmt.Errorf("pad %s: height: %w", number, err)
	}
	pad.Size = Size{Width: w, Height: h}

	if drillNode, found := sexp.Find(node, "drill"); found {
		if d, err := sexp.Float(drillNode, 1); err == nil {
			pad.Drill = d
		}
	}

	layersNode, found := sexp.Find(node, "layers")
	if !found {
		return nil, fmt.Errorf("pad %s: missing layers", number)
	}
	pad.Layers = LayerSet(sexp.Atoms(layersNode))

	pad.Net = parseNetRef(node, netMap)

	return pad, nil
}
