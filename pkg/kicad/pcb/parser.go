package pcb

import (
	"fmt"
	"io"
	"os"

	"github.com/tinylabs/openfixture/pkg/kicad/sexp"
)

// MinSupportedVersion is the oldest board file format accepted (KiCad 6.0).
const MinSupportedVersion = 20211014

// ParseFile reads and parses a board file.
func ParseFile(filename string) (*Board, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening board file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads and parses a board from r.
func Parse(r io.Reader) (*Board, error) {
	nodes, err := sexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing s-expressions: %w", err)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	root, ok := nodes[0].(*sexp.List)
	if !ok || root.Name() != "kicad_pcb" {
		return nil, fmt.Errorf("not a KiCad PCB file: expected (kicad_pcb ...)")
	}

	version, generator, err := parseHeader(root)
	if err != nil {
		return nil, err
	}

	board := &Board{
		Version:   version,
		Generator: generator,
	}

	if generalNode, found := sexp.Find(root, "general"); found {
		board.General = parseGeneral(generalNode)
	}
	parseTitleBlock(root, &board.General)

	if layersNode, found := sexp.Find(root, "layers"); found {
		layers, err := parseLayers(layersNode)
		if err != nil {
			return nil, fmt.Errorf("parsing layers: %w", err)
		}
		board.Layers = layers
	}

	nets, err := parseNets(root)
	if err != nil {
		return nil, fmt.Errorf("parsing nets: %w", err)
	}
	board.Nets = nets
	netMap := NewNetMap(board.Nets)

	board.Graphics = parseGraphics(root)

	tracks, err := parseTracks(root, netMap)
	if err != nil {
		return nil, fmt.Errorf("parsing tracks: %w", err)
	}
	board.Tracks = tracks

	vias, err := parseVias(root, netMap)
	if err != nil {
		return nil, fmt.Errorf("parsing vias: %w", err)
	}
	board.Vias = vias

	footprints, err := parseFootprints(root, netMap)
	if err != nil {
		return nil, fmt.Errorf("parsing footprints: %w", err)
	}
	board.Footprints = footprints

	return board, nil
}

// parseHeader extracts version and generator.
// Format: (kicad_pcb (version 20221018) (generator pcbnew) ...)
func parseHeader(root *sexp.List) (version int, generator string, err error) {
	versionNode, found := sexp.Find(root, "version")
	if !found {
		return 0, "", fmt.Errorf("missing required 'version' field")
	}

	ver, err := sexp.Int(versionNode, 1)
	if err != nil {
		return 0, "", fmt.Errorf("parsing version: %w", err)
	}
	if ver < MinSupportedVersion {
		return 0, "", fmt.Errorf("unsupported board file version %d (minimum %d / KiCad 6.0)", ver, MinSupportedVersion)
	}

	gen := "unknown"
	if hostNode, found := sexp.Find(root, "host"); found {
		// pre-7 format: (host pcbnew "(6.0.0)")
		if tool, err := sexp.Str(hostNode, 1); err == nil {
			gen = tool
		}
	} else if genNode, found := sexp.Find(root, "generator"); found {
		if tool, err := sexp.Str(genNode, 1); err == nil {
			gen = tool
		}
	}

	return ver, gen, nil
}

// parseGeneral extracts (general (thickness 1.6) ...).
func parseGeneral(node *sexp.List) General {
	general := General{}
	if th, found := sexp.Find(node, "thickness"); found {
		if v, err := sexp.Float(th, 1); err == nil {
			general.Thickness = v
		}
	}
	return general
}

// parseTitleBlock extracts (title_block (title ...) (rev ...) ...).
// Older writers put these directly under (general ...); accept both.
func parseTitleBlock(root *sexp.List, general *General) {
	sources := []*sexp.List{}
	if tb, found := sexp.Find(root, "title_block"); found {
		sources = append(sources, tb)
	}
	if g, found := sexp.Find(root, "general"); found {
		sources = append(sources, g)
	}

	for _, src := range sources {
		fields := map[string]*string{
			"title":   &general.Title,
			"date":    &general.Date,
			"rev":     &general.Revision,
			"company": &general.Company,
		}
		for key, dst := range fields {
			if *dst != "" {
				continue
			}
			if node, found := sexp.Find(src, key); found {
				if v, err := sexp.Str(node, 1); err == nil {
					*dst = v
				}
			}
		}
	}
}

// parseLayers extracts layer definitions.
// Format: (layers (0 "F.Cu" signal) (31 "B.Cu" signal) ...)
func parseLayers(node *sexp.List) ([]Layer, error) {
	var layers []Layer
	for i, item := range node.Items {
		if i == 0 {
			continue
		}
		layerNode, ok := item.(*sexp.List)
		if !ok {
			continue
		}

		number, err := sexp.Int(layerNode, 0)
		if err != nil {
			return nil, fmt.Errorf("layer number: %w", err)
		}
		name, err := sexp.Str(layerNode, 1)
		if err != nil {
			return nil, fmt.Errorf("layer name: %w", err)
		}
		layerType, err := sexp.Str(layerNode, 2)
		if err != nil {
			layerType = "user"
		}

		layers = append(layers, Layer{Number: number, Name: name, Type: layerType})
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("no layers defined")
	}
	return layers, nil
}

// parseNets extracts top-level (net <number> "<name>") nodes.
func parseNets(root *sexp.List) ([]Net, error) {
	var nets []Net
	for _, netNode := range sexp.FindAll(root, "net") {
		number, err := sexp.Int(netNode, 1)
		if err != nil {
			return nil, fmt.Errorf("net number: %w", err)
		}
		name, _ := sexp.Str(netNode, 2) // net 0 has no name
		nets = append(nets, Net{Number: number, Name: name})
	}
	return nets, nil
}

// parseTracks extracts (segment ...) nodes.
func parseTracks(root *sexp.List, netMap *NetMap) ([]Track, error) {
	var tracks []Track
	for _, node := range sexp.FindAll(root, "segment") {
		track := Track{Width: 0.15}

		start, err := parseXY(node, "start")
		if err != nil {
			return nil, fmt.Errorf("segment start: %w", err)
		}
		track.Start = start

		end, err := parseXY(node, "end")
		if err != nil {
			return nil, fmt.Errorf("segment end: %w", err)
		}
		track.End = end

		if widthNode, found := sexp.Find(node, "width"); found {
			if w, err := sexp.Float(widthNode, 1); err == nil {
				track.Width = w
			}
		}

		layerNode, found := sexp.Find(node, "layer")
		if !found {
			return nil, fmt.Errorf("segment missing layer")
		}
		layer, err := sexp.Str(layerNode, 1)
		if err != nil {
			return nil, fmt.Errorf("segment layer: %w", err)
		}
		track.Layer = layer

		track.Net = parseNetRef(node, netMap)
		tracks = append(tracks, track)
	}
	return tracks, nil
}

// parseVias extracts (via ...) nodes.
func parseVias(root *sexp.List, netMap *NetMap) ([]Via, error) {
	var vias []Via
	for _, node := range sexp.FindAll(root, "via") {
		via := Via{}

		at, found := sexp.Find(node, "at")
		if !found {
			return nil, fmt.Errorf("via missing position")
		}
		x, err := sexp.Float(at, 1)
		if err != nil {
			return nil, fmt.Errorf("via X: %w", err)
		}
		y, err := sexp.Float(at, 2)
		if err != nil {
			return nil, fmt.Errorf("via Y: %w", err)
		}
		via.Position = Position{X: x, Y: y}

		if sizeNode, found := sexp.Find(node, "size"); found {
			if v, err := sexp.Float(sizeNode, 1); err == nil {
				via.Size = v
			}
		}
		if drillNode, found := sexp.Find(node, "drill"); found {
			if v, err := sexp.Float(drillNode, 1); err == nil {
				via.Drill = v
			}
		}
		if layersNode, found := sexp.Find(node, "layers"); found {
			via.Layers = LayerSet(sexp.Atoms(layersNode))
		}

		via.Net = parseNetRef(node, netMap)
		vias = append(vias, via)
	}
	return vias, nil
}

// parseNetRef resolves an element's (net N) reference against the net map.
func parseNetRef(node *sexp.List, netMap *NetMap) *Net {
	netNode, found := sexp.Find(node, "net")
	if !found || netMap == nil {
		return nil
	}
	num, err := sexp.Int(netNode, 1)
	if err != nil {
		return nil
	}
	if net, ok := netMap.ByNumber(num); ok {
		return net
	}
	return nil
}

// parseXY extracts a (key X Y) coordinate child.
func parseXY(node *sexp.List, key string) (Position, error) {
	sub, found := sexp.Find(node, key)
	if !found {
		return Position{}, fmt.Errorf("missing %q", key)
	}
	x, err := sexp.Float(sub, 1)
	if err != nil {
		return Position{}, fmt.Errorf("%s X: %w", key, err)
	}
	y, err := sexp.Float(sub, 2)
	if err != nil {
		return Position{}, fmt.Errorf("%s Y: %w", key, err)
	}
	return Position{X: x, Y: y}, nil
}
