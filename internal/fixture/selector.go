package fixture

// Selection configures which pads qualify as test points.
type Selection struct {
	// Mode selects the board face(s) to probe.
	Mode Mode

	// ForceLayer unconditionally includes any pad that occupies it.
	ForceLayer string

	// IgnoreLayer excludes any pad that occupies it (unless forced).
	IgnoreLayer string

	// IncludeSMD admits surface-mount pads.
	IncludeSMD bool

	// IncludeTHT admits through-hole pads, subject to the
	// opposite-side rule.
	IncludeTHT bool
}

// DefaultSelection is front-side probing of surface-mount pads, with the
// Eco layers as designer overrides.
func DefaultSelection() Selection {
	return Selection{
		Mode:        ModeFront,
		ForceLayer:  "Eco2.User",
		IgnoreLayer: "Eco1.User",
		IncludeSMD:  true,
		IncludeTHT:  false,
	}
}

// candidate is a qualifying pad before coordinate normalization.
type candidate struct {
	x, y float64
	net  string
}

// selectPads scans every pad on the board and applies the inclusion
// predicates for one side, in strict precedence order:
//
//  1. the pad must occupy the side's copper layer;
//  2. a pad on the force layer is accepted unconditionally;
//  3. a pad on the ignore layer is rejected;
//  4. a pad under the side's paste stencil is rejected (pasted copper is
//     not bare, so a probe cannot contact it);
//  5. the pad type must be enabled, and a through-hole pad is only
//     accessible from the side opposite its component body.
func selectPads(snap Snapshot, side Side, sel Selection) []candidate {
	layer := side.CopperLayer()
	paste := side.PasteLayer()

	var out []candidate
	for _, fp := range snap.Footprints() {
		for _, pad := range fp.Pads() {
			if !pad.OnLayer(layer) {
				continue
			}

			if !pad.OnLayer(sel.ForceLayer) {
				if pad.OnLayer(sel.IgnoreLayer) {
					continue
				}
				if pad.OnLayer(paste) {
					continue
				}
				switch pad.Kind() {
				case PadSurfaceMount:
					if !sel.IncludeSMD {
						continue
					}
				case PadThroughHole:
					if !sel.IncludeTHT {
						continue
					}
					if fp.Side() == side {
						// The component body blocks probe
						// access from its own side.
						continue
					}
				default:
					continue
				}
			}

			x, y := pad.Position()
			out = append(out, candidate{x: x, y: y, net: pad.Net()})
		}
	}
	return out
}
