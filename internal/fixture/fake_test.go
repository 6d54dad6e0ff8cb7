package fixture

// Hand-built Snapshot implementations for exercising the derivation
// pipeline without board files.

type fakePad struct {
	x, y   float64
	layers []string
	kind   PadKind
	net    string
}

func (p *fakePad) Position() (float64, float64) { return p.x, p.y }

func (p *fakePad) OnLayer(layer string) bool {
	for _, l := range p.layers {
		if l == layer {
			return true
		}
	}
	return false
}

func (p *fakePad) Kind() PadKind { return p.kind }
func (p *fakePad) Net() string   { return p.net }

type fakeFootprint struct {
	side Side
	box  Rect
	pads []Pad
}

func (f *fakeFootprint) Side() Side   { return f.side }
func (f *fakeFootprint) Bounds() Rect { return f.box }
func (f *fakeFootprint) Pads() []Pad  { return f.pads }

type fakeSnapshot struct {
	outline    []Rect
	footprints []Footprint
}

func (s *fakeSnapshot) OutlineBounds() []Rect   { return s.outline }
func (s *fakeSnapshot) Footprints() []Footprint { return s.footprints }

// smdPad is a front or back surface-mount pad on the side's copper layer.
func smdPad(side Side, x, y float64, net string) *fakePad {
	return &fakePad{x: x, y: y, layers: []string{side.CopperLayer()}, kind: PadSurfaceMount, net: net}
}

// thtPad occupies both copper layers, like a real plated hole.
func thtPad(x, y float64, net string) *fakePad {
	return &fakePad{x: x, y: y, layers: []string{"F.Cu", "B.Cu"}, kind: PadThroughHole, net: net}
}

func onePadBoard(outline Rect, fp *fakeFootprint) *fakeSnapshot {
	return &fakeSnapshot{outline: []Rect{outline}, footprints: []Footprint{fp}}
}
