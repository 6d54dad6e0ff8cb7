package dxf

import (
	"strings"
	"testing"
)

func render(w *Writer) string {
	var b strings.Builder
	if _, err := w.WriteTo(&b); err != nil {
		panic(err)
	}
	return b.String()
}

func TestWriterDocumentShape(t *testing.T) {
	w := NewWriter()
	out := render(w)

	if !strings.HasPrefix(out, "0\r\nSECTION\r\n2\r\nENTITIES\r\n") {
		t.Errorf("missing entities section header:\n%s", out)
	}
	if !strings.HasSuffix(out, "0\r\nENDSEC\r\n0\r\nEOF\r\n") {
		t.Errorf("missing trailer:\n%s", out)
	}
}

func TestWriterLine(t *testing.T) {
	w := NewWriter()
	w.Line("OUTLINE", 1, 2, 3.5, 4)
	out := render(w)

	for _, want := range []string{
		"0\r\nLINE\r\n8\r\nOUTLINE\r\n",
		"10\r\n1.0000\r\n20\r\n2.0000\r\n",
		"11\r\n3.5000\r\n21\r\n4.0000\r\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestWriterCircleAndArc(t *testing.T) {
	w := NewWriter()
	w.Circle("TRACK", 5, 5, 0.4)
	w.Arc("OUTLINE", 0, 0, 2, 90, 180)
	out := render(w)

	for _, want := range []string{
		"0\r\nCIRCLE\r\n8\r\nTRACK\r\n10\r\n5.0000\r\n20\r\n5.0000\r\n40\r\n0.4000\r\n",
		"0\r\nARC\r\n",
		"50\r\n90.0000\r\n51\r\n180.0000\r\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestWriterPolyline(t *testing.T) {
	w := NewWriter()
	w.Polyline("OUTLINE", [][2]float64{{0, 0}, {10, 0}, {10, 10}}, true)
	out := render(w)

	if !strings.Contains(out, "0\r\nPOLYLINE\r\n8\r\nOUTLINE\r\n66\r\n1\r\n70\r\n1\r\n") {
		t.Errorf("missing closed polyline header:\n%s", out)
	}
	if got := strings.Count(out, "0\r\nVERTEX\r\n"); got != 3 {
		t.Errorf("got %d vertices, want 3", got)
	}
	if !strings.Contains(out, "0\r\nSEQEND\r\n") {
		t.Error("missing SEQEND")
	}

	// A degenerate polyline is dropped entirely.
	w2 := NewWriter()
	w2.Polyline("OUTLINE", [][2]float64{{0, 0}}, false)
	if strings.Contains(render(w2), "POLYLINE") {
		t.Error("single-vertex polyline must be dropped")
	}
}
