// Package dxf writes minimal DXF R12 drawings. The geometry model imports
// these as 2D profiles, so only LINE, CIRCLE, ARC and POLYLINE entities
// are needed; no header variables, blocks or styles.
package dxf

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Writer accumulates entities and flushes a complete DXF document.
type Writer struct {
	entities []string
}

// NewWriter returns an empty drawing.
func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) add(lines ...string) {
	w.entities = append(w.entities, lines...)
}

func num(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

// Line adds a line segment on the named layer.
func (w *Writer) Line(layer string, x1, y1, x2, y2 float64) {
	w.add("0", "LINE", "8", layer)
	w.add("10", num(x1), "20", num(y1))
	w.add("11", num(x2), "21", num(y2))
}

// Circle adds a circle on the named layer.
func (w *Writer) Circle(layer string, cx, cy, r float64) {
	w.add("0", "CIRCLE", "8", layer)
	w.add("10", num(cx), "20", num(cy))
	w.add("40", num(r))
}

// Arc adds a circular arc swept counterclockwise from startDeg to endDeg.
func (w *Writer) Arc(layer string, cx, cy, r, startDeg, endDeg float64) {
	w.add("0", "ARC", "8", layer)
	w.add("10", num(cx), "20", num(cy))
	w.add("40", num(r))
	w.add("50", num(startDeg), "51", num(endDeg))
}

// Polyline adds an open or closed polyline through the given vertices.
func (w *Writer) Polyline(layer string, pts [][2]float64, closed bool) {
	if len(pts) < 2 {
		return
	}
	flags := "0"
	if closed {
		flags = "1"
	}
	w.add("0", "POLYLINE", "8", layer, "66", "1", "70", flags)
	for _, p := range pts {
		w.add("0", "VERTEX", "8", layer, "10", num(p[0]), "20", num(p[1]))
	}
	w.add("0", "SEQEND")
}

// WriteTo emits the complete document.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	var b strings.Builder
	emit := func(lines ...string) {
		for _, l := range lines {
			b.WriteString(l)
			b.WriteString("\r\n")
		}
	}
	emit("0", "SECTION", "2", "ENTITIES")
	emit(w.entities...)
	emit("0", "ENDSEC", "0", "EOF")

	n, err := io.WriteString(out, b.String())
	return int64(n), err
}

// Save writes the document to a file.
func (w *Writer) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
