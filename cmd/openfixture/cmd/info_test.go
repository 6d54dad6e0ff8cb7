package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// A board with no outline primitives: geometry falls back to footprint
// boxes and the run carries a degraded-geometry diagnostic.
const noOutlineBoard = `
(kicad_pcb
  (version 20221018)
  (generator pcbnew)
  (general (thickness 1.6))
  (layers
    (0 "F.Cu" signal)
    (31 "B.Cu" signal)
  )
  (net 0 "")
  (net 1 "GND")
  (footprint "Resistor_SMD:R_0603" (layer "F.Cu")
    (at 15 30)
    (property "Reference" "R1")
    (pad "1" smd roundrect (at -0.8 0) (size 0.8 0.9) (layers "F.Cu" "F.Mask") (net 1 "GND"))
    (pad "2" smd roundrect (at 0.8 0) (size 0.8 0.9) (layers "F.Cu" "F.Mask") (net 1 "GND"))
  )
)
`

func TestInfoReportsDiagnosticsOnce(t *testing.T) {
	board := filepath.Join(t.TempDir(), "board.kicad_pcb")
	if err := os.WriteFile(board, []byte(noOutlineBoard), 0o644); err != nil {
		t.Fatal(err)
	}

	// Capture stdout and stderr: the summary prints to stdout, the
	// logger writes to stderr, and the diagnostic must appear on
	// exactly one of them, exactly once.
	oldOut, oldErr := os.Stdout, os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	var bufOut, bufErr bytes.Buffer
	done := make(chan struct{})
	go func() {
		bufOut.ReadFrom(rOut)
		bufErr.ReadFrom(rErr)
		close(done)
	}()

	rootCmd.SetArgs([]string{"info", board})
	err := rootCmd.Execute()

	wOut.Close()
	wErr.Close()
	os.Stdout = oldOut
	os.Stderr = oldErr
	<-done

	if err != nil {
		t.Fatalf("info failed: %v\nstdout:\n%s", err, bufOut.String())
	}

	output := bufOut.String() + bufErr.String()
	if got := strings.Count(output, "degraded-geometry"); got != 1 {
		t.Errorf("diagnostic reported %d times, want exactly once\noutput:\n%s", got, output)
	}
	if !strings.Contains(bufOut.String(), "Test points: 2") {
		t.Errorf("summary missing test point count\nstdout:\n%s", bufOut.String())
	}
}
