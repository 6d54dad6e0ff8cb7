package scad

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/tinylabs/openfixture/internal/fixture"
)

// Binary is the geometry tool executable looked up on PATH.
const Binary = "openscad"

// Render modes of the fixture model.
const (
	ModeLasercut = "lasercut"
	Mode3DModel  = "3dmodel"
)

// Args converts an assembled parameter set into -D definitions. Values
// are already final literals, so this is pure concatenation.
func Args(ps *fixture.ParamSet) []string {
	var args []string
	for _, p := range ps.Params() {
		args = append(args, "-D", p.Name+"="+p.Value)
	}
	return args
}

// Job describes one invocation of the geometry tool.
type Job struct {
	SCADFile string // fixture model source
	OutDir   string
	Project  string // board project name, used for output file names
	DryRun   bool   // print the command lines instead of running them
}

// OutputDXF returns the path of the laser-cuttable drawing.
func (j Job) OutputDXF() string {
	return filepath.Join(j.OutDir, j.Project+"-fixture.dxf")
}

// OutputPNG returns the path of the rendered preview.
func (j Job) OutputPNG() string {
	return filepath.Join(j.OutDir, j.Project+"-fixture.png")
}

// Generate runs the geometry tool twice: once for a rendered preview and
// once for the laser-cuttable fixture drawing. The render is slow; the
// context lets the caller bound or cancel it.
func Generate(ctx context.Context, log *slog.Logger, ps *fixture.ParamSet, job Job) error {
	base := Args(ps)

	renders := []struct {
		mode  string
		out   string
		extra []string
	}{
		{mode: Mode3DModel, out: job.OutputPNG(), extra: []string{"--render"}},
		{mode: ModeLasercut, out: job.OutputDXF()},
	}

	for _, r := range renders {
		args := append([]string{}, base...)
		args = append(args, "-D", fmt.Sprintf("mode=%q", r.mode))
		args = append(args, r.extra...)
		args = append(args, "-o", r.out, job.SCADFile)

		if job.DryRun {
			fmt.Printf("%s %s\n", Binary, strings.Join(args, " "))
			continue
		}

		log.Info("running geometry tool", "mode", r.mode, "output", r.out)
		cmd := exec.CommandContext(ctx, Binary, args...)
		out, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("%s %s mode failed: %w\n%s", Binary, r.mode, err, out)
		}
	}

	return nil
}
