package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tinylabs/openfixture/internal/config"
	"github.com/tinylabs/openfixture/internal/dxf"
	"github.com/tinylabs/openfixture/internal/fixture"
	"github.com/tinylabs/openfixture/internal/scad"
	"github.com/tinylabs/openfixture/pkg/kicad/pcb"
)

var genFlags struct {
	selectionFlags

	out     string
	scad    string
	profile string
	dryRun  bool

	matTh    float64
	pcbTh    float64
	screwLen float64
	screwD   float64
	rev      string

	washerTh float64
	nutF2F   float64
	nutC2C   float64
	nutTh    float64
	pivotD   float64
	border   float64
	pogoLen  float64
}

var generateCmd = &cobra.Command{
	Use:   "generate <board_file>",
	Short: "Generate fixture outputs from a board file",
	Long: `Derives the fixture parameters from a KiCad board file, plots the board
outline and copper drawings, and invokes OpenSCAD to render the laser-cut
fixture (DXF) and an assembly preview (PNG).

Hardware dimensions are resolved in order: built-in defaults, then the
YAML profile (--profile), then OPENFIXTURE_* environment variables, then
explicit flags. Material thickness has no default and must come from one
of those sources.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	genFlags.register(generateCmd)

	generateCmd.Flags().StringVarP(&genFlags.out, "out", "o", ".", "output directory")
	generateCmd.Flags().StringVar(&genFlags.scad, "scad", "openfixture.scad", "fixture geometry model")
	generateCmd.Flags().StringVar(&genFlags.profile, "profile", "", "hardware profile YAML file")
	generateCmd.Flags().BoolVar(&genFlags.dryRun, "dry-run", false, "print the OpenSCAD invocations without running them")

	generateCmd.Flags().Float64Var(&genFlags.matTh, "mat-th", 0, "laser-cut material thickness in mm")
	generateCmd.Flags().Float64Var(&genFlags.pcbTh, "pcb-th", fixture.DefaultPCBTh, "board thickness in mm")
	generateCmd.Flags().Float64Var(&genFlags.screwLen, "screw-len", fixture.DefaultScrewLen, "assembly screw thread length in mm")
	generateCmd.Flags().Float64Var(&genFlags.screwD, "screw-d", fixture.DefaultScrewD, "assembly screw diameter in mm")
	generateCmd.Flags().StringVar(&genFlags.rev, "rev", "", "revision label (default: board revision)")

	generateCmd.Flags().Float64Var(&genFlags.washerTh, "washer-th", 0, "hinge washer thickness in mm")
	generateCmd.Flags().Float64Var(&genFlags.nutF2F, "nut-f2f", 0, "hex nut flat-to-flat in mm")
	generateCmd.Flags().Float64Var(&genFlags.nutC2C, "nut-c2c", 0, "hex nut corner-to-corner in mm")
	generateCmd.Flags().Float64Var(&genFlags.nutTh, "nut-th", 0, "hex nut thickness in mm")
	generateCmd.Flags().Float64Var(&genFlags.pivotD, "pivot-d", 0, "hinge pivot diameter in mm")
	generateCmd.Flags().Float64Var(&genFlags.border, "border", 0, "support ledge under the board edge in mm")
	generateCmd.Flags().Float64Var(&genFlags.pogoLen, "pogo-len", 0, "pogo pin uncompressed length in mm")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	sel, err := genFlags.selection()
	if err != nil {
		return err
	}

	board, fix, err := loadFixture(args[0], sel)
	if err != nil {
		return err
	}
	slog.Info("fixture derived",
		"points", len(fix.TestPoints),
		"width", fix.Width, "height", fix.Height)

	hw, err := resolveHardware(cmd)
	if err != nil {
		return err
	}
	if hw.Rev == "" {
		hw.Rev = revisionLabel(board)
	}

	if err := os.MkdirAll(genFlags.out, 0o755); err != nil {
		return err
	}

	project := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	paths, err := plotDrawings(board, fix, sel.Mode, project)
	if err != nil {
		return err
	}

	ps, err := fixture.Assemble(fix, hw, paths)
	if err != nil {
		return err
	}

	job := scad.Job{
		SCADFile: genFlags.scad,
		OutDir:   genFlags.out,
		Project:  project,
		DryRun:   genFlags.dryRun,
	}
	if err := scad.Generate(cmd.Context(), slog.Default(), ps, job); err != nil {
		return err
	}

	if !genFlags.dryRun {
		fmt.Printf("✓ Fixture written\n")
		fmt.Printf("  Lasercut: %s\n", job.OutputDXF())
		fmt.Printf("  Preview:  %s\n", job.OutputPNG())
	}
	return nil
}

// resolveHardware layers the hardware dimension sources: defaults, YAML
// profile, environment, then explicit flags.
func resolveHardware(cmd *cobra.Command) (fixture.Hardware, error) {
	hw := fixture.DefaultHardware()

	if genFlags.profile != "" {
		p, err := config.Load(genFlags.profile)
		if err != nil {
			return hw, err
		}
		p.Apply(&hw)
	}

	p, err := config.FromEnv()
	if err != nil {
		return hw, err
	}
	p.Apply(&hw)

	set := func(name string, dst *float64, v float64) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	setOpt := func(name string, dst **float64, v float64) {
		if cmd.Flags().Changed(name) {
			*dst = &v
		}
	}
	set("mat-th", &hw.MatTh, genFlags.matTh)
	set("pcb-th", &hw.PCBTh, genFlags.pcbTh)
	set("screw-len", &hw.ScrewLen, genFlags.screwLen)
	set("screw-d", &hw.ScrewD, genFlags.screwD)
	if cmd.Flags().Changed("rev") {
		hw.Rev = genFlags.rev
	}
	setOpt("washer-th", &hw.WasherTh, genFlags.washerTh)
	setOpt("nut-f2f", &hw.NutF2F, genFlags.nutF2F)
	setOpt("nut-c2c", &hw.NutC2C, genFlags.nutC2C)
	setOpt("nut-th", &hw.NutTh, genFlags.nutTh)
	setOpt("pivot-d", &hw.PivotD, genFlags.pivotD)
	setOpt("border", &hw.Border, genFlags.border)
	setOpt("pogo-len", &hw.PogoLen, genFlags.pogoLen)

	return hw, nil
}

// revisionLabel derives the stamped revision from the board title block,
// falling back to rev.0 for boards without one.
func revisionLabel(board *pcb.Board) string {
	if r := board.General.Revision; r != "" {
		return "rev." + r
	}
	return "rev.0"
}

// plotDrawings writes the outline and copper DXF drawings the geometry
// model imports. Single-side runs get one copper drawing mirrored to
// match the probed face; dual-sided runs get one per face.
func plotDrawings(board *pcb.Board, fix *fixture.Fixture, mode fixture.Mode, project string) (fixture.OutputPaths, error) {
	frame := dxf.Frame{
		OriginX: fix.Origin.X,
		OriginY: fix.Origin.Y,
		Width:   fix.Width,
		Height:  fix.Height,
	}

	var paths fixture.OutputPaths
	outPath := func(suffix string) string {
		return filepath.Join(genFlags.out, project+suffix)
	}

	mirrored := frame
	mirrored.Mirror = mode == fixture.ModeBack

	paths.Outline = outPath("-outline.dxf")
	if err := dxf.PlotOutline(board, mirrored, paths.Outline); err != nil {
		return paths, err
	}

	switch mode {
	case fixture.ModeBoth:
		top := frame
		paths.TrackTop = outPath("-track-top.dxf")
		if err := dxf.PlotTracks(board, pcb.LayerFrontCopper, top, paths.TrackTop); err != nil {
			return paths, err
		}
		bottom := frame
		bottom.Mirror = true
		paths.TrackBottom = outPath("-track-bottom.dxf")
		if err := dxf.PlotTracks(board, pcb.LayerBackCopper, bottom, paths.TrackBottom); err != nil {
			return paths, err
		}
	default:
		side := fixture.SideFront
		if mode == fixture.ModeBack {
			side = fixture.SideBack
		}
		paths.Track = outPath("-track.dxf")
		if err := dxf.PlotTracks(board, side.CopperLayer(), mirrored, paths.Track); err != nil {
			return paths, err
		}
	}
	return paths, nil
}

func logDiagnostics(diags []fixture.Diagnostic) {
	for _, d := range diags {
		switch d.Severity {
		case fixture.SeverityError:
			slog.Error(d.Message, "kind", d.Kind.String())
		default:
			slog.Warn(d.Message, "kind", d.Kind.String())
		}
	}
}
