package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tinylabs/openfixture/internal/fixture"
	"github.com/tinylabs/openfixture/pkg/kicad/pcb"
)

// selectionFlags carries the pad-selection options shared by the
// generate and points commands.
type selectionFlags struct {
	layer      string
	forceLayer string
	ignLayer   string
	smd        bool
	noSMD      bool
	tht        bool
}

func (sf *selectionFlags) register(cmd *cobra.Command) {
	def := fixture.DefaultSelection()
	cmd.Flags().StringVar(&sf.layer, "layer", pcb.LayerFrontCopper, "copper side to probe (F.Cu, B.Cu or both)")
	cmd.Flags().StringVar(&sf.forceLayer, "flayer", def.ForceLayer, "layer forcing pad inclusion")
	cmd.Flags().StringVar(&sf.ignLayer, "ilayer", def.IgnoreLayer, "layer forcing pad exclusion")
	cmd.Flags().BoolVar(&sf.smd, "smd", def.IncludeSMD, "probe surface-mount pads")
	cmd.Flags().BoolVar(&sf.noSMD, "no-smd", false, "do not probe surface-mount pads")
	cmd.Flags().BoolVar(&sf.tht, "tht", def.IncludeTHT, "probe through-hole pads")
}

func (sf *selectionFlags) selection() (fixture.Selection, error) {
	sel := fixture.DefaultSelection()
	switch sf.layer {
	case pcb.LayerFrontCopper:
		sel.Mode = fixture.ModeFront
	case pcb.LayerBackCopper:
		sel.Mode = fixture.ModeBack
	case "both":
		sel.Mode = fixture.ModeBoth
	default:
		return sel, fmt.Errorf("invalid --layer %q: want F.Cu, B.Cu or both", sf.layer)
	}
	sel.ForceLayer = sf.forceLayer
	sel.IgnoreLayer = sf.ignLayer
	sel.IncludeSMD = sf.smd && !sf.noSMD
	sel.IncludeTHT = sf.tht
	return sel, nil
}

// loadFixture parses a board file and runs the derivation pipeline,
// logging any non-fatal diagnostics along the way.
func loadFixture(path string, sel fixture.Selection) (*pcb.Board, *fixture.Fixture, error) {
	board, err := pcb.ParseFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing board: %w", err)
	}
	fix, err := fixture.Build(fixture.NewSnapshot(board), sel)
	if err != nil {
		return board, nil, err
	}
	logDiagnostics(fix.Diagnostics)
	return board, fix, nil
}
