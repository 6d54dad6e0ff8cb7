package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tinylabs/openfixture/internal/fixture"
	"github.com/tinylabs/openfixture/pkg/kicad/pcb"
)

var infoFlags struct {
	selectionFlags
}

var infoCmd = &cobra.Command{
	Use:   "info <board_file>",
	Short: "Show board summary and derived fixture geometry",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoFlags.register(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	sel, err := infoFlags.selection()
	if err != nil {
		return err
	}

	board, err := pcb.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("error parsing board: %w", err)
	}

	fmt.Printf("Board: %s\n", args[0])
	fmt.Printf("  Version: %d\n", board.Version)
	fmt.Printf("  Generator: %s\n", board.Generator)
	if board.General.Title != "" {
		fmt.Printf("  Title: %s\n", board.General.Title)
	}
	if board.General.Revision != "" {
		fmt.Printf("  Revision: %s\n", board.General.Revision)
	}
	fmt.Printf("  Layers: %d\n", len(board.Layers))
	fmt.Printf("  Nets: %d\n", len(board.Nets))
	fmt.Printf("  Footprints: %d\n", len(board.Footprints))
	fmt.Printf("  Tracks: %d\n", len(board.Tracks))
	fmt.Printf("  Vias: %d\n", len(board.Vias))

	fix, err := fixture.Build(fixture.NewSnapshot(board), sel)
	var noPoints *fixture.NoTestPointsError
	if errors.As(err, &noPoints) {
		fmt.Printf("\n%s\n", noPoints.Error())
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("\nFixture (%s):\n", sel.Mode)
	fmt.Printf("  Origin: (%.2f, %.2f) mm\n", fix.Origin.X, fix.Origin.Y)
	fmt.Printf("  Board size: %.2f x %.2f mm\n", fix.Width, fix.Height)
	fmt.Printf("  Test points: %d\n", len(fix.TestPoints))
	if sel.Mode == fixture.ModeBoth {
		fmt.Printf("    Top: %d  Bottom: %d\n", len(fix.Top), len(fix.Bottom))
	}
	fmt.Printf("  Min point Y: %.2f mm\n", fix.MinY)
	for _, d := range fix.Diagnostics {
		fmt.Printf("  %s\n", d)
	}
	return nil
}
