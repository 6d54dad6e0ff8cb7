package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/tinylabs/openfixture/internal/fixture"
	"github.com/tinylabs/openfixture/internal/scad"
	"github.com/tinylabs/openfixture/pkg/kicad/pcb"
)

var checkFlags struct {
	scadFile string
	layer    string
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Audit a geometry model for parameter coverage",
	Long: `Scans an OpenSCAD geometry model and reports which generator parameters
it declares, which it is missing, and which of its parameters the
generator never sets.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkFlags.scadFile, "scad", "openfixture.scad", "fixture geometry model")
	checkCmd.Flags().StringVar(&checkFlags.layer, "layer", pcb.LayerFrontCopper, "copper side the model targets (F.Cu, B.Cu or both)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	params, err := scad.ScanFile(checkFlags.scadFile)
	if err != nil {
		return fmt.Errorf("error scanning model: %w", err)
	}
	declared := scad.Names(params)

	want := fixture.AllParamNames(checkFlags.layer == "both")
	want = append(want, "mode")

	var missing []string
	for _, name := range want {
		if !declared[name] {
			missing = append(missing, name)
		}
	}

	known := make(map[string]bool, len(want))
	for _, name := range want {
		known[name] = true
	}
	var extra []string
	for name := range declared {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)

	fmt.Printf("Model: %s\n", checkFlags.scadFile)
	fmt.Printf("  Declared parameters: %d\n", len(params))
	if len(missing) == 0 {
		fmt.Printf("  ✓ All generator parameters covered\n")
	} else {
		fmt.Printf("  Missing (generator sets, model never declares):\n")
		for _, name := range missing {
			fmt.Printf("    %s\n", name)
		}
	}
	if len(extra) > 0 {
		fmt.Printf("  Model-only parameters (left at their defaults):\n")
		for _, name := range extra {
			fmt.Printf("    %s\n", name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%d generator parameters missing from model", len(missing))
	}
	return nil
}
