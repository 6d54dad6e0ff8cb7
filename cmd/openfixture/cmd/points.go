package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pointsFlags struct {
	selectionFlags
}

var pointsCmd = &cobra.Command{
	Use:   "points <board_file>",
	Short: "List selected test points",
	Long: `Lists every pad accepted as a test point, with its fixture-local
coordinates, board side and net name. Useful for checking layer overrides
before committing to a cut.`,
	Args: cobra.ExactArgs(1),
	RunE: runPoints,
}

func init() {
	rootCmd.AddCommand(pointsCmd)
	pointsFlags.register(pointsCmd)
}

func runPoints(cmd *cobra.Command, args []string) error {
	sel, err := pointsFlags.selection()
	if err != nil {
		return err
	}

	_, fix, err := loadFixture(args[0], sel)
	if err != nil {
		return err
	}

	fmt.Printf("%d test points (%s):\n", len(fix.TestPoints), sel.Mode)
	for i, tp := range fix.TestPoints {
		net := tp.Net
		if net == "" {
			net = "-"
		}
		fmt.Printf("  %3d  (%7.2f, %7.2f)  %-5s  %s\n", i+1, tp.X, tp.Y, tp.Side, net)
	}
	return nil
}
