package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tinylabs/openfixture/internal/logging"
)

var (
	// Global flags
	verbose   bool
	logFormat string
	logFile   string
)

var rootCmd = &cobra.Command{
	Use:   "openfixture",
	Short: "OpenFixture - laser-cut test fixture generation from KiCad boards",
	Long: `OpenFixture derives test fixture parameters from a KiCad PCB file and
drives OpenSCAD to render a laser-cuttable fixture.

Examples:
  openfixture generate board.kicad_pcb --mat-th 3.0   # Generate fixture outputs
  openfixture info board.kicad_pcb                    # Show board and fixture geometry
  openfixture points board.kicad_pcb --layer both     # List selected test points
  openfixture check --scad openfixture.scad           # Verify SCAD parameter coverage`,
	Version: "1.0.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; flags and real env take precedence.
		_ = godotenv.Load()

		opts := logging.Options{Format: logFormat, File: logFile}
		if verbose {
			opts.Level = "debug"
		}
		logging.Init(opts.FromEnv())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text or json)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to this file (rotated)")
}
