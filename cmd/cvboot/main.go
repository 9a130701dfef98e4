package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/smasonuk/cvboot"
	"github.com/spf13/cobra"
)

var (
	paramsFile string
	verbose    bool
	nz, ntheta int

	flagParams = cvboot.DefaultParams()
)

var rootCmd = &cobra.Command{
	Use:   "cvboot",
	Short: "Generate printable CV joint boot meshes",
	Long: `cvboot builds a closed triangle mesh of a CV joint boot from its dimensions
and exports it as STL or PLY, renders previews and prints the radius profile.

Parameters come from the defaults, then an optional --params file (.toml, .yaml
or .json), then any parameter flags given on the command line.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		cvboot.SetLogger(logger)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&paramsFile, "params", "p", "", "parameter file (.toml, .yaml, .yml or .json)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	pf.IntVar(&nz, "nz", cvboot.DefaultResolution.NZ, "axial samples")
	pf.IntVar(&ntheta, "ntheta", cvboot.DefaultResolution.NTheta, "angular samples per ring")

	pf.Float64Var(&flagParams.BootLength, "length", flagParams.BootLength, "total boot length (mm)")
	pf.Float64Var(&flagParams.ShaftD, "shaft-d", flagParams.ShaftD, "shaft diameter (mm)")
	pf.Float64Var(&flagParams.CupD, "cup-d", flagParams.CupD, "cup diameter (mm)")
	pf.Float64Var(&flagParams.StretchSmall, "stretch-small", flagParams.StretchSmall, "small end stretch factor")
	pf.Float64Var(&flagParams.StretchBig, "stretch-big", flagParams.StretchBig, "big end stretch factor")
	pf.Float64Var(&flagParams.WallThickness, "wall", flagParams.WallThickness, "wall thickness (mm)")
	pf.Float64Var(&flagParams.RibAmp, "rib-amp", flagParams.RibAmp, "rib amplitude (mm)")
	pf.IntVar(&flagParams.NRibs, "ribs", flagParams.NRibs, "number of ribs")
	pf.Float64Var(&flagParams.ShoulderHeight, "shoulder-height", flagParams.ShoulderHeight, "shoulder height (mm)")
	pf.Float64Var(&flagParams.ShoulderWidth, "shoulder-width", flagParams.ShoulderWidth, "shoulder width (mm)")
	pf.Float64Var(&flagParams.FlatSmallLen, "small-clamp", flagParams.FlatSmallLen, "small clamp length (mm)")
	pf.Float64Var(&flagParams.FlatBigLen, "big-clamp", flagParams.FlatBigLen, "big clamp length (mm)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
