package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/smasonuk/cvboot"
	"github.com/spf13/cobra"
)

var sweepDir string

var sweepCmd = &cobra.Command{
	Use:   "sweep FILE...",
	Short: "Build one mesh per parameter file in parallel",
	Long: `Build one mesh per parameter file and export each as <name>.stl (or the
--format extension) in the output directory. Meshes are built concurrently.
Parameter flags are ignored; every file stands alone.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := make([]cvboot.Params, len(args))
		for i, path := range args {
			p, err := cvboot.LoadParams(path)
			if err != nil {
				return err
			}
			if params[i], err = checkParams(p); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}

		format, err := formatFor("", exportFormat)
		if err != nil {
			return err
		}

		meshes, err := cvboot.BuildAll(cmd.Context(), params, resolution())
		if err != nil {
			return err
		}

		if err := os.MkdirAll(sweepDir, 0o755); err != nil {
			return fmt.Errorf("could not create %s: %w", sweepDir, err)
		}
		for i, m := range meshes {
			if flipWinding {
				m = m.FlipWinding()
			}
			base := strings.TrimSuffix(filepath.Base(args[i]), filepath.Ext(args[i]))
			out := filepath.Join(sweepDir, base+extensionFor(format))
			if err := exportMesh(out, m, format, base); err != nil {
				return err
			}
			slog.Info("exported mesh", "params", args[i], "path", out, "triangles", m.TriangleCount())
		}
		return nil
	},
}

func extensionFor(format string) string {
	if format == "ply" {
		return ".ply"
	}
	return ".stl"
}

func init() {
	sweepCmd.Flags().StringVarP(&sweepDir, "dir", "d", ".", "output directory")
	sweepCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "ascii, binary or ply")
	sweepCmd.Flags().BoolVar(&flipWinding, "flip", false, "reverse the winding of every triangle")
	rootCmd.AddCommand(sweepCmd)
}
