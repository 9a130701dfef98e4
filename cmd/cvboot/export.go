package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/smasonuk/cvboot"
	"github.com/spf13/cobra"
)

var (
	outputPath   string
	exportFormat string
	solidName    string
	flipWinding  bool
)

var stlCmd = &cobra.Command{
	Use:   "stl",
	Short: "Export the boot mesh",
	Long: `Export the boot mesh as ASCII STL (default), binary STL or PLY.

The format is taken from --format, or from the output file extension when
--format is not given. Use "-o -" to write to stdout.`,
	Example: `  cvboot stl -o boot.stl
  cvboot stl -p boot.toml --ribs 10 --format binary -o boot.stl
  cvboot stl --format ply -o - > boot.ply`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	stlCmd.Flags().StringVarP(&outputPath, "output", "o", "cv_boot.stl", `output file, "-" for stdout`)
	stlCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "ascii, binary or ply")
	stlCmd.Flags().StringVar(&solidName, "name", cvboot.DefaultSolidName, "solid name / binary header")
	stlCmd.Flags().BoolVar(&flipWinding, "flip", false, "reverse the winding of every triangle")
	rootCmd.AddCommand(stlCmd)
}

func formatFor(path, explicit string) (string, error) {
	if explicit != "" {
		switch f := strings.ToLower(explicit); f {
		case "ascii", "binary", "ply":
			return f, nil
		default:
			return "", fmt.Errorf("unknown export format %q", explicit)
		}
	}
	if strings.EqualFold(filepath.Ext(path), ".ply") {
		return "ply", nil
	}
	return "ascii", nil
}

func writeMesh(w io.Writer, m *cvboot.Mesh, format, name string) error {
	switch format {
	case "binary":
		return cvboot.WriteBinary(w, m, name)
	case "ply":
		return cvboot.WritePLY(w, m)
	default:
		return cvboot.WriteASCII(w, m, name)
	}
}

// exportMesh writes m to path ("-" is stdout) in the given format.
func exportMesh(path string, m *cvboot.Mesh, format, name string) error {
	if path == "-" {
		return writeMesh(os.Stdout, m, format, name)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	if err := writeMesh(file, m, format, name); err != nil {
		file.Close()
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return file.Close()
}

func buildForExport(p cvboot.Params) *cvboot.Mesh {
	m := cvboot.BuildMeshWithResolution(p, resolution())
	if flipWinding {
		m = m.FlipWinding()
	}
	return m
}

func runExport(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	format, err := formatFor(outputPath, exportFormat)
	if err != nil {
		return err
	}

	m := buildForExport(p)
	if err := exportMesh(outputPath, m, format, solidName); err != nil {
		return err
	}
	slog.Info("exported mesh", "path", outputPath, "format", format, "triangles", m.TriangleCount())
	return nil
}
