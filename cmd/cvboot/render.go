package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/smasonuk/cvboot"
	"github.com/spf13/cobra"
)

var (
	renderOut         string
	renderW, renderH  int
	renderTheta       float64
	renderPhi         float64
	renderDistance    float64
	renderSpinDegrees float64
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a PNG preview of the boot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveParams(cmd)
		if err != nil {
			return err
		}
		m := cvboot.BuildMeshWithResolution(p, resolution())

		cam := cvboot.NewOrbitCamera(p.BootLength)
		if cmd.Flags().Changed("theta") {
			cam.Theta = renderTheta
		}
		if cmd.Flags().Changed("phi") {
			cam.Phi = renderPhi
		}
		if cmd.Flags().Changed("distance") {
			cam.Distance = renderDistance
		}
		r := cvboot.NewRenderer(renderW, renderH, cam)
		r.Spin = mgl64.DegToRad(renderSpinDegrees)

		file, err := os.Create(renderOut)
		if err != nil {
			return fmt.Errorf("could not create %s: %w", renderOut, err)
		}
		if err := r.WritePNG(file, m); err != nil {
			file.Close()
			return fmt.Errorf("could not encode %s: %w", renderOut, err)
		}
		if err := file.Close(); err != nil {
			return err
		}
		slog.Info("rendered preview", "path", renderOut, "width", renderW, "height", renderH)
		return nil
	},
}

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&renderOut, "output", "o", "cv_boot.png", "output PNG file")
	f.IntVar(&renderW, "width", 800, "image width")
	f.IntVar(&renderH, "height", 600, "image height")
	f.Float64Var(&renderTheta, "theta", 0, "camera azimuth in radians")
	f.Float64Var(&renderPhi, "phi", 0, "camera polar angle in radians")
	f.Float64Var(&renderDistance, "distance", 0, "camera distance from the boot centre")
	f.Float64Var(&renderSpinDegrees, "spin", 0, "model rotation about its axis in degrees")
	rootCmd.AddCommand(renderCmd)
}
