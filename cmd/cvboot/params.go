package main

import (
	"log/slog"

	"github.com/smasonuk/cvboot"
	"github.com/spf13/cobra"
)

// overrides maps each parameter flag to a setter copying the flag value.
var overrides = map[string]func(dst *cvboot.Params){
	"length":          func(p *cvboot.Params) { p.BootLength = flagParams.BootLength },
	"shaft-d":         func(p *cvboot.Params) { p.ShaftD = flagParams.ShaftD },
	"cup-d":           func(p *cvboot.Params) { p.CupD = flagParams.CupD },
	"stretch-small":   func(p *cvboot.Params) { p.StretchSmall = flagParams.StretchSmall },
	"stretch-big":     func(p *cvboot.Params) { p.StretchBig = flagParams.StretchBig },
	"wall":            func(p *cvboot.Params) { p.WallThickness = flagParams.WallThickness },
	"rib-amp":         func(p *cvboot.Params) { p.RibAmp = flagParams.RibAmp },
	"ribs":            func(p *cvboot.Params) { p.NRibs = flagParams.NRibs },
	"shoulder-height": func(p *cvboot.Params) { p.ShoulderHeight = flagParams.ShoulderHeight },
	"shoulder-width":  func(p *cvboot.Params) { p.ShoulderWidth = flagParams.ShoulderWidth },
	"small-clamp":     func(p *cvboot.Params) { p.FlatSmallLen = flagParams.FlatSmallLen },
	"big-clamp":       func(p *cvboot.Params) { p.FlatBigLen = flagParams.FlatBigLen },
}

// resolveParams layers defaults, the --params file and explicitly set flags,
// then validates the result.
func resolveParams(cmd *cobra.Command) (cvboot.Params, error) {
	p, err := loadFileParams(paramsFile)
	if err != nil {
		return p, err
	}
	for name, set := range overrides {
		if cmd.Flags().Changed(name) {
			set(&p)
		}
	}
	return checkParams(p)
}

func loadFileParams(path string) (cvboot.Params, error) {
	if path == "" {
		return cvboot.DefaultParams(), nil
	}
	return cvboot.LoadParams(path)
}

func checkParams(p cvboot.Params) (cvboot.Params, error) {
	if err := p.Validate(); err != nil {
		return p, err
	}
	for _, f := range p.OutOfRange() {
		r := cvboot.Ranges[f.Name]
		slog.Warn("parameter outside recommended range", "name", f.Name, "value", f.Value, "min", r.Min, "max", r.Max)
	}
	if p.MidLength() <= 0 {
		slog.Warn("clamp zones cover the whole boot, no corrugated section", "midLength", p.MidLength())
	}
	return p, nil
}

func resolution() cvboot.Resolution {
	return cvboot.Resolution{NZ: nz, NTheta: ntheta}
}
