// Package cvboot generates printable meshes of constant-velocity joint boots
// from a handful of physical dimensions.
package cvboot

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFinite is returned by Params.Validate when a field is NaN or infinite.
var ErrNonFinite = errors.New("non-finite parameter")

// Params describes one boot. Lengths are in millimetres.
type Params struct {
	BootLength     float64 `json:"bootLength" toml:"bootLength" yaml:"bootLength"`
	ShaftD         float64 `json:"shaftD" toml:"shaftD" yaml:"shaftD"`
	CupD           float64 `json:"cupD" toml:"cupD" yaml:"cupD"`
	StretchSmall   float64 `json:"stretchSmall" toml:"stretchSmall" yaml:"stretchSmall"`
	StretchBig     float64 `json:"stretchBig" toml:"stretchBig" yaml:"stretchBig"`
	WallThickness  float64 `json:"wallThickness" toml:"wallThickness" yaml:"wallThickness"`
	RibAmp         float64 `json:"ribAmp" toml:"ribAmp" yaml:"ribAmp"`
	NRibs          int     `json:"nRibs" toml:"nRibs" yaml:"nRibs"`
	ShoulderHeight float64 `json:"shoulderHeight" toml:"shoulderHeight" yaml:"shoulderHeight"`
	ShoulderWidth  float64 `json:"shoulderWidth" toml:"shoulderWidth" yaml:"shoulderWidth"`
	FlatSmallLen   float64 `json:"flatSmallLen" toml:"flatSmallLen" yaml:"flatSmallLen"`
	FlatBigLen     float64 `json:"flatBigLen" toml:"flatBigLen" yaml:"flatBigLen"`
}

func DefaultParams() Params {
	return Params{
		BootLength:     120,
		ShaftD:         10,
		CupD:           95,
		StretchSmall:   0.95,
		StretchBig:     0.99,
		WallThickness:  3.5,
		RibAmp:         7,
		NRibs:          8,
		ShoulderHeight: 2,
		ShoulderWidth:  3,
		FlatSmallLen:   12,
		FlatBigLen:     20,
	}
}

// MidLength is the axial length of the corrugated section. It is zero or
// negative when the clamp zones cover the whole boot.
func (p Params) MidLength() float64 {
	return p.BootLength - p.FlatSmallLen - p.FlatBigLen
}

// Field is a named view of one parameter, in declaration order.
type Field struct {
	Name  string
	Value float64
}

func (p Params) Fields() []Field {
	return []Field{
		{"bootLength", p.BootLength},
		{"shaftD", p.ShaftD},
		{"cupD", p.CupD},
		{"stretchSmall", p.StretchSmall},
		{"stretchBig", p.StretchBig},
		{"wallThickness", p.WallThickness},
		{"ribAmp", p.RibAmp},
		{"nRibs", float64(p.NRibs)},
		{"shoulderHeight", p.ShoulderHeight},
		{"shoulderWidth", p.ShoulderWidth},
		{"flatSmallLen", p.FlatSmallLen},
		{"flatBigLen", p.FlatBigLen},
	}
}

// Validate rejects NaN and infinite values. NaN would otherwise flow through
// the radius rules and trigonometry and silently poison every vertex.
func (p Params) Validate() error {
	var errs []error
	for _, f := range p.Fields() {
		if math.IsNaN(f.Value) || math.IsInf(f.Value, 0) {
			errs = append(errs, fmt.Errorf("%w: %s = %v", ErrNonFinite, f.Name, f.Value))
		}
	}
	return errors.Join(errs...)
}

// Range is the interval a designer exposes for a parameter.
type Range struct {
	Min, Max, Step float64
}

// Ranges holds the recommended interval for every parameter, keyed by field name.
var Ranges = map[string]Range{
	"bootLength":     {80, 200, 1},
	"shaftD":         {5, 30, 0.5},
	"cupD":           {50, 150, 1},
	"stretchSmall":   {0.85, 1.0, 0.01},
	"stretchBig":     {0.85, 1.0, 0.01},
	"wallThickness":  {1, 8, 0.1},
	"ribAmp":         {0, 15, 0.5},
	"nRibs":          {1, 20, 1},
	"shoulderHeight": {0, 5, 0.1},
	"shoulderWidth":  {1, 8, 0.5},
	"flatSmallLen":   {5, 30, 1},
	"flatBigLen":     {10, 40, 1},
}

// OutOfRange lists the fields that fall outside Ranges. Such values still
// build; the list is advisory.
func (p Params) OutOfRange() []Field {
	var out []Field
	for _, f := range p.Fields() {
		r, ok := Ranges[f.Name]
		if !ok {
			continue
		}
		if f.Value < r.Min || f.Value > r.Max {
			out = append(out, f)
		}
	}
	return out
}
