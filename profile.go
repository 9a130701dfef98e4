package cvboot

import "math"

// BigCollarAllowance is the extra outer radius carried by the whole big-end
// clamp zone, shoulders included. The small end has no equivalent.
const BigCollarAllowance = 1.5

// Zone is the axial region a profile sample falls in.
type Zone int

const (
	ZoneSmallFlat Zone = iota
	ZoneMid
	ZoneBigFlat
)

func (z Zone) String() string {
	switch z {
	case ZoneSmallFlat:
		return "small-flat"
	case ZoneMid:
		return "mid"
	case ZoneBigFlat:
		return "big-flat"
	default:
		return "unknown"
	}
}

// Profile holds the base radii derived from a parameter set. The axial
// coordinate z runs from the shaft end (z = 0) to the cup end (z = BootLength).
type Profile struct {
	Params

	InnerSmallR float64
	InnerBigR   float64
	OuterSmallR float64
	OuterBigR   float64
}

func NewProfile(p Params) *Profile {
	innerSmall := p.ShaftD * p.StretchSmall / 2
	innerBig := p.CupD * p.StretchBig / 2
	return &Profile{
		Params:      p,
		InnerSmallR: innerSmall,
		InnerBigR:   innerBig,
		OuterSmallR: innerSmall + p.WallThickness,
		OuterBigR:   innerBig + p.WallThickness,
	}
}

// Sample is the profile evaluated at one axial position.
type Sample struct {
	Z      float64
	Height float64 // BootLength - Z; the cup end sits at height 0
	T      float64
	Zone   Zone
	Outer  float64
	Inner  float64
}

// Wall returns the radial thickness at the sample.
func (s Sample) Wall() float64 {
	return s.Outer - s.Inner
}

func (pr *Profile) zone(z float64) (Zone, float64) {
	switch {
	case z <= pr.FlatSmallLen:
		return ZoneSmallFlat, 0
	case z >= pr.BootLength-pr.FlatBigLen:
		return ZoneBigFlat, 1
	default:
		return ZoneMid, (z - pr.FlatSmallLen) / pr.MidLength()
	}
}

// radiusRule is one entry of the ordered outer radius table. The first rule
// whose match returns true supplies the radius.
type radiusRule struct {
	name  string
	match func(pr *Profile, s *Sample) bool
	outer func(pr *Profile, s *Sample) float64
}

// All shoulder intervals are closed at both ends.
var outerRules = []radiusRule{
	{
		name: "small shoulder",
		match: func(pr *Profile, s *Sample) bool {
			return s.Zone == ZoneSmallFlat &&
				(s.Z <= pr.ShoulderWidth || (pr.FlatSmallLen-pr.ShoulderWidth <= s.Z && s.Z <= pr.FlatSmallLen))
		},
		outer: func(pr *Profile, s *Sample) float64 { return pr.OuterSmallR + pr.ShoulderHeight },
	},
	{
		name:  "small flat",
		match: func(pr *Profile, s *Sample) bool { return s.Zone == ZoneSmallFlat },
		outer: func(pr *Profile, s *Sample) float64 { return pr.OuterSmallR },
	},
	{
		name: "big shoulder",
		match: func(pr *Profile, s *Sample) bool {
			start := pr.BootLength - pr.FlatBigLen
			return s.Zone == ZoneBigFlat &&
				((start <= s.Z && s.Z <= start+pr.ShoulderWidth) || s.Z >= pr.BootLength-pr.ShoulderWidth)
		},
		outer: func(pr *Profile, s *Sample) float64 {
			return pr.OuterBigR + pr.ShoulderHeight + BigCollarAllowance
		},
	},
	{
		name:  "big flat",
		match: func(pr *Profile, s *Sample) bool { return s.Zone == ZoneBigFlat },
		outer: func(pr *Profile, s *Sample) float64 { return pr.OuterBigR + BigCollarAllowance },
	},
	{
		name:  "corrugation",
		match: func(pr *Profile, s *Sample) bool { return s.Zone == ZoneMid },
		outer: func(pr *Profile, s *Sample) float64 {
			core := pr.OuterSmallR + (pr.OuterBigR-pr.OuterSmallR)*s.T
			rib := pr.RibAmp * math.Sin(2*math.Pi*float64(pr.NRibs)*s.T)
			return math.Max(core+rib, pr.InnerSmallR+pr.WallThickness)
		},
	},
}

func (pr *Profile) inner(s *Sample) float64 {
	switch s.Zone {
	case ZoneSmallFlat:
		return pr.InnerSmallR
	case ZoneBigFlat:
		return pr.InnerBigR
	}
	// keep the bore cylindrical for the first rib period after the small clamp
	if s.T < 1/float64(pr.NRibs) {
		return pr.InnerSmallR
	}
	return math.Min(math.Max(s.Outer-pr.WallThickness, pr.InnerSmallR), pr.InnerBigR)
}

// At evaluates the profile at axial position z.
func (pr *Profile) At(z float64) Sample {
	s := Sample{Z: z, Height: pr.BootLength - z}
	s.Zone, s.T = pr.zone(z)

	for _, rule := range outerRules {
		if rule.match(pr, &s) {
			s.Outer = rule.outer(pr, &s)
			break
		}
	}
	s.Inner = pr.inner(&s)

	if s.Outer < s.Inner+pr.WallThickness {
		s.Outer = s.Inner + pr.WallThickness
	}
	return s
}

// AxialPosition returns z for axial sample i of n.
func AxialPosition(length float64, i, n int) float64 {
	return length * float64(i) / float64(n-1)
}

// SampleProfile evaluates the profile at every axial sample of res.
func SampleProfile(p Params, res Resolution) []Sample {
	res = res.normalize()
	pr := NewProfile(p)
	samples := make([]Sample, res.NZ)
	for i := range samples {
		samples[i] = pr.At(AxialPosition(p.BootLength, i, res.NZ))
	}
	return samples
}
