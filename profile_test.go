package cvboot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const float64EqualityThreshold = 1e-9

func TestProfileBaseRadii(t *testing.T) {
	pr := NewProfile(DefaultParams())

	assert.InDelta(t, 4.75, pr.InnerSmallR, float64EqualityThreshold)
	assert.InDelta(t, 47.025, pr.InnerBigR, float64EqualityThreshold)
	assert.InDelta(t, 8.25, pr.OuterSmallR, float64EqualityThreshold)
	assert.InDelta(t, 50.525, pr.OuterBigR, float64EqualityThreshold)
}

// Zone and shoulder boundaries are closed intervals; these are the samples
// most likely to fall on the wrong side of a comparison.
func TestProfileBoundarySamples(t *testing.T) {
	p := DefaultParams() // L=120, shoulders 3 wide, clamps 12 and 20
	pr := NewProfile(p)

	smallShoulder := pr.OuterSmallR + p.ShoulderHeight
	bigShoulder := pr.OuterBigR + p.ShoulderHeight + BigCollarAllowance
	bigPlain := pr.OuterBigR + BigCollarAllowance

	testCases := []struct {
		name  string
		z     float64
		zone  Zone
		outer float64
		inner float64
	}{
		{"shaft end", 0, ZoneSmallFlat, smallShoulder, pr.InnerSmallR},
		{"end of first small shoulder", p.ShoulderWidth, ZoneSmallFlat, smallShoulder, pr.InnerSmallR},
		{"between small shoulders", p.ShoulderWidth + 0.5, ZoneSmallFlat, pr.OuterSmallR, pr.InnerSmallR},
		{"just before second small shoulder", p.FlatSmallLen - p.ShoulderWidth - 1e-6, ZoneSmallFlat, pr.OuterSmallR, pr.InnerSmallR},
		{"start of second small shoulder", p.FlatSmallLen - p.ShoulderWidth, ZoneSmallFlat, smallShoulder, pr.InnerSmallR},
		{"end of small clamp", p.FlatSmallLen, ZoneSmallFlat, smallShoulder, pr.InnerSmallR},
		{"start of big clamp", p.BootLength - p.FlatBigLen, ZoneBigFlat, bigShoulder, pr.InnerBigR},
		{"end of first big shoulder", p.BootLength - p.FlatBigLen + p.ShoulderWidth, ZoneBigFlat, bigShoulder, pr.InnerBigR},
		{"between big shoulders", p.BootLength - p.FlatBigLen + p.ShoulderWidth + 0.5, ZoneBigFlat, bigPlain, pr.InnerBigR},
		{"just before last big shoulder", p.BootLength - p.ShoulderWidth - 1e-6, ZoneBigFlat, bigPlain, pr.InnerBigR},
		{"start of last big shoulder", p.BootLength - p.ShoulderWidth, ZoneBigFlat, bigShoulder, pr.InnerBigR},
		{"cup end", p.BootLength, ZoneBigFlat, bigShoulder, pr.InnerBigR},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := pr.At(tc.z)
			assert.Equal(t, tc.zone, s.Zone)
			assert.InDelta(t, tc.outer, s.Outer, float64EqualityThreshold)
			assert.InDelta(t, tc.inner, s.Inner, float64EqualityThreshold)
		})
	}
}

func TestProfileEndRadii(t *testing.T) {
	p := DefaultParams()
	pr := NewProfile(p)

	cup := pr.At(p.BootLength)
	assert.InDelta(t, 0.0, cup.Height, float64EqualityThreshold)
	assert.InDelta(t, 95*0.99/2+3.5+2+1.5, cup.Outer, float64EqualityThreshold)
	assert.InDelta(t, 95*0.99/2, cup.Inner, float64EqualityThreshold)

	shaft := pr.At(0)
	assert.InDelta(t, p.BootLength, shaft.Height, float64EqualityThreshold)
	assert.InDelta(t, 10*0.95/2+3.5+2, shaft.Outer, float64EqualityThreshold)
	assert.InDelta(t, 10*0.95/2, shaft.Inner, float64EqualityThreshold)
}

func TestProfileMidsection(t *testing.T) {
	p := DefaultParams()
	pr := NewProfile(p)
	lMid := p.MidLength()
	zAt := func(tt float64) float64 { return p.FlatSmallLen + tt*lMid }

	t.Run("centre follows the taper", func(t *testing.T) {
		s := pr.At(zAt(0.5))
		assert.Equal(t, ZoneMid, s.Zone)
		assert.InDelta(t, 0.5, s.T, float64EqualityThreshold)
		core := pr.OuterSmallR + (pr.OuterBigR-pr.OuterSmallR)*0.5
		assert.InDelta(t, core, s.Outer, 1e-6)
		assert.InDelta(t, core-p.WallThickness, s.Inner, 1e-6)
	})

	t.Run("rib crest", func(t *testing.T) {
		tt := 2.25 / float64(p.NRibs)
		s := pr.At(zAt(tt))
		core := pr.OuterSmallR + (pr.OuterBigR-pr.OuterSmallR)*tt
		assert.InDelta(t, core+p.RibAmp, s.Outer, 1e-6)
		assert.InDelta(t, core+p.RibAmp-p.WallThickness, s.Inner, 1e-6)
	})

	t.Run("trough in first rib is clamped and bore stays cylindrical", func(t *testing.T) {
		s := pr.At(zAt(0.75 / float64(p.NRibs)))
		assert.InDelta(t, pr.InnerSmallR+p.WallThickness, s.Outer, 1e-6)
		assert.InDelta(t, pr.InnerSmallR, s.Inner, float64EqualityThreshold)
	})

	t.Run("first rib crest keeps small bore", func(t *testing.T) {
		s := pr.At(zAt(0.25 / float64(p.NRibs)))
		assert.InDelta(t, pr.InnerSmallR, s.Inner, float64EqualityThreshold)
		assert.Greater(t, s.Outer, pr.OuterSmallR)
	})

	t.Run("inner radius clamped to cup bore", func(t *testing.T) {
		deep := p
		deep.RibAmp = 15
		dpr := NewProfile(deep)
		for i := 0; i <= 100; i++ {
			s := dpr.At(zAt(float64(i) / 100))
			assert.LessOrEqual(t, s.Inner, dpr.InnerBigR+float64EqualityThreshold)
			assert.GreaterOrEqual(t, s.Inner, dpr.InnerSmallR-float64EqualityThreshold)
		}
	})
}

func TestProfileMinimumWall(t *testing.T) {
	extreme := DefaultParams()
	extreme.RibAmp = 15
	extreme.NRibs = 20
	extreme.WallThickness = 1
	extreme.CupD = 50
	extreme.ShaftD = 30

	thick := DefaultParams()
	thick.WallThickness = 8
	thick.ShoulderHeight = 0

	inverted := DefaultParams()
	inverted.ShaftD = 150
	inverted.CupD = 5

	for name, p := range map[string]Params{
		"default":  DefaultParams(),
		"extreme":  extreme,
		"thick":    thick,
		"inverted": inverted,
	} {
		t.Run(name, func(t *testing.T) {
			for _, s := range SampleProfile(p, DefaultResolution) {
				assert.GreaterOrEqual(t, s.Wall(), p.WallThickness-float64EqualityThreshold, "z=%v", s.Z)
			}
		})
	}
}

func TestSampleProfileZeroLengthMidsection(t *testing.T) {
	p := DefaultParams()
	p.NRibs = 1
	p.RibAmp = 0
	p.FlatSmallLen = 50
	p.FlatBigLen = p.BootLength - p.FlatSmallLen

	samples := SampleProfile(p, DefaultResolution)
	assert.Len(t, samples, DefaultResolution.NZ)
	for _, s := range samples {
		assert.NotEqual(t, ZoneMid, s.Zone)
		assert.False(t, math.IsNaN(s.Outer) || math.IsNaN(s.Inner) || math.IsNaN(s.T))
	}
}

func TestSampleProfileAxialPositions(t *testing.T) {
	p := DefaultParams()
	samples := SampleProfile(p, Resolution{NZ: 5, NTheta: 8})

	assert.Len(t, samples, 5)
	for i, s := range samples {
		assert.InDelta(t, p.BootLength*float64(i)/4, s.Z, float64EqualityThreshold)
		assert.InDelta(t, p.BootLength-s.Z, s.Height, float64EqualityThreshold)
	}
}

func TestZoneString(t *testing.T) {
	assert.Equal(t, "small-flat", ZoneSmallFlat.String())
	assert.Equal(t, "mid", ZoneMid.String())
	assert.Equal(t, "big-flat", ZoneBigFlat.String())
	assert.Equal(t, "unknown", Zone(42).String())
}
