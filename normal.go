package cvboot

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

func vec64(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// FacetNormal returns the unit normal of triangle abc following its winding:
// (b-a) x (c-a). A zero-area triangle has a zero-length cross product, which
// is divided by 1 instead so the result stays finite.
func FacetNormal(a, b, c mgl32.Vec3) mgl64.Vec3 {
	pa := vec64(a)
	u := vec64(b).Sub(pa)
	v := vec64(c).Sub(pa)

	n := u.Cross(v)
	length := n.Len()
	if length == 0 {
		length = 1
	}
	return n.Mul(1 / length)
}
