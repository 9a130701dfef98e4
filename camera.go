package cvboot

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	dragSensitivity = 0.01 // radians per pixel
	zoomSensitivity = 0.5
	minPhi          = 0.1
	maxPhi          = math.Pi - 0.1
	minDistance     = 50
	maxDistance     = 500
)

// OrbitCamera circles a target point on a sphere. Theta is the azimuth in
// the XZ plane and Phi the angle down from +Y.
type OrbitCamera struct {
	Theta    float64
	Phi      float64
	Distance float64
	Target   mgl64.Vec3
}

// NewOrbitCamera aims at the middle of a boot of the given length.
func NewOrbitCamera(bootLength float64) *OrbitCamera {
	return &OrbitCamera{
		Theta:    math.Pi / 4,
		Phi:      math.Pi / 4,
		Distance: 200,
		Target:   mgl64.Vec3{0, bootLength / 2, 0},
	}
}

// Drag rotates the camera by a mouse movement in pixels. Phi stays clear of
// the poles so the view never flips.
func (c *OrbitCamera) Drag(dx, dy float64) {
	c.Theta -= dx * dragSensitivity
	c.Phi -= dy * dragSensitivity
	c.Phi = mgl64.Clamp(c.Phi, minPhi, maxPhi)
}

// Zoom moves the camera along its line of sight by a wheel delta.
func (c *OrbitCamera) Zoom(delta float64) {
	c.Distance = mgl64.Clamp(c.Distance+delta*zoomSensitivity, minDistance, maxDistance)
}

func (c *OrbitCamera) Position() mgl64.Vec3 {
	sinPhi := math.Sin(c.Phi)
	return c.Target.Add(mgl64.Vec3{
		c.Distance * sinPhi * math.Cos(c.Theta),
		c.Distance * math.Cos(c.Phi),
		c.Distance * sinPhi * math.Sin(c.Theta),
	})
}

// View returns the world to camera matrix.
func (c *OrbitCamera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position(), c.Target, mgl64.Vec3{0, 1, 0})
}
