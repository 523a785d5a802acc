package avian

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera defines the view for plotting: an orthographic look-at projection
// orbiting a target point, parameterized by azimuth and elevation the way
// 3D plotting tools conventionally are.
type Camera struct {
	// Azimuth is the orbit angle around the vertical axis, in degrees.
	// At 0 the camera sits on the +x side of the target.
	Azimuth float64

	// Elevation is the angle above the horizontal plane, in degrees.
	// Exactly ±90 is degenerate (view direction parallel to the up axis).
	Elevation float64

	// Target is the world point the camera looks at.
	Target mgl64.Vec3

	// Distance is the eye's offset from the target. The projection is
	// orthographic, so Distance only needs to clear the model; 0 means
	// the default of 1000 units.
	Distance float64
}

// DefaultCamera returns the view used by the original plots: azimuth 60,
// elevation 20, watching the world origin.
func DefaultCamera() Camera {
	return Camera{Azimuth: 60, Elevation: 20}
}

// eye returns the camera position on its orbit sphere.
func (c Camera) eye() mgl64.Vec3 {
	dist := c.Distance
	if dist == 0 {
		dist = 1000
	}
	az := mgl64.DegToRad(c.Azimuth)
	el := mgl64.DegToRad(c.Elevation)
	dir := mgl64.Vec3{
		math.Cos(el) * math.Cos(az),
		math.Cos(el) * math.Sin(az),
		math.Sin(el),
	}
	return c.Target.Add(dir.Mul(dist))
}

// view returns the world-to-view matrix, +z up.
func (c Camera) view() mgl64.Mat4 {
	return mgl64.LookAtV(c.eye(), c.Target, mgl64.Vec3{0, 0, 1})
}

// Project maps a world point into view space: x grows to the viewer's right,
// y up, and depth away from the camera. Callers apply their own scale and
// screen offset; depth exists for painter's-algorithm sorting.
func (c Camera) Project(p mgl64.Vec3) (x, y, depth float64) {
	v := c.view().Mul4x1(p.Vec4(1))
	return v.X(), v.Y(), -v.Z()
}

// SweepAzimuth returns n per-frame azimuth angles easing from start to
// start+sweep over the clip. ease.Linear reproduces a constant-rate orbit;
// other easing functions give slow-in/slow-out sweeps.
func SweepAzimuth(start, sweep float64, n int, fn ease.TweenFunc) []float64 {
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	out[0] = start
	if n == 1 {
		return out
	}
	tw := gween.New(float32(start), float32(start+sweep), float32(n-1), fn)
	for i := 1; i < n; i++ {
		v, _ := tw.Update(1)
		out[i] = float64(v)
	}
	return out
}
