package avian

import "github.com/go-gl/mathgl/mgl64"

// Frame is a single pose: one 3D coordinate per marker, in the skeleton's
// marker order. Coordinates are in a consistent real-world length unit
// (millimetres for the built-in hawk pose), column order (x, y, z):
// x lateral (+x toward the right wing), y anterior (+y toward the head),
// z dorsal (+z up).
type Frame []mgl64.Vec3

// Clip is a sequence of poses, one Frame per animation frame, iterated in
// index order for playback.
type Clip []Frame

// Clone returns a deep copy of the frame.
func (f Frame) Clone() Frame {
	if f == nil {
		return nil
	}
	out := make(Frame, len(f))
	copy(out, f)
	return out
}

// Lerp returns the linear interpolation between f and other at t, where t=0
// yields f and t=1 yields other. Both frames must have the same length.
func (f Frame) Lerp(other Frame, t float64) Frame {
	out := make(Frame, len(f))
	for i := range f {
		out[i] = f[i].Add(other[i].Sub(f[i]).Mul(t))
	}
	return out
}

// Clone returns a deep copy of the clip.
func (c Clip) Clone() Clip {
	if c == nil {
		return nil
	}
	out := make(Clip, len(c))
	for i, f := range c {
		out[i] = f.Clone()
	}
	return out
}

// Bounds returns the axis-aligned bounding box over every marker in every
// frame. Returns zero vectors for an empty clip.
func (c Clip) Bounds() (min, max mgl64.Vec3) {
	first := true
	for _, f := range c {
		for _, p := range f {
			if first {
				min, max = p, p
				first = false
				continue
			}
			for i := 0; i < 3; i++ {
				if p[i] < min[i] {
					min[i] = p[i]
				}
				if p[i] > max[i] {
					max[i] = p[i]
				}
			}
		}
	}
	return min, max
}

// reflectSagittal mirrors a point across the sagittal (body midline) plane by
// negating the lateral axis. Its own inverse.
func reflectSagittal(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{-p[0], p[1], p[2]}
}
