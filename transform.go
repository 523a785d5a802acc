package avian

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// RigidTransform describes one whole-body rigid motion: a rotation about the
// animal's body-centered pivot followed by a translation. Angles are in
// degrees. The zero value is the identity transform.
type RigidTransform struct {
	// Translation is the [x y z] displacement applied after rotation.
	// Must be nil (no translation) or exactly length 3.
	Translation []float64

	// Pitch rotates about the lateral (wing-to-wing, x) axis. Positive
	// pitch raises the head.
	Pitch float64

	// Yaw rotates about the vertical (z) axis. Positive yaw turns the
	// head toward the left wing.
	Yaw float64
}

// isIdentity reports whether applying the transform would be a no-op.
func (t RigidTransform) isIdentity() bool {
	if t.Pitch != 0 || t.Yaw != 0 {
		return false
	}
	for _, v := range t.Translation {
		if v != 0 {
			return false
		}
	}
	return true
}

// rotation builds the combined rotation: yaw about z, then pitch about x.
func (t RigidTransform) rotation() mgl64.Mat3 {
	return mgl64.Rotate3DX(mgl64.DegToRad(t.Pitch)).Mul3(
		mgl64.Rotate3DZ(mgl64.DegToRad(t.Yaw)))
}

// TransformKeypoints applies a rigid-body transform to every marker of every
// working frame, fixed markers included: rotation about the current pivot,
// then translation. Marker and frame counts are unchanged; only coordinates
// move. The pivot follows the translation, so a later rotation spins the
// body about wherever it has been moved to.
//
// Repeated calls compose on top of the current state. Callers wanting an
// absolute placement should re-establish the shape first (UpdateKeypoints or
// RestoreDefaultPose). Calling with the zero RigidTransform is a no-op.
//
// Fails with ErrTransform when the translation vector is not length 3 or when
// no working keypoints exist yet.
func (a *Animal) TransformKeypoints(t RigidTransform) error {
	if t.Translation != nil && len(t.Translation) != 3 {
		return fmt.Errorf("%w: translation has %d components, want 3",
			ErrTransform, len(t.Translation))
	}
	if len(a.clip) == 0 {
		return fmt.Errorf("%w: no working keypoints; call UpdateKeypoints first",
			ErrTransform)
	}
	if t.isIdentity() {
		return nil
	}

	var shift mgl64.Vec3
	if t.Translation != nil {
		shift = mgl64.Vec3{t.Translation[0], t.Translation[1], t.Translation[2]}
	}
	rot := t.rotation()
	pivot := a.origin

	for _, frame := range a.clip {
		transformFrame(frame, rot, pivot, shift)
	}
	transformFrame(a.fixed, rot, pivot, shift)
	a.origin = a.origin.Add(shift)
	return nil
}

// transformFrame rotates every point of the frame about pivot and then
// translates it, in place.
func transformFrame(f Frame, rot mgl64.Mat3, pivot, shift mgl64.Vec3) {
	for i, p := range f {
		f[i] = rot.Mul3x1(p.Sub(pivot)).Add(pivot).Add(shift)
	}
}
