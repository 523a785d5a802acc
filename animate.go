package avian

import (
	"fmt"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ClipOptions configures RenderClip. Per-frame tracks are optional; when
// given, each must hold exactly one value per keypoint frame.
type ClipOptions struct {
	// Plot styles each rendered frame. A zero Scale is replaced by a fit
	// over the whole clip so the viewpoint stays steady during playback.
	Plot PlotOptions

	// Camera is the base view for every frame.
	Camera Camera

	// Azimuth optionally overrides the camera azimuth per frame; build a
	// sweep with SweepAzimuth for an orbiting view.
	Azimuth []float64

	// Pitch is a per-frame body pitch track, in degrees.
	Pitch []float64

	// Horizontal and Vertical are per-frame translation tracks along the
	// anterior (y) and dorsal (z) axes.
	Horizontal, Vertical []float64
}

// RenderClip renders a keypoint clip frame by frame: each frame's shape is
// validated and mirrored through the Animal's update path, the frame's
// rigid-transform track values are applied on the fresh shape, and the
// result is plotted. Returns one image per frame.
//
// The Animal is used as the engine and schema carrier; its working state
// afterwards holds the final frame's transformed pose.
func RenderClip(a *Animal, keyframes [][][]float64, opts ClipOptions) ([]*image.NRGBA, error) {
	if err := a.UpdateKeypoints(keyframes); err != nil {
		return nil, err
	}
	base := a.Snapshot()
	n := len(base)

	azimuth, err := track(n, opts.Azimuth, "azimuth")
	if err != nil {
		return nil, err
	}
	pitch, err := track(n, opts.Pitch, "pitch")
	if err != nil {
		return nil, err
	}
	horz, err := track(n, opts.Horizontal, "horizontal")
	if err != nil {
		return nil, err
	}
	vert, err := track(n, opts.Vertical, "vertical")
	if err != nil {
		return nil, err
	}

	if opts.Plot.Scale == 0 {
		opts.Plot.Scale = clipScale(a, base, opts)
	}

	images := make([]*image.NRGBA, 0, n)
	for i := 0; i < n; i++ {
		a.resetTo(base[i])
		err := a.TransformKeypoints(RigidTransform{
			Pitch:       pitch[i],
			Translation: []float64{0, horz[i], vert[i]},
		})
		if err != nil {
			return nil, err
		}

		cam := opts.Camera
		if opts.Azimuth != nil {
			cam.Azimuth = azimuth[i]
		}
		img, err := Plot(a, 0, cam, opts.Plot)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

// track validates an optional per-frame parameter track against the clip
// length, returning zeros when absent.
func track(n int, values []float64, name string) ([]float64, error) {
	if values == nil {
		return make([]float64, n), nil
	}
	if len(values) != n {
		return nil, fmt.Errorf("%w: %s track has %d values for %d frames",
			ErrTransform, name, len(values), n)
	}
	return values, nil
}

// clipScale fits the whole clip, translations included, so every frame
// renders at the same pixels-per-unit.
func clipScale(a *Animal, base Clip, opts ClipOptions) float64 {
	target := opts.Camera.Target
	radius := 0.0
	grow := func(f Frame) {
		for _, p := range f {
			if d := p.Sub(target).Len(); d > radius {
				radius = d
			}
		}
	}
	for _, f := range base {
		grow(f)
	}
	grow(a.FixedSnapshot())

	// Translation tracks move the body; widen the fit by the largest shift.
	maxShift := 0.0
	for _, v := range opts.Horizontal {
		maxShift = math.Max(maxShift, math.Abs(v))
	}
	for _, v := range opts.Vertical {
		maxShift = math.Max(maxShift, math.Abs(v))
	}
	radius += maxShift
	if radius == 0 {
		return 1
	}

	w := opts.Plot.Width
	h := opts.Plot.Height
	if w == 0 {
		w = defaultPlotWidth
	}
	if h == 0 {
		h = defaultPlotHeight
	}
	return 0.9 * float64(min(w, h)) / (2 * radius)
}

// resetTo replaces the working state with a single already-bilateral frame,
// clearing any accumulated transform. Internal fast path for RenderClip and
// the viewer; external callers go through UpdateKeypoints.
func (a *Animal) resetTo(frame Frame) {
	a.clip = Clip{frame.Clone()}
	a.fixed = a.skeleton.FixedPose.Clone()
	a.origin = mgl64.Vec3{}
}
