package avian

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication happens at rasterization time.
type Color struct {
	R, G, B, A float64
}

// Palette defaults used by the plotting helpers.
var (
	// ColorBlack is the default keypoint and polygon-edge color.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorWhite is the default plot background.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorEstimated is the muted grey used for body sections whose markers
	// are reference points rather than measured keypoints.
	ColorEstimated = Color{0.5, 0.5, 0.5, 1}
)

// WithAlpha returns a copy of the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// toNRGBA converts to straight-alpha 8-bit color, clamping each component.
func (c Color) toNRGBA() color.NRGBA {
	return color.NRGBA{
		R: clamp8(c.R),
		G: clamp8(c.G),
		B: clamp8(c.B),
		A: clamp8(c.A),
	}
}

func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
