package avian

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/vector"
)

// PoseSource is the narrow read-only capability the plotting and animation
// tools need: a snapshot of the working keypoints and the schema that names
// them. *Animal satisfies it; so does any test double.
type PoseSource interface {
	Snapshot() Clip
	Schema() Skeleton
}

// fixedPoseSource is optionally satisfied by sources that also carry fixed
// reference markers (as *Animal does). Sections touching fixed markers are
// skipped when the source cannot provide them.
type fixedPoseSource interface {
	FixedSnapshot() Frame
}

// PlotOptions configures a still render. The zero value gives a 640x480
// white-background plot with auto-fitted scale.
type PlotOptions struct {
	// Width and Height are the output size in pixels. 0 means 640x480.
	Width, Height int

	// Colour fills the measured body sections (handwings, tail). The zero
	// value means a muted blue.
	Colour Color

	// Alpha is the fill opacity of the measured sections. 0 means 0.3,
	// matching the original plots; pass 1 explicitly for opaque fills.
	Alpha float64

	// Background fills the canvas first. The zero value means white.
	Background Color

	// Scale is pixels per world unit. 0 fits the frame with a 10% margin,
	// centered on the shape; a non-zero scale centers on the camera target
	// instead, keeping multi-frame renders steady.
	Scale float64

	// HideMarkers suppresses the keypoint dots.
	HideMarkers bool
}

// defaults for the zero PlotOptions value.
const (
	defaultPlotWidth  = 640
	defaultPlotHeight = 480
	defaultPlotAlpha  = 0.3
	markerDotRadius   = 2.5
	edgeWidth         = 1.0
)

var defaultPlotColour = Color{0.23, 0.45, 0.79, 1}

// resolve fills in the zero-value defaults.
func (o PlotOptions) resolve() PlotOptions {
	if o.Width == 0 {
		o.Width = defaultPlotWidth
	}
	if o.Height == 0 {
		o.Height = defaultPlotHeight
	}
	if o.Colour == (Color{}) {
		o.Colour = defaultPlotColour
	}
	if o.Alpha == 0 {
		o.Alpha = defaultPlotAlpha
	}
	if o.Background == (Color{}) {
		o.Background = ColorWhite
	}
	return o
}

// Plot renders one frame of the source's working clip as a still image:
// filled body-section polygons sorted back to front, keypoint dots on top.
// Sections whose markers are measured keypoints (handwings, tail) take the
// requested colour; sections built on reference markers are drawn muted,
// the same convention as the plots this library's data comes from.
func Plot(src PoseSource, frame int, cam Camera, opts PlotOptions) (*image.NRGBA, error) {
	clip := src.Snapshot()
	if frame < 0 || frame >= len(clip) {
		return nil, fmt.Errorf("avian: plot frame %d out of range (clip has %d)", frame, len(clip))
	}
	opts = opts.resolve()
	schema := src.Schema()

	var fixed Frame
	if fs, ok := src.(fixedPoseSource); ok {
		fixed = fs.FixedSnapshot()
	}

	pr := newProjector(cam, opts, clip[frame], fixed)
	img := image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background.toNRGBA()), image.Point{}, draw.Src)

	drawSections(img, pr, schema, clip[frame], fixed, opts)
	if !opts.HideMarkers {
		for _, p := range clip[frame] {
			x, y, _ := pr.toScreen(p)
			fillDot(img, x, y, markerDotRadius, ColorBlack)
		}
	}
	return img, nil
}

// projector maps world coordinates to pixels for one frame: camera view,
// then a uniform scale centered on the frame's projected bounding box.
type projector struct {
	cam    Camera
	scale  float64
	cx, cy float64 // screen center in pixels
	mx, my float64 // projected model center
}

func newProjector(cam Camera, opts PlotOptions, frame, fixed Frame) projector {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	scan := func(f Frame) {
		for _, p := range f {
			x, y, _ := cam.Project(p)
			minX = math.Min(minX, x)
			maxX = math.Max(maxX, x)
			minY = math.Min(minY, y)
			maxY = math.Max(maxY, y)
		}
	}
	scan(frame)
	scan(fixed)

	pr := projector{
		cam: cam,
		cx:  float64(opts.Width) / 2,
		cy:  float64(opts.Height) / 2,
		mx:  (minX + maxX) / 2,
		my:  (minY + maxY) / 2,
	}
	if opts.Scale != 0 {
		// Explicit scale: center the view on the camera target so that a
		// clip rendered frame by frame does not jitter with the shape.
		pr.mx, pr.my, _ = cam.Project(cam.Target)
		pr.scale = opts.Scale
		return pr
	}
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 && spanY <= 0 {
		pr.scale = 1
		return pr
	}
	sx, sy := math.Inf(1), math.Inf(1)
	if spanX > 0 {
		sx = float64(opts.Width) / spanX
	}
	if spanY > 0 {
		sy = float64(opts.Height) / spanY
	}
	pr.scale = 0.9 * math.Min(sx, sy)
	return pr
}

// toScreen projects a world point to pixel coordinates (y grows downward)
// and view depth.
func (pr projector) toScreen(p mgl64.Vec3) (x, y, depth float64) {
	vx, vy, d := pr.cam.Project(p)
	return pr.cx + (vx-pr.mx)*pr.scale, pr.cy - (vy-pr.my)*pr.scale, d
}

// sectionPoly is one body section projected to the screen.
type sectionPoly struct {
	name  string
	pts   [][2]float64
	depth float64 // mean view depth, for painter's sorting
}

// drawSections projects every body section and paints them farthest first.
func drawSections(img *image.NRGBA, pr projector, schema Skeleton, frame, fixed Frame, opts PlotOptions) {
	moving := len(schema.MarkerNames)
	polys := make([]sectionPoly, 0, len(schema.SectionOrder))

	for _, name := range schema.SectionOrder {
		indices, err := schema.SectionIndices(name)
		if err != nil {
			continue
		}
		poly := sectionPoly{name: name, pts: make([][2]float64, 0, len(indices))}
		ok := true
		for _, idx := range indices {
			var p mgl64.Vec3
			switch {
			case idx < moving:
				p = frame[idx]
			case idx-moving < len(fixed):
				p = fixed[idx-moving]
			default:
				ok = false // source carries no fixed markers
			}
			if !ok {
				break
			}
			x, y, d := pr.toScreen(p)
			poly.pts = append(poly.pts, [2]float64{x, y})
			poly.depth += d
		}
		if !ok || len(poly.pts) < 3 {
			continue
		}
		poly.depth /= float64(len(poly.pts))
		polys = append(polys, poly)
	}

	sort.SliceStable(polys, func(i, j int) bool {
		return polys[i].depth > polys[j].depth
	})

	for _, poly := range polys {
		fill, alpha := sectionStyle(poly.name, opts.Colour, opts.Alpha)
		fillPolygon(img, poly.pts, fill.WithAlpha(alpha))
		strokePolygon(img, poly.pts, edgeWidth, ColorBlack.WithAlpha(0.6))
	}
}

// sectionStyle returns the fill colour and opacity for a section. Handwings
// and tail are measured shapes and take the caller's colour; the remaining
// sections are estimated from reference markers and drawn muted.
func sectionStyle(name string, colour Color, alpha float64) (Color, float64) {
	if strings.Contains(name, "handwing") || strings.Contains(name, "tail") {
		return colour, alpha
	}
	return ColorEstimated, 0.3
}

// fillPolygon rasterizes a filled polygon with antialiased coverage.
func fillPolygon(img *image.NRGBA, pts [][2]float64, col Color) {
	if len(pts) < 3 {
		return
	}
	b := img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		r.LineTo(float32(p[0]), float32(p[1]))
	}
	r.ClosePath()
	r.Draw(img, b, image.NewUniform(col.toNRGBA()), image.Point{})
}

// strokePolygon outlines a closed polygon with quads of the given width.
func strokePolygon(img *image.NRGBA, pts [][2]float64, width float64, col Color) {
	for i := range pts {
		strokeSegment(img, pts[i], pts[(i+1)%len(pts)], width, col)
	}
}

// strokeSegment draws one line segment as a filled quad.
func strokeSegment(img *image.NRGBA, p0, p1 [2]float64, width float64, col Color) {
	dx := p1[0] - p0[0]
	dy := p1[1] - p0[1]
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Unit normal scaled to half width.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2
	fillPolygon(img, [][2]float64{
		{p0[0] + nx, p0[1] + ny},
		{p1[0] + nx, p1[1] + ny},
		{p1[0] - nx, p1[1] - ny},
		{p0[0] - nx, p0[1] - ny},
	}, col)
}

// fillDot draws a keypoint marker as a small octagon.
func fillDot(img *image.NRGBA, x, y, radius float64, col Color) {
	const segments = 8
	pts := make([][2]float64, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / segments
		pts[i] = [2]float64{x + radius*math.Cos(a), y + radius*math.Sin(a)}
	}
	fillPolygon(img, pts, col)
}
