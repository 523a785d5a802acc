package avian

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ViewConfig configures the interactive viewer window.
type ViewConfig struct {
	// Title is the window title. Empty means "avian".
	Title string

	// Width and Height are the window size in pixels. 0 means 800x600.
	Width, Height int

	// FPS is the playback rate of the clip, independent of the display
	// refresh rate. 0 means 20 frames per second.
	FPS float64

	// Camera is the base view. The zero value means DefaultCamera().
	Camera Camera

	// Sweep is the total azimuth orbit, in degrees, spread over one pass
	// of the clip. 0 keeps the camera static.
	Sweep float64

	// Ease shapes the sweep over time. Nil means ease.Linear.
	Ease ease.TweenFunc

	// Plot styles the rendered frames.
	Plot PlotOptions

	// Loop restarts playback (and the sweep) when the clip ends.
	Loop bool
}

// View opens a window and plays the source's working clip at the configured
// rate, optionally orbiting the camera. It snapshots the source once at
// startup; the owner may keep mutating the Animal afterwards. Blocks until
// the window closes.
func View(src PoseSource, cfg ViewConfig) error {
	if cfg.Title == "" {
		cfg.Title = "avian"
	}
	if cfg.Width == 0 {
		cfg.Width = 800
	}
	if cfg.Height == 0 {
		cfg.Height = 600
	}
	if cfg.FPS == 0 {
		cfg.FPS = 20
	}
	if cfg.Camera == (Camera{}) {
		cfg.Camera = DefaultCamera()
	}
	if cfg.Ease == nil {
		cfg.Ease = ease.Linear
	}
	cfg.Plot.Width = cfg.Width
	cfg.Plot.Height = cfg.Height

	snap := snapshotView{clip: src.Snapshot(), schema: src.Schema()}
	if len(snap.clip) == 0 {
		return fmt.Errorf("%w: source has no working keypoints", ErrTransform)
	}
	if fs, ok := src.(fixedPoseSource); ok {
		snap.fixed = fs.FixedSnapshot()
	}

	v := &viewer{cfg: cfg, snap: snap, frame: -1}
	v.resetSweep()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(v)
}

// snapshotView is the frozen clip the viewer plays; it satisfies PoseSource
// for the plotting path with a single selected frame.
type snapshotView struct {
	clip   Clip
	fixed  Frame
	schema Skeleton
	sel    int
}

func (s snapshotView) Snapshot() Clip       { return Clip{s.clip[s.sel].Clone()} }
func (s snapshotView) Schema() Skeleton     { return s.schema }
func (s snapshotView) FixedSnapshot() Frame { return s.fixed.Clone() }

// viewer implements ebiten.Game: Update advances playback time and the
// camera sweep, Draw re-renders only when the visible frame or view moved.
type viewer struct {
	cfg     ViewConfig
	snap    snapshotView
	elapsed float64
	sweep   *gween.Tween
	azimuth float64
	frame   int
	done    bool
	cache   *ebiten.Image
	dirty   bool
}

// resetSweep restarts the azimuth tween for one pass of the clip.
func (v *viewer) resetSweep() {
	v.azimuth = v.cfg.Camera.Azimuth
	v.sweep = nil
	if v.cfg.Sweep != 0 {
		v.sweep = gween.New(
			float32(v.cfg.Camera.Azimuth),
			float32(v.cfg.Camera.Azimuth+v.cfg.Sweep),
			float32(v.duration()),
			v.cfg.Ease,
		)
	}
}

// duration returns the clip length in seconds at the configured FPS.
func (v *viewer) duration() float64 {
	return float64(len(v.snap.clip)) / v.cfg.FPS
}

func (v *viewer) Update() error {
	if v.done {
		return nil
	}
	dt := 1.0 / float64(ebiten.TPS())
	v.elapsed += dt

	if v.elapsed >= v.duration() {
		if v.cfg.Loop {
			v.elapsed -= v.duration()
			v.resetSweep()
		} else {
			v.elapsed = v.duration()
			v.done = true
		}
	}

	frame := min(int(v.elapsed*v.cfg.FPS), len(v.snap.clip)-1)
	if frame != v.frame {
		v.frame = frame
		v.dirty = true
	}
	if v.sweep != nil && !v.done {
		az, _ := v.sweep.Update(float32(dt))
		if float64(az) != v.azimuth {
			v.azimuth = float64(az)
			v.dirty = true
		}
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.dirty || v.cache == nil {
		v.snap.sel = v.frame
		cam := v.cfg.Camera
		cam.Azimuth = v.azimuth
		img, err := Plot(v.snap, 0, cam, v.cfg.Plot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[avian] render frame %d: %v\n", v.frame, err)
			return
		}
		v.cache = ebiten.NewImageFromImage(img)
		v.dirty = false
	}
	screen.DrawImage(v.cache, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cfg.Width, v.cfg.Height
}
