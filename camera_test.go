package avian

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

func TestDefaultCamera(t *testing.T) {
	c := DefaultCamera()
	assertNear(t, "azimuth", c.Azimuth, 60)
	assertNear(t, "elevation", c.Elevation, 20)
	assertVec3(t, "target", c.Target, mgl64.Vec3{})
}

func TestProjectAtZeroAzimuth(t *testing.T) {
	// Eye on the +x axis looking at the origin: world y points to the
	// viewer's right, world z points up.
	c := Camera{Azimuth: 0, Elevation: 0}

	x, y, depth := c.Project(mgl64.Vec3{0, 1, 0})
	assertNear(t, "y-axis x", x, 1)
	assertNear(t, "y-axis y", y, 0)
	assertNear(t, "y-axis depth", depth, 1000)

	x, y, depth = c.Project(mgl64.Vec3{0, 0, 1})
	assertNear(t, "z-axis x", x, 0)
	assertNear(t, "z-axis y", y, 1)
	assertNear(t, "z-axis depth", depth, 1000)
}

func TestProjectDepthOrdering(t *testing.T) {
	c := DefaultCamera()
	_, _, near := c.Project(c.eye().Sub(c.Target).Normalize().Mul(100))
	_, _, far := c.Project(c.eye().Sub(c.Target).Normalize().Mul(-100))
	if near >= far {
		t.Errorf("point toward camera has depth %g, point away %g", near, far)
	}
}

func TestSweepAzimuth(t *testing.T) {
	// gween runs on float32s, so the endpoints are only coarsely exact.
	const coarse = 1e-3

	angles := SweepAzimuth(60, 360, 11, ease.Linear)
	if len(angles) != 11 {
		t.Fatalf("got %d angles, want 11", len(angles))
	}
	if d := angles[0] - 60; d > coarse || d < -coarse {
		t.Errorf("first angle %g, want 60", angles[0])
	}
	if d := angles[10] - 420; d > coarse || d < -coarse {
		t.Errorf("last angle %g, want 420", angles[10])
	}
	for i := 1; i < len(angles); i++ {
		if angles[i] <= angles[i-1] {
			t.Errorf("sweep not monotonic at frame %d: %g then %g", i, angles[i-1], angles[i])
		}
	}
}

func TestSweepAzimuthDegenerateLengths(t *testing.T) {
	if got := SweepAzimuth(30, 90, 0, ease.Linear); len(got) != 0 {
		t.Errorf("n=0 returned %d angles", len(got))
	}
	one := SweepAzimuth(30, 90, 1, ease.Linear)
	if len(one) != 1 || one[0] != 30 {
		t.Errorf("n=1 returned %v, want [30]", one)
	}
}
