package avian

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestFrameCloneIsIndependent(t *testing.T) {
	f := Frame{{1, 2, 3}, {4, 5, 6}}
	c := f.Clone()
	c[0] = mgl64.Vec3{9, 9, 9}

	assertVec3(t, "original after clone mutation", f[0], mgl64.Vec3{1, 2, 3})

	if Frame(nil).Clone() != nil {
		t.Error("Clone of nil frame is non-nil")
	}
}

func TestClipCloneIsDeep(t *testing.T) {
	c := Clip{{{1, 2, 3}}, {{4, 5, 6}}}
	d := c.Clone()
	d[1][0] = mgl64.Vec3{0, 0, 0}

	assertVec3(t, "original after deep-clone mutation", c[1][0], mgl64.Vec3{4, 5, 6})
}

func TestFrameLerp(t *testing.T) {
	a := Frame{{0, 0, 0}, {10, -10, 2}}
	b := Frame{{4, 8, -2}, {20, 10, 4}}

	mid := a.Lerp(b, 0.5)
	assertVec3(t, "midpoint 0", mid[0], mgl64.Vec3{2, 4, -1})
	assertVec3(t, "midpoint 1", mid[1], mgl64.Vec3{15, 0, 3})

	assertFrame(t, "lerp at 0", a.Lerp(b, 0), a)
	assertFrame(t, "lerp at 1", a.Lerp(b, 1), b)
}

func TestClipBounds(t *testing.T) {
	c := Clip{
		{{-5, 1, 0}, {2, 3, 4}},
		{{0, -7, 9}},
	}
	min, max := c.Bounds()
	assertVec3(t, "min", min, mgl64.Vec3{-5, -7, 0})
	assertVec3(t, "max", max, mgl64.Vec3{2, 3, 9})

	min, max = Clip(nil).Bounds()
	assertVec3(t, "empty min", min, mgl64.Vec3{})
	assertVec3(t, "empty max", max, mgl64.Vec3{})
}
