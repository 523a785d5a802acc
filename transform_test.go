package avian

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec3(t *testing.T, name string, got, want mgl64.Vec3) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func assertFrame(t *testing.T, name string, got, want Frame) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s has %d markers, want %d", name, len(got), len(want))
	}
	for i := range got {
		assertVec3(t, name, got[i], want[i])
	}
}

func framesEqual(a, b Clip) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

// --- TransformKeypoints ---

func TestTransformIdentityIsNoOp(t *testing.T) {
	hawk := NewHawk()
	before := hawk.Snapshot()

	if err := hawk.TransformKeypoints(RigidTransform{}); err != nil {
		t.Fatalf("TransformKeypoints(identity) = %v", err)
	}
	if err := hawk.TransformKeypoints(RigidTransform{Translation: []float64{0, 0, 0}}); err != nil {
		t.Fatalf("TransformKeypoints(zero translation) = %v", err)
	}

	if !framesEqual(hawk.Snapshot(), before) {
		t.Error("identity transform changed the working keypoints")
	}
}

func TestTransformTranslation(t *testing.T) {
	hawk := NewHawk()
	before := hawk.Snapshot()

	if err := hawk.TransformKeypoints(RigidTransform{Translation: []float64{5, -2, 7}}); err != nil {
		t.Fatalf("TransformKeypoints = %v", err)
	}

	after := hawk.Snapshot()
	for i := range before[0] {
		assertVec3(t, "translated marker", after[0][i],
			before[0][i].Add(mgl64.Vec3{5, -2, 7}))
	}
	assertVec3(t, "origin", hawk.Origin(), mgl64.Vec3{5, -2, 7})
}

func TestTransformComposition(t *testing.T) {
	hawk := NewHawk()
	before := hawk.Snapshot()

	for i := 0; i < 2; i++ {
		if err := hawk.TransformKeypoints(RigidTransform{Translation: []float64{5, 0, 0}}); err != nil {
			t.Fatalf("TransformKeypoints pass %d = %v", i, err)
		}
	}

	after := hawk.Snapshot()
	for i := range before[0] {
		assertVec3(t, "composed marker", after[0][i],
			before[0][i].Add(mgl64.Vec3{10, 0, 0}))
	}
}

func TestTransformPitch90(t *testing.T) {
	hawk := NewHawk()
	p := hawk.Snapshot()[0][HawkLeftWingtip]

	if err := hawk.TransformKeypoints(RigidTransform{Pitch: 90}); err != nil {
		t.Fatalf("TransformKeypoints = %v", err)
	}

	// Rotation about x: y -> z.
	got := hawk.Snapshot()[0][HawkLeftWingtip]
	assertVec3(t, "pitched wingtip", got, mgl64.Vec3{p.X(), -p.Z(), p.Y()})
}

func TestTransformYaw90(t *testing.T) {
	hawk := NewHawk()
	p := hawk.Snapshot()[0][HawkLeftWingtip]

	if err := hawk.TransformKeypoints(RigidTransform{Yaw: 90}); err != nil {
		t.Fatalf("TransformKeypoints = %v", err)
	}

	// Rotation about z: x -> y.
	got := hawk.Snapshot()[0][HawkLeftWingtip]
	assertVec3(t, "yawed wingtip", got, mgl64.Vec3{-p.Y(), p.X(), p.Z()})
}

func TestTransformPivotFollowsTranslation(t *testing.T) {
	hawk := NewHawk()
	p := hawk.Snapshot()[0][HawkLeftWingtip]

	if err := hawk.TransformKeypoints(RigidTransform{Translation: []float64{0, 100, 0}}); err != nil {
		t.Fatalf("translate = %v", err)
	}
	if err := hawk.TransformKeypoints(RigidTransform{Pitch: 180}); err != nil {
		t.Fatalf("pitch = %v", err)
	}

	// Pitch by 180 about the moved pivot (0,100,0): y and z negate
	// relative to the pivot, so the body spins in place.
	got := hawk.Snapshot()[0][HawkLeftWingtip]
	want := mgl64.Vec3{p.X(), 100 - p.Y(), -p.Z()}
	assertVec3(t, "pitched about moved pivot", got, want)
}

func TestTransformMovesFixedMarkers(t *testing.T) {
	hawk := NewHawk()
	before := hawk.FixedSnapshot()

	if err := hawk.TransformKeypoints(RigidTransform{Translation: []float64{0, 0, 50}}); err != nil {
		t.Fatalf("TransformKeypoints = %v", err)
	}

	after := hawk.FixedSnapshot()
	for i := range before {
		assertVec3(t, "fixed marker", after[i], before[i].Add(mgl64.Vec3{0, 0, 50}))
	}
}

func TestTransformAppliesToAllFrames(t *testing.T) {
	hawk := NewHawk()
	half := [][]float64{
		{-420, 60, 40}, {-300, -70, 10}, {-110, -140, -5}, {-40, -310, -15},
	}
	if err := hawk.UpdateKeypoints([][][]float64{half, half, half}); err != nil {
		t.Fatalf("UpdateKeypoints = %v", err)
	}
	before := hawk.Snapshot()

	if err := hawk.TransformKeypoints(RigidTransform{Translation: []float64{1, 2, 3}}); err != nil {
		t.Fatalf("TransformKeypoints = %v", err)
	}

	after := hawk.Snapshot()
	for f := range before {
		for i := range before[f] {
			assertVec3(t, "marker", after[f][i], before[f][i].Add(mgl64.Vec3{1, 2, 3}))
		}
	}
}

func TestTransformBadTranslationLength(t *testing.T) {
	hawk := NewHawk()
	before := hawk.Snapshot()

	err := hawk.TransformKeypoints(RigidTransform{Translation: []float64{1, 2}})
	if !errors.Is(err, ErrTransform) {
		t.Fatalf("TransformKeypoints(short translation) = %v, want ErrTransform", err)
	}
	if !framesEqual(hawk.Snapshot(), before) {
		t.Error("failed transform mutated the working keypoints")
	}
}

func TestTransformWithoutKeypoints(t *testing.T) {
	spider := NewAnimal(SpiderSkeleton()) // no baked pose, starts empty

	err := spider.TransformKeypoints(RigidTransform{Pitch: 10})
	if !errors.Is(err, ErrTransform) {
		t.Fatalf("TransformKeypoints on empty animal = %v, want ErrTransform", err)
	}
}
