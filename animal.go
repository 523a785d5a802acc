package avian

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Animal owns the working keypoint state for one individual: the bound
// skeleton schema, the species' average resting pose, and the current
// (possibly multi-frame) shape with its accumulated rigid-transform pivot.
//
// Shape input arrives through UpdateKeypoints/UpdateFrame as raw numeric
// arrays and is validated and mirrored before it replaces the working clip.
// TransformKeypoints then moves the whole body rigidly without changing the
// shape. Each Animal is exclusively owned; methods mutate in place and are
// not safe for concurrent use. Renderers read deep-copied snapshots.
type Animal struct {
	skeleton Skeleton
	clip     Clip        // working shape, frames x bilateral markers
	fixed    Frame       // working fixed-marker positions
	origin   mgl64.Vec3  // body-centered pivot, tracks accumulated translation
}

// NewAnimal returns an Animal bound to the given schema, resting in the
// schema's average pose (a single frame). Schemas without a baked pose start
// empty and must be fed UpdateKeypoints before transforming. Panics if the
// schema is internally inconsistent: schemas are package constants, not
// runtime input.
func NewAnimal(s Skeleton) *Animal {
	if err := s.validate(); err != nil {
		panic(err)
	}
	a := &Animal{skeleton: s, fixed: s.FixedPose.Clone()}
	if s.Pose != nil {
		a.RestoreDefaultPose()
	}
	return a
}

// Schema returns the bound skeleton definition. The returned value shares
// backing arrays with the Animal; treat it as read-only.
func (a *Animal) Schema() Skeleton {
	return a.skeleton
}

// FrameCount returns the number of frames in the working clip.
func (a *Animal) FrameCount() int {
	return len(a.clip)
}

// Origin returns the current body-centered pivot. It starts at the world
// origin and follows the accumulated translation of TransformKeypoints.
func (a *Animal) Origin() mgl64.Vec3 {
	return a.origin
}

// Snapshot returns a deep copy of the working clip: FrameCount() frames of
// len(Schema().MarkerNames) markers each. Renderers should take a snapshot
// per drawn frame; the Animal may be mutated again while they hold it.
func (a *Animal) Snapshot() Clip {
	return a.clip.Clone()
}

// FixedSnapshot returns a deep copy of the current fixed-marker positions,
// parallel to Schema().FixedMarkerNames. Nil when the schema has none.
func (a *Animal) FixedSnapshot() Frame {
	return a.fixed.Clone()
}

// CurrentFrame returns a deep copy of frame i of the working clip.
func (a *Animal) CurrentFrame(i int) (Frame, error) {
	if i < 0 || i >= len(a.clip) {
		return nil, fmt.Errorf("avian: frame %d out of range (clip has %d)", i, len(a.clip))
	}
	return a.clip[i].Clone(), nil
}

// Bounds returns the axis-aligned bounding box of the working clip,
// including fixed markers.
func (a *Animal) Bounds() (min, max mgl64.Vec3) {
	all := make(Clip, 0, len(a.clip)+1)
	all = append(all, a.clip...)
	if len(a.fixed) > 0 {
		all = append(all, a.fixed)
	}
	return all.Bounds()
}

// SectionCoords returns the polygon coordinates of a body section for frame i,
// in the section's winding order. Sections may reference fixed markers.
func (a *Animal) SectionCoords(i int, section string) (Frame, error) {
	if i < 0 || i >= len(a.clip) {
		return nil, fmt.Errorf("avian: frame %d out of range (clip has %d)", i, len(a.clip))
	}
	indices, err := a.skeleton.SectionIndices(section)
	if err != nil {
		return nil, err
	}
	moving := len(a.skeleton.MarkerNames)
	out := make(Frame, len(indices))
	for k, idx := range indices {
		if idx < moving {
			out[k] = a.clip[i][idx]
		} else {
			out[k] = a.fixed[idx-moving]
		}
	}
	return out, nil
}

// RestoreDefaultPose discards the working clip and any accumulated transform,
// resetting to a single frame of the schema's average pose. Panics if the
// schema has no baked pose (spider-style schemas must be fed keypoints).
func (a *Animal) RestoreDefaultPose() {
	if a.skeleton.Pose == nil {
		panic(fmt.Sprintf("avian: %s skeleton has no default pose", a.skeleton.Species))
	}
	a.clip = Clip{a.skeleton.Pose.Clone()}
	a.fixed = a.skeleton.FixedPose.Clone()
	a.origin = mgl64.Vec3{}
}

// UpdateFrame replaces the working clip with a single frame. Points are
// [x y z] rows; 4 rows are treated as the left half body and mirrored, 8 rows
// pass through unchanged. Equivalent to UpdateKeypoints with one frame.
func (a *Animal) UpdateFrame(points [][]float64) error {
	return a.UpdateKeypoints([][][]float64{points})
}

// UpdateKeypoints validates the supplied keypoint frames and replaces the
// working clip with them. Each frame is a marker-by-[x y z] array holding
// either the unilateral control points (mirrored across the sagittal plane
// to the full bilateral set, independently per frame) or the full bilateral
// set (stored as given; left and right may differ).
//
// The update is all-or-nothing: on ErrShape the prior working state is
// untouched. On success the previous clip and any accumulated rigid
// transform are discarded; the new shape starts from its supplied
// coordinates until TransformKeypoints is called again.
func (a *Animal) UpdateKeypoints(frames [][][]float64) error {
	clip, err := a.convertFrames(frames)
	if err != nil {
		return err
	}
	a.clip = clip
	a.fixed = a.skeleton.FixedPose.Clone()
	a.origin = mgl64.Vec3{}
	return nil
}

// convertFrames validates raw keypoint input and returns the bilateral clip,
// mirroring unilateral frames. Pure with respect to the Animal's state.
func (a *Animal) convertFrames(frames [][][]float64) (Clip, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: no frames supplied", ErrShape)
	}
	uni := a.skeleton.UnilateralCount()
	bi := len(a.skeleton.MarkerNames)

	markers := len(frames[0])
	switch {
	case markers == bi:
	case markers == uni && a.skeleton.Bilateral():
	default:
		return nil, fmt.Errorf("%w: %d markers per frame, want %d or %d",
			ErrShape, markers, uni, bi)
	}

	clip := make(Clip, len(frames))
	for fi, rows := range frames {
		if len(rows) != markers {
			return nil, fmt.Errorf("%w: frame %d has %d markers, frame 0 has %d",
				ErrShape, fi, len(rows), markers)
		}
		frame := make(Frame, markers)
		for mi, row := range rows {
			if len(row) != 3 {
				return nil, fmt.Errorf("%w: frame %d marker %d has %d coordinates, want 3",
					ErrShape, fi, mi, len(row))
			}
			frame[mi] = mgl64.Vec3{row[0], row[1], row[2]}
		}
		if markers == uni {
			frame = a.mirrorFrame(frame)
		}
		clip[fi] = frame
	}
	return clip, nil
}

// mirrorFrame expands a half-body frame (one point per role, in role order)
// into the full bilateral frame, assuming bilateral symmetry: the supplied
// point is the left marker and its sagittal reflection the right.
func (a *Animal) mirrorFrame(half Frame) Frame {
	full := make(Frame, len(a.skeleton.MarkerNames))
	for i, pair := range a.skeleton.Pairs {
		full[pair.Left] = half[i]
		full[pair.Right] = reflectSagittal(half[i])
	}
	return full
}
