package avian

import "errors"

// ErrShape reports a keypoint array whose dimensions do not match the bound
// skeleton: a coordinate row that is not an [x y z] triple, or a marker count
// that is neither the unilateral nor the bilateral count of the schema.
// Operations fail before any state is touched; wrap sites add context via %w.
var ErrShape = errors.New("avian: bad keypoint shape")

// ErrTransform reports malformed rigid-transform parameters: a translation
// vector that is not length 3, a per-frame track whose length does not match
// the clip, or a transform requested before any working pose exists.
var ErrTransform = errors.New("avian: bad transform")
