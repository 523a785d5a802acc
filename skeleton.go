package avian

import "fmt"

// RolePair binds one unilateral control-point role (wingtip, primary, ...) to
// its left and right marker indices in the bilateral marker order.
type RolePair struct {
	Role  string
	Left  int
	Right int
}

// Skeleton is a static schema describing the markers of a species: their
// names and fixed order, the left/right pairing used for mirroring, the body
// sections consumed by renderers, and the species' average resting pose.
//
// A Skeleton is a plain configuration value. There is no per-species behavior;
// an Animal bound to HawkSkeleton() is a hawk, one bound to SpiderSkeleton()
// is a spider.
type Skeleton struct {
	// Species is a short label used in diagnostics ("hawk", "spider").
	Species string

	// MarkerNames is the ordered list of moving markers. For a bilateral
	// schema the order interleaves sides per role: left wingtip, right
	// wingtip, left primary, right primary, and so on.
	MarkerNames []string

	// Pairs maps each unilateral role to its (left, right) indices into
	// MarkerNames. A schema is bilateral when every marker belongs to
	// exactly one pair, i.e. len(MarkerNames) == 2*len(Pairs); only
	// bilateral schemas accept half-body keypoint input.
	Pairs []RolePair

	// FixedMarkerNames lists reference markers that are never supplied by
	// keypoint input. They move with rigid transforms but not with shape
	// updates, and exist for visualisation (shoulders, tail base, hood).
	FixedMarkerNames []string

	// FixedPose holds the resting coordinates of the fixed markers,
	// parallel to FixedMarkerNames. May be nil when the schema has none.
	FixedPose Frame

	// Sections maps a body-section name to the marker names (moving or
	// fixed) forming its polygon, in winding order. Used only by
	// renderers, never by transformation math.
	Sections map[string][]string

	// SectionOrder fixes the iteration order of Sections for deterministic
	// drawing.
	SectionOrder []string

	// Pose is the average bilateral resting pose, parallel to MarkerNames.
	// May be nil for schemas whose mean shape is loaded from data.
	Pose Frame
}

// Bilateral reports whether every moving marker belongs to a left/right pair,
// which is what makes half-body (unilateral) input meaningful.
func (s Skeleton) Bilateral() bool {
	return len(s.Pairs) > 0 && len(s.MarkerNames) == 2*len(s.Pairs)
}

// UnilateralCount returns the number of control points in a half-body pose.
func (s Skeleton) UnilateralCount() int {
	return len(s.Pairs)
}

// AllMarkerNames returns the moving marker names followed by the fixed ones.
// This combined order is the index space used by SectionIndices.
func (s Skeleton) AllMarkerNames() []string {
	out := make([]string, 0, len(s.MarkerNames)+len(s.FixedMarkerNames))
	out = append(out, s.MarkerNames...)
	return append(out, s.FixedMarkerNames...)
}

// MarkerIndex returns the index of the named marker in the combined
// moving-then-fixed order.
func (s Skeleton) MarkerIndex(name string) (int, error) {
	for i, n := range s.MarkerNames {
		if n == name {
			return i, nil
		}
	}
	for i, n := range s.FixedMarkerNames {
		if n == name {
			return len(s.MarkerNames) + i, nil
		}
	}
	return 0, fmt.Errorf("avian: unknown marker %q in %s skeleton", name, s.Species)
}

// SectionIndices resolves a body section to marker indices in the combined
// moving-then-fixed order.
func (s Skeleton) SectionIndices(section string) ([]int, error) {
	names, ok := s.Sections[section]
	if !ok {
		return nil, fmt.Errorf("avian: unknown body section %q in %s skeleton", section, s.Species)
	}
	out := make([]int, len(names))
	for i, n := range names {
		idx, err := s.MarkerIndex(n)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}
	return out, nil
}

// PairFor returns the (left, right) marker indices for a unilateral role.
func (s Skeleton) PairFor(role string) (left, right int, err error) {
	for _, p := range s.Pairs {
		if p.Role == role {
			return p.Left, p.Right, nil
		}
	}
	return 0, 0, fmt.Errorf("avian: unknown role %q in %s skeleton", role, s.Species)
}

// LeftMarkerIndices returns the indices of the left-side markers, in role
// order.
func (s Skeleton) LeftMarkerIndices() []int {
	out := make([]int, len(s.Pairs))
	for i, p := range s.Pairs {
		out[i] = p.Left
	}
	return out
}

// RightMarkerIndices returns the indices of the right-side markers, in role
// order.
func (s Skeleton) RightMarkerIndices() []int {
	out := make([]int, len(s.Pairs))
	for i, p := range s.Pairs {
		out[i] = p.Right
	}
	return out
}

// validate checks the schema's internal consistency. Called by NewAnimal;
// a broken schema is a programming error, not runtime input.
func (s Skeleton) validate() error {
	if len(s.MarkerNames) == 0 {
		return fmt.Errorf("avian: %s skeleton has no markers", s.Species)
	}
	seen := make(map[int]bool, len(s.Pairs)*2)
	for _, p := range s.Pairs {
		if p.Left < 0 || p.Left >= len(s.MarkerNames) ||
			p.Right < 0 || p.Right >= len(s.MarkerNames) {
			return fmt.Errorf("avian: %s skeleton role %q has out-of-range indices", s.Species, p.Role)
		}
		if p.Left == p.Right || seen[p.Left] || seen[p.Right] {
			return fmt.Errorf("avian: %s skeleton role %q reuses a marker index", s.Species, p.Role)
		}
		seen[p.Left] = true
		seen[p.Right] = true
	}
	if s.Pose != nil && len(s.Pose) != len(s.MarkerNames) {
		return fmt.Errorf("avian: %s skeleton pose has %d points, want %d",
			s.Species, len(s.Pose), len(s.MarkerNames))
	}
	if len(s.FixedPose) != len(s.FixedMarkerNames) {
		return fmt.Errorf("avian: %s skeleton fixed pose has %d points, want %d",
			s.Species, len(s.FixedPose), len(s.FixedMarkerNames))
	}
	if len(s.SectionOrder) != len(s.Sections) {
		return fmt.Errorf("avian: %s skeleton section order lists %d sections, want %d",
			s.Species, len(s.SectionOrder), len(s.Sections))
	}
	for _, name := range s.SectionOrder {
		if _, err := s.SectionIndices(name); err != nil {
			return err
		}
	}
	return nil
}
