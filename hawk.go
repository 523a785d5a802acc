package avian

import "fmt"

// Bilateral hawk marker order. Unilateral input follows the role order
// wingtip, primary, secondary, tailtip.
const (
	HawkLeftWingtip = iota
	HawkRightWingtip
	HawkLeftPrimary
	HawkRightPrimary
	HawkLeftSecondary
	HawkRightSecondary
	HawkLeftTailtip
	HawkRightTailtip
)

// hawkMeanPose is the average bilateral resting shape of a Harris' hawk in
// gliding flight, in millimetres. Derived from motion-capture means; kept
// exactly mirror-symmetric so that mirroring round-trips in tests.
var hawkMeanPose = Frame{
	{-480, 30, 15},   // left_wingtip
	{480, 30, 15},    // right_wingtip
	{-310, -85, 0},   // left_primary
	{310, -85, 0},    // right_primary
	{-120, -145, -10}, // left_secondary
	{120, -145, -10},  // right_secondary
	{-45, -320, -20},  // left_tailtip
	{45, -320, -20},   // right_tailtip
}

// hawkFixedPose holds the reference markers that frame the torso in plots.
var hawkFixedPose = Frame{
	{-55, 10, 0},    // left_shoulder
	{-25, -130, -5}, // left_tailbase
	{25, -130, -5},  // right_tailbase
	{55, 10, 0},     // right_shoulder
	{0, 70, 12},     // hood
	{0, -140, -8},   // tailpack
}

// HawkSkeleton returns the hawk schema: 8 bilateral motion-capture markers,
// 6 fixed reference markers, and the body-section polygons used by the
// plotting helpers. The returned value is a fresh copy; callers may not
// mutate shared state through it.
func HawkSkeleton() Skeleton {
	return Skeleton{
		Species: "hawk",
		MarkerNames: []string{
			"left_wingtip", "right_wingtip",
			"left_primary", "right_primary",
			"left_secondary", "right_secondary",
			"left_tailtip", "right_tailtip",
		},
		Pairs: []RolePair{
			{Role: "wingtip", Left: HawkLeftWingtip, Right: HawkRightWingtip},
			{Role: "primary", Left: HawkLeftPrimary, Right: HawkRightPrimary},
			{Role: "secondary", Left: HawkLeftSecondary, Right: HawkRightSecondary},
			{Role: "tailtip", Left: HawkLeftTailtip, Right: HawkRightTailtip},
		},
		FixedMarkerNames: []string{
			"left_shoulder", "left_tailbase", "right_tailbase",
			"right_shoulder", "hood", "tailpack",
		},
		FixedPose: hawkFixedPose.Clone(),
		Sections: map[string][]string{
			"left_handwing":  {"left_wingtip", "left_primary", "left_secondary"},
			"right_handwing": {"right_wingtip", "right_primary", "right_secondary"},
			"left_armwing":   {"left_primary", "left_secondary", "left_tailbase", "left_shoulder"},
			"right_armwing":  {"right_primary", "right_secondary", "right_tailbase", "right_shoulder"},
			"body":           {"right_shoulder", "left_shoulder", "left_tailbase", "right_tailbase"},
			"head":           {"right_shoulder", "hood", "left_shoulder"},
			"tail":           {"right_tailtip", "left_tailtip", "left_tailbase", "right_tailbase"},
		},
		SectionOrder: []string{
			"body", "head", "left_armwing", "right_armwing",
			"left_handwing", "right_handwing", "tail",
		},
		Pose: hawkMeanPose.Clone(),
	}
}

// NewHawk returns an Animal bound to the hawk schema, resting in the mean
// gliding pose.
func NewHawk() *Animal {
	return NewAnimal(HawkSkeleton())
}

// ValidateHawkPose sanity-checks the current frame of a hawk-shaped Animal:
// the left wing must lie to the left of the right wing, the handwing outboard
// of the armwing, and the tail behind both wings. Useful after loading
// keypoints from an external source with an unknown axis convention.
func ValidateHawkPose(a *Animal) error {
	leftHand, err := a.SectionCoords(0, "left_handwing")
	if err != nil {
		return err
	}
	rightHand, err := a.SectionCoords(0, "right_handwing")
	if err != nil {
		return err
	}
	leftArm, err := a.SectionCoords(0, "left_armwing")
	if err != nil {
		return err
	}
	tail, err := a.SectionCoords(0, "tail")
	if err != nil {
		return err
	}

	if leftHand[0].X() >= rightHand[0].X() {
		return fmt.Errorf("avian: hawk pose invalid: left wing is not left of the right wing")
	}
	if leftHand[0].X() >= leftArm[0].X() {
		return fmt.Errorf("avian: hawk pose invalid: left handwing is not outboard of the left armwing")
	}
	if tail[0].Y() >= leftHand[0].Y() || tail[0].Y() >= rightHand[0].Y() {
		return fmt.Errorf("avian: hawk pose invalid: tail is not behind the wings")
	}
	return nil
}
