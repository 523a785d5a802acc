package avian

import "fmt"

// SpiderSkeleton returns a jumping-spider schema: four markers per leg
// (claw, tibiametatarsus, patella, coxa) on eight legs, plus three midline
// body markers. Legs 1-4 are the right side, legs 5-8 the left, with leg n
// mirroring leg 9-n. The schema carries no baked mean pose; feed it measured
// keypoints via UpdateKeypoints.
//
// Included to demonstrate that the engine is species-agnostic: the same
// Animal works for any schema value, hawk or otherwise.
func SpiderSkeleton() Skeleton {
	legMarkers := []string{"claw", "tibiametatarsus", "patella", "coxa"}

	var names []string
	for leg := 1; leg <= 8; leg++ {
		for _, m := range legMarkers {
			names = append(names, fmt.Sprintf("%s%d", m, leg))
		}
	}
	names = append(names, "clypeus", "pedicel", "spinneret")

	// Pair each right-side leg joint with the same joint on the mirrored
	// left leg. Midline body markers stay unpaired, so the schema is not
	// bilateral and rejects half-body input.
	var pairs []RolePair
	for leg := 1; leg <= 4; leg++ {
		mirror := 9 - leg
		for ji, m := range legMarkers {
			pairs = append(pairs, RolePair{
				Role:  fmt.Sprintf("%s_leg%d", m, leg),
				Left:  (mirror-1)*len(legMarkers) + ji,
				Right: (leg-1)*len(legMarkers) + ji,
			})
		}
	}

	sections := make(map[string][]string, 9)
	order := make([]string, 0, 9)
	for leg := 1; leg <= 8; leg++ {
		name := fmt.Sprintf("leg_%d", leg)
		sections[name] = []string{
			fmt.Sprintf("claw%d", leg),
			fmt.Sprintf("tibiametatarsus%d", leg),
			fmt.Sprintf("patella%d", leg),
			fmt.Sprintf("coxa%d", leg),
			fmt.Sprintf("patella%d", leg),
			fmt.Sprintf("tibiametatarsus%d", leg),
			fmt.Sprintf("claw%d", leg),
		}
		order = append(order, name)
	}
	sections["body"] = []string{
		"clypeus", "coxa1", "coxa2", "coxa3", "coxa4",
		"spinneret", "coxa5", "coxa6", "coxa7", "coxa8",
	}
	order = append(order, "body")

	return Skeleton{
		Species:          "spider",
		MarkerNames:      names,
		Pairs:            pairs,
		FixedMarkerNames: []string{"center"},
		FixedPose:        Frame{{0, 0, 0}},
		Sections:         sections,
		SectionOrder:     order,
	}
}
