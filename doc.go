// Package avian models and visualizes the 3D skeleton keypoints of an
// animal. It was built for morphing hawk wing and tail shapes, but the
// engine is species-agnostic.
//
// The core is a small data model and its geometric transformation logic: a
// [Skeleton] schema names the markers and their left/right pairing, and an
// [Animal] owns the working keypoint state, expanding half-body control
// points into the full bilateral skeleton, validating marker topology, and
// applying whole-body rigid transforms across one or many animation frames.
//
// # Quick start
//
//	hawk := avian.NewHawk() // resting in the mean gliding pose
//
//	// Half-body input: 4 control points (wingtip, primary, secondary,
//	// tailtip) are mirrored across the body midline into all 8 markers.
//	err := hawk.UpdateFrame([][]float64{
//		{-420, 60, 40}, {-300, -70, 10}, {-110, -140, -5}, {-40, -310, -15},
//	})
//
//	// Pitch the body up and glide forward. Transforms compose.
//	err = hawk.TransformKeypoints(avian.RigidTransform{
//		Pitch:       12,
//		Translation: []float64{0, 250, -30},
//	})
//
// # Plotting and animation
//
// Renderers are consumers of read-only snapshots. [Plot] draws one frame's
// body-section polygons to an image, [RenderClip] renders a whole keypoint
// clip with optional per-frame pitch/translation tracks and camera sweeps,
// and [View] plays a clip in a window via [Ebitengine]. [SavePNG],
// [SaveWebP], and [SaveWebPSequence] write results to disk.
//
//	imgs, err := avian.RenderClip(hawk, frames, avian.ClipOptions{
//		Camera:  avian.DefaultCamera(),
//		Azimuth: avian.SweepAzimuth(60, 180, len(frames), ease.Linear),
//	})
//
// # Other species
//
// There is no hawk-specific behavior in the engine: a [Skeleton] is a plain
// configuration value, and [NewAnimal] binds one to a fresh engine. See
// [SpiderSkeleton] for a schema with unpaired midline markers, which simply
// forgoes half-body input.
//
// [Ebitengine]: https://ebitengine.org
package avian
