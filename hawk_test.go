package avian

import "testing"

func TestHawkMeanPoseIsSymmetric(t *testing.T) {
	s := HawkSkeleton()
	for _, pair := range s.Pairs {
		left := s.Pose[pair.Left]
		right := s.Pose[pair.Right]
		assertVec3(t, pair.Role+" symmetry", right, reflectSagittal(left))
	}
}

func TestHawkMeanPoseIsPlausible(t *testing.T) {
	s := HawkSkeleton()

	span := s.Pose[HawkRightWingtip].X() - s.Pose[HawkLeftWingtip].X()
	if span <= 0 {
		t.Fatalf("wingspan = %v, want positive", span)
	}
	if s.Pose[HawkLeftTailtip].Y() >= s.Pose[HawkLeftWingtip].Y() {
		t.Error("tail is not behind the wings in the mean pose")
	}
}

func TestValidateHawkPoseAcceptsDefault(t *testing.T) {
	if err := ValidateHawkPose(NewHawk()); err != nil {
		t.Errorf("ValidateHawkPose(default pose) = %v", err)
	}
}

func TestValidateHawkPoseRejectsSwappedWings(t *testing.T) {
	hawk := NewHawk()

	// Supply a full bilateral frame with the sides swapped: the "left"
	// wingtip sits on the +x side.
	pose := HawkSkeleton().Pose
	swapped := make([][]float64, 8)
	for _, pair := range HawkSkeleton().Pairs {
		l, r := pose[pair.Left], pose[pair.Right]
		swapped[pair.Left] = []float64{r.X(), r.Y(), r.Z()}
		swapped[pair.Right] = []float64{l.X(), l.Y(), l.Z()}
	}
	if err := hawk.UpdateFrame(swapped); err != nil {
		t.Fatalf("UpdateFrame = %v", err)
	}

	if err := ValidateHawkPose(hawk); err == nil {
		t.Error("ValidateHawkPose accepted a pose with swapped wings")
	}
}
