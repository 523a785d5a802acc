package avian

import (
	"errors"
	"testing"
)

func TestViewRejectsEmptySource(t *testing.T) {
	src := stubSource{schema: SpiderSkeleton()}
	if err := View(src, ViewConfig{}); !errors.Is(err, ErrTransform) {
		t.Errorf("got %v, want ErrTransform", err)
	}
}

func TestSnapshotViewSelectsFrame(t *testing.T) {
	sv := snapshotView{
		clip:   Clip{{{1, 0, 0}}, {{2, 0, 0}}},
		schema: HawkSkeleton(),
		sel:    1,
	}
	got := sv.Snapshot()
	if len(got) != 1 {
		t.Fatalf("snapshot has %d frames, want 1", len(got))
	}
	assertNear(t, "selected frame x", got[0][0][0], 2)
}
