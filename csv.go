package avian

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// LoadPoseCSV reads keypoint frames from a CSV file whose header names each
// coordinate column marker_x, marker_y, marker_z and whose data rows each
// hold one frame. Returns the marker names in first-seen header order and
// one Frame per data row, in that same order.
//
// The column order of the file is arbitrary; use NewAnimalFromCSV to map it
// onto a schema's marker order.
func LoadPoseCSV(path string) ([]string, Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("avian: open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("avian: read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("%w: %s has no data rows", ErrShape, path)
	}

	names := markerNamesFromHeader(records[0])
	want := 3 * len(names)
	if len(records[0]) != want {
		return nil, nil, fmt.Errorf("%w: %s header has %d columns, want 3 per marker",
			ErrShape, path, len(records[0]))
	}

	clip := make(Clip, 0, len(records)-1)
	for ri, rec := range records[1:] {
		if len(rec) != want {
			return nil, nil, fmt.Errorf("%w: %s row %d has %d columns, want %d",
				ErrShape, path, ri+1, len(rec), want)
		}
		frame := make(Frame, len(names))
		for mi := range names {
			var v mgl64.Vec3
			for ci := 0; ci < 3; ci++ {
				x, err := strconv.ParseFloat(strings.TrimSpace(rec[3*mi+ci]), 64)
				if err != nil {
					return nil, nil, fmt.Errorf("avian: %s row %d col %d: %w",
						path, ri+1, 3*mi+ci, err)
				}
				v[ci] = x
			}
			frame[mi] = v
		}
		clip = append(clip, frame)
	}
	return names, clip, nil
}

// markerNamesFromHeader strips the _x/_y/_z coordinate suffix from each
// column name and returns the unique marker names in first-seen order.
// Marker names may themselves contain underscores, so only the trailing
// suffix is removed.
func markerNamesFromHeader(header []string) []string {
	var names []string
	seen := make(map[string]bool, len(header)/3)
	for _, col := range header {
		name := strings.TrimSpace(col)
		for _, suffix := range []string{"_x", "_y", "_z"} {
			if strings.HasSuffix(name, suffix) {
				name = strings.TrimSuffix(name, suffix)
				break
			}
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// NewAnimalFromCSV returns an Animal bound to the given schema with its
// default (and fixed) pose replaced by the first frame of the CSV file. The
// file must provide a column triple for every moving and fixed marker of the
// schema; extra columns are ignored.
func NewAnimalFromCSV(s Skeleton, path string) (*Animal, error) {
	names, clip, err := LoadPoseCSV(path)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}

	pick := func(marker string) (mgl64.Vec3, error) {
		i, ok := index[marker]
		if !ok {
			return mgl64.Vec3{}, fmt.Errorf("avian: %s is missing marker %q", path, marker)
		}
		return clip[0][i], nil
	}

	pose := make(Frame, len(s.MarkerNames))
	for i, marker := range s.MarkerNames {
		if pose[i], err = pick(marker); err != nil {
			return nil, err
		}
	}
	fixed := make(Frame, len(s.FixedMarkerNames))
	for i, marker := range s.FixedMarkerNames {
		if fixed[i], err = pick(marker); err != nil {
			return nil, err
		}
	}

	s.Pose = pose
	s.FixedPose = fixed
	return NewAnimal(s), nil
}

// NewHawkFromCSV returns a hawk Animal whose mean pose comes from a
// motion-capture CSV instead of the baked constant.
func NewHawkFromCSV(path string) (*Animal, error) {
	return NewAnimalFromCSV(HawkSkeleton(), path)
}
