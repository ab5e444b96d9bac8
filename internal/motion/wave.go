// Package motion computes the slice flip animation of the pizza.
//
// Every function here is a pure function of its arguments, so the frame loop
// may sample it at any rate, replay old times or step backwards.
package motion

import "math"

const (
	// SliceCount is the number of segments around the circle.
	SliceCount = 8

	// SliceDuration is how long one slice takes for a full flip.
	SliceDuration = 0.8

	// Stagger is the delay between successive slices starting their flip.
	Stagger = 0.25 * SliceDuration

	// CycleDuration covers the first slice starting until the last one lands.
	CycleDuration = SliceDuration + (SliceCount-1)*Stagger
)

// WaveOffsets returns the rotation of every slice at the given time, in
// radians within [0, 2π]. Index s of the result is always physical slice s;
// reverse only changes which slice leads the cascade.
func WaveOffsets(time float64, reverse bool) []float64 {
	return WaveOffsetsInto(nil, time, reverse)
}

// WaveOffsetsInto is WaveOffsets writing into dst when it has room for
// SliceCount values. The (possibly new) slice is returned.
func WaveOffsetsInto(dst []float64, time float64, reverse bool) []float64 {
	if cap(dst) < SliceCount {
		dst = make([]float64, SliceCount)
	}
	dst = dst[:SliceCount]

	t := cycleTime(time)
	for s := 0; s < SliceCount; s++ {
		idx := s
		if reverse {
			idx = SliceCount - 1 - s
		}
		sliceStart := float64(idx) * Stagger
		progress := clamp01((t - sliceStart) / SliceDuration)
		dst[s] = EaseInOutCubic(progress) * math.Pi * 2
	}
	return dst
}

// CycleIndex returns which animation cycle time falls in. Negative times give
// negative cycles, so CycleIndex(-0.1) is -1.
func CycleIndex(time float64) int {
	return int(math.Floor(time / CycleDuration))
}

// cycleTime reduces time into [0, CycleDuration) with a floored modulo.
func cycleTime(time float64) float64 {
	t := math.Mod(math.Mod(time, CycleDuration)+CycleDuration, CycleDuration)
	// Mod can round a tiny negative remainder up to exactly CycleDuration.
	if t >= CycleDuration {
		t = 0
	}
	return t
}
