package motion_test

import (
	"math"
	"testing"

	"github.com/iburimskiy/pizza-wave/internal/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoPi = 2 * math.Pi

func TestConstants(t *testing.T) {
	assert.Equal(t, 8, motion.SliceCount)
	assert.InDelta(t, 0.2, motion.Stagger, 1e-12)
	assert.InDelta(t, 2.2, motion.CycleDuration, 1e-12)
}

// TestWaveOffsets_Length ensures one offset per physical slice.
func TestWaveOffsets_Length(t *testing.T) {
	for _, rev := range []bool{false, true} {
		assert.Len(t, motion.WaveOffsets(1.3, rev), motion.SliceCount)
	}
}

func TestWaveOffsets_FirstSliceTiming(t *testing.T) {
	assert.Equal(t, 0.0, motion.WaveOffsets(0, false)[0], "slice 0 at rest at t=0")
	assert.Equal(t, twoPi, motion.WaveOffsets(0.8, false)[0], "slice 0 done after one SliceDuration")
	assert.InDelta(t, math.Pi, motion.WaveOffsets(0.4, false)[0], 1e-12, "half way through the flip")
}

// TestWaveOffsets_Cascade checks the state of every slice at a known instant.
func TestWaveOffsets_Cascade(t *testing.T) {
	// At t=0.5 slices 0..2 are flipping, 3..7 have not started.
	got := motion.WaveOffsets(0.5, false)
	for s := 0; s < motion.SliceCount; s++ {
		start := float64(s) * motion.Stagger
		if start >= 0.5 {
			assert.Equalf(t, 0.0, got[s], "slice %d must not have started", s)
			continue
		}
		assert.Greaterf(t, got[s], 0.0, "slice %d should be moving", s)
		assert.Lessf(t, got[s], twoPi, "slice %d should not be done", s)
	}
	assert.Greater(t, got[0], got[1])
	assert.Greater(t, got[1], got[2])

	// Near the end of the cycle every slice holds its full turn.
	for s, v := range motion.WaveOffsets(motion.CycleDuration-1e-9, false) {
		assert.InDeltaf(t, twoPi, v, 1e-6, "slice %d should be complete", s)
	}
}

func TestWaveOffsets_ReverseMirrorsLead(t *testing.T) {
	for i := 0; i <= 220; i++ {
		tm := float64(i) / 100
		fwd := motion.WaveOffsets(tm, false)
		rev := motion.WaveOffsets(tm, true)
		for s := 0; s < motion.SliceCount; s++ {
			require.Equalf(t, fwd[s], rev[motion.SliceCount-1-s], "t=%v slice %d", tm, s)
		}
	}
}

// TestWaveOffsets_Periodic covers positive, negative and shifted times.
func TestWaveOffsets_Periodic(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
	}{
		{"one cycle later", 0.5, 0.5 + motion.CycleDuration},
		{"many cycles later", 1.1, 1.1 + 40*motion.CycleDuration},
		{"negative time", -0.3, motion.CycleDuration - 0.3},
		{"negative whole cycles", 0.9, 0.9 - 3*motion.CycleDuration},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, rev := range []bool{false, true} {
				a := motion.WaveOffsets(tc.a, rev)
				b := motion.WaveOffsets(tc.b, rev)
				assert.InDeltaSlice(t, a, b, 1e-9)
			}
		})
	}
}

func TestWaveOffsets_Range(t *testing.T) {
	for i := -2000; i <= 2000; i++ {
		tm := float64(i) * 0.0137
		for _, rev := range []bool{false, true} {
			for s, v := range motion.WaveOffsets(tm, rev) {
				require.GreaterOrEqualf(t, v, 0.0, "t=%v slice %d", tm, s)
				require.LessOrEqualf(t, v, twoPi, "t=%v slice %d", tm, s)
			}
		}
	}
}

func TestWaveOffsets_Deterministic(t *testing.T) {
	assert.Equal(t, motion.WaveOffsets(1.7, true), motion.WaveOffsets(1.7, true))
}

func TestWaveOffsetsInto_ReusesBuffer(t *testing.T) {
	buf := make([]float64, 0, motion.SliceCount)
	out := motion.WaveOffsetsInto(buf, 0.9, false)
	require.Len(t, out, motion.SliceCount)
	assert.Same(t, &buf[:1][0], &out[0], "buffer with enough capacity is reused")
	assert.Equal(t, motion.WaveOffsets(0.9, false), out)

	small := make([]float64, 3)
	assert.Len(t, motion.WaveOffsetsInto(small, 0.9, false), motion.SliceCount)
}

func TestCycleIndex(t *testing.T) {
	assert.Equal(t, 0, motion.CycleIndex(0))
	assert.Equal(t, 0, motion.CycleIndex(2.1))
	assert.Equal(t, 1, motion.CycleIndex(2.3))
	assert.Equal(t, -1, motion.CycleIndex(-0.1))
}
