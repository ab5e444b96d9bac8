package motion_test

import (
	"testing"

	"github.com/iburimskiy/pizza-wave/internal/motion"
	"github.com/stretchr/testify/assert"
)

// TestEaseInOutCubic_Endpoints checks the fixed points of the curve.
func TestEaseInOutCubic_Endpoints(t *testing.T) {
	assert.Equal(t, 0.0, motion.EaseInOutCubic(0), "ease(0)")
	assert.Equal(t, 1.0, motion.EaseInOutCubic(1), "ease(1)")
	assert.Equal(t, 0.5, motion.EaseInOutCubic(0.5), "ease(0.5) joins both halves")
}

func TestEaseInOutCubic_Monotonic(t *testing.T) {
	prev := motion.EaseInOutCubic(0)
	for i := 1; i <= 1000; i++ {
		x := float64(i) / 1000
		v := motion.EaseInOutCubic(x)
		assert.GreaterOrEqualf(t, v, prev, "ease must not decrease at t=%v", x)
		prev = v
	}
}

// TestEaseInOutCubic_Symmetric verifies ease(t) + ease(1-t) == 1.
func TestEaseInOutCubic_Symmetric(t *testing.T) {
	for _, x := range []float64{0, 0.1, 0.25, 0.4, 0.49} {
		assert.InDeltaf(t, 1.0, motion.EaseInOutCubic(x)+motion.EaseInOutCubic(1-x), 1e-12, "t=%v", x)
	}
}

// TestEaseInOutCubic_FlatEnds checks the ease in and ease out near the ends.
func TestEaseInOutCubic_FlatEnds(t *testing.T) {
	const h = 1e-4
	assert.Less(t, motion.EaseInOutCubic(h)/h, 1e-6, "slope at 0 should vanish")
	assert.Less(t, (1-motion.EaseInOutCubic(1-h))/h, 1e-6, "slope at 1 should vanish")
}
