package game

import (
	"math"

	"github.com/iburimskiy/pizza-wave/internal/config"
	"github.com/iburimskiy/pizza-wave/internal/motion"
	"github.com/iburimskiy/pizza-wave/internal/toppings"
)

// wedge is the on-screen geometry of one slice. Angles are in radians,
// measured clockwise from the +X axis in screen space.
type wedge struct {
	cx, cy       float64
	start, width float64
	inner, outer float64
}

func (w wedge) end() float64 { return w.start + w.width }

// point converts a slot into screen coordinates inside the wedge.
func (w wedge) point(s toppings.Slot) (float64, float64) {
	a := w.start + s.AngleFrac*w.width
	r := w.inner + s.RadiusFrac*(w.outer-w.inner)
	return w.cx + math.Cos(a)*r, w.cy + math.Sin(a)*r
}

// sliceWedge lays out slice s while it is rotated by offset around its own
// bisector. The visible width shrinks with |cos(offset)|; front is false
// while the underside faces the viewer.
func sliceWedge(cx, cy float64, s int, offset float64) (w wedge, front bool) {
	full := 2 * math.Pi / motion.SliceCount
	gap := float64(config.SliceGap) / config.PizzaRadius
	mid := (float64(s) + 0.5) * full

	scale := math.Cos(offset)
	width := (full - gap) * math.Max(math.Abs(scale), config.MinFlipScale)

	return wedge{
		cx:    cx,
		cy:    cy,
		start: mid - width/2,
		width: width,
		inner: config.InnerRadius,
		outer: config.PizzaRadius,
	}, scale >= 0
}

// landings tracks which slices have finished their flip. It returns the
// updated state and the slices that landed since prev. The last slice of a
// cycle only reaches its full turn at the cycle boundary, so when wrapped is
// set every slice still pending in prev counts as landed.
func landings(prev [motion.SliceCount]bool, offsets []float64, wrapped bool) (next [motion.SliceCount]bool, landed []int) {
	for s, v := range offsets {
		done := v >= 2*math.Pi
		switch {
		case wrapped && !prev[s]:
			landed = append(landed, s)
		case !wrapped && done && !prev[s]:
			landed = append(landed, s)
		}
		next[s] = done
	}
	return next, landed
}
