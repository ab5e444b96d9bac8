package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/pizza-wave/internal/toppings"
)

func hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

// paint picks the neon colour of t instead of c while neon mode is on.
func (g *Game) paint(t toppings.Topping, c color.RGBA) color.RGBA {
	if g.neon {
		return t.Neon
	}
	return c
}

// drawPositioned draws one piece of a positioned topping centred on (x, y).
func (g *Game) drawPositioned(dst *ebiten.Image, t toppings.Topping, x, y float64) {
	fx, fy := float32(x), float32(y)
	c := func(v uint32) color.RGBA { return g.paint(t, hex(v)) }

	switch t.ID {
	case "pepperoni":
		vector.DrawFilledCircle(dst, fx, fy, 11, c(0xC23B22), true)
		vector.DrawFilledCircle(dst, fx-3, fy-2, 3, c(0xA83020), true)
		vector.DrawFilledCircle(dst, fx+2, fy+3, 2.5, c(0xA83020), true)
	case "mushroom":
		vector.DrawFilledRect(dst, fx-3, fy, 6, 8, c(0xF5F0E0), true)
		fillPath(dst, capPath(x, y, 8), c(0xC4A87C))
		fillPath(dst, capPath(x, y, 5), c(0xA88B60))
	case "olive":
		vector.DrawFilledCircle(dst, fx, fy, 7, c(0x2D2D2D), true)
		vector.DrawFilledCircle(dst, fx, fy, 3, c(0x8B8B3A), true)
	case "pepper":
		vector.DrawFilledRect(dst, fx-5, fy-7, 10, 14, c(0x4A8C3F), true)
		vector.DrawFilledRect(dst, fx-2, fy-7, 4, 14, c(0x367030), true)
	case "pineapple":
		tri := [][2]float64{{x, y - 8}, {x + 7, y + 6}, {x - 7, y + 6}}
		fillPath(dst, polygonPath(tri), c(0xE8A317))
		strokePolyline(dst, tri, 1.5, c(0x8B6914), true)
		vector.StrokeLine(dst, fx-3, fy-1, fx+3, fy-1, 0.8, c(0xC47F10), true)
		vector.StrokeLine(dst, fx-5, fy+3, fx+5, fy+3, 0.8, c(0xC47F10), true)
	case "ham":
		quad := [][2]float64{{x - 8, y - 5}, {x + 6, y - 7}, {x + 8, y + 5}, {x - 6, y + 7}}
		fillPath(dst, polygonPath(quad), c(0xF0A0B0))
		strokePolyline(dst, quad, 1.5, c(0xD07888), true)
		vector.DrawFilledRect(dst, fx-4, fy-1, 3, 2, c(0xF8C8D0), true)
		vector.DrawFilledRect(dst, fx+1, fy+1, 3, 2, c(0xF8C8D0), true)
	case "chicken":
		body := c(0xE8C888)
		vector.DrawFilledRect(dst, fx-12, fy-4, 24, 8, body, true)
		vector.DrawFilledCircle(dst, fx-12, fy, 4, body, true)
		vector.DrawFilledCircle(dst, fx+12, fy, 4, body, true)
		for _, dx := range []float32{-7, -1, 5} {
			vector.StrokeLine(dst, fx+dx, fy-4, fx+dx, fy+4, 1.3, c(0xA07830), true)
		}
	case "onion":
		vector.StrokeCircle(dst, fx, fy, 8, 2.5, c(0x8B2252), true)
		vector.StrokeCircle(dst, fx, fy, 5, 1.5, c(0xC44D80), true)
		vector.StrokeCircle(dst, fx, fy, 2.5, 1, c(0xD87DA0), true)
	case "bacon":
		fillPath(dst, baconPath(fx, fy), c(0x8B2500))
		vector.DrawFilledRect(dst, fx-5, fy-1, 4, 2, c(0xC87050), true)
		vector.DrawFilledRect(dst, fx+2, fy-1, 3, 2, c(0xC87050), true)
	}
}

// drawOverlay draws an overlay topping across a whole slice.
func (g *Game) drawOverlay(dst *ebiten.Image, t toppings.Topping, w wedge) {
	switch t.ID {
	case "ranch":
		clr := color.NRGBA{R: 0xFA, G: 0xF8, B: 0xF0, A: 204}
		if g.neon {
			clr = color.NRGBA{R: t.Neon.R, G: t.Neon.G, B: t.Neon.B, A: 204}
		}
		strokePolyline(dst, ranchPath(w), 2.5, clr, false)
	}
}

// ranchPath is a drizzle zig-zagging across the wedge from near the centre
// out to just inside the crust.
func ranchPath(w wedge) [][2]float64 {
	const steps = 40
	pts := make([][2]float64, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		r := w.inner*0.5 + t*(w.outer*0.93-w.inner*0.5)
		wave := math.Sin(t*math.Pi*6) * 0.28
		a := w.start + (0.5+wave)*w.width
		pts = append(pts, [2]float64{w.cx + math.Cos(a)*r, w.cy + math.Sin(a)*r})
	}
	return pts
}

// capPath is the upper half disc of a mushroom cap.
func capPath(x, y, r float64) *vector.Path {
	var p vector.Path
	p.MoveTo(float32(x-r), float32(y))
	p.Arc(float32(x), float32(y), float32(r), math.Pi, 2*math.Pi, vector.Clockwise)
	p.Close()
	return &p
}

// baconPath is a wavy strip. It is not convex, but the fan from its first
// point stays inside the strip closely enough at this size.
func baconPath(x, y float32) *vector.Path {
	var p vector.Path
	p.MoveTo(x-9, y-3)
	p.QuadTo(x-4, y-7, x, y-3)
	p.QuadTo(x+4, y+1, x+9, y-3)
	p.LineTo(x+9, y+3)
	p.QuadTo(x+4, y+7, x, y+3)
	p.QuadTo(x-4, y-1, x-9, y+3)
	p.Close()
	return &p
}
