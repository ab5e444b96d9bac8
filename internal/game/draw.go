package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/pizza-wave/internal/config"
	"github.com/iburimskiy/pizza-wave/internal/toppings"
)

var (
	crustColor  = color.RGBA{R: 0xD8, G: 0x9A, B: 0x4E, A: 0xFF}
	sauceColor  = color.RGBA{R: 0xB8, G: 0x32, B: 0x1E, A: 0xFF}
	cheeseColor = color.RGBA{R: 0xF4, G: 0xCE, B: 0x62, A: 0xFF}
	neonBase    = color.RGBA{R: 0x14, G: 0x10, B: 0x24, A: 0xFF}
	neonEdge    = color.RGBA{R: 0x60, G: 0x40, B: 0xFF, A: 0xFF}
)

var whiteSubImage *ebiten.Image

// fillSource returns the 1x1 white source image for DrawTriangles, creating
// it on first use so nothing touches the GPU before the game runs.
func fillSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	// Hue drifts slowly with time; neon mode goes dark.
	hue := math.Mod(g.time*12, 360)
	v := 0.18
	if g.neon {
		v = 0.06
	}
	r, gr, b := hsvToRgb(hue, 0.35, v)
	screen.Fill(color.RGBA{R: r, G: gr, B: b, A: 255})
}

func (g *Game) drawPizza(screen *ebiten.Image) {
	cx := float64(config.WindowWidth) / 2
	cy := float64(config.WindowHeight) / 2

	for s, off := range g.offsets {
		w, front := sliceWedge(cx, cy, s, off)
		g.drawSlice(screen, w, front)
		if !front {
			continue
		}
		for _, p := range g.placements {
			switch p.Topping.Kind {
			case toppings.Positioned:
				for _, idx := range p.Slots {
					x, y := w.point(toppings.SlicePositions[idx])
					g.drawPositioned(screen, p.Topping, x, y)
				}
			case toppings.Overlay:
				g.drawOverlay(screen, p.Topping, w)
			}
		}
	}
}

func (g *Game) drawSlice(screen *ebiten.Image, w wedge, front bool) {
	if g.neon {
		fillPie(screen, w, w.outer, neonBase)
		strokePie(screen, w, w.outer, neonEdge)
		return
	}
	if !front {
		fillPie(screen, w, w.outer, shade(crustColor, config.BackFaceShade))
		return
	}
	fillPie(screen, w, w.outer, crustColor)
	fillPie(screen, w, w.outer-config.CrustWidth, sauceColor)
	fillPie(screen, w, w.outer-config.CrustWidth-4, cheeseColor)
}

func piePath(w wedge, radius float64) *vector.Path {
	var p vector.Path
	p.MoveTo(float32(w.cx), float32(w.cy))
	p.Arc(float32(w.cx), float32(w.cy), float32(radius), float32(w.start), float32(w.end()), vector.Clockwise)
	p.Close()
	return &p
}

// fillPie fills a pie sector. A slice is never wider than 2π/8, so the
// sector is convex and the fan triangulation needs no stencil.
func fillPie(dst *ebiten.Image, w wedge, radius float64, clr color.Color) {
	fillPath(dst, piePath(w, radius), clr)
}

// fillPath fills a convex path with a flat colour.
func fillPath(dst *ebiten.Image, p *vector.Path, clr color.Color) {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	cr := float32(c.R) / 0xff
	cg := float32(c.G) / 0xff
	cb := float32(c.B) / 0xff
	ca := float32(c.A) / 0xff

	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, fillSource(), op)
}

// strokePolyline joins consecutive points with straight segments.
func strokePolyline(dst *ebiten.Image, pts [][2]float64, width float32, clr color.Color, closed bool) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(dst, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), width, clr, true)
	}
	if closed && len(pts) > 2 {
		a, b := pts[len(pts)-1], pts[0]
		vector.StrokeLine(dst, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), width, clr, true)
	}
}

func polygonPath(pts [][2]float64) *vector.Path {
	var p vector.Path
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(float32(pt[0]), float32(pt[1]))
			continue
		}
		p.LineTo(float32(pt[0]), float32(pt[1]))
	}
	p.Close()
	return &p
}

func strokePie(dst *ebiten.Image, w wedge, radius float64, clr color.Color) {
	const steps = 16
	pts := make([][2]float64, 0, steps+2)
	pts = append(pts, [2]float64{w.cx, w.cy})
	for i := 0; i <= steps; i++ {
		a := w.start + w.width*float64(i)/steps
		pts = append(pts, [2]float64{w.cx + math.Cos(a)*radius, w.cy + math.Sin(a)*radius})
	}
	strokePolyline(dst, pts, 1.5, clr, true)
}
