// Package game renders the flipping pizza with ebiten. It samples the wave
// animation once per tick and lays toppings out on every slice.
package game

import (
	"fmt"
	"image"
	"log"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/pizza-wave/internal/config"
	"github.com/iburimskiy/pizza-wave/internal/motion"
	"github.com/iburimskiy/pizza-wave/internal/toppings"
)

// Options configures a new Game.
type Options struct {
	Toppings  []string
	Reverse   bool
	Alternate bool // flip direction at every cycle restart
	Neon      bool
	Mute      bool
	Debug     bool
	TPS       int
}

type Game struct {
	// animation
	time      float64
	dt        float64
	offsets   []float64
	landed    [motion.SliceCount]bool
	lastCycle int
	reverse   bool
	alternate bool

	// toppings
	selected   []string
	placements []toppings.Placement

	// audio
	chime *flipChime

	// screenshot
	captureRequested bool
	frame            *image.RGBA

	// state
	paused  bool
	neon    bool
	debug   bool
	notice  string
	lastErr error
}

// New builds a game from opts. Audio is started unless opts.Mute is set; if
// the speaker cannot be opened the game runs silently.
func New(opts Options) (*Game, error) {
	tps := opts.TPS
	if tps <= 0 {
		tps = config.DefaultTPS
	}
	for _, id := range opts.Toppings {
		if _, ok := toppings.Lookup(id); !ok {
			return nil, fmt.Errorf("unknown topping %q", id)
		}
	}
	if len(opts.Toppings) > toppings.MaxToppings {
		return nil, fmt.Errorf("at most %d toppings, got %d", toppings.MaxToppings, len(opts.Toppings))
	}

	g := &Game{
		dt:        1.0 / float64(tps),
		reverse:   opts.Reverse,
		alternate: opts.Alternate,
		neon:      opts.Neon,
		debug:     opts.Debug,
		selected:  append([]string(nil), opts.Toppings...),
	}
	g.placements = toppings.Place(g.selected)
	g.offsets = motion.WaveOffsetsInto(g.offsets, g.time, g.reverse)

	if !opts.Mute {
		if err := g.startAudio(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}
	return g, nil
}

func (g *Game) startAudio() error {
	sr := beep.SampleRate(config.ChimeSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	g.chime = newFlipChime(sr)
	speaker.Play(g.chime)
	return nil
}

func (g *Game) Update() error {
	if g.frame != nil {
		if err := g.saveScreenshotDialog(g.frame); err != nil {
			g.lastErr = err
		}
		g.frame = nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.reverse = !g.reverse
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.alternate = !g.alternate
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.neon = !g.neon
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.debug = !g.debug
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.captureRequested = true
	}

	for i, key := range toppingKeys {
		if i < len(toppings.Catalog) && inpututil.IsKeyJustPressed(key) {
			g.toggleTopping(toppings.Catalog[i].ID)
		}
	}

	if !g.paused {
		g.advance(g.dt)
	}
	return nil
}

// toppingKeys selects the catalog entry at the same index.
var toppingKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
	ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9, ebiten.KeyDigit0,
}

// advance moves the animation forward by dt seconds and rings the chime for
// every slice that finished its flip.
func (g *Game) advance(dt float64) {
	g.time += dt

	wrapped := false
	if c := motion.CycleIndex(g.time); c != g.lastCycle {
		g.lastCycle = c
		wrapped = true
		if g.alternate {
			g.reverse = !g.reverse
		}
	}

	g.offsets = motion.WaveOffsetsInto(g.offsets, g.time, g.reverse)

	var landed []int
	g.landed, landed = landings(g.landed, g.offsets, wrapped)
	if g.chime != nil {
		for _, s := range landed {
			g.chime.ring(s)
		}
	}
}

// toggleTopping adds or removes a topping. Selections past MaxToppings are
// refused with a notice instead of being silently dropped.
func (g *Game) toggleTopping(id string) {
	for i, sel := range g.selected {
		if sel == id {
			g.selected = append(g.selected[:i], g.selected[i+1:]...)
			g.placements = toppings.Place(g.selected)
			g.notice = ""
			return
		}
	}
	if len(g.selected) >= toppings.MaxToppings {
		g.notice = fmt.Sprintf("at most %d toppings", toppings.MaxToppings)
		return
	}
	g.selected = append(g.selected, id)
	g.placements = toppings.Place(g.selected)
	g.notice = ""
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawPizza(screen)

	if g.captureRequested {
		g.frame = captureFrame(screen)
		g.captureRequested = false
	}

	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
	if g.debug {
		ebitenutil.DebugPrintAt(screen, g.debugText(), 12, config.WindowHeight-60)
	}
}

func (g *Game) status() string {
	dir := "forward"
	if g.reverse {
		dir = "reverse"
	}
	if g.alternate {
		dir += " (alternating)"
	}
	state := "Playing"
	if g.paused {
		state = "Paused"
	}

	labels := make([]string, 0, len(g.placements))
	for _, p := range g.placements {
		labels = append(labels, p.Topping.Label)
	}
	if len(labels) == 0 {
		labels = append(labels, "cheese only")
	}

	s := fmt.Sprintf("%s %s - %s | %s", state, formatDuration(time.Duration(g.time*float64(time.Second))), dir, strings.Join(labels, ", "))
	s += "\nSpace pause, R reverse, A alternate, N neon, 1-0 toppings, S screenshot, Esc quit"
	if g.notice != "" {
		s += "\n" + g.notice
	}
	if g.lastErr != nil {
		s += "\nError: " + g.lastErr.Error()
	}
	return s
}

func (g *Game) debugText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.1f  FPS %.1f  cycle %d\n", ebiten.ActualTPS(), ebiten.ActualFPS(), g.lastCycle)
	for s, off := range g.offsets {
		fmt.Fprintf(&b, "%d:%4.2f ", s, off)
	}
	if g.chime != nil {
		fmt.Fprintf(&b, "\nchime voices %d", g.chime.active())
	}
	return b.String()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
