package game

import (
	"math"
	"sync"

	"github.com/faiface/beep"

	"github.com/iburimskiy/pizza-wave/internal/config"
)

type chimeVoice struct {
	freq float64
	age  int // samples played so far
}

// flipChime is an endless beep.Streamer that mixes a short decaying tone for
// every slice that lands. The game goroutine rings it while the speaker
// goroutine streams it, so voices are guarded by mu.
type flipChime struct {
	sampleRate beep.SampleRate
	length     int

	mu     sync.Mutex
	voices []chimeVoice
}

func newFlipChime(sr beep.SampleRate) *flipChime {
	return &flipChime{
		sampleRate: sr,
		length:     int(float64(sr) * config.ChimeDuration),
	}
}

// ring queues a tone for the given slice; later slices sound higher.
func (c *flipChime) ring(slice int) {
	freq := config.ChimeFrequency * math.Pow(config.ChimeStep, float64(slice))
	c.mu.Lock()
	if len(c.voices) >= config.ChimeMaxVoices {
		c.voices = c.voices[1:]
	}
	c.voices = append(c.voices, chimeVoice{freq: freq})
	c.mu.Unlock()
}

func (c *flipChime) Stream(samples [][2]float64) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sr := float64(c.sampleRate)
	for i := range samples {
		var v float64
		for j := range c.voices {
			vc := &c.voices[j]
			if vc.age >= c.length {
				continue
			}
			t := float64(vc.age) / sr
			v += config.ChimeVolume * math.Exp(-config.ChimeDecay*t) * math.Sin(2*math.Pi*vc.freq*t)
			vc.age++
		}
		samples[i] = [2]float64{v, v}
	}

	// Drop finished voices in place.
	live := c.voices[:0]
	for _, vc := range c.voices {
		if vc.age < c.length {
			live = append(live, vc)
		}
	}
	c.voices = live
	return len(samples), true
}

func (c *flipChime) Err() error { return nil }

// active reports how many tones are still sounding.
func (c *flipChime) active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.voices)
}
