package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/pizza-wave/internal/config"
	"github.com/iburimskiy/pizza-wave/internal/game"
	"github.com/iburimskiy/pizza-wave/internal/toppings"
)

func main() {
	flag.Parse()

	ids, err := toppings.ParseList(*toppingsFlag)
	if err != nil {
		log.Fatalf("invalid -toppings: %v", err)
	}

	g, err := game.New(game.Options{
		Toppings:  ids,
		Reverse:   *reverseFlag,
		Alternate: *alternateFlag,
		Neon:      *neonFlag,
		Mute:      *muteFlag,
		Debug:     *debugFlag,
		TPS:       *tpsFlag,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Pizza Wave - Space: pause, R: reverse, 1-0: toppings, Esc/Q: quit")
	if *tpsFlag > 0 {
		ebiten.SetTPS(*tpsFlag)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
