package main

import "flag"

// Command-line flags for the starting state of the visualizer. Everything
// except -tps and -mute can also be toggled from the keyboard.
var (
	// toppingsFlag is a comma separated list of topping IDs, at most four.
	toppingsFlag = flag.String("toppings", "pepperoni,mushroom", "comma separated toppings to start with (max 4)")

	// reverseFlag starts the cascade from the last slice.
	reverseFlag = flag.Bool("reverse", false, "run the flip wave in reverse")

	// alternateFlag flips direction every time the wave restarts.
	alternateFlag = flag.Bool("alternate", false, "alternate wave direction every cycle")

	neonFlag = flag.Bool("neon", false, "draw with the neon palette")

	// muteFlag disables the chime played when a slice lands.
	muteFlag = flag.Bool("mute", false, "disable the flip chime")

	debugFlag = flag.Bool("debug", false, "show TPS and per-slice offsets")

	tpsFlag = flag.Int("tps", 60, "animation ticks per second")
)
