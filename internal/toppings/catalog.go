package toppings

import (
	"fmt"
	"image/color"
	"strings"
)

// Kind says how the renderer draws a topping.
type Kind int

const (
	// Positioned toppings are drawn once per assigned slot, given a point.
	Positioned Kind = iota
	// Overlay toppings are drawn once per slice, given the whole wedge.
	Overlay
)

func (k Kind) String() string {
	switch k {
	case Positioned:
		return "positioned"
	case Overlay:
		return "overlay"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Topping describes one selectable topping.
type Topping struct {
	ID    string
	Label string
	Kind  Kind
	// Neon is the colour used when the neon palette is active.
	Neon color.RGBA
}

// Catalog lists every topping in menu order. Keys 1..9 and 0 select them.
var Catalog = []Topping{
	{ID: "pepperoni", Label: "Pepperoni", Kind: Positioned, Neon: rgb(255, 20, 30)},
	{ID: "mushroom", Label: "Mushrooms", Kind: Positioned, Neon: rgb(180, 220, 255)},
	{ID: "olive", Label: "Olives", Kind: Positioned, Neon: rgb(30, 180, 200)},
	{ID: "pepper", Label: "Peppers", Kind: Positioned, Neon: rgb(30, 255, 80)},
	{ID: "pineapple", Label: "Pineapple", Kind: Positioned, Neon: rgb(255, 200, 30)},
	{ID: "ham", Label: "Ham", Kind: Positioned, Neon: rgb(255, 110, 170)},
	{ID: "chicken", Label: "Chicken", Kind: Positioned, Neon: rgb(255, 180, 50)},
	{ID: "onion", Label: "Onions", Kind: Positioned, Neon: rgb(200, 50, 255)},
	{ID: "bacon", Label: "Bacon", Kind: Positioned, Neon: rgb(200, 30, 20)},
	{ID: "ranch", Label: "Ranch", Kind: Overlay, Neon: rgb(235, 240, 255)},
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Lookup finds a topping by ID.
func Lookup(id string) (Topping, bool) {
	for _, t := range Catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Topping{}, false
}

// ParseList parses a comma separated list of topping IDs, as given on the
// command line. Empty entries are skipped; duplicates keep the first one.
func ParseList(s string) ([]string, error) {
	var ids []string
	seen := map[string]bool{}
	for _, part := range strings.Split(s, ",") {
		id := strings.ToLower(strings.TrimSpace(part))
		if id == "" || seen[id] {
			continue
		}
		if _, ok := Lookup(id); !ok {
			return nil, fmt.Errorf("unknown topping %q", id)
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}
