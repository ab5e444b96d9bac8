package toppings

// Placement is a selected topping together with the slots it occupies in
// every slice.
type Placement struct {
	Topping Topping
	Slots   []int
}

// Place assigns slots to the selected toppings, in selection order. Only the
// first MaxToppings known IDs are placed; unknown IDs are skipped.
func Place(ids []string) []Placement {
	var chosen []Topping
	for _, id := range ids {
		if len(chosen) == MaxToppings {
			break
		}
		if t, ok := Lookup(id); ok {
			chosen = append(chosen, t)
		}
	}

	slots := DistributePositions(len(chosen))
	out := make([]Placement, len(chosen))
	for i, t := range chosen {
		out[i] = Placement{Topping: t, Slots: slots[i]}
	}
	return out
}
