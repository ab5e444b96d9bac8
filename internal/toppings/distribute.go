// Package toppings holds the slot layout of a slice and decides which slots
// each selected topping occupies.
package toppings

// MaxToppings is the most toppings a pizza can carry at once.
const MaxToppings = 4

// Slot is a fixed position inside a slice wedge. AngleFrac runs across the
// wedge from its start edge (0) to its end edge (1); RadiusFrac runs from the
// inner radius (0) to the crust (1).
type Slot struct {
	AngleFrac  float64
	RadiusFrac float64
}

// SlicePositions is the slot table every slice shares.
var SlicePositions = [9]Slot{
	{AngleFrac: 0.50, RadiusFrac: 0.15}, // inner center
	{AngleFrac: 0.30, RadiusFrac: 0.37},
	{AngleFrac: 0.70, RadiusFrac: 0.37},
	{AngleFrac: 0.22, RadiusFrac: 0.58},
	{AngleFrac: 0.50, RadiusFrac: 0.55}, // middle center
	{AngleFrac: 0.78, RadiusFrac: 0.58},
	{AngleFrac: 0.22, RadiusFrac: 0.80},
	{AngleFrac: 0.50, RadiusFrac: 0.78}, // outer center
	{AngleFrac: 0.78, RadiusFrac: 0.80},
}

// Hand-tuned so a topping's slots sit apart and different toppings interleave.
var distribution = [...][][]int{
	0: {},
	1: {{0, 1, 4, 6, 8}},
	2: {{0, 2, 5, 7}, {1, 3, 6, 8}},
	3: {{0, 4, 8}, {1, 5, 6}, {2, 3, 7}},
	4: {{0, 8}, {1, 5}, {4, 6}, {3, 7}},
}

// DistributePositions returns, for each of count toppings, the indices into
// SlicePositions it is drawn at. More toppings means fewer slots each. Counts
// above MaxToppings get the MaxToppings layout; the extra toppings get nothing.
// Negative counts are treated as zero. The returned slices are fresh copies and may be modified by the caller.
func DistributePositions(count int) [][]int {
	switch {
	case count < 0:
		count = 0
	case count > MaxToppings:
		count = MaxToppings
	}
	layout := distribution[count]
	out := make([][]int, len(layout))
	for i, slots := range layout {
		out[i] = append([]int(nil), slots...)
	}
	return out
}
