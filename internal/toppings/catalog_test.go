package toppings_test

import (
	"testing"

	"github.com/iburimskiy/pizza-wave/internal/toppings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	overlays := 0
	for _, tp := range toppings.Catalog {
		assert.Falsef(t, seen[tp.ID], "duplicate id %q", tp.ID)
		seen[tp.ID] = true
		assert.NotEmpty(t, tp.Label)
		assert.Equal(t, uint8(255), tp.Neon.A)
		if tp.Kind == toppings.Overlay {
			overlays++
			assert.Equal(t, "ranch", tp.ID)
		}
	}
	assert.Len(t, toppings.Catalog, 10)
	assert.Equal(t, 1, overlays)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "positioned", toppings.Positioned.String())
	assert.Equal(t, "overlay", toppings.Overlay.String())
	assert.Equal(t, "Kind(7)", toppings.Kind(7).String())
}

func TestParseList(t *testing.T) {
	ids, err := toppings.ParseList(" Pepperoni, olive,,olive ,ranch")
	require.NoError(t, err)
	assert.Equal(t, []string{"pepperoni", "olive", "ranch"}, ids)

	ids, err = toppings.ParseList("")
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = toppings.ParseList("pepperoni,anchovy")
	assert.ErrorContains(t, err, `"anchovy"`)
}

func TestPlace(t *testing.T) {
	got := toppings.Place([]string{"ham", "nope", "ranch"})
	require.Len(t, got, 2)
	assert.Equal(t, "ham", got[0].Topping.ID)
	assert.Equal(t, []int{0, 2, 5, 7}, got[0].Slots)
	assert.Equal(t, toppings.Overlay, got[1].Topping.Kind)
	assert.Equal(t, []int{1, 3, 6, 8}, got[1].Slots)
}

// TestPlace_Truncates keeps only the first MaxToppings selections.
func TestPlace_Truncates(t *testing.T) {
	ids := []string{"pepperoni", "mushroom", "olive", "pepper", "pineapple", "ham"}
	got := toppings.Place(ids)
	require.Len(t, got, toppings.MaxToppings)
	for i, p := range got {
		assert.Equal(t, ids[i], p.Topping.ID)
		assert.Equal(t, toppings.DistributePositions(4)[i], p.Slots)
	}
	assert.Empty(t, toppings.Place(nil))
}
