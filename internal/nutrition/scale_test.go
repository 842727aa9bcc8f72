package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleIsExactlyLinear(t *testing.T) {
	per100g := Profile{
		Calories:       165,
		Macros:         Macros{Protein: 31, Carbs: 3.3, Fat: 3.6, Fiber: 0.7},
		Micronutrients: Micronutrients{Iron: 1.04, Potassium: 256},
	}

	got := Scale(per100g, 250)

	factor := 2.5
	assert.Equal(t, per100g.Calories*factor, got.Calories)
	assert.Equal(t, per100g.Macros.Protein*factor, got.Macros.Protein)
	assert.Equal(t, per100g.Macros.Carbs*factor, got.Macros.Carbs)
	assert.Equal(t, per100g.Micronutrients.Iron*factor, got.Micronutrients.Iron)
	assert.Equal(t, per100g.Micronutrients.Potassium*factor, got.Micronutrients.Potassium)

	// 250 g of a recipe at 82.5 kcal / 15.5 g protein per 100 g
	snap := Scale(Profile{Calories: 82.5, Macros: Macros{Protein: 15.5}}, 250)
	assert.Equal(t, 206.25, snap.Calories)
	assert.Equal(t, 38.75, snap.Macros.Protein)
}

func TestResolveGramsPrefersExplicitAmount(t *testing.T) {
	assert.Equal(t, 250.0, ResolveGrams(250, 3, 120))
}

func TestResolveGramsFallsBackToServings(t *testing.T) {
	// 2 servings of a 150 g-per-serving recipe
	assert.Equal(t, 300.0, ResolveGrams(0, 2, 150))
	// recipe without a serving size defaults to 100 g per serving
	assert.Equal(t, 200.0, ResolveGrams(0, 2, 0))
	// no explicit grams, no servings: one default serving
	assert.Equal(t, 100.0, ResolveGrams(0, 0, 0))
	assert.Equal(t, 150.0, ResolveGrams(0, 0, 150))
}

func TestResolveGramsFloorsAtOneGram(t *testing.T) {
	assert.Equal(t, 1.0, ResolveGrams(0, 0.001, 100))
	assert.Equal(t, 1.0, ResolveGrams(-5, 0.002, 100))
}

func TestResolveGramsRoundsToWholeGrams(t *testing.T) {
	assert.Equal(t, 188.0, ResolveGrams(0, 1.25, 150))
}

func TestResolveServings(t *testing.T) {
	assert.Equal(t, 2.5, ResolveServings(250, 100))
	assert.Equal(t, 1.67, ResolveServings(250, 150))
	// missing serving size falls back to 100 g
	assert.Equal(t, 0.5, ResolveServings(50, 0))
}
