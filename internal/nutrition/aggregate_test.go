package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chickenPer100g() *Profile {
	return &Profile{
		Calories: 165,
		Macros:   Macros{Protein: 31},
	}
}

func TestComputeRecipeNutritionWeightedSum(t *testing.T) {
	lines := []IngredientLine{
		{Per100g: chickenPer100g(), GramsPer100g: 50},
	}

	got, skipped := ComputeRecipeNutrition(lines)
	require.NotNil(t, got)
	assert.Zero(t, skipped)
	assert.Equal(t, 82.5, got.Calories)
	assert.Equal(t, 15.5, got.Macros.Protein)
}

func TestComputeRecipeNutritionMultipleLines(t *testing.T) {
	rice := &Profile{
		Calories:       130,
		Macros:         Macros{Protein: 2.7, Carbs: 28.2},
		Micronutrients: Micronutrients{Iron: 0.2, Magnesium: 12},
	}
	lines := []IngredientLine{
		{Per100g: chickenPer100g(), GramsPer100g: 40},
		{Per100g: rice, GramsPer100g: 60},
	}

	got, skipped := ComputeRecipeNutrition(lines)
	require.NotNil(t, got)
	assert.Zero(t, skipped)
	// 165*0.4 + 130*0.6 = 66 + 78
	assert.Equal(t, 144.0, got.Calories)
	// 31*0.4 + 2.7*0.6 = 12.4 + 1.62 -> 14.0 at 1dp
	assert.Equal(t, 14.0, got.Macros.Protein)
	// micros round to 2dp: 12*0.6 = 7.2
	assert.Equal(t, 7.2, got.Micronutrients.Magnesium)
	assert.Equal(t, 0.12, got.Micronutrients.Iron)
}

func TestComputeRecipeNutritionEmptyListReturnsNil(t *testing.T) {
	got, skipped := ComputeRecipeNutrition(nil)
	assert.Nil(t, got)
	assert.Zero(t, skipped)

	got, skipped = ComputeRecipeNutrition([]IngredientLine{})
	assert.Nil(t, got)
	assert.Zero(t, skipped)
}

func TestComputeRecipeNutritionSkipsUnresolvedLines(t *testing.T) {
	lines := []IngredientLine{
		{Per100g: nil, GramsPer100g: 30},
		{Per100g: chickenPer100g(), GramsPer100g: 50},
		{Per100g: nil, GramsPer100g: 20},
	}

	got, skipped := ComputeRecipeNutrition(lines)
	require.NotNil(t, got)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, 82.5, got.Calories)
}

func TestComputeRecipeNutritionDeterministic(t *testing.T) {
	lines := []IngredientLine{
		{Per100g: chickenPer100g(), GramsPer100g: 33.3},
		{Per100g: &Profile{Calories: 88, Macros: Macros{Fat: 9.1}}, GramsPer100g: 12.7},
	}

	first, _ := ComputeRecipeNutrition(lines)
	second, _ := ComputeRecipeNutrition(lines)
	assert.Equal(t, first, second)
}

func TestComputeRecipeNutritionDirtyQuantities(t *testing.T) {
	lines := []IngredientLine{
		{Per100g: chickenPer100g(), GramsPer100g: math.NaN()},
		{Per100g: chickenPer100g(), GramsPer100g: -40},
		{Per100g: chickenPer100g(), GramsPer100g: 50},
	}

	got, skipped := ComputeRecipeNutrition(lines)
	require.NotNil(t, got)
	assert.Zero(t, skipped)
	assert.Equal(t, 82.5, got.Calories)
}
