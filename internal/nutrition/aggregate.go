package nutrition

import "math"

// IngredientLine is one row of a recipe's composition: grams of an ingredient
// contained in 100 g of the finished recipe. Per100g is nil when the
// ingredient reference did not resolve.
type IngredientLine struct {
	Per100g      *Profile
	GramsPer100g float64
}

// ComputeRecipeNutrition derives a recipe's per-100g profile by weighted
// summation over its ingredient lines. Lines whose ingredient did not resolve
// contribute nothing; the count of such lines is returned so callers can log
// partial aggregation instead of losing it silently. Returns nil for an empty
// line list — the caller must keep any previously stored profile in that case.
func ComputeRecipeNutrition(lines []IngredientLine) (*Profile, int) {
	if len(lines) == 0 {
		return nil, 0
	}

	var total Profile
	skipped := 0
	for _, line := range lines {
		if line.Per100g == nil {
			skipped++
			continue
		}
		total.Add(line.Per100g.scaleBy(sanitize(line.GramsPer100g) / 100))
	}

	result := total.rounded()
	return &result, skipped
}

// sanitize coerces NaN/Inf and negatives to 0. Dirty numeric data must never
// fail a calculation.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
