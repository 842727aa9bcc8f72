package nutrition

import "math"

// Scale converts a per-100g profile to the given consumed quantity.
// No rounding happens here: snapshots keep full precision so later
// summations stay exact.
func Scale(per100g Profile, gramsConsumed float64) Profile {
	return per100g.scaleBy(sanitize(gramsConsumed) / 100)
}

// ResolveGrams picks the consumed gram amount for a meal entry.
// An explicit positive gram amount wins; otherwise servings are converted
// through the recipe's per-serving mass (100 g when the recipe has none).
// The result is a whole-gram amount, never below 1.
func ResolveGrams(explicitGrams, servings, servingSizeGrams float64) float64 {
	if g := sanitize(explicitGrams); g > 0 {
		return g
	}

	s := sanitize(servings)
	if s <= 0 {
		s = 1
	}
	return math.Max(1, math.Round(s*perServing(servingSizeGrams)))
}

// ResolveServings derives a display-only serving count from grams. Grams
// remain the source of truth; this value is never fed back into ResolveGrams.
func ResolveServings(gramsConsumed, servingSizeGrams float64) float64 {
	return round2(sanitize(gramsConsumed) / perServing(servingSizeGrams))
}

func perServing(servingSizeGrams float64) float64 {
	if p := sanitize(servingSizeGrams); p > 0 {
		return p
	}
	return 100
}
