// Package nutrition normalizes provider nutrient payloads into the canonical
// domain.NutrientProfile and scales profiles to a serving quantity.
package nutrition

import "math"

// roundCalories rounds to the nearest whole kcal.
func roundCalories(v float64) float64 {
	return math.Round(v)
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sanitize maps negative, NaN and infinite amounts to 0.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
