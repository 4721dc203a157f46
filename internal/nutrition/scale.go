package nutrition

import (
	"math"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
)

// DefaultReferenceServing is the serving size a profile is expressed at when
// the provider does not say otherwise.
const DefaultReferenceServing = 100.0

// Scale recomputes profile for quantity, given the reference serving the
// profile is expressed at. Calories are rounded to an integer and the rest
// to two decimals. A zero quantity yields an all-zero profile.
// referenceServing must be positive and finite.
func Scale(profile domain.NutrientProfile, quantity, referenceServing float64) (domain.ScaledNutrition, error) {
	if referenceServing <= 0 || math.IsNaN(referenceServing) || math.IsInf(referenceServing, 0) {
		return domain.ScaledNutrition{}, domain.NewValidationError("referenceServing", "must be a positive number")
	}
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return domain.ScaledNutrition{}, domain.NewValidationError("quantity", "must be a finite number")
	}

	m := quantity / referenceServing

	return domain.ScaledNutrition{
		Calories:      roundCalories(profile.Calories * m),
		Protein:       round2(profile.Protein * m),
		Carbohydrates: round2(profile.Carbohydrates * m),
		Fat:           round2(profile.Fat * m),
		Fiber:         round2(profile.Fiber * m),
		Sugar:         round2(profile.Sugar * m),
		Sodium:        round2(profile.Sodium * m),
	}, nil
}

// Sum adds profiles together for a daily total, rounding the result the same
// way as Scale.
func Sum(profiles ...domain.NutrientProfile) domain.NutrientProfile {
	var t domain.NutrientProfile
	for _, p := range profiles {
		t.Calories += p.Calories
		t.Protein += p.Protein
		t.Carbohydrates += p.Carbohydrates
		t.Fat += p.Fat
		t.Fiber += p.Fiber
		t.Sugar += p.Sugar
		t.Sodium += p.Sodium
	}

	return domain.NutrientProfile{
		Calories:      roundCalories(t.Calories),
		Protein:       round2(t.Protein),
		Carbohydrates: round2(t.Carbohydrates),
		Fat:           round2(t.Fat),
		Fiber:         round2(t.Fiber),
		Sugar:         round2(t.Sugar),
		Sodium:        round2(t.Sodium),
	}
}
