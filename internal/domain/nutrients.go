package domain

// NutrientProfile is the canonical nutrition record for one reference serving.
// Calories are kcal, sodium is mg, everything else is grams.
// A zero value is a valid, all-zero profile.
type NutrientProfile struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Fiber         float64 `json:"fiber"`
	Sugar         float64 `json:"sugar"`
	Sodium        float64 `json:"sodium"`
}

// ScaledNutrition is a NutrientProfile recomputed for a requested quantity.
type ScaledNutrition = NutrientProfile
