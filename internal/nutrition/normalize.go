package nutrition

import (
	"strings"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
)

// NamedNutrient is a provider nutrient row: a free-text name and an amount.
// Unit is optional; when it is "kJ" the row never counts as calories.
type NamedNutrient struct {
	Name   string
	Amount float64
	Unit   string
}

type category int

const (
	catNone category = iota
	catCalories
	catProtein
	catCarbohydrates
	catFat
	catFiber
	catSugar
	catSodium
)

// classify maps a nutrient name to a canonical category.
// The order of checks matters: "Carbohydrate, by difference" must not be
// read as anything else, and "energy" wins over every other token.
func classify(name string) category {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "energy") || strings.Contains(n, "calorie"):
		return catCalories
	case strings.Contains(n, "protein"):
		return catProtein
	case strings.Contains(n, "carbohydrate"):
		return catCarbohydrates
	case strings.Contains(n, "total lipid") || strings.Contains(n, "fat"):
		return catFat
	case strings.Contains(n, "fiber"):
		return catFiber
	case strings.Contains(n, "sugars"):
		return catSugar
	case strings.Contains(n, "sodium"):
		return catSodium
	}
	return catNone
}

// Normalize builds a NutrientProfile from an ordered list of named nutrients.
// The first entry mapped to a category wins; later duplicates are ignored.
// Categories without a matching entry are 0.
func Normalize(entries []NamedNutrient) domain.NutrientProfile {
	var p domain.NutrientProfile
	seen := make(map[category]bool, 7)

	for _, e := range entries {
		cat := classify(e.Name)
		if cat == catNone || seen[cat] {
			continue
		}
		if cat == catCalories && strings.EqualFold(strings.TrimSpace(e.Unit), "kj") {
			continue
		}
		seen[cat] = true

		v := sanitize(e.Amount)
		switch cat {
		case catCalories:
			p.Calories = roundCalories(v)
		case catProtein:
			p.Protein = round2(v)
		case catCarbohydrates:
			p.Carbohydrates = round2(v)
		case catFat:
			p.Fat = round2(v)
		case catFiber:
			p.Fiber = round2(v)
		case catSugar:
			p.Sugar = round2(v)
		case catSodium:
			p.Sodium = round2(v)
		}
	}

	return p
}

// Per100Nutriments holds registry values expressed per 100 units.
// A nil field means the registry did not report it.
type Per100Nutriments struct {
	EnergyKcal    *float64
	Energy        *float64
	Proteins      *float64
	Carbohydrates *float64
	Fat           *float64
	Fiber         *float64
	Sugars        *float64
	Sodium        *float64
}

// NormalizePer100 builds a NutrientProfile from per-100-unit registry fields.
// Calories prefer the explicit kcal field and fall back to the generic energy field.
func NormalizePer100(n Per100Nutriments) domain.NutrientProfile {
	// energy_100g is reported in kJ, so it only stands in when kcal is absent.
	energy := n.EnergyKcal
	if energy == nil {
		energy = n.Energy
	}

	return domain.NutrientProfile{
		Calories:      roundCalories(value(energy)),
		Protein:       round2(value(n.Proteins)),
		Carbohydrates: round2(value(n.Carbohydrates)),
		Fat:           round2(value(n.Fat)),
		Fiber:         round2(value(n.Fiber)),
		Sugar:         round2(value(n.Sugars)),
		Sodium:        round2(value(n.Sodium)),
	}
}

func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return sanitize(*v)
}
