package food

import (
	"context"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"github.com/heartmarshall/nutritrack-backend/internal/nutrition"
)

// Compute scales a nutrient profile to a quantity. A zero reference serving
// means nutrition.DefaultReferenceServing.
func (s *Service) Compute(ctx context.Context, input ComputeInput) (domain.ScaledNutrition, error) {
	if err := input.Validate(); err != nil {
		return domain.ScaledNutrition{}, err
	}

	ref := input.ReferenceServing
	if ref == 0 {
		ref = nutrition.DefaultReferenceServing
	}

	return nutrition.Scale(input.Nutrients, input.Quantity, ref)
}
