package food

import (
	"math"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
)

// Search sources.
const (
	SourceUSDA          = "usda"
	SourceOpenFoodFacts = "openfoodfacts"
)

// SearchInput holds the parameters for a text search.
type SearchInput struct {
	Query  string
	Source string
}

// Validate checks all fields and collects all errors.
func (i SearchInput) Validate() error {
	switch i.Source {
	case "", SourceUSDA, SourceOpenFoodFacts:
		return nil
	}
	return domain.NewValidationError("source", "must be usda or openfoodfacts")
}

// GetDetailInput identifies a food to resolve into a FoodDetail.
type GetDetailInput struct {
	ID       string
	DataType domain.DataType
}

// Validate checks all fields and collects all errors.
func (i GetDetailInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.DataType != "" && !i.DataType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "dataType", Message: "unknown data type"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ComputeInput holds the parameters for scaling a nutrient profile.
type ComputeInput struct {
	Nutrients        domain.NutrientProfile
	Quantity         float64
	ReferenceServing float64
}

// Validate checks all fields and collects all errors.
func (i ComputeInput) Validate() error {
	var errs []domain.FieldError
	if math.IsNaN(i.Quantity) || math.IsInf(i.Quantity, 0) || i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be greater than 0"})
	}
	if math.IsNaN(i.ReferenceServing) || math.IsInf(i.ReferenceServing, 0) || i.ReferenceServing < 0 {
		errs = append(errs, domain.FieldError{Field: "referenceServing", Message: "must be greater than 0"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
