package journal

import (
	"math"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
)

// AddEntryInput holds the parameters for logging a consumed food.
// An empty Day means today.
type AddEntryInput struct {
	Food     domain.FoodDetail
	Quantity float64
	Day      string
}

// Validate checks all fields and collects all errors.
func (i AddEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.Food.ID == "" {
		errs = append(errs, domain.FieldError{Field: "food.id", Message: "required"})
	}
	if i.Food.Name == "" {
		errs = append(errs, domain.FieldError{Field: "food.name", Message: "required"})
	}
	if i.Food.DataType != "" && !i.Food.DataType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "food.dataType", Message: "unknown data type"})
	}
	if s := i.Food.ServingSize; math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		errs = append(errs, domain.FieldError{Field: "food.servingSize", Message: "must be greater than 0"})
	}
	if q := i.Quantity; math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be greater than 0"})
	}
	if i.Day != "" && !domain.ValidDay(i.Day) {
		errs = append(errs, domain.FieldError{Field: "day", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateDay(day string) error {
	if !domain.ValidDay(day) {
		return domain.NewValidationError("day", "must be YYYY-MM-DD")
	}
	return nil
}
