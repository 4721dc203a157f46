package domain

// FoodSummary identifies a food in search results.
// ID is opaque and only meaningful to the provider that produced it.
type FoodSummary struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Brand           *string  `json:"brand,omitempty"`
	DataType        DataType `json:"dataType"`
	ServingSize     float64  `json:"servingSize"`
	ServingSizeUnit string   `json:"servingSizeUnit"`
}

// FoodDetail is a FoodSummary with nutrients at the reference serving size.
type FoodDetail struct {
	FoodSummary
	Nutrients NutrientProfile `json:"nutrients"`
}

const (
	DefaultServingSize     = 100.0
	DefaultServingSizeUnit = "g"
	UnknownProductName     = "Unknown Product"
)
