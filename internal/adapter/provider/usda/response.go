package usda

// apiSearchRequest is the body of POST /foods/search.
type apiSearchRequest struct {
	Query    string   `json:"query"`
	PageSize int      `json:"pageSize"`
	DataType []string `json:"dataType"`
}

// apiSearchResponse is the subset of the /foods/search payload we use.
type apiSearchResponse struct {
	TotalHits int       `json:"totalHits"`
	Foods     []apiFood `json:"foods"`
}

// apiFood is a food as returned by both /foods/search and /food/{id}.
type apiFood struct {
	FdcID           int64             `json:"fdcId"`
	Description     string            `json:"description"`
	BrandOwner      string            `json:"brandOwner"`
	BrandName       string            `json:"brandName"`
	DataType        string            `json:"dataType"`
	GtinUpc         string            `json:"gtinUpc"`
	ServingSize     *float64          `json:"servingSize"`
	ServingSizeUnit string            `json:"servingSizeUnit"`
	FoodNutrients   []apiFoodNutrient `json:"foodNutrients"`
}

// apiFoodNutrient covers both nutrient shapes FoodData Central emits:
// nested {nutrient:{name,unitName}, amount} on /food/{id} and
// flat {nutrientName, unitName, value} on /foods/search.
type apiFoodNutrient struct {
	Nutrient     *apiNutrient `json:"nutrient"`
	Amount       *float64     `json:"amount"`
	NutrientName string       `json:"nutrientName"`
	UnitName     string       `json:"unitName"`
	Value        *float64     `json:"value"`
}

type apiNutrient struct {
	ID       int64  `json:"id"`
	Number   string `json:"number"`
	Name     string `json:"name"`
	UnitName string `json:"unitName"`
}
