package openfoodfacts

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// apiProductResponse is the subset of /api/v0/product/{code}.json we use.
type apiProductResponse struct {
	Code          string      `json:"code"`
	Status        int         `json:"status"`
	StatusVerbose string      `json:"status_verbose"`
	Product       *apiProduct `json:"product"`
}

// apiSearchResponse is the subset of /cgi/search.pl?json=1 we use.
type apiSearchResponse struct {
	Count    int          `json:"count"`
	Products []apiProduct `json:"products"`
}

type apiProduct struct {
	Code            string        `json:"code"`
	ProductName     string        `json:"product_name"`
	ProductNameEn   string        `json:"product_name_en"`
	Brands          string        `json:"brands"`
	ServingSize     string        `json:"serving_size"`
	ServingSizeUnit string        `json:"serving_size_unit"`
	Nutriments      apiNutriments `json:"nutriments"`
}

type apiNutriments struct {
	EnergyKcal100g    *flexFloat `json:"energy-kcal_100g"`
	Energy100g        *flexFloat `json:"energy_100g"`
	Proteins100g      *flexFloat `json:"proteins_100g"`
	Carbohydrates100g *flexFloat `json:"carbohydrates_100g"`
	Fat100g           *flexFloat `json:"fat_100g"`
	Fiber100g         *flexFloat `json:"fiber_100g"`
	Sugars100g        *flexFloat `json:"sugars_100g"`
	Sodium100g        *flexFloat `json:"sodium_100g"`
}

// flexFloat decodes a JSON number or a numeric string.
// Empty or non-numeric strings decode as 0 and are reported as absent by ptr.
type flexFloat struct {
	v  float64
	ok bool
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		f.v, f.ok = v, true
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.v, f.ok = v, true
	return nil
}

func (f *flexFloat) ptr() *float64 {
	if f == nil || !f.ok {
		return nil
	}
	v := f.v
	return &v
}
