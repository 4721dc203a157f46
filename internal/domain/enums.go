package domain

import "strings"

// DataType is the provider/category tag of a food.
type DataType string

const (
	DataTypeBranded          DataType = "BRANDED"
	DataTypeFoundation       DataType = "FOUNDATION"
	DataTypeLegacy           DataType = "LEGACY"
	DataTypeSurvey           DataType = "SURVEY"
	DataTypeExternalRegistry DataType = "EXTERNAL_REGISTRY"
)

func (d DataType) String() string { return string(d) }

func (d DataType) IsValid() bool {
	switch d {
	case DataTypeBranded, DataTypeFoundation, DataTypeLegacy, DataTypeSurvey, DataTypeExternalRegistry:
		return true
	}
	return false
}

// ParseDataType accepts both the enum form ("SURVEY") and the labels used by
// FoodData Central ("Survey (FNDDS)", "SR Legacy") and Open Food Facts.
func ParseDataType(s string) (DataType, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	switch {
	case norm == "":
		return "", false
	case strings.Contains(norm, "branded"):
		return DataTypeBranded, true
	case strings.Contains(norm, "foundation"):
		return DataTypeFoundation, true
	case strings.Contains(norm, "legacy"):
		return DataTypeLegacy, true
	case strings.Contains(norm, "survey"):
		return DataTypeSurvey, true
	case strings.Contains(norm, "external"), strings.Contains(norm, "open food facts"):
		return DataTypeExternalRegistry, true
	}
	return "", false
}
