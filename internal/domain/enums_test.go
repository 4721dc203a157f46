package domain

import "testing"

func TestDataType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dt   DataType
		want bool
	}{
		{DataTypeBranded, true},
		{DataTypeFoundation, true},
		{DataTypeLegacy, true},
		{DataTypeSurvey, true},
		{DataTypeExternalRegistry, true},
		{DataType("INVALID"), false},
		{DataType(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.dt), func(t *testing.T) {
			t.Parallel()
			if got := tt.dt.IsValid(); got != tt.want {
				t.Errorf("DataType(%q).IsValid() = %v, want %v", tt.dt, got, tt.want)
			}
		})
	}
}

func TestParseDataType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   DataType
		wantOK bool
	}{
		{"Branded", DataTypeBranded, true},
		{"Foundation", DataTypeFoundation, true},
		{"SR Legacy", DataTypeLegacy, true},
		{"Survey (FNDDS)", DataTypeSurvey, true},
		{"Open Food Facts", DataTypeExternalRegistry, true},
		{"EXTERNAL_REGISTRY", DataTypeExternalRegistry, true},
		{"SURVEY", DataTypeSurvey, true},
		{"Experimental", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseDataType(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseDataType(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
