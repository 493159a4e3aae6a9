// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() returned nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same instance on every call")
	}
}

// searchQuery mirrors the shape of the API's product search parameters.
type searchQuery struct {
	Query    string   `validate:"omitempty,max=200"`
	Category string   `validate:"omitempty,max=32"`
	MinPrice *float64 `validate:"omitempty,gte=0"`
	Limit    int      `validate:"min=1,max=10000"`
}

func TestValidateStruct(t *testing.T) {
	negative := -1.0
	zero := 0.0

	tests := []struct {
		name      string
		input     searchQuery
		wantField string
		wantTag   string
	}{
		{
			name:  "typical query passes",
			input: searchQuery{Query: "wireless headphones", Category: "audio", Limit: 10},
		},
		{
			name:  "boundary values pass",
			input: searchQuery{Query: strings.Repeat("q", 200), MinPrice: &zero, Limit: 10000},
		},
		{
			name:      "query too long",
			input:     searchQuery{Query: strings.Repeat("q", 201), Limit: 10},
			wantField: "Query",
			wantTag:   "max",
		},
		{
			name:      "negative price floor",
			input:     searchQuery{MinPrice: &negative, Limit: 10},
			wantField: "MinPrice",
			wantTag:   "gte",
		},
		{
			name:      "limit of zero",
			input:     searchQuery{Limit: 0},
			wantField: "Limit",
			wantTag:   "min",
		},
		{
			name:      "limit above ceiling",
			input:     searchQuery{Limit: 10001},
			wantField: "Limit",
			wantTag:   "max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() returned unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}
			for _, e := range err.Errors() {
				if e.Field() == tt.wantField && e.Tag() == tt.wantTag {
					return
				}
			}
			t.Errorf("Expected error on field %s with tag %s, got: %v", tt.wantField, tt.wantTag, err.Errors())
		})
	}
}

// TestFieldMessages pins the human-readable translation for every tag the
// request and config structs use.
func TestFieldMessages(t *testing.T) {
	type messageProbe struct {
		Name       string  `validate:"required"`
		Message    string  `validate:"omitempty,min=3"`
		Rating     int     `validate:"omitempty,max=5"`
		PriceFloor float64 `validate:"omitempty,gte=1"`
		PolicyType string  `validate:"omitempty,oneof=returns warranty"`
	}

	tests := []struct {
		name  string
		input messageProbe
		want  string
	}{
		{
			name:  "required",
			input: messageProbe{},
			want:  "Name is required",
		},
		{
			name:  "min on string counts characters",
			input: messageProbe{Name: "x", Message: "ab"},
			want:  "Message must be at least 3 characters",
		},
		{
			name:  "max on number",
			input: messageProbe{Name: "x", Rating: 6},
			want:  "Rating must be at most 5",
		},
		{
			name:  "gte",
			input: messageProbe{Name: "x", PriceFloor: 0.5},
			want:  "PriceFloor must be greater than or equal to 1",
		},
		{
			name:  "oneof",
			input: messageProbe{Name: "x", PolicyType: "refunds"},
			want:  "PolicyType must be one of: returns warranty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}
			if got := err.Error(); got != tt.want {
				t.Errorf("Expected message %q, got %q", tt.want, got)
			}
		})
	}
}

func TestValidationError_Accessors(t *testing.T) {
	input := searchQuery{Query: strings.Repeat("q", 250), Limit: 10}

	err := ValidateStruct(&input)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	errs := err.Errors()
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(errs))
	}

	e := errs[0]
	if e.Field() != "Query" {
		t.Errorf("Field() = %q, want Query", e.Field())
	}
	if e.Tag() != "max" {
		t.Errorf("Tag() = %q, want max", e.Tag())
	}
	if e.Param() != "200" {
		t.Errorf("Param() = %q, want 200", e.Param())
	}
	if v, ok := e.Value().(string); !ok || len(v) != 250 {
		t.Errorf("Value() = %v, want the 250-character query", e.Value())
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	input := searchQuery{Limit: 0}

	err := ValidateStruct(&input)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Expected code VALIDATION_ERROR, got %s", apiErr.Code)
	}
	if apiErr.Message != "Limit must be at least 1" {
		t.Errorf("Unexpected message: %s", apiErr.Message)
	}
	if apiErr.Details["field"] != "Limit" {
		t.Errorf("Expected field Limit in details, got %v", apiErr.Details)
	}
	if apiErr.Details["tag"] != "min" {
		t.Errorf("Expected tag min in details, got %v", apiErr.Details)
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	negative := -5.0
	input := searchQuery{Query: strings.Repeat("q", 300), MinPrice: &negative, Limit: 0}

	err := ValidateStruct(&input)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Expected code VALIDATION_ERROR, got %s", apiErr.Code)
	}

	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Expected fields list in details, got %v", apiErr.Details)
	}
	if len(fields) != 3 {
		t.Errorf("Expected 3 field entries, got %d", len(fields))
	}
	for _, want := range []string{"Query", "MinPrice", "Limit"} {
		if !strings.Contains(apiErr.Message, want) {
			t.Errorf("Expected message to mention %s: %s", want, apiErr.Message)
		}
	}
}

// TestNestedStructValidation covers the WithRequiredStructEnabled option:
// required on a struct field recurses into it.
func TestNestedStructValidation(t *testing.T) {
	type inner struct {
		Value string `validate:"required"`
	}
	type outer struct {
		Inner inner `validate:"required"`
	}

	if err := ValidateStruct(&outer{Inner: inner{Value: "set"}}); err != nil {
		t.Errorf("ValidateStruct() returned unexpected error for valid nested struct: %v", err)
	}
	if err := ValidateStruct(&outer{}); err == nil {
		t.Error("ValidateStruct() should have flagged the empty nested struct")
	}
}

func TestRequestValidationError_Error(t *testing.T) {
	input := searchQuery{Limit: 0}

	err := ValidateStruct(&input)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if msg := err.Error(); !strings.Contains(msg, "Limit") {
		t.Errorf("Error() should reference the failed field: %s", msg)
	}

	empty := &RequestValidationError{}
	if msg := empty.Error(); msg != "validation failed" {
		t.Errorf("Expected fallback message for empty error set, got %q", msg)
	}
}
