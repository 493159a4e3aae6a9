// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package chat

import (
	"reflect"
	"testing"
)

func TestClassifyIntent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		message string
		want    string
	}{
		{"What is the return policy?", intentPolicy},
		{"warranty info please", intentPolicy},
		{"show me reviews for this", intentReview},
		{"sentiment on the Nova X", intentReview},
		{"give me a summary", intentReview},
		{"compare these two", intentPrice},
		{"what's the price of the tv", intentPrice},
		{"anything cheaper?", intentPrice},
		{"recommend a laptop", intentRecommend},
		{"suggest something", intentRecommend},
		{"similar items to this one", intentRecommend},
		{"gaming laptop", intentSearch},
		{"hello", intentSearch},
		// Earlier buckets win on mixed wording.
		{"compare return policies", intentPolicy},
		{"recommend something cheaper", intentPrice},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.message, func(t *testing.T) {
			t.Parallel()
			if got := classifyIntent(tt.message); got != tt.want {
				t.Errorf("classifyIntent(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestExtractCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		message string
		want    string
	}{
		{"cheap phone", "smartphone"},
		{"any mobile deals", "smartphone"},
		{"LAPTOP offers", "laptop"},
		{"bluetooth speaker", "speaker"},
		{"a tv for the living room", "smart_tv"},
		{"smart tv", "smart_tv"},
		// Phone words are checked before the loose "tv" substring.
		{"phone or tv", "smartphone"},
		{"toaster", ""},
		{"", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.message, func(t *testing.T) {
			t.Parallel()
			if got := extractCategory(tt.message); got != tt.want {
				t.Errorf("extractCategory(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestExtractBudget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		message string
		want    float64
		wantOK  bool
	}{
		{"laptops under $500", 500, true},
		{"below 300", 300, true},
		{"less than $59.99", 59.99, true},
		{"I have $42 to spend", 42, true},
		{"Under 800 dollars", 800, true},
		{"under500", 500, true},
		{"$ 15 tops", 15, true},
		{"no amounts here", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.message, func(t *testing.T) {
			t.Parallel()
			got, ok := extractBudget(tt.message)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("extractBudget(%q) = %v, %v; want %v, %v", tt.message, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExtractProductIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{"two ids in order", "Compare LT1001 and SP2001 please", []string{"LT1001", "SP2001"}},
		{"single id", "The TV3001 rocks", []string{"TV3001"}},
		{"lowercase not matched", "what about lt1001", nil},
		{"prefix too long", "ABCDE12345 is not an id", nil},
		{"none", "nothing here", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := extractProductIDs(tt.message)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractProductIDs(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}

	if got := extractProductID("Compare LT1001 and SP2001"); got != "LT1001" {
		t.Errorf("extractProductID returned %q, want first match LT1001", got)
	}
	if got := extractProductID("no ids"); got != "" {
		t.Errorf("extractProductID returned %q for no match", got)
	}
}

func TestIsCheapestRequest(t *testing.T) {
	t.Parallel()

	for _, message := range []string{"cheapest tv", "lowest priced", "on a budget", "something affordable", "Cheap speakers"} {
		if !isCheapestRequest(message) {
			t.Errorf("Expected %q to read as a cheapest request", message)
		}
	}
	if isCheapestRequest("premium laptop") {
		t.Error("Expected 'premium laptop' not to read as a cheapest request")
	}
}
