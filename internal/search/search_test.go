// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package search

import (
	"testing"

	"github.com/tomtom215/mercatus/internal/models"
	"github.com/tomtom215/mercatus/internal/text"
)

func floatPtr(v float64) *float64 { return &v }

func testProducts() []models.Product {
	return []models.Product{
		{ID: "LT1001", Name: "UltraBook Pro", Brand: "Lenora", Category: "laptop",
			Price: 999.99, Description: "Thin and light laptop with bright display", Stock: 12, Rating: 4.6},
		{ID: "LT1002", Name: "WorkBook Air", Brand: "Lenora", Category: "laptop",
			Price: 649.00, Description: "Everyday laptop for work and study", Stock: 0, Rating: 4.1},
		{ID: "SP2001", Name: "Nova X", Brand: "Stellar", Category: "smartphone",
			Price: 699.00, Description: "Fast smartphone with crystal clear screen", Stock: 8, Rating: 4.2},
		{ID: "SPK4001", Name: "RoomSound Mini", Brand: "Sonique", Category: "speaker",
			Price: 89.50, Description: "Compact speaker with punchy bass", Stock: 30, Rating: 4.0},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func equalIDs(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{"no filters returns all in order", Filters{}, []string{"LT1001", "LT1002", "SP2001", "SPK4001"}},
		{"category exact", Filters{Category: "laptop"}, []string{"LT1001", "LT1002"}},
		{"category is case sensitive", Filters{Category: "Laptop"}, []string{}},
		{"query matches name", Filters{Query: "ultrabook"}, []string{"LT1001"}},
		{"query matches description", Filters{Query: "crystal"}, []string{"SP2001"}},
		{"query is case insensitive", Filters{Query: "ULTRABOOK"}, []string{"LT1001"}},
		{"query ranks higher scores first", Filters{Query: "laptop study"}, []string{"LT1002", "LT1001"}},
		{"query ties keep catalog order", Filters{Query: "lenora"}, []string{"LT1001", "LT1002"}},
		{"query of only stopwords matches nothing", Filters{Query: "the and with"}, []string{}},
		{"min price keeps equal", Filters{MinPrice: floatPtr(699.00)}, []string{"LT1001", "SP2001"}},
		{"max price keeps equal", Filters{MaxPrice: floatPtr(699.00)}, []string{"LT1002", "SP2001", "SPK4001"}},
		{"price band", Filters{MinPrice: floatPtr(100), MaxPrice: floatPtr(700)}, []string{"LT1002", "SP2001"}},
		{"in stock", Filters{Category: "laptop", InStock: true}, []string{"LT1001"}},
		{"all combined", Filters{Query: "laptop", Category: "laptop", MinPrice: floatPtr(500), MaxPrice: floatPtr(1500), InStock: true}, []string{"LT1001"}},
		{"no match", Filters{Query: "toaster"}, []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ids(Apply(testProducts(), tt.filters))
			if !equalIDs(got, tt.want) {
				t.Errorf("Apply(%+v) = %v, want %v", tt.filters, got, tt.want)
			}
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	products := testProducts()
	Apply(products, Filters{Category: "speaker"})
	if products[0].ID != "LT1001" || len(products) != 4 {
		t.Error("Expected input slice to be untouched")
	}
}

func TestSearchText(t *testing.T) {
	t.Parallel()

	p := models.Product{Name: "Nova X", Brand: "Stellar", Category: "smartphone", Description: "Fast phone"}
	want := "nova x stellar smartphone fast phone"
	if got := SearchText(p); got != want {
		t.Errorf("SearchText = %q, want %q", got, want)
	}
}

func TestScore(t *testing.T) {
	t.Parallel()

	p := models.Product{Name: "UltraBook Pro", Brand: "Lenora", Category: "laptop",
		Description: "Thin and light laptop with bright display"}

	tests := []struct {
		name  string
		query string
		want  float64
	}{
		{"two hits", "bright laptop", 4},
		{"one hit one miss", "bright toaster", 2},
		{"duplicate tokens both count", "laptop laptop", 4},
		{"stopwords ignored", "the and with", 0},
		{"empty query", "", 0},
		{"no hits", "gaming phone", 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Score(p, text.Tokenize(tt.query))
			if got != tt.want {
				t.Errorf("Score(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
