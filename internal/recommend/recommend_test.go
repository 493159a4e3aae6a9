// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package recommend

import (
	"testing"

	"github.com/tomtom215/mercatus/internal/models"
)

func testProducts() []models.Product {
	return []models.Product{
		{ID: "LT1001", Name: "UltraBook Pro", Brand: "Lenora", Category: "laptop",
			Price: 999.99, Description: "Thin and light laptop with bright display", Stock: 12, Rating: 4.6},
		{ID: "LT1002", Name: "WorkBook Air", Brand: "Lenora", Category: "laptop",
			Price: 649.00, Description: "Everyday laptop for work and study", Stock: 0, Rating: 4.1},
		{ID: "LT1003", Name: "CreatorBook 16", Brand: "Pixelon", Category: "laptop",
			Price: 1099.00, Description: "Creator laptop with color accurate display", Stock: 5, Rating: 4.4},
		{ID: "SP2001", Name: "Nova X", Brand: "Stellar", Category: "smartphone",
			Price: 699.00, Description: "Fast smartphone with crystal clear screen", Stock: 8, Rating: 4.2},
		{ID: "SPK4001", Name: "RoomSound Mini", Brand: "Sonique", Category: "speaker",
			Price: 89.50, Description: "Compact speaker with punchy bass", Stock: 30, Rating: 4.0},
	}
}

func recIDs(recs []models.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Product.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []models.Recommendation, want ...string) {
	t.Helper()
	gotIDs := recIDs(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("Expected %d recommendations %v, got %v", len(want), want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, gotIDs)
		}
	}
}

func TestSimilarTo(t *testing.T) {
	t.Parallel()

	products := testProducts()
	base := products[0] // LT1001

	recs := SimilarTo(base, products, 6)

	// LT1003 outranks LT1002: higher rating, closer price, and in stock.
	assertIDs(t, recs, "LT1003", "LT1002")

	wantReason := "Similar to UltraBook Pro in laptop"
	for _, r := range recs {
		if r.Reason != wantReason {
			t.Errorf("Expected reason %q, got %q", wantReason, r.Reason)
		}
		if r.Product.ID == base.ID {
			t.Error("Expected anchor product to be excluded")
		}
		if r.Product.Category != "laptop" {
			t.Errorf("Expected only laptops, got %s", r.Product.Category)
		}
	}
}

func TestSimilarToTieKeepsCatalogOrder(t *testing.T) {
	t.Parallel()

	base := models.Product{ID: "B0", Category: "laptop", Price: 100}
	products := []models.Product{
		base,
		// Both candidates score exactly 10: 4.5*2 + 1 + 0 and 4.0*2 + 1 + 1.
		{ID: "A1", Category: "laptop", Price: 100, Rating: 4.5, Stock: 0},
		{ID: "A2", Category: "laptop", Price: 100, Rating: 4.0, Stock: 3},
	}

	assertIDs(t, SimilarTo(base, products, 6), "A1", "A2")
}

func TestSimilarToRespectsLimit(t *testing.T) {
	t.Parallel()

	products := testProducts()
	recs := SimilarTo(products[0], products, 1)
	assertIDs(t, recs, "LT1003")
}

func TestForQuery(t *testing.T) {
	t.Parallel()

	products := testProducts()

	recs := ForQuery("laptop", products, 6)
	assertIDs(t, recs, "LT1001", "LT1003", "LT1002")

	wantReason := `Matched your interest in "laptop"`
	if recs[0].Reason != wantReason {
		t.Errorf("Expected reason %q, got %q", wantReason, recs[0].Reason)
	}
}

func TestForQueryDropsNonMatches(t *testing.T) {
	t.Parallel()

	recs := ForQuery("fast smartphone", testProducts(), 6)
	assertIDs(t, recs, "SP2001")
}

func TestForQueryStopwordsOnly(t *testing.T) {
	t.Parallel()

	recs := ForQuery("the and with", testProducts(), 6)
	if len(recs) != 0 {
		t.Errorf("Expected no matches for stopword-only query, got %v", recIDs(recs))
	}
}

func TestTopRated(t *testing.T) {
	t.Parallel()

	recs := TopRated(testProducts(), 2)
	assertIDs(t, recs, "LT1001", "LT1003")

	if recs[0].Reason != "Popular right now" {
		t.Errorf("Expected fallback reason, got %q", recs[0].Reason)
	}
}

func TestTopRatedTieKeepsCatalogOrder(t *testing.T) {
	t.Parallel()

	products := []models.Product{
		{ID: "P1", Rating: 4.0},
		{ID: "P2", Rating: 4.5},
		{ID: "P3", Rating: 4.0},
	}
	assertIDs(t, TopRated(products, 6), "P2", "P1", "P3")
}

func TestRecommendDispatch(t *testing.T) {
	t.Parallel()

	products := testProducts()

	t.Run("product id wins over query", func(t *testing.T) {
		t.Parallel()
		recs := Recommend(products, "LT1001", "speaker", 6)
		if len(recs) == 0 || recs[0].Reason != "Similar to UltraBook Pro in laptop" {
			t.Fatalf("Expected similar-item mode, got %+v", recs)
		}
	})

	t.Run("unknown product id falls through to query mode", func(t *testing.T) {
		t.Parallel()
		recs := Recommend(products, "XX9999", "bass", 6)
		assertIDs(t, recs, "SPK4001")
		if recs[0].Reason != `Matched your interest in "bass"` {
			t.Fatalf("Expected query mode after unresolved id, got %+v", recs[0])
		}
	})

	t.Run("unknown product id without query falls through to top rated", func(t *testing.T) {
		t.Parallel()
		recs := Recommend(products, "XX9999", "", 6)
		if len(recs) != 5 {
			t.Fatalf("Expected top-rated fallback after unresolved id, got %v", recIDs(recs))
		}
		if recs[0].Reason != "Popular right now" {
			t.Fatalf("Expected fallback reason, got %q", recs[0].Reason)
		}
	})

	t.Run("query mode", func(t *testing.T) {
		t.Parallel()
		recs := Recommend(products, "", "bass", 6)
		assertIDs(t, recs, "SPK4001")
	})

	t.Run("fallback mode", func(t *testing.T) {
		t.Parallel()
		recs := Recommend(products, "", "  ", 0)
		if len(recs) != 5 {
			t.Fatalf("Expected all 5 products in fallback, got %d", len(recs))
		}
		assertIDs(t, recs, "LT1001", "LT1003", "SP2001", "LT1002", "SPK4001")
	})
}
