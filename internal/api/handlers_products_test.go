// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/mercatus/internal/catalog"
)

// TestProducts_ListAll returns the full catalog in source row order.
func TestProducts_ListAll(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	w := httptest.NewRecorder()
	handler.Products(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	resp := decodeResponse(t, w.Body)
	if resp.Status != "success" {
		t.Errorf("Expected success status, got %s", resp.Status)
	}

	data := dataMap(t, resp)
	if total := data["total"].(float64); total != 8 {
		t.Errorf("Expected total 8, got %v", total)
	}

	products := data["products"].([]interface{})
	if len(products) != 8 {
		t.Fatalf("Expected 8 products, got %d", len(products))
	}
	first := products[0].(map[string]interface{})
	if first["id"] != "LT1001" {
		t.Errorf("Expected source row order starting at LT1001, got %v", first["id"])
	}
}

// TestProducts_Filters exercises each filter and a combination.
func TestProducts_Filters(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	tests := []struct {
		name      string
		query     string
		wantTotal int
		wantFirst string
	}{
		{
			name:      "text query matches category and description",
			query:     "q=laptop",
			wantTotal: 3,
			wantFirst: "LT1001",
		},
		{
			name:      "text query matches product name",
			query:     "q=nova",
			wantTotal: 2,
			wantFirst: "SP2001",
		},
		{
			name:      "category filter",
			query:     "category=speaker",
			wantTotal: 2,
			wantFirst: "SPK4001",
		},
		{
			name:      "price window is inclusive",
			query:     "min_price=400&max_price=800",
			wantTotal: 3,
			wantFirst: "LT1003",
		},
		{
			name:      "in_stock excludes zero stock",
			query:     "in_stock=true",
			wantTotal: 7,
			wantFirst: "LT1001",
		},
		{
			name:      "combined category and max price",
			query:     "category=laptop&max_price=1000",
			wantTotal: 2,
			wantFirst: "LT1001",
		},
		{
			name:      "no matches",
			query:     "q=nonexistent",
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products?"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.Products(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d", w.Code)
			}

			data := dataMap(t, decodeResponse(t, w.Body))
			if total := int(data["total"].(float64)); total != tt.wantTotal {
				t.Errorf("Expected total %d, got %d", tt.wantTotal, total)
			}
			if tt.wantFirst != "" {
				products := data["products"].([]interface{})
				first := products[0].(map[string]interface{})
				if first["id"] != tt.wantFirst {
					t.Errorf("Expected first product %s, got %v", tt.wantFirst, first["id"])
				}
			}
		})
	}
}

// TestProducts_Limit caps results and reports the capped count as total.
func TestProducts_Limit(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?limit=2", nil)
	w := httptest.NewRecorder()
	handler.Products(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	data := dataMap(t, decodeResponse(t, w.Body))
	if total := int(data["total"].(float64)); total != 2 {
		t.Errorf("Expected total 2 after cap, got %d", total)
	}
	products := data["products"].([]interface{})
	if len(products) != 2 {
		t.Fatalf("Expected 2 products, got %d", len(products))
	}
	first := products[0].(map[string]interface{})
	if first["id"] != "LT1001" {
		t.Errorf("Expected cap to keep row order, got %v", first["id"])
	}
}

// TestProducts_LimitClamped caps an oversized limit at the configured
// page-size maximum rather than rejecting the request.
func TestProducts_LimitClamped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCatalogFixture(t, dir)
	cfg := testConfig()
	cfg.API.MaxPageSize = 2
	handler := NewHandler(catalog.NewStore(catalog.Config{DataDir: dir}), cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?limit=5", nil)
	w := httptest.NewRecorder()
	handler.Products(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	data := dataMap(t, decodeResponse(t, w.Body))
	if total := int(data["total"].(float64)); total != 2 {
		t.Errorf("Expected limit clamped to 2, got total %d", total)
	}
}

// TestProducts_InvalidParams rejects malformed prices and out-of-range limits.
func TestProducts_InvalidParams(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	tests := []struct {
		name  string
		query string
	}{
		{name: "malformed min_price", query: "min_price=abc"},
		{name: "malformed max_price", query: "max_price=1,000"},
		{name: "limit zero", query: "limit=0"},
		{name: "limit above ceiling", query: "limit=10001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products?"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.Products(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", w.Code)
			}

			resp := decodeResponse(t, w.Body)
			if resp.Status != "error" {
				t.Errorf("Expected error status, got %s", resp.Status)
			}
			if resp.Error == nil || resp.Error.Code != "VALIDATION_ERROR" {
				t.Errorf("Expected VALIDATION_ERROR, got %+v", resp.Error)
			}
		})
	}
}

// TestProducts_CachedSecondRequest serves an identical second request from
// the response cache.
func TestProducts_CachedSecondRequest(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	first := httptest.NewRecorder()
	handler.Products(first, httptest.NewRequest(http.MethodGet, "/api/v1/products?category=laptop", nil))
	if resp := decodeResponse(t, first.Body); resp.Metadata.Cached {
		t.Error("Expected first response to be uncached")
	}

	second := httptest.NewRecorder()
	handler.Products(second, httptest.NewRequest(http.MethodGet, "/api/v1/products?category=laptop", nil))
	resp := decodeResponse(t, second.Body)
	if !resp.Metadata.Cached {
		t.Error("Expected second response to be served from cache")
	}
	if total := int(dataMap(t, resp)["total"].(float64)); total != 3 {
		t.Errorf("Expected cached payload to match original, got total %d", total)
	}
}

// TestProducts_CatalogUnavailable returns 503 when no catalog can be loaded.
func TestProducts_CatalogUnavailable(t *testing.T) {
	t.Parallel()

	// Empty data dir: the store has nothing to load
	store := catalog.NewStore(catalog.Config{DataDir: t.TempDir()})
	handler := NewHandler(store, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	w := httptest.NewRecorder()
	handler.Products(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected status 503, got %d", w.Code)
	}
	resp := decodeResponse(t, w.Body)
	if resp.Error == nil || resp.Error.Code != "SERVICE_UNAVAILABLE" {
		t.Errorf("Expected SERVICE_UNAVAILABLE, got %+v", resp.Error)
	}
}

// TestProduct_Lookup routes /products/{id} through the full router.
func TestProduct_Lookup(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/LT1001", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		data := dataMap(t, decodeResponse(t, w.Body))
		if data["id"] != "LT1001" || data["name"] != "UltraBook Pro" {
			t.Errorf("Unexpected product payload: %v", data)
		}
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/NOPE999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("Expected status 404, got %d", w.Code)
		}
		resp := decodeResponse(t, w.Body)
		if resp.Error == nil || resp.Error.Message != "Product not found" {
			t.Errorf("Expected product not found error, got %+v", resp.Error)
		}
	})
}
