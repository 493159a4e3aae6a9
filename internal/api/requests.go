// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

// Package api provides HTTP request validation structs with go-playground/validator tags.
// These structs are used to validate incoming API request parameters before processing.
//
// The validation tags follow the go-playground/validator v10 syntax:
//   - required: field must be present and non-zero
//   - min,max: numeric or string length bounds
//   - oneof: value must be one of the specified options
//   - omitempty: skip validation if field is empty/zero
//
// Example usage:
//
//	req := ReviewsRequest{
//	    ProductID: r.URL.Query().Get("product_id"),
//	    Limit:     getIntParam(r, "limit", 10),
//	}
//	if err := validateRequest(&req); err != nil {
//	    respondError(w, http.StatusBadRequest, err.Code, err.Message, nil)
//	    return
//	}
package api

// ProductsRequest represents the validated query parameters for the /products
// endpoint. The struct doubles as the response cache key source, so every
// filter that changes the result set must be a field here.
//
// Fields:
//   - Query: Free-text search across name, brand, category, description
//   - Category: Exact category match
//   - MinPrice, MaxPrice: Inclusive price bounds (nil = unbounded)
//   - InStock: Restrict to products with stock on hand
//   - Limit: Result cap; defaults to API_DEFAULT_PAGE_SIZE and is clamped
//     by the handler to API_MAX_PAGE_SIZE. The tag bound matches the
//     config ceiling, so only absurd values are rejected outright.
type ProductsRequest struct {
	Query    string   `validate:"omitempty,max=200"`
	Category string   `validate:"omitempty,max=32"`
	MinPrice *float64 `validate:"omitempty,gte=0"`
	MaxPrice *float64 `validate:"omitempty,gte=0"`
	InStock  bool
	Limit    int `validate:"min=1,max=10000"`
}

// ReviewsRequest represents the validated query parameters for the /reviews
// endpoint.
//
// Fields:
//   - ProductID: Required product identifier
//   - Limit: Maximum reviews to return, most recent first; defaults to 10
//     and is clamped by the handler to API_MAX_PAGE_SIZE
type ReviewsRequest struct {
	ProductID string `validate:"required,min=1,max=64"`
	Limit     int    `validate:"min=1,max=10000"`
}

// ReviewSummaryRequest represents the validated query parameters for the
// /reviews/summary endpoint.
type ReviewSummaryRequest struct {
	ProductID string `validate:"required,min=1,max=64"`
}

// RecommendationsRequest represents the validated query parameters for the
// /recommendations endpoint. Both selectors are optional: product_id wins
// over q, and with neither the endpoint falls back to top-rated products.
type RecommendationsRequest struct {
	ProductID string `validate:"omitempty,max=64"`
	Query     string `validate:"omitempty,max=200"`
}

// PriceCompareRequest represents the validated query parameters for the
// /price-compare endpoint.
type PriceCompareRequest struct {
	ProductID string `validate:"required,min=1,max=64"`
}

// PoliciesRequest represents the validated query parameters for the /policies
// endpoint. At least one of ProductID or Category must be set; that check is
// a handler-level rule since validator tags cannot express either-or.
//
// Fields:
//   - ProductID: Resolve the category from a product
//   - Category: Direct category lookup
//   - PolicyType: "returns" or "warranty" (default "returns")
type PoliciesRequest struct {
	ProductID  string `validate:"omitempty,max=64"`
	Category   string `validate:"omitempty,max=32"`
	PolicyType string `validate:"omitempty,oneof=returns warranty"`
}
