// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package models

import "time"

// Product is a single catalog item loaded from the products source file.
// Products are immutable after load; a catalog reload replaces the whole set
// rather than mutating entries in place.
//
// Fields mirror the products source columns:
//   - ID: unique stable identifier (e.g. "LT1001")
//   - Name, Brand, Description: free text
//   - Category: enum-like string ("laptop", "smartphone", "smart_tv", "speaker")
//   - Price: non-negative price in dollars
//   - Stock: non-negative units on hand
//   - Rating: aggregate 0-5 rating
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
}

// InStock reports whether the product has at least one unit on hand.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// Review is a single customer review loaded from the reviews source file.
// Reviews are grouped by product identifier; within a group the source row
// order is preserved. The product identifier is not required to resolve to a
// loaded product.
type Review struct {
	ProductID string  `json:"product_id"`
	Rating    float64 `json:"rating"`
	Text      string  `json:"text"`
	// Date is the review date as an ISO date (YYYY-MM-DD), empty when the
	// source row carries none. ISO dates compare lexicographically in
	// chronological order, so listings sort on the raw string.
	Date string `json:"date,omitempty"`
}

// Policy is a store policy row (returns or warranty) from the policies
// source file. Conditions are pipe-delimited in the source and split at load.
type Policy struct {
	PolicyType  string   `json:"policy_type"`
	Description string   `json:"description"`
	Conditions  []string `json:"conditions"`
	Timeframe   int      `json:"timeframe"`
}

// SentimentBreakdown counts reviews per sentiment bucket. Every review lands
// in exactly one bucket.
type SentimentBreakdown struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Theme is a recurring review token with its occurrence count.
type Theme struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ReviewSummary aggregates a product's reviews: average rating, sentiment
// buckets, the top recurring themes, and a short generated summary line.
//
// Example:
//
//	{
//	  "average_rating": 4.33,
//	  "total_reviews": 3,
//	  "sentiment": {"positive": 2, "neutral": 1, "negative": 0},
//	  "themes": [{"word": "battery", "count": 2}],
//	  "summary_text": "Based on 3 reviews, customers rate this product 4.3/5. ..."
//	}
type ReviewSummary struct {
	AverageRating float64            `json:"average_rating"`
	TotalReviews  int                `json:"total_reviews"`
	Sentiment     SentimentBreakdown `json:"sentiment"`
	Themes        []Theme            `json:"themes"`
	SummaryText   string             `json:"summary_text"`
}

// Recommendation pairs a recommended product with a short reason string.
type Recommendation struct {
	Product Product `json:"product"`
	Reason  string  `json:"reason,omitempty"`
}

// PriceComparison holds per-category price statistics for a base product.
//
// Min, Max and Avg are computed over every product sharing the base's
// category (the base included) and rounded to 2 decimals. Cheaper lists up
// to 5 strictly cheaper same-category products, ascending by price.
// UpdatedAt is the catalog's last-observed source modification time as an
// ISO instant, indicating how fresh the underlying data is.
type PriceComparison struct {
	Base      Product   `json:"base"`
	Min       float64   `json:"min"`
	Max       float64   `json:"max"`
	Avg       float64   `json:"avg"`
	Cheaper   []Product `json:"cheaper"`
	UpdatedAt string    `json:"updated_at"`
}

// ProductsResponse wraps a product listing with its result count.
type ProductsResponse struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

// ReviewsResponse wraps a review listing with its result count.
type ReviewsResponse struct {
	Total   int      `json:"total"`
	Reviews []Review `json:"reviews"`
}

// RecommendationsResponse wraps a recommendation listing with its count.
type RecommendationsResponse struct {
	Total           int              `json:"total"`
	Recommendations []Recommendation `json:"recommendations"`
}

// ChatRequest is the request body for the chat assistant endpoint.
type ChatRequest struct {
	Message   string `json:"message" validate:"required,min=1,max=500"`
	ProductID string `json:"product_id,omitempty" validate:"omitempty,max=16"`
}

// ChatResponse is the chat assistant's answer: a reply line, the detected
// intent, and an intent-specific payload (search results, a policy, a price
// comparison, and so on).
type ChatResponse struct {
	Reply   string                 `json:"reply"`
	Intent  string                 `json:"intent"`
	Payload map[string]interface{} `json:"payload"`
}

// CatalogStatus reports the loaded catalog's shape and freshness.
type CatalogStatus struct {
	Loaded        bool      `json:"loaded"`
	Products      int       `json:"products"`
	Reviews       int       `json:"reviews"`
	Policies      int       `json:"policies"`
	LoadedAt      time.Time `json:"loaded_at"`
	SourceModTime time.Time `json:"source_mod_time"`
	DataDir       string    `json:"data_dir"`
	StaleAfter    float64   `json:"stale_after_seconds"`
}

// HealthStatus is the health endpoint's payload.
type HealthStatus struct {
	Status        string     `json:"status"`
	Version       string     `json:"version"`
	CatalogLoaded bool       `json:"catalog_loaded"`
	LastLoadTime  *time.Time `json:"last_load_time,omitempty"`
	Uptime        float64    `json:"uptime_seconds"`
}
