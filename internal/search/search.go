// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

// Package search filters and scores products for listing and ranking.
package search

import (
	"sort"
	"strings"

	"github.com/tomtom215/mercatus/internal/models"
	"github.com/tomtom215/mercatus/internal/text"
)

// Filters narrows a product listing. Zero values mean no constraint; the
// price bounds use pointers so a zero price can still be an explicit bound.
type Filters struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
	InStock  bool
}

// Apply returns the products passing every set filter. Filters apply in a
// fixed sequence (category, text query, minimum price, maximum price, stock)
// so combined filters always produce the same result regardless of how the
// request spelled them. A text query re-ranks its survivors by match score,
// highest first; every other filter preserves the incoming order.
func Apply(products []models.Product, f Filters) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		out = append(out, p)
	}

	if strings.TrimSpace(f.Query) != "" {
		out = rank(out, text.Tokenize(f.Query))
	}

	n := 0
	for _, p := range out {
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.InStock && !p.InStock() {
			continue
		}
		out[n] = p
		n++
	}
	return out[:n]
}

// rank drops products with no token hits and orders the rest by descending
// match score. The sort is stable, so equally scored products keep their
// catalog order. With no tokens (a query of nothing but stopwords) every
// product scores zero and the result is empty.
func rank(products []models.Product, tokens []string) []models.Product {
	type scored struct {
		product models.Product
		score   float64
	}

	matched := make([]scored, 0, len(products))
	for _, p := range products {
		if s := Score(p, tokens); s > 0 {
			matched = append(matched, scored{p, s})
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	out := make([]models.Product, 0, len(matched))
	for _, m := range matched {
		out = append(out, m.product)
	}
	return out
}

// SearchText is the lowercased haystack query tokens run against: name,
// brand, category and description joined by single spaces. Joining with
// spaces keeps substring matches from bleeding across field boundaries.
func SearchText(p models.Product) string {
	return strings.ToLower(p.Name + " " + p.Brand + " " + p.Category + " " + p.Description)
}

// Score rates how well a product matches the given query tokens: two points
// for every token that appears in the product's search text. Zero tokens
// score zero, so a query of nothing but stopwords matches no product.
func Score(p models.Product, tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}

	hay := SearchText(p)
	var score float64
	for _, tok := range tokens {
		if strings.Contains(hay, tok) {
			score += 2
		}
	}
	return score
}
