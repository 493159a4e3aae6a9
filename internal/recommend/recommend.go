// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

// Package recommend ranks catalog products for the recommendation surfaces.
//
// Three modes share one scoring vocabulary: similar-item (anchored on a
// product), query (anchored on free text) and the top-rated fallback. All
// sorting is stable, so products tied on score keep their catalog order and
// repeated requests return identical lists.
package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/mercatus/internal/models"
	"github.com/tomtom215/mercatus/internal/search"
	"github.com/tomtom215/mercatus/internal/text"
)

// DefaultLimit is the number of recommendations returned when the caller
// does not ask for a specific count.
const DefaultLimit = 6

// Recommend tries the ranking modes in order: a product identifier that
// resolves anchors similar-item mode; otherwise a non-blank query selects
// query mode; otherwise the top-rated fallback serves. An identifier that
// resolves to nothing is not an error, it just falls through.
func Recommend(products []models.Product, productID, query string, limit int) []models.Recommendation {
	if limit <= 0 {
		limit = DefaultLimit
	}

	if productID != "" {
		for _, p := range products {
			if p.ID == productID {
				return SimilarTo(p, products, limit)
			}
		}
	}

	if strings.TrimSpace(query) != "" {
		return ForQuery(query, products, limit)
	}

	return TopRated(products, limit)
}

// SimilarTo ranks the other products in base's category by rating, price
// proximity and availability.
func SimilarTo(base models.Product, products []models.Product, limit int) []models.Recommendation {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var candidates []scoredProduct
	for _, p := range products {
		if p.ID == base.ID || p.Category != base.Category {
			continue
		}
		candidates = append(candidates, scoredProduct{p, similarityScore(base, p)})
	}

	reason := fmt.Sprintf("Similar to %s in %s", base.Name, base.Category)
	return take(candidates, limit, reason)
}

// similarityScore rewards rating most, then price proximity to the anchor,
// then having stock at all. Price proximity is the absolute price gap as a
// fraction of the anchor price, clamped to [0, 1] and inverted, so an
// identically priced candidate earns a full point and anything at least
// twice the gap earns none.
func similarityScore(base, p models.Product) float64 {
	gap := math.Min(math.Abs(p.Price-base.Price)/math.Max(base.Price, 1), 1)

	var stockBonus float64
	if p.InStock() {
		stockBonus = 1
	}
	return p.Rating*2 + (1 - gap) + stockBonus
}

// ForQuery ranks products whose search text matches the query tokens,
// combining the text score with the product rating. Products with no token
// hits are dropped entirely, so a query of only stopwords matches nothing.
func ForQuery(query string, products []models.Product, limit int) []models.Recommendation {
	if limit <= 0 {
		limit = DefaultLimit
	}

	tokens := text.Tokenize(query)

	var candidates []scoredProduct
	for _, p := range products {
		textScore := search.Score(p, tokens)
		if textScore == 0 {
			continue
		}
		candidates = append(candidates, scoredProduct{p, textScore + p.Rating})
	}

	reason := fmt.Sprintf("Matched your interest in %q", query)
	return take(candidates, limit, reason)
}

// TopRated is the fallback when the request anchors on nothing: the highest
// rated products across the whole catalog.
func TopRated(products []models.Product, limit int) []models.Recommendation {
	if limit <= 0 {
		limit = DefaultLimit
	}

	candidates := make([]scoredProduct, 0, len(products))
	for _, p := range products {
		candidates = append(candidates, scoredProduct{p, p.Rating})
	}
	return take(candidates, limit, "Popular right now")
}

type scoredProduct struct {
	product models.Product
	score   float64
}

// take sorts candidates by score, highest first and stable, and packs the
// top limit into recommendations. The result is non-nil even when empty so
// it serializes as an empty JSON array.
func take(candidates []scoredProduct, limit int, reason string) []models.Recommendation {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	recs := make([]models.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		recs = append(recs, models.Recommendation{Product: c.product, Reason: reason})
	}
	return recs
}
