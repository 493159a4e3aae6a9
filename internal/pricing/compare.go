// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

// Package pricing builds category price comparisons.
package pricing

import (
	"math"
	"sort"
	"time"

	"github.com/tomtom215/mercatus/internal/models"
)

// maxCheaper caps the cheaper-alternatives list.
const maxCheaper = 5

// Compare positions base within its category: price range and average across
// every product in the category (base included), plus up to five cheaper
// alternatives ordered cheapest first. asOf is when the underlying catalog
// data was last observed to change and is reported as the comparison's
// updated_at instant.
func Compare(base models.Product, products []models.Product, asOf time.Time) models.PriceComparison {
	var (
		minPrice = base.Price
		maxPrice = base.Price
		sum      float64
		count    int
	)

	var cheaper []models.Product
	for _, p := range products {
		if p.Category != base.Category {
			continue
		}
		minPrice = math.Min(minPrice, p.Price)
		maxPrice = math.Max(maxPrice, p.Price)
		sum += p.Price
		count++

		if p.Price < base.Price {
			cheaper = append(cheaper, p)
		}
	}

	sort.SliceStable(cheaper, func(i, j int) bool {
		return cheaper[i].Price < cheaper[j].Price
	})
	if len(cheaper) > maxCheaper {
		cheaper = cheaper[:maxCheaper]
	}
	if cheaper == nil {
		cheaper = []models.Product{}
	}

	avg := base.Price
	if count > 0 {
		avg = sum / float64(count)
	}

	return models.PriceComparison{
		Base:      base,
		Min:       round2(minPrice),
		Max:       round2(maxPrice),
		Avg:       round2(avg),
		Cheaper:   cheaper,
		UpdatedAt: asOf.UTC().Format(time.RFC3339),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
