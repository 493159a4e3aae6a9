// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

// Package policies resolves store policies for products and categories.
//
// Policy rows are generic; the mapping from a product category to the row
// that governs it goes through a fixed name table. Categories without an
// entry, and entries whose named row is missing from the data, resolve to
// nothing rather than to a default policy.
package policies

import "github.com/tomtom215/mercatus/internal/models"

// Policy types callers can ask for.
const (
	TypeReturns  = "returns"
	TypeWarranty = "warranty"
)

// categoryPolicyNames maps category and policy type to the description of
// the governing policy row. The names must match the data exactly.
var categoryPolicyNames = map[string]map[string]string{
	TypeReturns: {
		"laptop":     "Laptop Return Policy",
		"smartphone": "Smartphone Return Policy",
		"smart_tv":   "Smart TV Return Policy",
		"speaker":    "Speaker Return Policy",
	},
	TypeWarranty: {
		"laptop":     "Standard Laptop Warranty",
		"smartphone": "Standard Smartphone Warranty",
		"speaker":    "Speaker Warranty",
	},
}

// ByCategory resolves the policy of the given type for a category. The
// second result is false when the category has no mapped policy or the
// mapped row is absent.
func ByCategory(all []models.Policy, category, policyType string) (models.Policy, bool) {
	names, ok := categoryPolicyNames[policyType]
	if !ok {
		return models.Policy{}, false
	}
	name, ok := names[category]
	if !ok {
		return models.Policy{}, false
	}

	for _, p := range all {
		if p.Description == name {
			return p, true
		}
	}
	return models.Policy{}, false
}

// ForProduct resolves a product's policy through its category.
func ForProduct(all []models.Policy, product models.Product, policyType string) (models.Policy, bool) {
	return ByCategory(all, product.Category, policyType)
}
