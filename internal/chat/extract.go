// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package chat

import (
	"regexp"
	"strconv"
	"strings"
)

// Intent labels returned in chat responses.
const (
	intentPolicy    = "policy"
	intentReview    = "review"
	intentPrice     = "price"
	intentRecommend = "recommend"
	intentSearch    = "search"
	intentBudget    = "budget_search"
)

var (
	// Product identifiers look like LT1001: a short uppercase prefix and a
	// numeric tail. Matching runs against the raw message because the
	// pattern is case sensitive on purpose.
	productIDPattern = regexp.MustCompile(`\b[A-Z]{2,4}\d{3,5}\b`)

	// Budget phrasing: an explicit bound ("under $500") or a bare dollar
	// amount anywhere in the message.
	budgetBoundPattern  = regexp.MustCompile(`(under|below|less than)\s*\$?\s*(\d+(?:\.\d+)?)`)
	budgetAmountPattern = regexp.MustCompile(`\$\s*(\d+(?:\.\d+)?)`)
)

// classifyIntent buckets a message by keyword. Earlier buckets win, so
// "compare return policies" is a policy question, not a price one.
func classifyIntent(message string) string {
	text := strings.ToLower(message)
	switch {
	case containsAny(text, "policy", "return", "warranty"):
		return intentPolicy
	case containsAny(text, "review", "summary", "sentiment"):
		return intentReview
	case containsAny(text, "compare", "price", "cheaper"):
		return intentPrice
	case containsAny(text, "recommend", "suggest", "similar"):
		return intentRecommend
	default:
		return intentSearch
	}
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// extractCategory maps colloquial words in the message to catalog
// categories. Checks are ordered so the phone words never lose to the much
// looser "tv" substring.
func extractCategory(message string) string {
	text := strings.ToLower(message)
	switch {
	case containsAny(text, "mobile", "phone", "smartphone"):
		return "smartphone"
	case strings.Contains(text, "laptop"):
		return "laptop"
	case strings.Contains(text, "speaker"):
		return "speaker"
	case strings.Contains(text, "tv"):
		return "smart_tv"
	default:
		return ""
	}
}

func isCheapestRequest(message string) bool {
	return containsAny(strings.ToLower(message), "cheap", "cheapest", "lowest", "budget", "affordable")
}

// extractBudget pulls a spending cap out of the message. The second result
// is false when no amount is present.
func extractBudget(message string) (float64, bool) {
	text := strings.ToLower(message)
	if m := budgetBoundPattern.FindStringSubmatch(text); m != nil {
		return parseAmount(m[2])
	}
	if m := budgetAmountPattern.FindStringSubmatch(text); m != nil {
		return parseAmount(m[1])
	}
	return 0, false
}

func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// extractProductID returns the first product identifier in the message, or
// the empty string.
func extractProductID(message string) string {
	return productIDPattern.FindString(message)
}

// extractProductIDs returns every product identifier in the message in
// order of appearance.
func extractProductIDs(message string) []string {
	return productIDPattern.FindAllString(message, -1)
}
