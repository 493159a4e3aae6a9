// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

// Package chat routes free-text shopping questions to catalog operations.
//
// A message is classified by keyword into one of the fixed intents, then the
// matching branch gathers its answer from the same engines the REST
// endpoints use. Every response carries the reply text, the resolved intent
// and a structured payload echoing the data the reply was built from, so
// clients can render rich results instead of parsing prose.
package chat

import (
	"fmt"
	"sort"

	"github.com/tomtom215/mercatus/internal/catalog"
	"github.com/tomtom215/mercatus/internal/models"
	"github.com/tomtom215/mercatus/internal/policies"
	"github.com/tomtom215/mercatus/internal/pricing"
	"github.com/tomtom215/mercatus/internal/recommend"
	"github.com/tomtom215/mercatus/internal/reviews"
)

// Payload size limits per branch.
const (
	budgetResultLimit = 10
	recentReviewLimit = 5
	cheapestListLimit = 5
)

// Respond answers one chat message against the given catalog snapshot.
func Respond(snap *catalog.Snapshot, req models.ChatRequest) models.ChatResponse {
	// An explicit spending cap overrides whatever the wording suggests:
	// "return policy for laptops under $800" is a budget search.
	if budget, ok := extractBudget(req.Message); ok {
		return budgetSearch(snap, req.Message, budget)
	}

	intent := classifyIntent(req.Message)
	payload := map[string]interface{}{}

	var reply string
	switch intent {
	case intentPolicy:
		reply = answerPolicy(snap, req, payload)
	case intentReview:
		reply = answerReview(snap, req, payload)
	case intentPrice:
		reply = answerPrice(snap, req, payload)
	case intentRecommend:
		reply = answerRecommend(snap, req, payload)
	default:
		payload["results"] = recommend.ForQuery(req.Message, snap.Products, recommend.DefaultLimit)
		reply = "Here are products that might match."
	}

	return models.ChatResponse{Reply: reply, Intent: intent, Payload: payload}
}

// budgetSearch lists the cheapest products under the extracted cap,
// optionally narrowed to a category mentioned in the message. It owns the
// whole response because a budget replaces the classified intent.
func budgetSearch(snap *catalog.Snapshot, message string, budget float64) models.ChatResponse {
	category := extractCategory(message)

	matching := make([]models.Product, 0, len(snap.Products))
	for _, p := range snap.Products {
		if category != "" && p.Category != category {
			continue
		}
		if p.Price <= budget {
			matching = append(matching, p)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].Price < matching[j].Price
	})
	if len(matching) > budgetResultLimit {
		matching = matching[:budgetResultLimit]
	}

	results := make([]map[string]interface{}, 0, len(matching))
	for _, p := range matching {
		results = append(results, map[string]interface{}{
			"product": map[string]interface{}{
				"name":  p.Name,
				"price": p.Price,
				"id":    p.ID,
			},
		})
	}

	label := category
	if label == "" {
		label = "products"
	}
	reply := fmt.Sprintf("No %s found under $%.0f.", label, budget)
	if len(matching) > 0 {
		reply = fmt.Sprintf("Here are %s under $%.0f.", label, budget)
	}

	return models.ChatResponse{
		Reply:   reply,
		Intent:  intentBudget,
		Payload: map[string]interface{}{"results": results},
	}
}

// answerPolicy resolves the returns policy for the request's product, or
// for a category mentioned in the message when the product gives nothing.
func answerPolicy(snap *catalog.Snapshot, req models.ChatRequest, payload map[string]interface{}) string {
	var (
		policy models.Policy
		found  bool
	)
	if req.ProductID != "" {
		if p, ok := snap.Product(req.ProductID); ok {
			policy, found = policies.ForProduct(snap.Policies, p, policies.TypeReturns)
		}
	}
	if !found {
		if category := extractCategory(req.Message); category != "" {
			policy, found = policies.ByCategory(snap.Policies, category, policies.TypeReturns)
		}
	}

	if !found {
		payload["policy"] = nil
		return "I couldn't find a matching policy. Provide a product ID or category."
	}
	payload["policy"] = policy
	return fmt.Sprintf("Return policy: %s. Timeframe: %d days.", policy.Description, policy.Timeframe)
}

// answerReview summarizes reviews for the product named by the request, a
// product identifier inside the message, or the best rated product of a
// mentioned category.
func answerReview(snap *catalog.Snapshot, req models.ChatRequest, payload map[string]interface{}) string {
	target := req.ProductID
	if target == "" {
		target = extractProductID(req.Message)
	}
	if target == "" {
		if category := extractCategory(req.Message); category != "" {
			target = topRatedInCategory(snap.Products, category)
		}
	}
	if target == "" {
		return "Tell me the product ID or name for review details."
	}

	revs := snap.ProductReviews(target)
	payload["summary"] = reviews.Summarize(revs)

	recent := recentReviews(revs, recentReviewLimit)
	payload["reviews"] = recent

	name := target
	if p, ok := snap.Product(target); ok {
		name = p.Name
	}
	if len(recent) == 0 {
		return fmt.Sprintf("No reviews found for %s.", name)
	}
	return fmt.Sprintf("Here are recent reviews for %s.", name)
}

// answerPrice handles both shapes of price question: a head-to-head of two
// identifiers found in the message, or the category price range around the
// request's product.
func answerPrice(snap *catalog.Snapshot, req models.ChatRequest, payload map[string]interface{}) string {
	if req.ProductID == "" {
		ids := extractProductIDs(req.Message)
		if len(ids) < 2 {
			return "Tell me the product ID to compare prices."
		}
		left, lok := snap.Product(ids[0])
		right, rok := snap.Product(ids[1])
		if !lok || !rok {
			return "I couldn't find one of those products. Check the IDs."
		}
		payload["comparison_pair"] = map[string]interface{}{
			"left":  pairSide(snap, left),
			"right": pairSide(snap, right),
		}
		return fmt.Sprintf("%s ($%.2f) vs %s ($%.2f). Categories: %s vs %s.",
			left.Name, left.Price, right.Name, right.Price, left.Category, right.Category)
	}

	base, ok := snap.Product(req.ProductID)
	if !ok {
		return "I couldn't find that product."
	}
	cmp := pricing.Compare(base, snap.Products, snap.SourceModTime)
	payload["comparison"] = cmp
	return fmt.Sprintf("Price range for %s: $%.2f - $%.2f (avg $%.2f).",
		base.Category, cmp.Min, cmp.Max, cmp.Avg)
}

// pairSide condenses one side of a head-to-head comparison: the product's
// core fields plus its review summary and returns policy.
func pairSide(snap *catalog.Snapshot, p models.Product) map[string]interface{} {
	var policyVal interface{}
	if policy, ok := policies.ForProduct(snap.Policies, p, policies.TypeReturns); ok {
		policyVal = policy
	}
	return map[string]interface{}{
		"id":             p.ID,
		"name":           p.Name,
		"price":          p.Price,
		"category":       p.Category,
		"rating":         p.Rating,
		"review_summary": reviews.Summarize(snap.ProductReviews(p.ID)),
		"policy":         policyVal,
	}
}

// answerRecommend serves either a cheapest-options list or the standard
// recommendation ranking, depending on how the message is phrased.
func answerRecommend(snap *catalog.Snapshot, req models.ChatRequest, payload map[string]interface{}) string {
	if isCheapestRequest(req.Message) {
		cheapest := cheapestProducts(snap.Products, extractCategory(req.Message), cheapestListLimit)
		payload["cheapest"] = cheapest
		if len(cheapest) == 0 {
			return "I couldn't find cheap options for that category."
		}
		return "Here are the cheapest options I found."
	}

	payload["recommendations"] = recommend.Recommend(
		snap.Products, req.ProductID, req.Message, recommend.DefaultLimit)
	return "Here are recommendations based on your request."
}

// recentReviews returns the newest reviews as chat payload entries, with a
// null date for reviews that never carried one. Undated reviews sort last.
func recentReviews(revs []models.Review, limit int) []map[string]interface{} {
	sorted := make([]models.Review, len(revs))
	copy(sorted, revs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]map[string]interface{}, 0, len(sorted))
	for _, r := range sorted {
		var date interface{}
		if r.Date != "" {
			date = r.Date
		}
		out = append(out, map[string]interface{}{
			"rating": r.Rating,
			"text":   r.Text,
			"date":   date,
		})
	}
	return out
}

// topRatedInCategory returns the identifier of the category's best rated
// product, favoring catalog order on ties. Empty when the category has no
// products.
func topRatedInCategory(products []models.Product, category string) string {
	var (
		bestID     string
		bestRating float64
	)
	for _, p := range products {
		if p.Category != category {
			continue
		}
		if bestID == "" || p.Rating > bestRating {
			bestID = p.ID
			bestRating = p.Rating
		}
	}
	return bestID
}

// cheapestProducts lists the lowest priced products, optionally within one
// category, cheapest first.
func cheapestProducts(products []models.Product, category string, limit int) []map[string]interface{} {
	matching := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		matching = append(matching, p)
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].Price < matching[j].Price
	})
	if len(matching) > limit {
		matching = matching[:limit]
	}

	out := make([]map[string]interface{}, 0, len(matching))
	for _, p := range matching {
		out = append(out, map[string]interface{}{
			"id":       p.ID,
			"name":     p.Name,
			"price":    p.Price,
			"category": p.Category,
		})
	}
	return out
}
