// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/mercatus/internal/cache"
	"github.com/tomtom215/mercatus/internal/catalog"
	"github.com/tomtom215/mercatus/internal/metrics"
	"github.com/tomtom215/mercatus/internal/models"
	"github.com/tomtom215/mercatus/internal/recommend"
)

// recommendationMode labels a recommendation request for metrics by the mode
// the engine actually takes: "item" only when the anchor product resolves in
// the snapshot, "query" when free text drives the ranking, "fallback" for the
// top-rated default. An unresolved product_id falls through exactly like the
// engine does.
func recommendationMode(snap *catalog.Snapshot, productID, query string) string {
	if _, ok := snap.ProductsByID[productID]; ok {
		return "item"
	}
	if strings.TrimSpace(query) != "" {
		return "query"
	}
	return "fallback"
}

// Recommendations returns recommended products
//
//	@Summary		Recommend products
//	@Description	Returns product recommendations anchored on a product (similar items), a free-text query (relevance ranking), or neither (top-rated fallback). product_id takes precedence over q.
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			product_id	query		string	false	"Anchor product ID for similar-item recommendations"
//	@Param			q			query		string	false	"Free-text query for relevance-ranked recommendations"
//	@Success		200			{object}	models.APIResponse{data=models.RecommendationsResponse}
//	@Failure		400			{object}	models.APIResponse
//	@Failure		503			{object}	models.APIResponse
//	@Router			/recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := RecommendationsRequest{
		ProductID: r.URL.Query().Get("product_id"),
		Query:     r.URL.Query().Get("q"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	snap, ok := h.requireSnapshot(w, r)
	if !ok {
		return
	}

	cacheKey := cache.GenerateKey("Recommendations", req)
	if h.respondFromCache(w, cacheKey, start) {
		return
	}

	recs := recommend.Recommend(snap.Products, req.ProductID, req.Query, recommend.DefaultLimit)
	metrics.RecordRecommendation(recommendationMode(snap, req.ProductID, req.Query))

	h.cacheAndRespond(w, cacheKey, models.RecommendationsResponse{
		Total:           len(recs),
		Recommendations: recs,
	}, start)
}
