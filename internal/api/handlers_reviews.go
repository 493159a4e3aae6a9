// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/tomtom215/mercatus/internal/cache"
	"github.com/tomtom215/mercatus/internal/models"
	"github.com/tomtom215/mercatus/internal/reviews"
)

// Reviews returns the most recent reviews for a product
//
//	@Summary		List product reviews
//	@Description	Returns reviews for a product, most recent first
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			product_id	query		string	true	"Product ID"
//	@Param			limit		query		integer	false	"Maximum reviews to return (default 10, capped at the configured page-size limit)"
//	@Success		200			{object}	models.APIResponse{data=models.ReviewsResponse}
//	@Failure		400			{object}	models.APIResponse
//	@Failure		503			{object}	models.APIResponse
//	@Router			/reviews [get]
func (h *Handler) Reviews(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := ReviewsRequest{
		ProductID: r.URL.Query().Get("product_id"),
		Limit:     getIntParam(r, "limit", 10),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if req.Limit > h.config.API.MaxPageSize {
		req.Limit = h.config.API.MaxPageSize
	}

	snap, ok := h.requireSnapshot(w, r)
	if !ok {
		return
	}

	// Snapshot slices are shared across requests; sort a copy.
	source := snap.ProductReviews(req.ProductID)
	revs := make([]models.Review, len(source))
	copy(revs, source)

	// Dates are ISO 8601 strings, so lexicographic order is chronological.
	sort.SliceStable(revs, func(i, j int) bool {
		return revs[i].Date > revs[j].Date
	})
	if len(revs) > req.Limit {
		revs = revs[:req.Limit]
	}

	respondSuccess(w, models.ReviewsResponse{
		Total:   len(revs),
		Reviews: revs,
	}, start)
}

// ReviewSummary returns aggregate sentiment for a product's reviews
//
//	@Summary		Summarize product reviews
//	@Description	Returns the average rating, sentiment label, and recurring themes across a product's reviews. Products without reviews get an empty summary rather than an error.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			product_id	query		string	true	"Product ID"
//	@Success		200			{object}	models.APIResponse{data=models.ReviewSummary}
//	@Failure		400			{object}	models.APIResponse
//	@Failure		503			{object}	models.APIResponse
//	@Router			/reviews/summary [get]
func (h *Handler) ReviewSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := ReviewSummaryRequest{ProductID: r.URL.Query().Get("product_id")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	snap, ok := h.requireSnapshot(w, r)
	if !ok {
		return
	}

	cacheKey := cache.GenerateKey("ReviewSummary", req)
	if h.respondFromCache(w, cacheKey, start) {
		return
	}

	summary := reviews.Summarize(snap.ProductReviews(req.ProductID))
	h.cacheAndRespond(w, cacheKey, summary, start)
}
