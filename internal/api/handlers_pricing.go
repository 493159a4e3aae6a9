// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/mercatus/internal/cache"
	"github.com/tomtom215/mercatus/internal/pricing"
)

// PriceCompare returns a category price comparison for a product
//
//	@Summary		Compare product price
//	@Description	Returns the price position of a product within its category: min, max, average, and up to five cheaper alternatives
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			product_id	query		string	true	"Product ID"
//	@Success		200			{object}	models.APIResponse{data=models.PriceComparison}
//	@Failure		400			{object}	models.APIResponse
//	@Failure		404			{object}	models.APIResponse
//	@Failure		503			{object}	models.APIResponse
//	@Router			/price-compare [get]
func (h *Handler) PriceCompare(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := PriceCompareRequest{ProductID: r.URL.Query().Get("product_id")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	snap, ok := h.requireSnapshot(w, r)
	if !ok {
		return
	}

	cacheKey := cache.GenerateKey("PriceCompare", req)
	if h.respondFromCache(w, cacheKey, start) {
		return
	}

	base, found := snap.Product(req.ProductID)
	if !found {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
		return
	}

	comparison := pricing.Compare(base, snap.Products, snap.SourceModTime)
	h.cacheAndRespond(w, cacheKey, comparison, start)
}
