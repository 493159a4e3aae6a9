// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/mercatus/internal/cache"
	"github.com/tomtom215/mercatus/internal/metrics"
	"github.com/tomtom215/mercatus/internal/models"
	"github.com/tomtom215/mercatus/internal/search"
)

// Products returns the filtered product listing
//
//	@Summary		List products
//	@Description	Returns catalog products filtered by text query, category, price bounds, and stock availability
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			q			query		string	false	"Free-text search across name, brand, category, and description"
//	@Param			category	query		string	false	"Exact category match (e.g. laptop, smartphone)"
//	@Param			min_price	query		number	false	"Inclusive lower price bound"
//	@Param			max_price	query		number	false	"Inclusive upper price bound"
//	@Param			in_stock	query		boolean	false	"Only products with stock on hand"
//	@Param			limit		query		integer	false	"Maximum results to return (default 100, capped at the configured page-size limit)"
//	@Success		200			{object}	models.APIResponse{data=models.ProductsResponse}
//	@Failure		400			{object}	models.APIResponse
//	@Failure		503			{object}	models.APIResponse
//	@Router			/products [get]
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	minPrice, err := getFloatParam(r, "min_price")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	maxPrice, err := getFloatParam(r, "max_price")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	req := ProductsRequest{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		InStock:  getBoolParam(r, "in_stock"),
		Limit:    getIntParam(r, "limit", h.config.API.DefaultPageSize),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	// Clamp before the cache key is derived so an oversized limit shares
	// the capped entry.
	if req.Limit > h.config.API.MaxPageSize {
		req.Limit = h.config.API.MaxPageSize
	}

	snap, ok := h.requireSnapshot(w, r)
	if !ok {
		return
	}

	cacheKey := cache.GenerateKey("ListProducts", req)
	if h.respondFromCache(w, cacheKey, start) {
		return
	}

	matched := search.Apply(snap.Products, search.Filters{
		Query:    req.Query,
		Category: req.Category,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		InStock:  req.InStock,
	})
	if len(matched) > req.Limit {
		matched = matched[:req.Limit]
	}
	metrics.RecordSearchQuery(len(matched))

	h.cacheAndRespond(w, cacheKey, models.ProductsResponse{
		Total:    len(matched),
		Products: matched,
	}, start)
}

// Product returns a single product by ID
//
//	@Summary		Get product
//	@Description	Returns the product with the given ID
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	models.APIResponse{data=models.Product}
//	@Failure		404	{object}	models.APIResponse
//	@Failure		503	{object}	models.APIResponse
//	@Router			/products/{id} [get]
func (h *Handler) Product(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id := chi.URLParam(r, "id")

	snap, ok := h.requireSnapshot(w, r)
	if !ok {
		return
	}

	product, found := snap.Product(id)
	if !found {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
		return
	}

	respondSuccess(w, product, start)
}
