// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/mercatus/internal/policies"
)

// Policies resolves the store policy for a product or category
//
//	@Summary		Resolve store policy
//	@Description	Returns the returns or warranty policy for a product or category. product_id takes precedence; category is only consulted when product_id is absent.
//	@Tags			policies
//	@Accept			json
//	@Produce		json
//	@Param			product_id	query		string	false	"Product whose category determines the policy"
//	@Param			category	query		string	false	"Direct category lookup (e.g. laptop, smartphone)"
//	@Param			policy_type	query		string	false	"Policy type: returns or warranty (default returns)"
//	@Success		200			{object}	models.APIResponse{data=models.Policy}
//	@Failure		400			{object}	models.APIResponse
//	@Failure		404			{object}	models.APIResponse
//	@Failure		503			{object}	models.APIResponse
//	@Router			/policies [get]
func (h *Handler) Policies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := PoliciesRequest{
		ProductID:  r.URL.Query().Get("product_id"),
		Category:   r.URL.Query().Get("category"),
		PolicyType: r.URL.Query().Get("policy_type"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if req.ProductID == "" && req.Category == "" {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "product_id or category required", nil)
		return
	}

	policyType := req.PolicyType
	if policyType == "" {
		policyType = policies.TypeReturns
	}

	snap, ok := h.requireSnapshot(w, r)
	if !ok {
		return
	}

	// product_id wins outright; category is not a fallback for unknown products.
	if req.ProductID != "" {
		product, found := snap.Product(req.ProductID)
		if !found {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Policy not found", nil)
			return
		}
		policy, found := policies.ForProduct(snap.Policies, product, policyType)
		if !found {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Policy not found", nil)
			return
		}
		respondSuccess(w, policy, start)
		return
	}

	policy, found := policies.ByCategory(snap.Policies, req.Category, policyType)
	if !found {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Policy not found", nil)
		return
	}
	respondSuccess(w, policy, start)
}
