// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mercatus/internal/chat"
	"github.com/tomtom215/mercatus/internal/logging"
	"github.com/tomtom215/mercatus/internal/metrics"
	"github.com/tomtom215/mercatus/internal/models"
)

// Chat answers a shopping-assistant message
//
//	@Summary		Chat with the catalog assistant
//	@Description	Routes a natural-language message to a catalog intent (policy, review, price, recommend, or search) and returns a reply with structured payload. An optional product_id anchors ambiguous messages.
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.ChatRequest	true	"Chat message"
//	@Success		200		{object}	models.APIResponse{data=models.ChatResponse}
//	@Failure		400		{object}	models.APIResponse
//	@Failure		503		{object}	models.APIResponse
//	@Router			/chat [post]
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	snap, ok := h.requireSnapshot(w, r)
	if !ok {
		return
	}

	resp := chat.Respond(snap, req)
	metrics.RecordChatMessage(resp.Intent)
	logging.Ctx(r.Context()).Debug().
		Str("intent", resp.Intent).
		Msg("Chat message routed")

	respondSuccess(w, resp, start)
}
