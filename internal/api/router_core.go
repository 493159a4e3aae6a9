// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package api

import (
	"github.com/tomtom215/mercatus/internal/config"
)

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router wiring the handler to Chi middleware built
// from the application security config.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddlewareFromSecurity(cfg.Security),
	}
}

// Handler returns the underlying API handler (for external components).
func (router *Router) Handler() *Handler {
	return router.handler
}
