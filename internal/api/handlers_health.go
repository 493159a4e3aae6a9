// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/mercatus/internal/models"
)

// Health reports process health
//
//	@Summary		Get system health status
//	@Description	Returns overall health including catalog load state, last load time, and uptime. Always 200; reporting never triggers a catalog load.
//	@Tags			core
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	models.APIResponse{data=models.HealthStatus}
//	@Router			/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	stats := h.store.Stats()

	var lastLoadPtr *time.Time
	if !stats.LoadedAt.IsZero() {
		lastLoad := stats.LoadedAt
		lastLoadPtr = &lastLoad
	}

	health := models.HealthStatus{
		Status:        "ok",
		Version:       "1.0.0",
		CatalogLoaded: stats.Loaded,
		LastLoadTime:  lastLoadPtr,
		Uptime:        time.Since(h.startTime).Seconds(),
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive answers orchestrator liveness probes
//
//	@Summary		Kubernetes liveness probe
//	@Description	Returns 200 OK if the process is alive, regardless of catalog state
//	@Tags			core
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	models.APIResponse
//	@Router			/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady answers orchestrator readiness probes
//
//	@Summary		Kubernetes readiness probe
//	@Description	Returns 200 OK only when the catalog can be served. Triggers a load if no snapshot exists yet, so readiness flips to true as soon as the data directory is usable. Returns 503 otherwise.
//	@Tags			core
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	models.APIResponse
//	@Failure		503	{object}	models.APIResponse
//	@Router			/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if _, err := h.store.Snapshot(r.Context()); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status: "error",
			Data: map[string]interface{}{
				"ready": false,
			},
			Error: &models.APIError{
				Code:    "SERVICE_UNAVAILABLE",
				Message: "Catalog data is not available",
			},
			Metadata: models.Metadata{
				Timestamp: time.Now(),
			},
		})
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"ready": true,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// CatalogStatus reports the loaded catalog's shape and freshness
//
//	@Summary		Get catalog status
//	@Description	Returns the loaded catalog's row counts, load time, source modification time, data directory, and staleness window. Reporting never triggers a load or reload.
//	@Tags			core
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	models.APIResponse{data=models.CatalogStatus}
//	@Router			/catalog/status [get]
func (h *Handler) CatalogStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	stats := h.store.Stats()

	respondSuccess(w, models.CatalogStatus{
		Loaded:        stats.Loaded,
		Products:      stats.Products,
		Reviews:       stats.Reviews,
		Policies:      stats.Policies,
		LoadedAt:      stats.LoadedAt,
		SourceModTime: stats.SourceModTime,
		DataDir:       h.store.DataDir(),
		StaleAfter:    h.store.StaleAfter().Seconds(),
	}, start)
}
