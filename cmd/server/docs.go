// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

// Package main provides the Mercatus HTTP server
//
// Mercatus API serves product listings, recommendations, review sentiment
// summaries, price comparisons, and store policies from CSV-backed catalog data.
//
// @title Mercatus API
// @version 1.0
// @description Product catalog analytics engine serving filtered product listings, recommendations, review sentiment summaries, price comparisons, store policy resolution, and a chat-style assistant over CSV-backed catalog data.
// @description
// @description ## Data Freshness
// @description
// @description The catalog is loaded from CSV sources into an immutable in-memory snapshot. Snapshots are trusted for 30 seconds; after that, the next request checks source modification times and reloads only when the files changed. A failed reload keeps serving the previous snapshot.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. The chat endpoint has a tighter limit of 30 requests per minute.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message"
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-08-26T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/mercatus/issues
//
// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name core
// @tag.description Health checks, readiness probes, and catalog status
//
// @tag.name catalog
// @tag.description Product listing, recommendations, and price comparison endpoints served from the in-memory snapshot
//
// @tag.name reviews
// @tag.description Customer review listing and sentiment summarization endpoints
//
// @tag.name policies
// @tag.description Store policy resolution endpoints (returns and warranty)
//
// @tag.name chat
// @tag.description Chat-style assistant that routes natural-language messages to catalog intents
package main
