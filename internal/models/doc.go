// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

/*
Package models defines data structures for the Mercatus application.

This package contains all data models used throughout the application:
catalog entities loaded from the source files, derived query results, and
API request/response structures. It serves as the single source of truth
for data structure definitions.

Key Components:

  - Product, Review, Policy: Catalog entities (one struct per source file row)
  - ReviewSummary: Aggregated review sentiment and themes for a product
  - PriceComparison: Per-category price statistics with cheaper alternatives
  - Recommendation: A recommended product with its reason
  - ChatRequest, ChatResponse: Chat assistant request/response bodies
  - APIResponse: Standardized API response wrapper (status, data, metadata, error)

Catalog entities are immutable value types. The catalog package builds a
fresh set on every reload and swaps it in atomically, so handlers never
observe a partially loaded catalog.
*/
package models
