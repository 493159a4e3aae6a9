// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package models

import (
	"time"
)

// APIResponse is the envelope every HTTP endpoint returns. Status is
// either "success" (payload in Data) or "error" (details in Error);
// Metadata is always present so clients can observe timing and cache
// behavior without inspecting headers.
//
// A successful search:
//
//	{
//	  "status": "success",
//	  "data": {"total": 12, "products": [...]},
//	  "metadata": {
//	    "timestamp": "2026-08-26T12:00:00Z",
//	    "query_time_ms": 2,
//	    "cached": false
//	  }
//	}
//
// A failed lookup:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "NOT_FOUND",
//	    "message": "Product not found"
//	  },
//	  "metadata": {"timestamp": "2026-08-26T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries per-response observability fields. Timestamp is the
// server time the response was built (RFC3339 in JSON). QueryTimeMS is
// wall time spent computing the payload and is 0 for cache hits; Cached
// marks responses served from the response cache and is omitted when
// false.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is the structured error inside an "error" envelope. Code is
// machine-readable, Message is for humans, and Details carries optional
// context such as the offending field and value.
//
// Codes in use:
//
//	VALIDATION_ERROR    input failed validation
//	BAD_REQUEST         malformed or missing request data
//	NOT_FOUND           resource does not exist
//	SERVICE_UNAVAILABLE catalog data not available
//	INTERNAL_ERROR      unexpected server failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
