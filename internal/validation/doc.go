// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

// Package validation provides struct validation using go-playground/validator v10.
//
// Handlers declare their parameter bounds as struct tags and call
// ValidateStruct before touching the catalog; the config package runs the
// same validator over the loaded configuration at startup. Failures come
// back as a *RequestValidationError ready to render under the
// VALIDATION_ERROR code.
//
// # Quick Start
//
//	type ChatRequest struct {
//	    Message   string `validate:"required,min=1,max=500"`
//	    ProductID string `validate:"omitempty,max=16"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Tags In Use
//
// The request and config structs use this subset of the library's tags:
//
//	required       - field must be present and non-zero
//	omitempty      - skip remaining rules when the field is zero
//	min=n, max=n   - length bounds for strings, value bounds for numbers
//	gte=n          - numeric floor (price filters)
//	oneof=a b      - enumerated values (policy types)
//
// Each of these translates to a field-specific human-readable message;
// any other tag falls back to "<Field> failed <tag> validation".
//
// # Error Shape
//
// A single failed field keeps its message intact and carries the field
// detail:
//
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "Message is required",
//	    "details": {"field": "Message", "tag": "required", "value": ""}
//	}
//
// Multiple failures join their messages and list every field:
//
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "Message: Message is required; Limit: Limit must be at least 1",
//	    "details": {"fields": [
//	        {"field": "Message", "tag": "required", "message": "..."},
//	        {"field": "Limit", "tag": "min", "message": "..."}
//	    ]}
//	}
//
// # Thread Safety and Cost
//
// GetValidator builds the instance once behind sync.Once. The library
// caches struct reflection metadata on first use, so validating a request
// type after the first call costs microseconds. Both GetValidator and
// ValidateStruct are safe for concurrent use.
//
// # See Also
//
//   - internal/api: request structs and the validateRequest helper
//   - internal/config: configuration validated at startup
//   - github.com/go-playground/validator/v10: underlying library
package validation
