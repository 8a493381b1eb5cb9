// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide; it caches struct
// metadata and is safe for concurrent use. Field names in error messages are
// taken from the query, koanf or json tag so that clients and operators see
// the names they actually typed.
//
// # Custom Tags
//
//   - memsize: DuckDB memory limit strings ("512MB", "2GB", "1.5 GiB")
//
// # Usage
//
//	type recommendationsQuery struct {
//	    Limit int `query:"limit" validate:"min=1,max=100"`
//	}
//
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // apiErr.Code == "VALIDATION_ERROR"
//	}
//
// The config package validates its sections with the same instance.
package validation
