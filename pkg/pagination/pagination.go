// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how offset-based navigation is requested via the "skip" and
// "take" query parameters and how the resulting metadata is delivered in the
// API response envelope.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultTake is the number of items returned if not specified.
	DefaultTake = 10
	// MaxTake is the upper bound for items per request to prevent system abuse.
	MaxTake = 100
	// DefaultSkip is the starting offset.
	DefaultSkip = 0
)

// Params holds the parsed skip and take from a request's query string.
type Params struct {
	Skip int
	Take int
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Skip  int `json:"skip"`
	Take  int `json:"take"`
	Total int `json:"total"`
}

// NewMeta constructs pagination metadata for a response.
func NewMeta(params Params, total int) Meta {
	return Meta{
		Skip:  params.Skip,
		Take:  params.Take,
		Total: total,
	}
}

// FromRequest parses "skip" and "take" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid or negative values fall back to [DefaultSkip] and [DefaultTake];
// a take above [MaxTake] is capped at [MaxTake].
func FromRequest(r *http.Request) Params {
	skip := parseIntParam(r, "skip", DefaultSkip)
	take := parseIntParam(r, "take", DefaultTake)

	if skip < 0 {
		skip = DefaultSkip
	}

	switch {
	case take < 1:
		take = DefaultTake
	case take > MaxTake:
		take = MaxTake
	}

	return Params{Skip: skip, Take: take}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
