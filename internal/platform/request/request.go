// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/cinema/internal/platform/apperr"
	"github.com/taibuivan/cinema/internal/platform/ctxutil"
	"github.com/taibuivan/cinema/internal/platform/sec"
	"github.com/taibuivan/cinema/internal/platform/validate"
)

// MaxBodyBytes caps the size of any request body read by this package.
const MaxBodyBytes = 1 << 20

// Media types accepted by PATCH endpoints.
const (
	MediaTypeJSON      = "application/json"
	MediaTypeJSONPatch = "application/json-patch+json"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	body := http.MaxBytesReader(nil, request.Body, MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
PatchDocument returns the raw JSON Patch body of a PATCH request.

Returns:
  - []byte: The undecoded patch document
  - error: apperr.UnsupportedMediaType for a foreign Content-Type,
    validate.ErrInvalidJSON for an unreadable or empty body
*/
func PatchDocument(request *http.Request) ([]byte, error) {
	if contentType := request.Header.Get("Content-Type"); contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || (mediaType != MediaTypeJSONPatch && mediaType != MediaTypeJSON) {
			return nil, apperr.UnsupportedMediaType("PATCH requires " + MediaTypeJSONPatch)
		}
	}

	document, err := io.ReadAll(http.MaxBytesReader(nil, request.Body, MaxBodyBytes))
	if err != nil || len(document) == 0 {
		return nil, validate.ErrInvalidJSON
	}

	return document, nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntID retrieves a named URL parameter and parses it as a positive integer key.

Returns:
  - int: The parsed identifier
  - error: apperr.ValidationError if the segment is not a positive integer
*/
func IntID(request *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(request, name))
	if err != nil || id <= 0 {
		return 0, validate.RequiredError(name, "Must be a positive integer")
	}
	return id, nil
}

/*
Claims extracts the authenticated user claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the user claims.

Returns:
  - *sec.AuthClaims: The authenticated user claims
  - error: the token rejection recorded by the Authenticate middleware, or
    apperr.Unauthorized if no token was presented
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		if rejection := ctxutil.GetAuthError(request.Context()); rejection != nil {
			return nil, rejection
		}
		return nil, apperr.Unauthorized("Authentication required")
	}

	return claims, nil
}
