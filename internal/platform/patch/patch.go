// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package patch applies RFC 6902 JSON Patch documents to typed values.
//
// The target is serialized to JSON, patched, and decoded back into the same
// value, so the caller always re-validates a fully typed result.
package patch

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/taibuivan/cinema/internal/platform/apperr"
)

// Apply patches target in place with the given JSON Patch document.
//
// Malformed documents, failing operations (including "test") and results
// that no longer decode into T are reported as validation errors.
func Apply[T any](target *T, document []byte) error {
	operations, err := jsonpatch.DecodePatch(document)
	if err != nil {
		return apperr.ValidationError("Invalid JSON Patch document")
	}

	original, err := json.Marshal(target)
	if err != nil {
		return apperr.Internal(fmt.Errorf("patch: marshal target: %w", err))
	}

	patched, err := operations.Apply(original)
	if err != nil {
		return apperr.ValidationError("JSON Patch could not be applied: " + err.Error())
	}

	var result T
	if err := json.Unmarshal(patched, &result); err != nil {
		return apperr.ValidationError("JSON Patch produced an invalid document")
	}

	*target = result
	return nil
}
