// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package access

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/cinema/internal/platform/ctxutil"
	"github.com/taibuivan/cinema/internal/platform/middleware"
	requestutil "github.com/taibuivan/cinema/internal/platform/request"
	"github.com/taibuivan/cinema/internal/platform/respond"
)

// GateOption customizes a [Gate].
type GateOption func(*Gate)

// WithClock overrides the source of "today".
func WithClock(now func() time.Time) GateOption {
	return func(gate *Gate) {
		gate.now = now
	}
}

// Gate serves the age-restricted endpoint.
type Gate struct {
	minimumAge int
	now        func() time.Time
}

// NewGate creates a gate that admits holders aged at least minimumAge.
func NewGate(minimumAge int, opts ...GateOption) *Gate {
	gate := &Gate{minimumAge: minimumAge, now: time.Now}
	for _, opt := range opts {
		opt(gate)
	}
	return gate
}

// RegisterRoutes mounts GET / behind [middleware.RequireAuth]. Token
// verification itself happens in [middleware.Authenticate].
func (gate *Gate) RegisterRoutes(router chi.Router) {
	router.With(middleware.RequireAuth).Get("/", gate.check)
}

/*
check answers whether the bearer may access restricted content.

GET /access

Response:
  - 200: Empty body
  - 401: Missing, malformed or expired token
  - 403: Birth date missing or below the minimum age
*/
func (gate *Gate) check(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := Evaluate(claims, gate.minimumAge, gate.now().UTC()); err != nil {
		ctxutil.GetLogger(request.Context()).InfoContext(request.Context(), "access_denied",
			slog.String("reason", err.Error()),
			slog.Int("minimum_age", gate.minimumAge),
		)
		respond.Error(writer, request, err)
		return
	}

	respond.Empty(writer)
}
