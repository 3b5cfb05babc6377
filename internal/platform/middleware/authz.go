// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/cinema/internal/platform/apperr"
	"github.com/taibuivan/cinema/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/cinema/internal/platform/request"
	"github.com/taibuivan/cinema/internal/platform/respond"
	"github.com/taibuivan/cinema/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// Defining TokenVerifier here decouples the middleware from [sec.TokenService],
// allowing fakes to be injected during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous.
//  3. If present, verify signature, algorithm and expiry via [TokenVerifier].
//     A failure is recorded with [ctxutil.WithAuthError] and the request
//     proceeds as anonymous; [RequireAuth] turns it into a 401.
//  4. Inject [*sec.AuthClaims] into the request context and tag the
//     request logger with the user id.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			scheme, tokenStr, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(tokenStr) == "" {
				reject(next, writer, request, "bad_format", apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyToken(strings.TrimSpace(tokenStr))
			if err != nil {
				message := "Invalid or expired token"
				if errors.Is(err, sec.ErrTokenExpired) {
					message = "Token has expired"
				}
				reject(next, writer, request, err.Error(), apperr.Unauthorized(message))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			ctx = ctxutil.WithLogger(ctx, ctxutil.GetLogger(ctx).With(slog.String("user_id", claims.UserID)))
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// reject continues the request anonymously with the rejection recorded.
func reject(next http.Handler, writer http.ResponseWriter, request *http.Request, reason string, rejection *apperr.AppError) {
	ctx := request.Context()
	ctxutil.GetLogger(ctx).DebugContext(ctx, "token_rejected", slog.String("reason", reason))
	next.ServeHTTP(writer, request.WithContext(ctxutil.WithAuthError(ctx, rejection)))
}

// RequireAuth blocks requests that are not authenticated.
//
// A token rejected by [Authenticate] answers with that rejection ("Token has
// expired", "Invalid or expired token"); a missing token with "Authentication
// required". See [requestutil.RequiredClaims].
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if _, err := requestutil.RequiredClaims(request); err != nil {
			respond.Error(writer, request, err)
			return
		}
		next.ServeHTTP(writer, request)
	})
}
