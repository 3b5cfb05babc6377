// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cinema/internal/access"
	"github.com/taibuivan/cinema/internal/api"
	"github.com/taibuivan/cinema/internal/catalog/address"
	"github.com/taibuivan/cinema/internal/catalog/movie"
	"github.com/taibuivan/cinema/internal/catalog/section"
	"github.com/taibuivan/cinema/internal/catalog/theater"
	"github.com/taibuivan/cinema/internal/platform/config"
	"github.com/taibuivan/cinema/internal/platform/middleware"
	"github.com/taibuivan/cinema/internal/platform/sec"
	"github.com/taibuivan/cinema/internal/users/auth"
)

const testOrigin = "https://tickets.example.com"

// newTestServer wires every handler. Catalogue and user services get nil
// repositories, so only routes that never reach storage may be exercised.
func newTestServer(t *testing.T) (http.Handler, *sec.TokenService) {
	t.Helper()

	tokens, err := sec.NewTokenService([]byte("server-test-key-0123456789abcdefgh"), "cinema-test")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	log := discardLogger()
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{}, log)

	server := api.NewServer(ctx, &config.Config{ServerPort: "0", Environment: "test", ExtraOrigins: []string{testOrigin}}, log, tokens, middleware.NewMetrics(), api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Movie:     movie.NewHandler(movie.NewService(nil, log)),
		Address:   address.NewHandler(address.NewService(nil, log)),
		Theater:   theater.NewHandler(theater.NewService(nil, log)),
		Section:   section.NewHandler(section.NewService(nil, log)),
		User:      auth.NewHandler(auth.NewService(nil, tokens, log)),
		Access:    access.NewGate(18),
	})

	return server.Handler(), tokens
}

func TestServer_PlatformEndpoints(t *testing.T) {
	handler, _ := newTestServer(t)

	for _, path := range []string{"/health", "/ready"} {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, recorder.Code, path)
		assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `cinema_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestServer_AccessFlow(t *testing.T) {
	handler, tokens := newTestServer(t)

	send := func(header string) int {
		request := httptest.NewRequest(http.MethodGet, "/access", nil)
		if header != "" {
			request.Header.Set("Authorization", header)
		}
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder.Code
	}

	adult, err := tokens.Issue(sec.Identity{UserID: "u1", Username: "alice", BirthDate: time.Date(1980, time.April, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	child, err := tokens.Issue(sec.Identity{UserID: "u2", Username: "tim", BirthDate: time.Now().UTC().AddDate(-10, 0, 0)})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, send("Bearer "+adult))
	assert.Equal(t, http.StatusForbidden, send("Bearer "+child))
	assert.Equal(t, http.StatusUnauthorized, send("Bearer "+strings.Repeat("x", 20)))
	assert.Equal(t, http.StatusUnauthorized, send("Basic dXNlcjpwYXNz"))
	assert.Equal(t, http.StatusUnauthorized, send(""))
}

func TestServer_StaleTokenOnPublicRoutes(t *testing.T) {
	handler, _ := newTestServer(t)

	past := func() time.Time { return time.Now().AddDate(0, 0, -40) }
	staleTokens, err := sec.NewTokenService([]byte("server-test-key-0123456789abcdefgh"), "cinema-test", sec.WithClock(past))
	require.NoError(t, err)
	stale, err := staleTokens.Issue(sec.Identity{UserID: "u1", Username: "alice", BirthDate: time.Date(1980, time.April, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	send := func(method, path, body string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(method, path, strings.NewReader(body))
		request.Header.Set("Authorization", "Bearer "+stale)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	recorder := send(http.MethodPost, "/user/login", `{"username":"","password":""}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid login credentials")
	assert.NotContains(t, recorder.Body.String(), "Token has expired")

	recorder = send(http.MethodPost, "/user/register", `{"username":"","password":"1","rePassword":"2"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code, recorder.Body.String())

	assert.Equal(t, http.StatusOK, send(http.MethodGet, "/health", "").Code)

	recorder = send(http.MethodGet, "/access", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Token has expired")
}

func TestServer_CORSOnRejectedToken(t *testing.T) {
	handler, _ := newTestServer(t)

	request := httptest.NewRequest(http.MethodGet, "/access", nil)
	request.Header.Set("Origin", testOrigin)
	request.Header.Set("Authorization", "Bearer "+strings.Repeat("x", 20))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, testOrigin, recorder.Header().Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest(http.MethodOptions, "/access", nil)
	preflight.Header.Set("Origin", testOrigin)
	preflight.Header.Set("Authorization", "Bearer "+strings.Repeat("x", 20))
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, preflight)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, testOrigin, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_ValidationBeforeStorage(t *testing.T) {
	handler, _ := newTestServer(t)

	tests := []struct {
		path string
		body string
	}{
		{"/film", `{"title":"","genre":"Drama","duration":10}`},
		{"/movie", `{"title":"","genre":"Drama","duration":10}`},
		{"/address", `{"street":"","number":-1}`},
		{"/movietheater", `{"name":""}`},
		{"/section", `{"movie_id":0,"movie_theater_id":0}`},
		{"/user/register", `{"username":"","password":"1","rePassword":"2"}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, recorder.Code, recorder.Body.String())
		})
	}
}

func TestServer_UnknownRoute(t *testing.T) {
	handler, _ := newTestServer(t)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/comics", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
