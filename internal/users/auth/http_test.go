// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cinema/internal/users/auth"
)

func TestHandler_RegisterAndLogin(t *testing.T) {
	service, tokens := newService(t, newFakeUserRepository())

	router := chi.NewRouter()
	router.Route("/user", auth.NewHandler(service).RegisterRoutes)

	post := func(target, body string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, target, strings.NewReader(body)))
		return recorder
	}

	registration := `{"username":"alice","birthDate":"1990-05-01","password":"secret1","rePassword":"secret1"}`

	recorder := post("/user/register", registration)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	assert.Empty(t, recorder.Body.String())

	recorder = post("/user/register", registration)
	assert.Equal(t, http.StatusConflict, recorder.Code)

	recorder = post("/user/register", `{"username":"bob","birthDate":"1990-05-01","password":"secret1","rePassword":"other"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = post("/user/register", `{not json`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = post("/user/login", `{"username":"alice","password":"secret1"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/plain")

	claims, err := tokens.VerifyToken(recorder.Body.String())
	require.NoError(t, err)
	assert.Equal(t, "1990-05-01", claims.BirthDate)

	recorder = post("/user/login", `{"username":"alice","password":"wrong!"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid login credentials")
}
