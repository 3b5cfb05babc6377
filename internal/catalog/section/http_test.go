// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cinema/internal/catalog/section"
)

func TestHandler_Routes(t *testing.T) {
	repo := newFakeRepository([]int{1, 2}, []int{10})

	router := chi.NewRouter()
	router.Route("/section", section.NewHandler(newService(repo)).RegisterRoutes)

	send := func(method, target, body string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))
		return recorder
	}

	recorder := send(http.MethodPost, "/section", `{"movie_id":1,"movie_theater_id":10}`)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = send(http.MethodPost, "/section", `{"movie_id":1,"movie_theater_id":10}`)
	assert.Equal(t, http.StatusConflict, recorder.Code)

	recorder = send(http.MethodPost, "/section", `{"movie_id":7,"movie_theater_id":10}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = send(http.MethodPost, "/section", `{"movie_id":2,"movie_theater_id":10}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = send(http.MethodGet, "/section?take=1", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	var page struct {
		Data []section.Section `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &page))
	assert.Len(t, page.Data, 1)
	assert.Equal(t, 2, page.Meta.Total)

	recorder = send(http.MethodGet, "/section/1/10", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = send(http.MethodGet, "/section/1/11", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = send(http.MethodGet, "/section/x/10", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = send(http.MethodDelete, "/section/1/10", "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
