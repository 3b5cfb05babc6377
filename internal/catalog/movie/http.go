// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/cinema/internal/platform/request"
	"github.com/taibuivan/cinema/internal/platform/respond"
	"github.com/taibuivan/cinema/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for movie operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new movie [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the movie endpoints on router. The same handler serves
// both /film and /movie.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listMovies)
	router.Post("/", handler.createMovie)
	router.Get("/{id}", handler.getMovie)
	router.Put("/{id}", handler.updateMovie)
	router.Patch("/{id}", handler.patchMovie)
	router.Delete("/{id}", handler.deleteMovie)
}

// # Movie Endpoints
func (handler *Handler) listMovies(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	movies, total, err := handler.service.ListMovies(request.Context(), params.Take, params.Skip)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, movies, pagination.NewMeta(params, total))
}

func (handler *Handler) getMovie(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	details, err := handler.service.GetMovie(request.Context(), movieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, details)
}

func (handler *Handler) createMovie(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateMovie(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateMovie(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateMovie(request.Context(), movieID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) patchMovie(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := requestutil.PatchDocument(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.PatchMovie(request.Context(), movieID, document); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) deleteMovie(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteMovie(request.Context(), movieID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
