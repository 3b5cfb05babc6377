// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/cinema/internal/platform/request"
	"github.com/taibuivan/cinema/internal/platform/respond"
	"github.com/taibuivan/cinema/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for section operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new section [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the section endpoints on router. Single sections are
// addressed by /{movieId}/{movieTheaterId}.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listSections)
	router.Post("/", handler.createSection)
	router.Get("/{movieId}/{movieTheaterId}", handler.getSection)
	router.Delete("/{movieId}/{movieTheaterId}", handler.deleteSection)
}

func (handler *Handler) listSections(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	sections, total, err := handler.service.ListSections(request.Context(), params.Take, params.Skip)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, sections, pagination.NewMeta(params, total))
}

func (handler *Handler) getSection(writer http.ResponseWriter, request *http.Request) {
	movieID, movieTheaterID, err := pairFromPath(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.service.GetSection(request.Context(), movieID, movieTheaterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) createSection(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateSection(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) deleteSection(writer http.ResponseWriter, request *http.Request) {
	movieID, movieTheaterID, err := pairFromPath(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteSection(request.Context(), movieID, movieTheaterID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func pairFromPath(request *http.Request) (int, int, error) {
	movieID, err := requestutil.IntID(request, "movieId")
	if err != nil {
		return 0, 0, err
	}

	movieTheaterID, err := requestutil.IntID(request, "movieTheaterId")
	if err != nil {
		return 0, 0, err
	}

	return movieID, movieTheaterID, nil
}
