// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package theater

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/cinema/internal/platform/request"
	"github.com/taibuivan/cinema/internal/platform/respond"
	"github.com/taibuivan/cinema/pkg/pagination"
)

// Handler implements the HTTP layer for movie theater operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new theater [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the theater endpoints on router (served under /movietheater).
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listTheaters)
	router.Post("/", handler.createTheater)
	router.Get("/{id}", handler.getTheater)
	router.Put("/{id}", handler.updateTheater)
	router.Patch("/{id}", handler.patchTheater)
	router.Delete("/{id}", handler.deleteTheater)
}

func (handler *Handler) listTheaters(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	theaters, total, err := handler.service.ListTheaters(request.Context(), params.Take, params.Skip)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, theaters, pagination.NewMeta(params, total))
}

func (handler *Handler) getTheater(writer http.ResponseWriter, request *http.Request) {
	theaterID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	details, err := handler.service.GetTheater(request.Context(), theaterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, details)
}

func (handler *Handler) createTheater(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateTheater(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateTheater(writer http.ResponseWriter, request *http.Request) {
	theaterID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateTheater(request.Context(), theaterID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) patchTheater(writer http.ResponseWriter, request *http.Request) {
	theaterID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := requestutil.PatchDocument(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.PatchTheater(request.Context(), theaterID, document); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) deleteTheater(writer http.ResponseWriter, request *http.Request) {
	theaterID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteTheater(request.Context(), theaterID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
