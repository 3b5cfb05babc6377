// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package address

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/cinema/internal/platform/request"
	"github.com/taibuivan/cinema/internal/platform/respond"
	"github.com/taibuivan/cinema/pkg/pagination"
)

// Handler implements the HTTP layer for address operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new address [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the address endpoints on router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listAddresses)
	router.Post("/", handler.createAddress)
	router.Get("/{id}", handler.getAddress)
	router.Put("/{id}", handler.updateAddress)
	router.Patch("/{id}", handler.patchAddress)
	router.Delete("/{id}", handler.deleteAddress)
}

func (handler *Handler) listAddresses(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	addresses, total, err := handler.service.ListAddresses(request.Context(), params.Take, params.Skip)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, addresses, pagination.NewMeta(params, total))
}

func (handler *Handler) getAddress(writer http.ResponseWriter, request *http.Request) {
	addressID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.service.GetAddress(request.Context(), addressID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) createAddress(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateAddress(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateAddress(writer http.ResponseWriter, request *http.Request) {
	addressID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateAddress(request.Context(), addressID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) patchAddress(writer http.ResponseWriter, request *http.Request) {
	addressID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := requestutil.PatchDocument(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.PatchAddress(request.Context(), addressID, document); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) deleteAddress(writer http.ResponseWriter, request *http.Request) {
	addressID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteAddress(request.Context(), addressID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
