// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package publication

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mzalesak/periodika/internal/platform/middleware"
	requestutil "github.com/mzalesak/periodika/internal/platform/request"
	"github.com/mzalesak/periodika/internal/platform/respond"
	"github.com/mzalesak/periodika/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listPublications)
	router.Get("/{id}", handler.getPublication)

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(sec.RoleEditor))
		editor.Post("/", handler.createPublication)
		editor.Put("/{id}", handler.updatePublication)
	})

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Delete("/{id}", handler.deletePublication)
	})
}

func (handler *Handler) listPublications(writer http.ResponseWriter, request *http.Request) {
	publications, err := handler.service.ListPublications(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, publications)
}

func (handler *Handler) getPublication(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	publication, err := handler.service.GetPublication(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, publication)
}

// publicationRequest defines the inbound JSON schema for reference edits.
type publicationRequest struct {
	Name         string `json:"name"`
	IsDefault    bool   `json:"is_default"`
	IsAttachment bool   `json:"is_attachment"`
}

func (handler *Handler) createPublication(writer http.ResponseWriter, request *http.Request) {
	var input publicationRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	publication := &Publication{
		Name:         input.Name,
		IsDefault:    input.IsDefault,
		IsAttachment: input.IsAttachment,
	}

	if err := handler.service.CreatePublication(request.Context(), publication); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, publication)
}

func (handler *Handler) updatePublication(writer http.ResponseWriter, request *http.Request) {
	var input publicationRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	publication := &Publication{
		ID:           requestutil.ID(request, "id"),
		Name:         input.Name,
		IsDefault:    input.IsDefault,
		IsAttachment: input.IsAttachment,
	}

	if err := handler.service.UpdatePublication(request.Context(), publication); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, publication)
}

func (handler *Handler) deletePublication(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeletePublication(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
