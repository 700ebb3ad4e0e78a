// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package metatitle

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mzalesak/periodika/internal/platform/middleware"
	requestutil "github.com/mzalesak/periodika/internal/platform/request"
	"github.com/mzalesak/periodika/internal/platform/respond"
	"github.com/mzalesak/periodika/internal/platform/sec"
	"github.com/mzalesak/periodika/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listMetaTitles)
	router.Get("/{id}", handler.getMetaTitle)

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(sec.RoleEditor))
		editor.Post("/", handler.createMetaTitle)
		editor.Put("/{id}", handler.updateMetaTitle)
	})

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Delete("/{id}", handler.deleteMetaTitle)
	})
}

func (handler *Handler) listMetaTitles(writer http.ResponseWriter, request *http.Request) {
	authenticated := requestutil.Claims(request) != nil
	params := pagination.FromRequest(request)

	overviews, meta, err := handler.service.ListOverviews(request.Context(), authenticated, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, overviews, meta)
}

func (handler *Handler) getMetaTitle(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	title, err := handler.service.GetMetaTitle(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, title)
}

type metaTitleRequest struct {
	Name     string `json:"name"`
	Note     string `json:"note"`
	IsPublic bool   `json:"is_public"`
}

func (handler *Handler) createMetaTitle(writer http.ResponseWriter, request *http.Request) {
	var input metaTitleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	title := &MetaTitle{
		Name:     input.Name,
		Note:     input.Note,
		IsPublic: input.IsPublic,
	}

	if err := handler.service.CreateMetaTitle(request.Context(), title); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, title)
}

func (handler *Handler) updateMetaTitle(writer http.ResponseWriter, request *http.Request) {
	var input metaTitleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	title := &MetaTitle{
		ID:       requestutil.ID(request, "id"),
		Name:     input.Name,
		Note:     input.Note,
		IsPublic: input.IsPublic,
	}

	if err := handler.service.UpdateMetaTitle(request.Context(), title); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, title)
}

func (handler *Handler) deleteMetaTitle(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteMetaTitle(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
