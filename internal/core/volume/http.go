// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package volume

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
	router.Get("/{id}", handler.getDetail)

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(sec.RoleEditor))
		editor.Put("/", handler.saveVolume)
		editor.Post("/{id}/renumber", handler.renumberSpecimens)
		editor.Get("/{id}/duplicate", handler.duplicateVolume)
		editor.Post("/generate", handler.generateSpecimens)
		editor.Delete("/{id}", handler.deleteVolume)
	})
}

func (handler *Handler) getDetail(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	detail, err := handler.service.GetDetail(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

// saveRequest is the bulk-save payload: the volume edit buffer plus the
// complete specimen list as currently drafted.
type saveRequest struct {
	Volume    Draft      `json:"volume"`
	Specimens []Specimen `json:"specimens"`
}

func (handler *Handler) saveVolume(writer http.ResponseWriter, request *http.Request) {
	var input saveRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.Save(request.Context(), input.Volume, input.Specimens)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

type renumberRequest struct {
	AnchorID string   `json:"anchor_id"`
	Sequence Sequence `json:"sequence"`
	DryRun   bool     `json:"dry_run"`
}

func (handler *Handler) renumberSpecimens(writer http.ResponseWriter, request *http.Request) {
	var input renumberRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	volumeID := requestutil.ID(request, "id")

	result, err := handler.service.RenumberSpecimens(
		request.Context(), volumeID, input.AnchorID, input.Sequence, input.DryRun,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) duplicateVolume(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	detail, err := handler.service.DuplicateDetail(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) generateSpecimens(writer http.ResponseWriter, request *http.Request) {
	var draft Draft
	if err := requestutil.DecodeJSON(request, &draft); err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GenerateDrafts(request.Context(), draft)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) deleteVolume(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
