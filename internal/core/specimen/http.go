// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package specimen

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/mzalesak/periodika/internal/platform/request"
	"github.com/mzalesak/periodika/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/list", handler.listSpecimens)
	router.Post("/calendar", handler.calendar)
}

// listRequest is the overview query: a page window, the facet filter, and
// which presentation the page feeds.
type listRequest struct {
	Offset int    `json:"offset"`
	Rows   int    `json:"rows"`
	Facets Filter `json:"facets"`
	View   View   `json:"view"`
}

func (handler *Handler) listSpecimens(writer http.ResponseWriter, request *http.Request) {
	var input listRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Overview(
		request.Context(), input.Facets, input.Offset, input.Rows, input.View,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

type calendarRequest struct {
	MetaTitleID string `json:"meta_title_id"`
	Year        int    `json:"year"`
	Facets      Filter `json:"facets"`
}

func (handler *Handler) calendar(writer http.ResponseWriter, request *http.Request) {
	var input calendarRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	days, err := handler.service.Calendar(
		request.Context(), input.MetaTitleID, input.Year, input.Facets,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, days)
}
