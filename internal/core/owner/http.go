package owner

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
	router.Get("/", handler.listOwners)
	router.Get("/{id}", handler.getOwner)

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(sec.RoleEditor))
		editor.Post("/", handler.createOwner)
		editor.Put("/{id}", handler.updateOwner)
	})

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Delete("/{id}", handler.deleteOwner)
	})
}

func (handler *Handler) listOwners(writer http.ResponseWriter, request *http.Request) {
	owners, err := handler.service.ListOwners(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, owners)
}

func (handler *Handler) getOwner(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	owner, err := handler.service.GetOwner(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, owner)
}

type ownerRequest struct {
	Name  string `json:"name"`
	Sigla string `json:"sigla"`
}

func (handler *Handler) createOwner(writer http.ResponseWriter, request *http.Request) {
	var input ownerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	owner := &Owner{
		Name:  input.Name,
		Sigla: input.Sigla,
	}

	if err := handler.service.CreateOwner(request.Context(), owner); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, owner)
}

func (handler *Handler) updateOwner(writer http.ResponseWriter, request *http.Request) {
	var input ownerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	owner := &Owner{
		ID:    requestutil.ID(request, "id"),
		Name:  input.Name,
		Sigla: input.Sigla,
	}

	if err := handler.service.UpdateOwner(request.Context(), owner); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, owner)
}

func (handler *Handler) deleteOwner(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteOwner(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
