package mutation

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
	router.Get("/", handler.listMutations)
	router.Get("/{id}", handler.getMutation)

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(sec.RoleEditor))
		editor.Post("/", handler.createMutation)
		editor.Put("/{id}", handler.updateMutation)
	})

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Delete("/{id}", handler.deleteMutation)
	})
}

func (handler *Handler) listMutations(writer http.ResponseWriter, request *http.Request) {
	mutations, err := handler.service.ListMutations(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, mutations)
}

func (handler *Handler) getMutation(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	mutation, err := handler.service.GetMutation(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, mutation)
}

type mutationRequest struct {
	Name string `json:"name"`
}

func (handler *Handler) createMutation(writer http.ResponseWriter, request *http.Request) {
	var input mutationRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	mutation := &Mutation{Name: input.Name}

	if err := handler.service.CreateMutation(request.Context(), mutation); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, mutation)
}

func (handler *Handler) updateMutation(writer http.ResponseWriter, request *http.Request) {
	var input mutationRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	mutation := &Mutation{
		ID:   requestutil.ID(request, "id"),
		Name: input.Name,
	}

	if err := handler.service.UpdateMutation(request.Context(), mutation); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, mutation)
}

func (handler *Handler) deleteMutation(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteMutation(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
