// AngelaMos | 2026
// handler.go

package goal

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/middleware"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/goals", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.service.List(
		r.Context(),
		middleware.GetUserID(r.Context()),
		store.ListParamsFromQuery(r.URL.Query()),
	)
	if err != nil {
		writeError(w, err)
		return
	}

	core.List(w, goals, len(goals))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.service.Get(
		r.Context(),
		middleware.GetUserID(r.Context()),
		chi.URLParam(r, "id"),
	)
	if err != nil {
		writeError(w, err)
		return
	}

	core.OK(w, g)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGoalRequest
	if !core.DecodeJSON(w, r, h.validator, &req) {
		return
	}

	g, err := h.service.Create(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}

	core.Created(w, g)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateGoalRequest
	if !core.DecodeJSON(w, r, h.validator, &req) {
		return
	}

	g, err := h.service.Update(
		r.Context(),
		middleware.GetUserID(r.Context()),
		chi.URLParam(r, "id"),
		req,
	)
	if err != nil {
		writeError(w, err)
		return
	}

	core.OK(w, g)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.service.Delete(r.Context(), middleware.GetUserID(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}

	core.OK(w, map[string]string{"id": id})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "goal")
	case errors.Is(err, core.ErrUnauthorized):
		core.Unauthorized(w, "")
	default:
		core.InternalServerError(w, err)
	}
}
