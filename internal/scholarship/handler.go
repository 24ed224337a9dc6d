// AngelaMos | 2026
// handler.go

package scholarship

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/mentorax-api/internal/core"
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
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/scholarships", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)

			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.List(r.Context(), store.ListParamsFromQuery(r.URL.Query()))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.List(w, rows, len(rows))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sch, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	core.OK(w, sch)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateScholarshipRequest
	if !core.DecodeJSON(w, r, h.validator, &req) {
		return
	}

	sch, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	core.Created(w, sch)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateScholarshipRequest
	if !core.DecodeJSON(w, r, h.validator, &req) {
		return
	}

	sch, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, err)
		return
	}

	core.OK(w, sch)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	core.OK(w, map[string]string{"id": id})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "scholarship")
	case errors.Is(err, core.ErrDuplicateKey):
		core.Conflict(w, "scholarship")
	default:
		core.InternalServerError(w, err)
	}
}
