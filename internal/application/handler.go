// AngelaMos | 2026
// handler.go

package application

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
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/applications", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Apply)
		r.Get("/my-applications", h.ListMine)
		r.Delete("/{id}", h.Withdraw)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)

			r.Get("/", h.ListAll)
			r.Patch("/{id}/status", h.UpdateStatus)
		})
	})
}

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	var req CreateApplicationRequest
	if !core.DecodeJSON(w, r, h.validator, &req) {
		return
	}

	app, err := h.service.Apply(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		writeError(w, err, req.Type)
		return
	}

	core.Created(w, ToResponse(app))
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	apps, err := h.service.ListMine(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err, "")
		return
	}

	core.List(w, ToResponseList(apps), len(apps))
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.service.Withdraw(r.Context(), middleware.GetUserID(r.Context()), id)
	if err != nil {
		writeError(w, err, "")
		return
	}

	core.OK(w, map[string]string{"id": id})
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	apps, err := h.service.ListAll(r.Context(), store.ListParamsFromQuery(r.URL.Query()))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.List(w, ToResponseList(apps), len(apps))
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if !core.DecodeJSON(w, r, h.validator, &req) {
		return
	}

	app, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeError(w, err, "")
		return
	}

	core.OK(w, ToResponse(app))
}

// writeError names the missing resource after the application type when
// the target lookup failed.
func writeError(w http.ResponseWriter, err error, targetType string) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		resource := "application"
		if targetType != "" {
			resource = targetType
		}
		core.NotFound(w, resource)
	case errors.Is(err, core.ErrDuplicateKey):
		core.Conflict(w, "application")
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, "scholarshipId or mentorId must match the application type")
	case errors.Is(err, core.ErrUnauthorized):
		core.Unauthorized(w, "")
	default:
		core.InternalServerError(w, err)
	}
}
