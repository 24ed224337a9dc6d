// AngelaMos | 2026
// handler.go

package user

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/middleware"
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

// RegisterRoutes mounts the caller's own profile under /users and account
// management under /admin/users.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/users", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/profile", h.GetProfile)
		r.Put("/profile", h.UpdateProfile)
	})

	r.Route("/admin/users", func(r chi.Router) {
		r.Use(authenticator, adminOnly)

		r.Get("/", h.ListUsers)
		r.Get("/{userID}", h.GetUser)
		r.Patch("/{userID}/status", h.UpdateUserStatus)
		r.Patch("/{userID}/role", h.UpdateUserRole)
	})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.GetUser(r.Context(), middleware.GetUserID(r.Context()))
	reply(w, u, err)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if !core.DecodeJSON(w, r, h.validator, &req) {
		return
	}

	u, err := h.service.UpdateProfile(r.Context(), middleware.GetUserID(r.Context()), req)
	reply(w, u, err)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params := ListUsersParamsFromQuery(r.URL.Query())

	users, total, err := h.service.ListUsers(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(w, ToUserResponseList(users), params.Page, params.PageSize, total)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.GetUser(r.Context(), chi.URLParam(r, "userID"))
	reply(w, u, err)
}

// UpdateUserStatus and UpdateUserRole refuse to act on the calling admin's
// own account.
func (h *Handler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserStatusRequest
	if !core.DecodeJSON(w, r, h.validator, &req) {
		return
	}

	u, err := h.service.SetActive(r.Context(),
		middleware.GetUserID(r.Context()), chi.URLParam(r, "userID"), *req.IsActive)
	reply(w, u, err)
}

func (h *Handler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRoleRequest
	if !core.DecodeJSON(w, r, h.validator, &req) {
		return
	}

	u, err := h.service.UpdateUserRole(r.Context(),
		middleware.GetUserID(r.Context()), chi.URLParam(r, "userID"), req.Role)
	reply(w, u, err)
}

func reply(w http.ResponseWriter, u *User, err error) {
	switch {
	case err == nil:
		core.OK(w, ToUserResponse(u))
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "user")
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "operation not permitted on your own account")
	case errors.Is(err, core.ErrUnauthorized):
		core.Unauthorized(w, "")
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, err.Error())
	default:
		core.InternalServerError(w, err)
	}
}
