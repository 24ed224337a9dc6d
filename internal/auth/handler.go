// AngelaMos | 2026
// handler.go

package auth

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

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/refresh-token", h.Refresh)
		r.Post("/forgot-password", h.ForgotPassword)
		r.Post("/reset-password", h.ResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Get("/me", h.GetMe)
			r.Post("/logout", h.Logout)
			r.Post("/logout-all", h.LogoutAll)
			r.Get("/sessions", h.GetSessions)
			r.Put("/change-password", h.ChangePassword)
		})
	})
}

// authErrors maps service failures to client responses. Anything not
// listed is a 500.
var authErrors = []struct {
	target error
	reply  func() *core.AppError
}{
	{ErrEmailExists, func() *core.AppError { return core.DuplicateError("email") }},
	{ErrInvalidCredentials, func() *core.AppError {
		return core.UnauthorizedError("invalid email or password")
	}},
	{ErrInvalidResetToken, func() *core.AppError {
		return core.BadRequestError("reset token is invalid or has expired")
	}},
	{core.ErrAccountDisabled, core.AccountDisabledError},
	{core.ErrTokenExpired, core.TokenExpiredError},
	{core.ErrTokenRevoked, core.TokenRevokedError},
	{core.ErrTokenInvalid, core.TokenInvalidError},
	{core.ErrNotFound, func() *core.AppError { return core.NotFoundError("user") }},
}

func writeError(w http.ResponseWriter, err error) {
	for _, e := range authErrors {
		if errors.Is(err, e.target) {
			core.JSONError(w, e.reply())
			return
		}
	}
	core.InternalServerError(w, err)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !core.DecodeJSON(w, r, h.validator, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), req, r.UserAgent(), middleware.ClientIP(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeAuthResponse(w, http.StatusCreated, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !core.DecodeJSON(w, r, h.validator, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req, r.UserAgent(), middleware.ClientIP(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeAuthResponse(w, http.StatusOK, resp)
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if !core.DecodeJSON(w, r, h.validator, &req) {
		return
	}

	resp, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, err)
		return
	}
	core.OK(w, resp)
}

// Logout accepts an empty body, in which case only the access token is
// dropped client side and no session is revoked.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if !core.DecodeOptionalJSON(w, r, &req) {
		return
	}

	err := h.service.Logout(r.Context(), middleware.GetUserID(r.Context()), req.RefreshToken)
	if err != nil {
		writeError(w, err)
		return
	}
	core.Message(w, "logged out")
}

func (h *Handler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.LogoutAll(r.Context(), middleware.GetUserID(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	core.Message(w, "all sessions revoked")
}

func (h *Handler) GetSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.GetActiveSessions(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	core.List(w, sessions, len(sessions))
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if !core.DecodeJSON(w, r, h.validator, &req) {
		return
	}

	tokens, err := h.service.ChangePassword(r.Context(),
		middleware.GetUserID(r.Context()), req, r.UserAgent(), middleware.ClientIP(r))
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		core.Unauthorized(w, "current password is incorrect")
	case err != nil:
		writeError(w, err)
	default:
		core.OK(w, tokens)
	}
}

// ForgotPassword answers the same way whether or not the email exists.
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if !core.DecodeJSON(w, r, h.validator, &req) {
		return
	}

	if err := h.service.ForgotPassword(r.Context(), req.Email); err != nil {
		writeError(w, err)
		return
	}
	core.Message(w, "if that email is registered, a reset link has been sent")
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if !core.DecodeJSON(w, r, h.validator, &req) {
		return
	}

	if err := h.service.ResetPassword(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}
	core.Message(w, "password has been reset")
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	me, err := h.service.GetCurrentUser(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	core.OK(w, me)
}

func writeAuthResponse(w http.ResponseWriter, status int, resp *AuthResponse) {
	core.JSON(w, status, authEnvelope{
		Success: true,
		Data:    resp.User,
		Tokens:  resp.Tokens,
	})
}
