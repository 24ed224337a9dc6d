// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/mail"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

const (
	RoleStudent = "student"
	RoleMentor  = "mentor"
	RoleAdmin   = "admin"

	resetTokenTTL = time.Hour
)

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
	GetByResetTokenHash(ctx context.Context, hash string) (*UserInfo, error)
	Create(ctx context.Context, nu NewUser) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	RecordLogin(ctx context.Context, userID string, at time.Time) error
	SetResetToken(
		ctx context.Context,
		userID, hash string,
		expiresAt time.Time,
	) error
}

type Service struct {
	repo         *store.Dual[Repository]
	jwt          *JWTManager
	userProvider UserProvider
	mailer       mail.Sender
	frontendURL  string
}

type ServiceConfig struct {
	Repo         *store.Dual[Repository]
	JWT          *JWTManager
	UserProvider UserProvider
	Mailer       mail.Sender
	FrontendURL  string
}

func NewService(cfg ServiceConfig) *Service {
	mailer := cfg.Mailer
	if mailer == nil {
		mailer = &mail.LogSender{}
	}
	return &Service{
		repo:         cfg.Repo,
		jwt:          cfg.JWT,
		userProvider: cfg.UserProvider,
		mailer:       mailer,
		frontendURL:  cfg.FrontendURL,
	}
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
	userAgent, ipAddress string,
) (*AuthResponse, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = RoleStudent
	}

	user, err := s.userProvider.Create(ctx, NewUser{
		Email:        req.Email,
		PasswordHash: passwordHash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Field:        strings.TrimSpace(req.Field),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	resp, err := s.createAuthResponse(ctx, user, userAgent, ipAddress)
	if err != nil {
		return nil, err
	}

	s.send(ctx, mail.Welcome(user.Email, user.FirstName, s.frontendURL))

	return resp, nil
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
	userAgent, ipAddress string,
) (*AuthResponse, error) {
	user, err := s.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	pruned, err := store.Query(ctx, s.repo, func(repo Repository) (int64, error) {
		return repo.DeleteExpiredForUser(ctx, user.ID, now)
	})
	if err != nil {
		return nil, fmt.Errorf("prune sessions: %w", err)
	}
	if pruned > 0 {
		slog.DebugContext(ctx, "pruned expired sessions", "user_id", user.ID, "count", pruned)
	}

	if err := s.userProvider.RecordLogin(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("record login: %w", err)
	}
	user.LoginCount++
	user.LastLoginAt = &now

	return s.createAuthResponse(ctx, user, userAgent, ipAddress)
}

// authenticate checks credentials with the same argon2 cost whether or not
// the account exists. A stale hash is upgraded in place.
func (s *Service) authenticate(ctx context.Context, email, password string) (*UserInfo, error) {
	user, err := s.userProvider.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	var stored *string
	if user != nil {
		stored = &user.PasswordHash
	}

	ok, upgraded, err := core.VerifyPasswordTimingSafe(password, stored)
	switch {
	case err != nil:
		return nil, fmt.Errorf("verify password: %w", err)
	case !ok || user == nil:
		return nil, ErrInvalidCredentials
	case !user.IsActive:
		return nil, fmt.Errorf("login: %w", core.ErrAccountDisabled)
	}

	if upgraded != "" {
		if err := s.userProvider.UpdatePassword(ctx, user.ID, upgraded); err != nil {
			slog.WarnContext(ctx, "password rehash failed", "user_id", user.ID, "error", err)
		}
	}
	return user, nil
}

// Refresh exchanges a stored refresh token for a new access token. The
// refresh token itself stays valid until logout or expiry.
func (s *Service) Refresh(
	ctx context.Context,
	refreshToken string,
) (*AccessTokenResponse, error) {
	user, err := s.sessionOwner(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}

	accessToken, err := s.createAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &AccessTokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.jwt.AccessTokenTTL().Seconds()),
	}, nil
}

// sessionOwner resolves a refresh token to its active owner. A token that
// verifies but is missing from the store, or whose owner is gone, counts
// as revoked.
func (s *Service) sessionOwner(ctx context.Context, refreshToken string) (*UserInfo, error) {
	userID, err := s.jwt.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	stored, err := store.Query(ctx, s.repo, func(repo Repository) (*RefreshToken, error) {
		return repo.FindByHash(ctx, core.HashToken(refreshToken))
	})
	switch {
	case errors.Is(err, core.ErrNotFound):
		return nil, core.ErrTokenRevoked
	case err != nil:
		return nil, err
	case stored.UserID != userID || stored.IsExpiredAt(time.Now()):
		return nil, core.ErrTokenRevoked
	}

	user, err := s.userProvider.GetByID(ctx, userID)
	switch {
	case errors.Is(err, core.ErrNotFound):
		return nil, core.ErrTokenRevoked
	case err != nil:
		return nil, err
	case !user.IsActive:
		return nil, core.ErrAccountDisabled
	}
	return user, nil
}

// Logout revokes one refresh token of the caller. Unknown or already
// revoked tokens are ignored.
func (s *Service) Logout(
	ctx context.Context,
	userID, refreshToken string,
) error {
	if refreshToken == "" {
		return nil
	}

	err := store.Exec(ctx, s.repo, func(repo Repository) error {
		return repo.DeleteForUser(ctx, userID, core.HashToken(refreshToken))
	})
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	return nil
}

func (s *Service) LogoutAll(ctx context.Context, userID string) error {
	err := store.Exec(ctx, s.repo, func(repo Repository) error {
		return repo.DeleteAllForUser(ctx, userID)
	})
	if err != nil {
		return fmt.Errorf("revoke all tokens: %w", err)
	}
	return nil
}

func (s *Service) GetActiveSessions(
	ctx context.Context,
	userID string,
) ([]SessionInfo, error) {
	tokens, err := store.Query(ctx, s.repo, func(repo Repository) ([]RefreshToken, error) {
		return repo.ListForUser(ctx, userID)
	})
	if err != nil {
		return nil, fmt.Errorf("get sessions: %w", err)
	}

	sessions := make([]SessionInfo, 0, len(tokens))
	for _, t := range tokens {
		sessions = append(sessions, SessionInfo{
			UserAgent: t.UserAgent,
			IPAddress: t.IPAddress,
			CreatedAt: t.CreatedAt,
			ExpiresAt: t.ExpiresAt,
		})
	}

	return sessions, nil
}

// ChangePassword revokes every session of the user and returns a fresh
// token pair for the caller.
func (s *Service) ChangePassword(
	ctx context.Context,
	userID string,
	req ChangePasswordRequest,
	userAgent, ipAddress string,
) (*TokenPair, error) {
	user, err := s.userProvider.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("change password: %w", err)
	}

	ok, err := core.VerifyPassword(req.CurrentPassword, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err := s.setPassword(ctx, userID, req.NewPassword); err != nil {
		return nil, err
	}
	return s.issueTokenPair(ctx, user, userAgent, ipAddress)
}

// setPassword stores a new hash and ends every session of the user.
func (s *Service) setPassword(ctx context.Context, userID, password string) error {
	hash, err := core.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.userProvider.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return s.LogoutAll(ctx, userID)
}

// ForgotPassword never reveals whether the email is registered.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userProvider.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("get user: %w", err)
	}

	if !user.IsActive {
		return nil
	}

	token, err := core.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	expiresAt := time.Now().UTC().Add(resetTokenTTL)
	if err := s.userProvider.SetResetToken(
		ctx,
		user.ID,
		core.HashToken(token),
		expiresAt,
	); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	s.send(ctx, mail.PasswordReset(user.Email, user.FirstName, s.frontendURL, token))
	return nil
}

// ResetPassword consumes a reset token. Storing the new hash clears the
// token, so each one works once.
func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	user, err := s.userProvider.GetByResetTokenHash(ctx, core.HashToken(req.Token))
	switch {
	case errors.Is(err, core.ErrNotFound):
		return ErrInvalidResetToken
	case err != nil:
		return fmt.Errorf("lookup reset token: %w", err)
	case user.ResetTokenExpiresAt == nil || !time.Now().Before(*user.ResetTokenExpiresAt):
		return ErrInvalidResetToken
	}

	return s.setPassword(ctx, user.ID, req.NewPassword)
}

func (s *Service) GetCurrentUser(
	ctx context.Context,
	userID string,
) (*UserResponse, error) {
	user, err := s.userProvider.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := NewUserResponse(user)
	return &resp, nil
}

func (s *Service) createAuthResponse(
	ctx context.Context,
	user *UserInfo,
	userAgent, ipAddress string,
) (*AuthResponse, error) {
	tokens, err := s.issueTokenPair(ctx, user, userAgent, ipAddress)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:   NewUserResponse(user),
		Tokens: *tokens,
	}, nil
}

func (s *Service) issueTokenPair(
	ctx context.Context,
	user *UserInfo,
	userAgent, ipAddress string,
) (*TokenPair, error) {
	accessToken, err := s.createAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshData, err := s.jwt.CreateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("create refresh token: %w", err)
	}

	token := &RefreshToken{
		TokenHash: refreshData.Hash,
		UserID:    user.ID,
		ExpiresAt: refreshData.ExpiresAt,
		UserAgent: userAgent,
		IPAddress: ipAddress,
	}
	err = store.Exec(ctx, s.repo, func(repo Repository) error {
		return repo.Create(ctx, token)
	})
	if err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshData.Token,
		TokenType:    "Bearer",
		ExpiresIn:    int(s.jwt.AccessTokenTTL().Seconds()),
	}, nil
}

func (s *Service) createAccessToken(user *UserInfo) (string, error) {
	token, err := s.jwt.CreateAccessToken(AccessTokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Name:   user.Name(),
	})
	if err != nil {
		return "", fmt.Errorf("create access token: %w", err)
	}
	return token, nil
}

// send delivers mail on a best-effort basis; failures are logged only.
func (s *Service) send(ctx context.Context, msg mail.Message) {
	if err := s.mailer.Send(ctx, msg); err != nil {
		slog.Warn("send email failed",
			"to", msg.To,
			"subject", msg.Subject,
			"error", err,
		)
	}
}
