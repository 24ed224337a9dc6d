// AngelaMos | 2026
// entity.go

package auth

import (
	"time"
)

// RefreshToken is one outstanding session of a user. Only the sha256 of the
// signed token is kept.
type RefreshToken struct {
	TokenHash string    `db:"token_hash"`
	UserID    string    `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	UserAgent string    `db:"user_agent"`
	IPAddress string    `db:"ip_address"`
	CreatedAt time.Time `db:"created_at"`
}

func (t *RefreshToken) IsExpiredAt(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// UserInfo is the view of a user account the auth flows work with.
type UserInfo struct {
	ID                  string
	Email               string
	PasswordHash        string
	FirstName           string
	LastName            string
	Field               string
	Bio                 string
	Role                string
	IsActive            bool
	EmailVerified       bool
	LoginCount          int
	LastLoginAt         *time.Time
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (u *UserInfo) Name() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type NewUser struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Field        string
	Role         string
}
