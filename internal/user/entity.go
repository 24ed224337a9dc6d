// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/auth"
)

type User struct {
	ID                  string     `db:"id"`
	Email               string     `db:"email"`
	PasswordHash        string     `db:"password_hash"`
	FirstName           string     `db:"first_name"`
	LastName            string     `db:"last_name"`
	Field               string     `db:"field"`
	Bio                 string     `db:"bio"`
	Role                string     `db:"role"`
	IsActive            bool       `db:"is_active"`
	EmailVerified       bool       `db:"email_verified"`
	ResetTokenHash      *string    `db:"reset_token_hash"`
	ResetTokenExpiresAt *time.Time `db:"reset_token_expires_at"`
	LoginCount          int        `db:"login_count"`
	LastLoginAt         *time.Time `db:"last_login_at"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

const (
	RoleStudent = auth.RoleStudent
	RoleMentor  = auth.RoleMentor
	RoleAdmin   = auth.RoleAdmin
)

func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleMentor, RoleAdmin:
		return true
	}
	return false
}

func cloneUser(u User) User {
	if u.ResetTokenHash != nil {
		h := *u.ResetTokenHash
		u.ResetTokenHash = &h
	}
	if u.ResetTokenExpiresAt != nil {
		t := *u.ResetTokenExpiresAt
		u.ResetTokenExpiresAt = &t
	}
	if u.LastLoginAt != nil {
		t := *u.LastLoginAt
		u.LastLoginAt = &t
	}
	return u
}
