// AngelaMos | 2026
// dto.go

package user

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/carterperez-dev/mentorax-api/internal/auth"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// UpdateProfileRequest is a partial update; nil fields are left alone.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitnil,notblank,max=50"`
	LastName  *string `json:"lastName,omitempty"  validate:"omitnil,notblank,max=50"`
	Field     *string `json:"field,omitempty"     validate:"omitempty,max=100"`
	Bio       *string `json:"bio,omitempty"       validate:"omitempty,max=1000"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=student mentor admin"`
}

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type ListUsersParams struct {
	Page     int
	PageSize int
	Search   string
	Role     string
}

// ListUsersParamsFromQuery reads page, pageSize, search and role. Bad
// numbers fall back to the defaults.
func ListUsersParamsFromQuery(q url.Values) ListUsersParams {
	p := ListUsersParams{
		Page:     atoiOr(q.Get("page"), 1),
		PageSize: atoiOr(q.Get("pageSize"), defaultPageSize),
		Search:   strings.TrimSpace(q.Get("search")),
		Role:     strings.TrimSpace(q.Get("role")),
	}
	p.Normalize()
	return p
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func (p *ListUsersParams) Normalize() {
	p.Page = max(p.Page, 1)
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	p.PageSize = min(p.PageSize, maxPageSize)
}

func (p *ListUsersParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToUserResponse(u *User) auth.UserResponse {
	return auth.NewUserResponse(toUserInfo(u))
}

func ToUserResponseList(users []User) []auth.UserResponse {
	out := make([]auth.UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}
