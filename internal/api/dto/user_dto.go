package dto

import (
	"time"

	"github.com/spec-kit/estate-cms/internal/domain"
	"github.com/spec-kit/estate-cms/internal/validation"
)

// UserCreateRequest is the admin payload for new accounts.
type UserCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserRoleRequest changes an account role.
type UserRoleRequest struct {
	Role string `json:"role"`
}

// UserActiveRequest enables or disables an account.
type UserActiveRequest struct {
	Active bool `json:"active"`
}

// UserResponse is the wire shape of an account; the hash never leaves.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromUser maps the domain model.
func FromUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

var roles = []string{
	string(domain.RoleUser),
	string(domain.RoleEditor),
	string(domain.RoleAdmin),
	string(domain.RoleSuperAdmin),
}

// UserCreateSchema validates admin account creation.
var UserCreateSchema = validation.Schema{
	Fields: []validation.Field{
		{Name: "name", Kind: validation.KindString, Required: true, MinLen: 2, MaxLen: 120},
		{Name: "email", Kind: validation.KindString, Required: true, Format: validation.FormatEmail, MaxLen: 254},
		{Name: "password", Kind: validation.KindString, Required: true, MinLen: 8, MaxLen: 72},
		{Name: "role", Kind: validation.KindString, Enum: roles, Default: string(domain.RoleUser)},
	},
}

// UserRoleSchema validates role updates.
var UserRoleSchema = validation.Schema{
	Fields: []validation.Field{
		{Name: "role", Kind: validation.KindString, Required: true, Enum: roles},
	},
}

// UserActiveSchema validates activation toggles.
var UserActiveSchema = validation.Schema{
	Fields: []validation.Field{
		{Name: "active", Kind: validation.KindBool, Required: true},
	},
}
