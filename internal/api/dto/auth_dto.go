package dto

import (
	"time"

	"github.com/spec-kit/estate-cms/internal/validation"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RegisterSchema validates RegisterRequest bodies.
var RegisterSchema = validation.Schema{
	Fields: []validation.Field{
		{Name: "name", Kind: validation.KindString, Required: true, MinLen: 2, MaxLen: 120},
		{Name: "email", Kind: validation.KindString, Required: true, Format: validation.FormatEmail, MaxLen: 254},
		{Name: "password", Kind: validation.KindString, Required: true, MinLen: 8, MaxLen: 72},
	},
}

// LoginSchema validates LoginRequest bodies.
var LoginSchema = validation.Schema{
	Fields: []validation.Field{
		{Name: "email", Kind: validation.KindString, Required: true, Format: validation.FormatEmail},
		{Name: "password", Kind: validation.KindString, Required: true, MinLen: 1},
	},
}

// ChangePasswordSchema validates ChangePasswordRequest bodies.
var ChangePasswordSchema = validation.Schema{
	Fields: []validation.Field{
		{Name: "current_password", Kind: validation.KindString, Required: true, MinLen: 1},
		{Name: "new_password", Kind: validation.KindString, Required: true, MinLen: 8, MaxLen: 72},
	},
}
