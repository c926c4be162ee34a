package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-cms/internal/domain"
	apperrors "github.com/spec-kit/estate-cms/pkg/util"
)

// RequireRole ensures the caller holds at least the given role.
func RequireRole(min domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !identity.Role.AtLeast(min) {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
