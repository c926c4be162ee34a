package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/estate-cms/pkg/util"
)

const identityKey = "auth_identity"

// Middleware validates session tokens from the Authorization header or cookie.
type Middleware struct {
	tokens     *TokenManager
	cookieName string
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, cookieName string) *Middleware {
	return &Middleware{tokens: tokens, cookieName: cookieName}
}

// Required enforces authentication. Requests without a valid token are
// rejected with 401 before the route handler runs.
func (m *Middleware) Required(c *fiber.Ctx) error {
	identity, ok := m.extract(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	c.Locals(identityKey, identity)
	return c.Next()
}

// Optional performs the same extraction but always continues; handlers
// branch on the presence of an identity.
func (m *Middleware) Optional(c *fiber.Ctx) error {
	if identity, ok := m.extract(c); ok {
		c.Locals(identityKey, identity)
	}
	return c.Next()
}

// extract looks for a bearer token first, then the session cookie.
func (m *Middleware) extract(c *fiber.Ctx) (*Identity, bool) {
	token := ""
	if authHeader := c.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = parts[1]
		}
	}
	if token == "" && m.cookieName != "" {
		token = c.Cookies(m.cookieName)
	}
	if token == "" {
		return nil, false
	}

	identity, err := m.tokens.VerifyToken(token)
	if err != nil {
		return nil, false
	}
	return identity, true
}

// IdentityFromContext retrieves the authenticated caller, if any.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}
