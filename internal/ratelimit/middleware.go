package ratelimit

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/estate-cms/internal/auth"
	apperrors "github.com/spec-kit/estate-cms/pkg/util"
)

// Limit configures a fixed window quota.
type Limit struct {
	Max    int
	Window time.Duration
}

// Middleware returns a fiber handler enforcing the quota per client key and
// endpoint. Authenticated callers are keyed by user id, anonymous ones by IP.
// Store failures fail open so a counter outage cannot take down submissions.
func Middleware(store Store, limit Limit, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := clientKey(c) + "|" + c.Path()

		res, err := store.Hit(c.UserContext(), key, limit.Window)
		if err != nil {
			logger.Warn("rate limit store unavailable", zap.Error(err))
			return c.Next()
		}

		remaining := int64(limit.Max) - res.Count
		if remaining < 0 {
			remaining = 0
		}
		c.Set("X-RateLimit-Limit", strconv.Itoa(limit.Max))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

		if res.Count > int64(limit.Max) {
			retryAfter := int(time.Until(res.ResetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Set("Retry-After", strconv.Itoa(retryAfter))
			return apperrors.NewTooManyRequests("too many requests, please try again later")
		}
		return c.Next()
	}
}

func clientKey(c *fiber.Ctx) string {
	if identity, ok := auth.IdentityFromContext(c); ok {
		return "user:" + identity.UserID
	}
	return "ip:" + c.IP()
}
