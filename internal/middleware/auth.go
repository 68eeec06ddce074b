package middleware

import (
	"strings"

	"github.com/contractdocs/docservice/internal/auth"
	"github.com/contractdocs/docservice/internal/types"
	"github.com/gofiber/fiber/v2"
)

// UsernameKey is the context local under which the authenticated subject is
// stored for downstream handlers.
const UsernameKey = "username"

// RequireBearer validates the Authorization bearer token on protected routes.
// Missing, malformed, or expired tokens short-circuit with 401 before the
// handler runs; on success the token subject is attached to the request.
func RequireBearer(tokens *auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthenticated(c, "Not authenticated")
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return unauthenticated(c, "Not authenticated")
		}

		subject, err := tokens.Verify(token)
		if err != nil {
			return unauthenticated(c, "Invalid or expired token")
		}
		if subject == "" {
			return unauthenticated(c, "User not found in token")
		}

		c.Locals(UsernameKey, subject)

		return c.Next()
	}
}

// unauthenticated sets the Bearer challenge and hands a 401 to the global
// error handler for rendering.
func unauthenticated(c *fiber.Ctx, message string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return &types.CustomError{
		Code:    fiber.StatusUnauthorized,
		Message: message,
		Type:    "auth.bearer",
	}
}

// Username returns the authenticated subject set by RequireBearer, or ""
// when the route was not gated.
func Username(c *fiber.Ctx) string {
	if v, ok := c.Locals(UsernameKey).(string); ok {
		return v
	}
	return ""
}
