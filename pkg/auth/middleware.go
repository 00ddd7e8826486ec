package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// subjectKey is the fiber.Ctx local carrying the authenticated subject.
const subjectKey = "auth_subject"

// Middleware returns a fiber handler that requires a valid bearer token.
func Middleware(tokens *TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			return ErrMissingToken()
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			return ErrInvalidToken().WithCause(err)
		}

		c.Locals(subjectKey, claims.Subject)
		return c.Next()
	}
}

// Subject returns the authenticated subject set by Middleware, if any.
func Subject(c *fiber.Ctx) (string, bool) {
	subject, ok := c.Locals(subjectKey).(string)
	return subject, ok && subject != ""
}
