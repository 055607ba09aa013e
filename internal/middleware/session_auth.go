package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/filehaven/filehaven/internal/domain"
)

// Context keys for storing session info
const (
	UserIDKey = "userID"
	TokenKey  = "token"
)

// SessionAuth resolves the X-Token header against the session store and
// stores the owning user id in the request context. Requests without a
// valid session are rejected before reaching the handler.
func SessionAuth(sessions domain.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("X-Token")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		userID, err := sessions.Resolve(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		c.Locals(UserIDKey, userID)
		c.Locals(TokenKey, token)

		return c.Next()
	}
}

// GetUserID returns the authenticated user id from the request context
func GetUserID(c *fiber.Ctx) string {
	userID, ok := c.Locals(UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}

// GetToken returns the session token from the request context
func GetToken(c *fiber.Ctx) string {
	token, ok := c.Locals(TokenKey).(string)
	if !ok {
		return ""
	}
	return token
}
