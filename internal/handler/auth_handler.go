package handler

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/filehaven/filehaven/internal/middleware"
	"github.com/filehaven/filehaven/internal/service"
)

// AuthHandler handles session creation and teardown
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Connect handles GET /connect. Credentials arrive as a basic-auth
// header; success returns a fresh session token.
func (h *AuthHandler) Connect(c *fiber.Ctx) error {
	email, password, ok := parseBasicAuth(c.Get("Authorization"))
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	token, err := h.authService.Connect(c.Context(), email, password)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": token,
	})
}

// Disconnect handles GET /disconnect
func (h *AuthHandler) Disconnect(c *fiber.Ctx) error {
	if err := h.authService.Disconnect(c.Context(), middleware.GetToken(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseBasicAuth extracts email and password from a Basic auth header
func parseBasicAuth(header string) (string, string, bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}

	email, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", false
	}
	return email, password, true
}
