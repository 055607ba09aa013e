package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/filehaven/filehaven/internal/middleware"
	"github.com/filehaven/filehaven/internal/service"
)

// UserHandler handles registration and the current-user endpoint
type UserHandler struct {
	authService *service.AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// Register handles POST /users
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	// A malformed body reads as missing fields, same as an empty one
	_ = c.BodyParser(&req)

	user, err := h.authService.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
	})
}

// Me handles GET /users/me
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := h.authService.CurrentUser(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"email": user.Email,
		"id":    user.ID,
	})
}
