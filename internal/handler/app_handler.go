package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/filehaven/filehaven/internal/domain"
)

// Pinger checks liveness of a backing store
type Pinger func(ctx context.Context) error

// AppHandler reports store liveness and record counts
type AppHandler struct {
	users     domain.UserRepository
	files     domain.FileRepository
	dbPing    Pinger
	redisPing Pinger
}

// NewAppHandler creates a new app handler
func NewAppHandler(users domain.UserRepository, files domain.FileRepository, dbPing, redisPing Pinger) *AppHandler {
	return &AppHandler{
		users:     users,
		files:     files,
		dbPing:    dbPing,
		redisPing: redisPing,
	}
}

// Status handles GET /status
func (h *AppHandler) Status(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"redis": h.redisPing(c.Context()) == nil,
		"db":    h.dbPing(c.Context()) == nil,
	})
}

// Stats handles GET /stats
func (h *AppHandler) Stats(c *fiber.Ctx) error {
	users, err := h.users.Count(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	files, err := h.files.Count(c.Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"users": users,
		"files": files,
	})
}
