package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/filehaven/filehaven/internal/domain"
)

// writeError maps domain errors onto the wire contract:
// validation failures -> 400, auth failures -> 401, missing records -> 404,
// anything else -> generic 500.
func writeError(c *fiber.Ctx, err error) error {
	if ve, ok := domain.AsValidationError(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ve.Message,
		})
	}
	switch err {
	case domain.ErrAlreadyExists:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Already exist",
		})
	case domain.ErrUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}

// nodeView renders a file node for the client. The root parent is
// rendered as numeric 0; any other parent as its id string.
func nodeView(n *domain.FileNode) fiber.Map {
	var parent interface{} = 0
	if n.ParentID != "" {
		parent = n.ParentID
	}
	return fiber.Map{
		"id":       n.ID,
		"userId":   n.OwnerID,
		"name":     n.Name,
		"type":     n.Type,
		"isPublic": n.IsPublic,
		"parentId": parent,
	}
}
