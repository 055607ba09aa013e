package handler

import (
	"mime"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/filehaven/filehaven/internal/domain"
	"github.com/filehaven/filehaven/internal/middleware"
	"github.com/filehaven/filehaven/internal/service"
)

// rootSentinel is the wire-level "no parent" value. It exists only at
// this boundary; the core uses an empty parent id for the root.
const rootSentinel = "0"

// FileHandler handles file node endpoints
type FileHandler struct {
	fileService *service.FileService
	sessions    domain.SessionStore
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileService *service.FileService, sessions domain.SessionStore) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		sessions:    sessions,
	}
}

// Upload handles POST /files
func (h *FileHandler) Upload(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		ParentID string `json:"parentId"`
		IsPublic bool   `json:"isPublic"`
		Data     string `json:"data"`
	}
	_ = c.BodyParser(&req)

	node, err := h.fileService.Upload(c.Context(), middleware.GetUserID(c), service.UploadRequest{
		Name:     req.Name,
		Type:     req.Type,
		ParentID: parentFromWire(req.ParentID),
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(nodeView(node))
}

// GetShow handles GET /files/:id
func (h *FileHandler) GetShow(c *fiber.Ctx) error {
	node, err := h.fileService.GetFile(c.Context(), middleware.GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(nodeView(node))
}

// GetIndex handles GET /files
func (h *FileHandler) GetIndex(c *fiber.Ctx) error {
	parentID := parentFromWire(c.Query("parentId"))
	page := int64(c.QueryInt("page", 0))

	nodes, err := h.fileService.ListFiles(c.Context(), middleware.GetUserID(c), parentID, page)
	if err != nil {
		return writeError(c, err)
	}

	views := make([]fiber.Map, 0, len(nodes))
	for _, n := range nodes {
		views = append(views, nodeView(n))
	}
	return c.Status(fiber.StatusOK).JSON(views)
}

// GetData handles GET /files/:id/data. Public nodes are served without a
// session; private ones require the owner's token. This route is not
// behind the session middleware, so the token is resolved here.
func (h *FileHandler) GetData(c *fiber.Ctx) error {
	var callerID string
	if token := c.Get("X-Token"); token != "" {
		// An invalid token degrades to anonymous access
		callerID, _ = h.sessions.Resolve(c.Context(), token)
	}

	node, data, err := h.fileService.FileData(c.Context(), callerID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(node.Name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Set("Content-Type", contentType)
	return c.Status(fiber.StatusOK).Send(data)
}

// parentFromWire maps the wire sentinel to the internal root value
func parentFromWire(parentID string) string {
	if parentID == rootSentinel {
		return ""
	}
	return parentID
}
